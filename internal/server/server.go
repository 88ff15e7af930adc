package server

import (
	"checkout-simulator/internal/handler"
	"checkout-simulator/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo               *echo.Echo
	transactionHandler *handler.TransactionHandler
}

func NewServer(transactionService service.TransactionService) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	transactionHandler := handler.NewTransactionHandler(transactionService)

	s := &Server{
		echo:               e,
		transactionHandler: transactionHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/transactions", s.transactionHandler.GetTransactions)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
