package handler

import (
	"net/http"

	"checkout-simulator/internal/service"

	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	transactions, err := h.transactionService.History(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transactions)
}
