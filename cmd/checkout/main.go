package main

import (
	"context"
	"fmt"
	"os"

	"checkout-simulator/internal/checkout"
	"checkout-simulator/internal/client"
	"checkout-simulator/internal/config"
	"checkout-simulator/internal/repository"
	"checkout-simulator/internal/service"
	"checkout-simulator/internal/txlog"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)

	transactionRepo := repository.NewTransactionRepository(db)
	transactionService := service.NewTransactionService(transactionRepo)
	logger := txlog.NewFileLogger(cfg.TransactionLog)

	flow := checkout.NewFlow(os.Stdin, os.Stdout, logger, transactionService)
	flow.Run(context.Background())
}
