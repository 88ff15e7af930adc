package service

import (
	"context"
	"path/filepath"
	"testing"

	"checkout-simulator/internal/model"
	"checkout-simulator/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) TransactionService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("Expected no error opening database, got: %v", err)
	}
	if err := db.AutoMigrate(&model.Transaction{}); err != nil {
		t.Fatalf("Expected no error migrating, got: %v", err)
	}
	return NewTransactionService(repository.NewTransactionRepository(db))
}

func TestTransactionService_Record(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Record(ctx, "Credit", decimal.NewFromFloat(20.0), true); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(history))
	}

	tx := history[0]
	if tx.ID == "" {
		t.Error("Expected a generated transaction ID")
	}
	if tx.Method != "Credit" {
		t.Errorf("Expected method Credit, got %q", tx.Method)
	}
	if tx.Amount != "20.00" {
		t.Errorf("Expected amount 20.00, got %q", tx.Amount)
	}
	if !tx.Success {
		t.Error("Expected a successful transaction")
	}
}
