package service

import (
	"context"

	"checkout-simulator/internal/model"
	"checkout-simulator/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionService interface {
	Record(ctx context.Context, method string, amount decimal.Decimal, success bool) error
	History(ctx context.Context) ([]*model.Transaction, error)
}

type transactionServiceImpl struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionService(
	transactionRepo repository.TransactionRepository,
) TransactionService {
	return &transactionServiceImpl{
		transactionRepo: transactionRepo,
	}
}

func (s *transactionServiceImpl) Record(ctx context.Context, method string, amount decimal.Decimal, success bool) error {
	return s.transactionRepo.Create(ctx, &model.Transaction{
		ID:      uuid.NewString(),
		Method:  method,
		Amount:  amount.StringFixed(2),
		Success: success,
	})
}

func (s *transactionServiceImpl) History(ctx context.Context) ([]*model.Transaction, error) {
	return s.transactionRepo.List(ctx)
}
