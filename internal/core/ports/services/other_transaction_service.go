package services

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// OtherTransactionService manages typed miscellaneous transactions and the
// user-defined type tags they are bucketed under.
type OtherTransactionService interface {
	CreateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) (*domain.OtherTransaction, error)
	GetOtherTransactionByID(ctx context.Context, transactionID string) (*domain.OtherTransaction, error)
	ListOtherTransactions(ctx context.Context) ([]domain.OtherTransaction, error)
	UpdateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) (*domain.OtherTransaction, error)
	DeleteOtherTransaction(ctx context.Context, transactionID string) error

	CreateOtherType(ctx context.Context, t domain.OtherType) (*domain.OtherType, error)
	ListOtherTypes(ctx context.Context) ([]domain.OtherType, error)
	DeleteOtherType(ctx context.Context, typeID string) error
}
