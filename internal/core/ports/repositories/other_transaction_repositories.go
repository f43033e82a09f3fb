package repositories

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// OtherTransactionRepository defines persistence operations for typed
// miscellaneous transactions.
type OtherTransactionRepository interface {
	SaveOtherTransaction(ctx context.Context, txn domain.OtherTransaction) error
	FindOtherTransactionByID(ctx context.Context, transactionID string) (*domain.OtherTransaction, error)
	ListOtherTransactions(ctx context.Context) ([]domain.OtherTransaction, error)
	UpdateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) error
	DeleteOtherTransaction(ctx context.Context, transactionID string) error
}

// OtherTypeRepository defines persistence operations for user-defined type tags.
type OtherTypeRepository interface {
	SaveOtherType(ctx context.Context, t domain.OtherType) error
	ListOtherTypes(ctx context.Context) ([]domain.OtherType, error)
	DeleteOtherType(ctx context.Context, typeID string) error
}
