package repositories

import (
	"context"
	"time"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// BankAccountRepository defines persistence operations for the bank book.
type BankAccountRepository interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, includeDeleted bool) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
	MarkBankAccountDeleted(ctx context.Context, accountID string, deletedAt time.Time) error
	RestoreBankAccount(ctx context.Context, accountID string) error
	DeleteBankAccount(ctx context.Context, accountID string) error
}

// CashEntryRepository defines persistence operations for the cash book.
type CashEntryRepository interface {
	SaveCashEntry(ctx context.Context, entry domain.CashEntry) error
	FindCashEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error)
	ListCashEntries(ctx context.Context, includeDeleted bool) ([]domain.CashEntry, error)
	UpdateCashEntry(ctx context.Context, entry domain.CashEntry) error
	MarkCashEntryDeleted(ctx context.Context, entryID string, deletedAt time.Time) error
	RestoreCashEntry(ctx context.Context, entryID string) error
	DeleteCashEntry(ctx context.Context, entryID string) error
}
