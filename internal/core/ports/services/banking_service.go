package services

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// BankingService manages the bank book and the cash book.
type BankingService interface {
	CreateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, includeDeleted bool) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, accountID string) error
	RestoreBankAccount(ctx context.Context, accountID string) error
	PurgeBankAccount(ctx context.Context, accountID string) error

	CreateCashEntry(ctx context.Context, entry domain.CashEntry) (*domain.CashEntry, error)
	GetCashEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error)
	ListCashEntries(ctx context.Context, includeDeleted bool) ([]domain.CashEntry, error)
	UpdateCashEntry(ctx context.Context, entry domain.CashEntry) (*domain.CashEntry, error)
	DeleteCashEntry(ctx context.Context, entryID string) error
	RestoreCashEntry(ctx context.Context, entryID string) error
	PurgeCashEntry(ctx context.Context, entryID string) error
}
