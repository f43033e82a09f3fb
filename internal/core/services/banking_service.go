package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// bankingService implements the BankingService interface
type bankingService struct {
	BaseService
	bankRepo portsrepo.BankAccountRepository
	cashRepo portsrepo.CashEntryRepository
}

// NewBankingService creates a new banking service
func NewBankingService(bankRepo portsrepo.BankAccountRepository, cashRepo portsrepo.CashEntryRepository) portssvc.BankingService {
	return &bankingService{
		bankRepo: bankRepo,
		cashRepo: cashRepo,
	}
}

var _ portssvc.BankingService = (*bankingService)(nil)

func (s *bankingService) CreateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error) {
	if strings.TrimSpace(account.BankName) == "" {
		return nil, fmt.Errorf("bank name is required: %w", apperrors.ErrValidation)
	}
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}
	if err := s.bankRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}
	s.LogInfo(ctx, "Bank account created",
		slog.String("account_id", account.AccountID),
		slog.String("bank_name", account.BankName))
	return &account, nil
}

func (s *bankingService) GetBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	account, err := s.bankRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch bank account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *bankingService) ListBankAccounts(ctx context.Context, includeDeleted bool) ([]domain.BankAccount, error) {
	accounts, err := s.bankRepo.ListBankAccounts(ctx, includeDeleted)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return accounts, nil
}

func (s *bankingService) UpdateBankAccount(ctx context.Context, account domain.BankAccount) (*domain.BankAccount, error) {
	if _, err := s.bankRepo.FindBankAccountByID(ctx, account.AccountID); err != nil {
		return nil, err
	}
	if err := s.bankRepo.UpdateBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to update bank account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to update bank account: %w", err)
	}
	return &account, nil
}

func (s *bankingService) DeleteBankAccount(ctx context.Context, accountID string) error {
	if _, err := s.bankRepo.FindBankAccountByID(ctx, accountID); err != nil {
		return err
	}
	if err := s.bankRepo.MarkBankAccountDeleted(ctx, accountID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete bank account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete bank account: %w", err)
	}
	s.LogInfo(ctx, "Bank account soft-deleted", slog.String("account_id", accountID))
	return nil
}

func (s *bankingService) RestoreBankAccount(ctx context.Context, accountID string) error {
	if err := s.bankRepo.RestoreBankAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to restore bank account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Bank account restored", slog.String("account_id", accountID))
	return nil
}

func (s *bankingService) PurgeBankAccount(ctx context.Context, accountID string) error {
	if err := s.bankRepo.DeleteBankAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to purge bank account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Bank account permanently removed", slog.String("account_id", accountID))
	return nil
}

func (s *bankingService) CreateCashEntry(ctx context.Context, entry domain.CashEntry) (*domain.CashEntry, error) {
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	if err := s.cashRepo.SaveCashEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save cash entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save cash entry: %w", err)
	}
	s.LogInfo(ctx, "Cash entry created", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

func (s *bankingService) GetCashEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error) {
	entry, err := s.cashRepo.FindCashEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch cash entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *bankingService) ListCashEntries(ctx context.Context, includeDeleted bool) ([]domain.CashEntry, error) {
	entries, err := s.cashRepo.ListCashEntries(ctx, includeDeleted)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash entries")
		return nil, fmt.Errorf("failed to list cash entries: %w", err)
	}
	return entries, nil
}

func (s *bankingService) UpdateCashEntry(ctx context.Context, entry domain.CashEntry) (*domain.CashEntry, error) {
	if _, err := s.cashRepo.FindCashEntryByID(ctx, entry.EntryID); err != nil {
		return nil, err
	}
	if err := s.cashRepo.UpdateCashEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to update cash entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to update cash entry: %w", err)
	}
	return &entry, nil
}

func (s *bankingService) DeleteCashEntry(ctx context.Context, entryID string) error {
	if _, err := s.cashRepo.FindCashEntryByID(ctx, entryID); err != nil {
		return err
	}
	if err := s.cashRepo.MarkCashEntryDeleted(ctx, entryID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete cash entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete cash entry: %w", err)
	}
	s.LogInfo(ctx, "Cash entry soft-deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *bankingService) RestoreCashEntry(ctx context.Context, entryID string) error {
	if err := s.cashRepo.RestoreCashEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to restore cash entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Cash entry restored", slog.String("entry_id", entryID))
	return nil
}

func (s *bankingService) PurgeCashEntry(ctx context.Context, entryID string) error {
	if err := s.cashRepo.DeleteCashEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to purge cash entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Cash entry permanently removed", slog.String("entry_id", entryID))
	return nil
}
