package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// bankAccountRepository implements the BankAccountRepository interface
type bankAccountRepository struct {
	BaseRepository
}

func newBankAccountRepository(db *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &bankAccountRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const bankAccountColumns = `account_id, bank_name, account_number, amount, is_deleted, deleted_at`

func (r *bankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID, account.BankName, account.AccountNumber,
		account.Amount, account.IsDeleted, account.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting bank account: %w", err)
	}
	return nil
}

func (r *bankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = $1`
	var a domain.BankAccount
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&a.AccountID, &a.BankName, &a.AccountNumber, &a.Amount, &a.IsDeleted, &a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bank account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying bank account: %w", err)
	}
	return &a, nil
}

func (r *bankAccountRepository) ListBankAccounts(ctx context.Context, includeDeleted bool) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts`
	if !includeDeleted {
		query += ` WHERE is_deleted = FALSE`
	}
	query += ` ORDER BY bank_name, account_id`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		var a domain.BankAccount
		if err := rows.Scan(
			&a.AccountID, &a.BankName, &a.AccountNumber, &a.Amount, &a.IsDeleted, &a.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning bank account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	return accounts, nil
}

func (r *bankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	query := `UPDATE bank_accounts SET bank_name = $2, account_number = $3, amount = $4 WHERE account_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID, account.BankName, account.AccountNumber, account.Amount,
	)
	if err != nil {
		return fmt.Errorf("error updating bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *bankAccountRepository) MarkBankAccountDeleted(ctx context.Context, accountID string, deletedAt time.Time) error {
	query := `UPDATE bank_accounts SET is_deleted = TRUE, deleted_at = $2 WHERE account_id = $1 AND is_deleted = FALSE`
	tag, err := r.Pool.Exec(ctx, query, accountID, deletedAt)
	if err != nil {
		return fmt.Errorf("error soft-deleting bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *bankAccountRepository) RestoreBankAccount(ctx context.Context, accountID string) error {
	query := `UPDATE bank_accounts SET is_deleted = FALSE, deleted_at = NULL WHERE account_id = $1 AND is_deleted = TRUE`
	tag, err := r.Pool.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("error restoring bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleted bank account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *bankAccountRepository) DeleteBankAccount(ctx context.Context, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bank_accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("error deleting bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bank account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

// cashEntryRepository implements the CashEntryRepository interface
type cashEntryRepository struct {
	BaseRepository
}

func newCashEntryRepository(db *pgxpool.Pool) portsrepo.CashEntryRepository {
	return &cashEntryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const cashEntryColumns = `entry_id, amount, date, description, is_deleted, deleted_at`

func (r *cashEntryRepository) SaveCashEntry(ctx context.Context, entry domain.CashEntry) error {
	query := `
		INSERT INTO cash_entries (` + cashEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID, entry.Amount, entry.Date, entry.Description, entry.IsDeleted, entry.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting cash entry: %w", err)
	}
	return nil
}

func (r *cashEntryRepository) FindCashEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error) {
	query := `SELECT ` + cashEntryColumns + ` FROM cash_entries WHERE entry_id = $1`
	var e domain.CashEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&e.EntryID, &e.Amount, &e.Date, &e.Description, &e.IsDeleted, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("cash entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying cash entry: %w", err)
	}
	return &e, nil
}

func (r *cashEntryRepository) ListCashEntries(ctx context.Context, includeDeleted bool) ([]domain.CashEntry, error) {
	query := `SELECT ` + cashEntryColumns + ` FROM cash_entries`
	if !includeDeleted {
		query += ` WHERE is_deleted = FALSE`
	}
	query += ` ORDER BY date, entry_id`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying cash entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.CashEntry{}
	for rows.Next() {
		var e domain.CashEntry
		if err := rows.Scan(
			&e.EntryID, &e.Amount, &e.Date, &e.Description, &e.IsDeleted, &e.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning cash entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash entry rows: %w", err)
	}
	return entries, nil
}

func (r *cashEntryRepository) UpdateCashEntry(ctx context.Context, entry domain.CashEntry) error {
	query := `UPDATE cash_entries SET amount = $2, date = $3, description = $4 WHERE entry_id = $1`
	tag, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.Amount, entry.Date, entry.Description)
	if err != nil {
		return fmt.Errorf("error updating cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cash entry %s: %w", entry.EntryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *cashEntryRepository) MarkCashEntryDeleted(ctx context.Context, entryID string, deletedAt time.Time) error {
	query := `UPDATE cash_entries SET is_deleted = TRUE, deleted_at = $2 WHERE entry_id = $1 AND is_deleted = FALSE`
	tag, err := r.Pool.Exec(ctx, query, entryID, deletedAt)
	if err != nil {
		return fmt.Errorf("error soft-deleting cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cash entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *cashEntryRepository) RestoreCashEntry(ctx context.Context, entryID string) error {
	query := `UPDATE cash_entries SET is_deleted = FALSE, deleted_at = NULL WHERE entry_id = $1 AND is_deleted = TRUE`
	tag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("error restoring cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleted cash entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *cashEntryRepository) DeleteCashEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cash_entries WHERE entry_id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("error deleting cash entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cash entry %s: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}
