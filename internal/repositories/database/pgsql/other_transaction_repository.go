package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// otherTransactionRepository implements the OtherTransactionRepository interface
type otherTransactionRepository struct {
	BaseRepository
}

func newOtherTransactionRepository(db *pgxpool.Pool) portsrepo.OtherTransactionRepository {
	return &otherTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const otherTxnColumns = `transaction_id, type, name, date, amount, notice, payment_type, bank_name, transaction_type`

func (r *otherTransactionRepository) SaveOtherTransaction(ctx context.Context, txn domain.OtherTransaction) error {
	query := `
		INSERT INTO other_transactions (` + otherTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID, txn.Type, txn.Name, txn.Date, txn.Amount,
		txn.Notice, txn.PaymentType, txn.BankName, txn.TransactionType,
	)
	if err != nil {
		return fmt.Errorf("error inserting other transaction: %w", err)
	}
	return nil
}

func (r *otherTransactionRepository) FindOtherTransactionByID(ctx context.Context, transactionID string) (*domain.OtherTransaction, error) {
	query := `SELECT ` + otherTxnColumns + ` FROM other_transactions WHERE transaction_id = $1`
	var t domain.OtherTransaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&t.TransactionID, &t.Type, &t.Name, &t.Date, &t.Amount,
		&t.Notice, &t.PaymentType, &t.BankName, &t.TransactionType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying other transaction: %w", err)
	}
	return &t, nil
}

func (r *otherTransactionRepository) ListOtherTransactions(ctx context.Context) ([]domain.OtherTransaction, error) {
	query := `SELECT ` + otherTxnColumns + ` FROM other_transactions ORDER BY date, transaction_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying other transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.OtherTransaction{}
	for rows.Next() {
		var t domain.OtherTransaction
		if err := rows.Scan(
			&t.TransactionID, &t.Type, &t.Name, &t.Date, &t.Amount,
			&t.Notice, &t.PaymentType, &t.BankName, &t.TransactionType,
		); err != nil {
			return nil, fmt.Errorf("error scanning other transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating other transaction rows: %w", err)
	}
	return txns, nil
}

func (r *otherTransactionRepository) UpdateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) error {
	query := `
		UPDATE other_transactions
		SET type = $2, name = $3, date = $4, amount = $5, notice = $6,
			payment_type = $7, bank_name = $8, transaction_type = $9
		WHERE transaction_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID, txn.Type, txn.Name, txn.Date, txn.Amount,
		txn.Notice, txn.PaymentType, txn.BankName, txn.TransactionType,
	)
	if err != nil {
		return fmt.Errorf("error updating other transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *otherTransactionRepository) DeleteOtherTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM other_transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("error deleting other transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

// otherTypeRepository implements the OtherTypeRepository interface
type otherTypeRepository struct {
	BaseRepository
}

func newOtherTypeRepository(db *pgxpool.Pool) portsrepo.OtherTypeRepository {
	return &otherTypeRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *otherTypeRepository) SaveOtherType(ctx context.Context, t domain.OtherType) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO other_types (type_id, name) VALUES ($1, $2)`, t.TypeID, t.Name)
	if err != nil {
		return fmt.Errorf("error inserting other type: %w", err)
	}
	return nil
}

func (r *otherTypeRepository) ListOtherTypes(ctx context.Context) ([]domain.OtherType, error) {
	rows, err := r.Pool.Query(ctx, `SELECT type_id, name FROM other_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying other types: %w", err)
	}
	defer rows.Close()

	types := []domain.OtherType{}
	for rows.Next() {
		var t domain.OtherType
		if err := rows.Scan(&t.TypeID, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning other type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating other type rows: %w", err)
	}
	return types, nil
}

func (r *otherTypeRepository) DeleteOtherType(ctx context.Context, typeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM other_types WHERE type_id = $1`, typeID)
	if err != nil {
		return fmt.Errorf("error deleting other type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("other type %s: %w", typeID, apperrors.ErrNotFound)
	}
	return nil
}
