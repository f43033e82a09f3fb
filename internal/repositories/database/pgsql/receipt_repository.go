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

// buyerReceiptRepository implements the BuyerReceiptRepository interface.
// The backing table is named buyers for historical reasons.
type buyerReceiptRepository struct {
	BaseRepository
}

func newBuyerReceiptRepository(db *pgxpool.Pool) portsrepo.BuyerReceiptRepository {
	return &buyerReceiptRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *buyerReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.BuyerReceipt) error {
	query := `
		INSERT INTO buyers (receipt_id, name, date, amount, notes, payment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.Pool.Exec(ctx, query,
		receipt.ReceiptID, receipt.Name, receipt.Date, receipt.Amount,
		receipt.Notes, receipt.PaymentType, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting buyer receipt: %w", err)
	}
	return nil
}

func (r *buyerReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.BuyerReceipt, error) {
	query := `SELECT receipt_id, name, date, amount, notes, payment_type, created_at FROM buyers WHERE receipt_id = $1`
	var rec domain.BuyerReceipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&rec.ReceiptID, &rec.Name, &rec.Date, &rec.Amount,
		&rec.Notes, &rec.PaymentType, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("receipt %s: %w", receiptID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying buyer receipt: %w", err)
	}
	return &rec, nil
}

func (r *buyerReceiptRepository) ListReceipts(ctx context.Context) ([]domain.BuyerReceipt, error) {
	query := `SELECT receipt_id, name, date, amount, notes, payment_type, created_at FROM buyers ORDER BY date, receipt_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying buyer receipts: %w", err)
	}
	defer rows.Close()

	receipts := []domain.BuyerReceipt{}
	for rows.Next() {
		var rec domain.BuyerReceipt
		if err := rows.Scan(
			&rec.ReceiptID, &rec.Name, &rec.Date, &rec.Amount,
			&rec.Notes, &rec.PaymentType, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning buyer receipt row: %w", err)
		}
		receipts = append(receipts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buyer receipt rows: %w", err)
	}
	return receipts, nil
}

func (r *buyerReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.BuyerReceipt) error {
	query := `UPDATE buyers SET name = $2, date = $3, amount = $4, notes = $5, payment_type = $6 WHERE receipt_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		receipt.ReceiptID, receipt.Name, receipt.Date, receipt.Amount,
		receipt.Notes, receipt.PaymentType,
	)
	if err != nil {
		return fmt.Errorf("error updating buyer receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt %s: %w", receipt.ReceiptID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *buyerReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM buyers WHERE receipt_id = $1`, receiptID)
	if err != nil {
		return fmt.Errorf("error deleting buyer receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt %s: %w", receiptID, apperrors.ErrNotFound)
	}
	return nil
}

// companyBillRepository implements the CompanyBillRepository interface
type companyBillRepository struct {
	BaseRepository
}

func newCompanyBillRepository(db *pgxpool.Pool) portsrepo.CompanyBillRepository {
	return &companyBillRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *companyBillRepository) SaveBill(ctx context.Context, bill domain.CompanyBill) error {
	query := `
		INSERT INTO company_bills (bill_id, company, invoice_ref, date, notice, amount, payment_type, bank)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.Pool.Exec(ctx, query,
		bill.BillID, bill.Company, bill.InvoiceRef, bill.Date,
		bill.Notice, bill.Amount, bill.PaymentType, bill.Bank,
	)
	if err != nil {
		return fmt.Errorf("error inserting company bill: %w", err)
	}
	return nil
}

func (r *companyBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.CompanyBill, error) {
	query := `SELECT bill_id, company, invoice_ref, date, notice, amount, payment_type, bank FROM company_bills WHERE bill_id = $1`
	var bill domain.CompanyBill
	err := r.Pool.QueryRow(ctx, query, billID).Scan(
		&bill.BillID, &bill.Company, &bill.InvoiceRef, &bill.Date,
		&bill.Notice, &bill.Amount, &bill.PaymentType, &bill.Bank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("company bill %s: %w", billID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying company bill: %w", err)
	}
	return &bill, nil
}

func (r *companyBillRepository) ListBills(ctx context.Context) ([]domain.CompanyBill, error) {
	query := `SELECT bill_id, company, invoice_ref, date, notice, amount, payment_type, bank FROM company_bills ORDER BY date, bill_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying company bills: %w", err)
	}
	defer rows.Close()

	bills := []domain.CompanyBill{}
	for rows.Next() {
		var bill domain.CompanyBill
		if err := rows.Scan(
			&bill.BillID, &bill.Company, &bill.InvoiceRef, &bill.Date,
			&bill.Notice, &bill.Amount, &bill.PaymentType, &bill.Bank,
		); err != nil {
			return nil, fmt.Errorf("error scanning company bill row: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company bill rows: %w", err)
	}
	return bills, nil
}

func (r *companyBillRepository) UpdateBill(ctx context.Context, bill domain.CompanyBill) error {
	query := `
		UPDATE company_bills
		SET company = $2, invoice_ref = $3, date = $4, notice = $5, amount = $6, payment_type = $7, bank = $8
		WHERE bill_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		bill.BillID, bill.Company, bill.InvoiceRef, bill.Date,
		bill.Notice, bill.Amount, bill.PaymentType, bill.Bank,
	)
	if err != nil {
		return fmt.Errorf("error updating company bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company bill %s: %w", bill.BillID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *companyBillRepository) DeleteBill(ctx context.Context, billID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM company_bills WHERE bill_id = $1`, billID)
	if err != nil {
		return fmt.Errorf("error deleting company bill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company bill %s: %w", billID, apperrors.ErrNotFound)
	}
	return nil
}
