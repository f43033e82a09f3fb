package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	BaseRepository
}

func newInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &invoiceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const invoiceColumns = `invoice_id, buyer_name, buyer_address, buyer_gst, invoice_number,
	financial_year, invoice_date, particulars, state, base_amount, cgst, sgst, igst,
	tax_total, total_with_gst, total_tax_amount, remark, is_deleted, deleted_at,
	created_at, updated_at`

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	var taxAmount decimal.NullDecimal
	err := row.Scan(
		&inv.InvoiceID,
		&inv.BuyerName,
		&inv.BuyerAddress,
		&inv.BuyerGST,
		&inv.InvoiceNumber,
		&inv.FinancialYear,
		&inv.InvoiceDate,
		&inv.Particulars,
		&inv.State,
		&inv.BaseAmount,
		&inv.CGST,
		&inv.SGST,
		&inv.IGST,
		&inv.TaxTotal,
		&inv.TotalWithGST,
		&taxAmount,
		&inv.Remark,
		&inv.IsDeleted,
		&inv.DeletedAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if taxAmount.Valid {
		inv.TotalTaxAmount = &taxAmount.Decimal
	}
	return &inv, nil
}

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	var taxAmount decimal.NullDecimal
	if invoice.TotalTaxAmount != nil {
		taxAmount = decimal.NullDecimal{Decimal: *invoice.TotalTaxAmount, Valid: true}
	}
	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID, invoice.BuyerName, invoice.BuyerAddress, invoice.BuyerGST,
		invoice.InvoiceNumber, invoice.FinancialYear, invoice.InvoiceDate, invoice.Particulars,
		invoice.State, invoice.BaseAmount, invoice.CGST, invoice.SGST, invoice.IGST,
		invoice.TaxTotal, invoice.TotalWithGST, taxAmount, invoice.Remark,
		invoice.IsDeleted, invoice.DeletedAt, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting invoice: %w", err)
	}
	return nil
}

func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying invoice: %w", err)
	}
	return inv, nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, financialYear string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE is_deleted = FALSE`
	args := []any{}
	if financialYear != "" {
		query += ` AND financial_year = $1`
		args = append(args, financialYear)
	}
	query += ` ORDER BY invoice_date, invoice_id`

	return r.listInvoices(ctx, query, args...)
}

func (r *invoiceRepository) ListDeletedInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE is_deleted = TRUE ORDER BY deleted_at DESC`
	return r.listInvoices(ctx, query)
}

func (r *invoiceRepository) listInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET buyer_name = $2, buyer_address = $3, buyer_gst = $4, invoice_number = $5,
			financial_year = $6, invoice_date = $7, particulars = $8, state = $9,
			base_amount = $10, cgst = $11, sgst = $12, igst = $13, tax_total = $14,
			total_with_gst = $15, total_tax_amount = $16, remark = $17, updated_at = $18
		WHERE invoice_id = $1`

	var taxAmount decimal.NullDecimal
	if invoice.TotalTaxAmount != nil {
		taxAmount = decimal.NullDecimal{Decimal: *invoice.TotalTaxAmount, Valid: true}
	}
	tag, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID, invoice.BuyerName, invoice.BuyerAddress, invoice.BuyerGST,
		invoice.InvoiceNumber, invoice.FinancialYear, invoice.InvoiceDate, invoice.Particulars,
		invoice.State, invoice.BaseAmount, invoice.CGST, invoice.SGST, invoice.IGST,
		invoice.TaxTotal, invoice.TotalWithGST, taxAmount, invoice.Remark, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string, deletedAt time.Time) error {
	query := `UPDATE invoices SET is_deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE invoice_id = $1 AND is_deleted = FALSE`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, deletedAt)
	if err != nil {
		return fmt.Errorf("error soft-deleting invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) RestoreInvoice(ctx context.Context, invoiceID string) error {
	query := `UPDATE invoices SET is_deleted = FALSE, deleted_at = NULL, updated_at = NOW() WHERE invoice_id = $1 AND is_deleted = TRUE`
	tag, err := r.Pool.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("error restoring invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleted invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}

// ArchiveInvoice copies the row into archived_invoices and removes the active
// row inside one transaction.
func (r *invoiceRepository) ArchiveInvoice(ctx context.Context, invoiceID string, archivedAt time.Time) (*domain.ArchivedInvoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	inv, err := scanInvoice(tx.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying invoice for archival: %w", err)
	}

	archived := domain.ArchivedInvoice{
		ArchiveID:      uuid.NewString(),
		InvoiceID:      inv.InvoiceID,
		BuyerName:      inv.BuyerName,
		InvoiceNumber:  inv.InvoiceNumber,
		InvoiceDate:    inv.InvoiceDate,
		TotalWithGST:   inv.TotalWithGST,
		TotalTaxAmount: inv.TotalTaxAmount,
		ArchivedAt:     archivedAt,
	}
	var taxAmount decimal.NullDecimal
	if archived.TotalTaxAmount != nil {
		taxAmount = decimal.NullDecimal{Decimal: *archived.TotalTaxAmount, Valid: true}
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO archived_invoices (archive_id, invoice_id, buyer_name, invoice_number,
			invoice_date, total_with_gst, total_tax_amount, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		archived.ArchiveID, archived.InvoiceID, archived.BuyerName, archived.InvoiceNumber,
		archived.InvoiceDate, archived.TotalWithGST, taxAmount, archived.ArchivedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting archived invoice: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1`, invoiceID); err != nil {
		return nil, fmt.Errorf("error removing archived invoice source row: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &archived, nil
}

func (r *invoiceRepository) LatestInvoiceNumber(ctx context.Context, financialYear string) (string, error) {
	query := `
		SELECT invoice_number FROM invoices
		WHERE financial_year = $1
		ORDER BY invoice_number DESC
		LIMIT 1`

	var number string
	err := r.Pool.QueryRow(ctx, query, financialYear).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("error querying latest invoice number: %w", err)
	}
	return number, nil
}
