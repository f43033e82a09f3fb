package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// ledgerRepository implements the LedgerRepository interface. It is the
// balance-sheet engine's read-only window over every transaction table;
// rows come back ordered by date then id so repeated reads are stable.
type ledgerRepository struct {
	BaseRepository
}

func newLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &ledgerRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *ledgerRepository) SourcesBefore(ctx context.Context, cutoff time.Time) (domain.LedgerSources, error) {
	return r.fetchSources(ctx, "< $1", []any{cutoff})
}

func (r *ledgerRepository) SourcesBetween(ctx context.Context, from, to time.Time) (domain.LedgerSources, error) {
	return r.fetchSources(ctx, "BETWEEN $1 AND $2", []any{from, to})
}

func (r *ledgerRepository) fetchSources(ctx context.Context, dateCond string, args []any) (domain.LedgerSources, error) {
	var src domain.LedgerSources

	if err := r.fetchInvoices(ctx, dateCond, args, &src); err != nil {
		return domain.LedgerSources{}, err
	}
	if err := r.fetchArchivedInvoices(ctx, dateCond, args, &src); err != nil {
		return domain.LedgerSources{}, err
	}
	if err := r.fetchReceipts(ctx, dateCond, args, &src); err != nil {
		return domain.LedgerSources{}, err
	}
	if err := r.fetchCompanyBills(ctx, dateCond, args, &src); err != nil {
		return domain.LedgerSources{}, err
	}
	if err := r.fetchSalaries(ctx, dateCond, args, &src); err != nil {
		return domain.LedgerSources{}, err
	}
	if err := r.fetchOthers(ctx, dateCond, args, &src); err != nil {
		return domain.LedgerSources{}, err
	}
	return src, nil
}

func (r *ledgerRepository) fetchInvoices(ctx context.Context, dateCond string, args []any, src *domain.LedgerSources) error {
	query := fmt.Sprintf(`
		SELECT invoice_id, buyer_name, invoice_number, financial_year, invoice_date,
			total_with_gst, total_tax_amount, is_deleted
		FROM invoices
		WHERE invoice_date %s
		ORDER BY invoice_date, invoice_id`, dateCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inv domain.Invoice
		var taxAmount decimal.NullDecimal
		if err := rows.Scan(
			&inv.InvoiceID,
			&inv.BuyerName,
			&inv.InvoiceNumber,
			&inv.FinancialYear,
			&inv.InvoiceDate,
			&inv.TotalWithGST,
			&taxAmount,
			&inv.IsDeleted,
		); err != nil {
			return fmt.Errorf("error scanning invoice row: %w", err)
		}
		if taxAmount.Valid {
			inv.TotalTaxAmount = &taxAmount.Decimal
		}
		if inv.IsDeleted {
			src.DeletedInvoices = append(src.DeletedInvoices, inv)
		} else {
			src.Invoices = append(src.Invoices, inv)
		}
	}
	return rows.Err()
}

func (r *ledgerRepository) fetchArchivedInvoices(ctx context.Context, dateCond string, args []any, src *domain.LedgerSources) error {
	query := fmt.Sprintf(`
		SELECT archive_id, invoice_id, buyer_name, invoice_number, invoice_date,
			total_with_gst, total_tax_amount, archived_at
		FROM archived_invoices
		WHERE invoice_date %s
		ORDER BY invoice_date, archive_id`, dateCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying archived invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var inv domain.ArchivedInvoice
		var taxAmount decimal.NullDecimal
		if err := rows.Scan(
			&inv.ArchiveID,
			&inv.InvoiceID,
			&inv.BuyerName,
			&inv.InvoiceNumber,
			&inv.InvoiceDate,
			&inv.TotalWithGST,
			&taxAmount,
			&inv.ArchivedAt,
		); err != nil {
			return fmt.Errorf("error scanning archived invoice row: %w", err)
		}
		if taxAmount.Valid {
			inv.TotalTaxAmount = &taxAmount.Decimal
		}
		src.ArchivedInvoices = append(src.ArchivedInvoices, inv)
	}
	return rows.Err()
}

func (r *ledgerRepository) fetchReceipts(ctx context.Context, dateCond string, args []any, src *domain.LedgerSources) error {
	query := fmt.Sprintf(`
		SELECT receipt_id, name, date, amount, notes, payment_type, created_at
		FROM buyers
		WHERE date %s
		ORDER BY date, receipt_id`, dateCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying buyer receipts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.BuyerReceipt
		if err := rows.Scan(
			&rec.ReceiptID,
			&rec.Name,
			&rec.Date,
			&rec.Amount,
			&rec.Notes,
			&rec.PaymentType,
			&rec.CreatedAt,
		); err != nil {
			return fmt.Errorf("error scanning buyer receipt row: %w", err)
		}
		src.Receipts = append(src.Receipts, rec)
	}
	return rows.Err()
}

func (r *ledgerRepository) fetchCompanyBills(ctx context.Context, dateCond string, args []any, src *domain.LedgerSources) error {
	query := fmt.Sprintf(`
		SELECT bill_id, company, invoice_ref, date, notice, amount, payment_type, bank
		FROM company_bills
		WHERE date %s
		ORDER BY date, bill_id`, dateCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying company bills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bill domain.CompanyBill
		if err := rows.Scan(
			&bill.BillID,
			&bill.Company,
			&bill.InvoiceRef,
			&bill.Date,
			&bill.Notice,
			&bill.Amount,
			&bill.PaymentType,
			&bill.Bank,
		); err != nil {
			return fmt.Errorf("error scanning company bill row: %w", err)
		}
		src.CompanyBills = append(src.CompanyBills, bill)
	}
	return rows.Err()
}

func (r *ledgerRepository) fetchSalaries(ctx context.Context, dateCond string, args []any, src *domain.LedgerSources) error {
	query := fmt.Sprintf(`
		SELECT salary_id, name, date, amount, payment_type, bank
		FROM salaries
		WHERE date %s
		ORDER BY date, salary_id`, dateCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying salaries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sal domain.Salary
		if err := rows.Scan(
			&sal.SalaryID,
			&sal.Name,
			&sal.Date,
			&sal.Amount,
			&sal.PaymentType,
			&sal.Bank,
		); err != nil {
			return fmt.Errorf("error scanning salary row: %w", err)
		}
		src.Salaries = append(src.Salaries, sal)
	}
	return rows.Err()
}

func (r *ledgerRepository) fetchOthers(ctx context.Context, dateCond string, args []any, src *domain.LedgerSources) error {
	query := fmt.Sprintf(`
		SELECT transaction_id, type, name, date, amount, notice, payment_type, bank_name, transaction_type
		FROM other_transactions
		WHERE date %s
		ORDER BY date, transaction_id`, dateCond)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error querying other transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var txn domain.OtherTransaction
		if err := rows.Scan(
			&txn.TransactionID,
			&txn.Type,
			&txn.Name,
			&txn.Date,
			&txn.Amount,
			&txn.Notice,
			&txn.PaymentType,
			&txn.BankName,
			&txn.TransactionType,
		); err != nil {
			return fmt.Errorf("error scanning other transaction row: %w", err)
		}
		src.Others = append(src.Others, txn)
	}
	return rows.Err()
}
