package repositories

import (
	"context"
	"time"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices, including
// soft delete, restore and archival.
type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, financialYear string) ([]domain.Invoice, error)
	ListDeletedInvoices(ctx context.Context) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	MarkInvoiceDeleted(ctx context.Context, invoiceID string, deletedAt time.Time) error
	RestoreInvoice(ctx context.Context, invoiceID string) error

	// ArchiveInvoice moves an invoice into the archived table and removes the
	// active row, both within one transaction.
	ArchiveInvoice(ctx context.Context, invoiceID string, archivedAt time.Time) (*domain.ArchivedInvoice, error)

	// LatestInvoiceNumber returns the highest invoice number recorded for a
	// financial year token, or "" when the year has no invoices yet.
	LatestInvoiceNumber(ctx context.Context, financialYear string) (string, error)
}

// BuyerReceiptRepository defines persistence operations for buyer receipts.
type BuyerReceiptRepository interface {
	SaveReceipt(ctx context.Context, receipt domain.BuyerReceipt) error
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.BuyerReceipt, error)
	ListReceipts(ctx context.Context) ([]domain.BuyerReceipt, error)
	UpdateReceipt(ctx context.Context, receipt domain.BuyerReceipt) error
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// CompanyBillRepository defines persistence operations for company bills.
type CompanyBillRepository interface {
	SaveBill(ctx context.Context, bill domain.CompanyBill) error
	FindBillByID(ctx context.Context, billID string) (*domain.CompanyBill, error)
	ListBills(ctx context.Context) ([]domain.CompanyBill, error)
	UpdateBill(ctx context.Context, bill domain.CompanyBill) error
	DeleteBill(ctx context.Context, billID string) error
}
