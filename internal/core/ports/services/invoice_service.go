package services

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// InvoiceService manages the invoice lifecycle, including the deleted bucket
// and the permanent archive.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, financialYear string) ([]domain.Invoice, error)
	ListDeletedInvoices(ctx context.Context) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	RestoreInvoice(ctx context.Context, invoiceID string) error
	ArchiveInvoice(ctx context.Context, invoiceID string) (*domain.ArchivedInvoice, error)

	// NextInvoiceNumber derives the next sequential invoice number for a
	// financial year, e.g. "03-2025-2026".
	NextInvoiceNumber(ctx context.Context, financialYear string) (string, error)

	// CalculateInvoice computes the GST breakdown for the given figures and,
	// when a financial year is supplied, the next invoice number.
	CalculateInvoice(ctx context.Context, input domain.InvoiceCalcInput) (*domain.InvoiceCalcResult, error)
}

// BuyerReceiptService manages incoming payment receipts.
type BuyerReceiptService interface {
	CreateReceipt(ctx context.Context, receipt domain.BuyerReceipt) (*domain.BuyerReceipt, error)
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.BuyerReceipt, error)
	ListReceipts(ctx context.Context) ([]domain.BuyerReceipt, error)
	UpdateReceipt(ctx context.Context, receipt domain.BuyerReceipt) (*domain.BuyerReceipt, error)
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// CompanyBillService manages outgoing company bills.
type CompanyBillService interface {
	CreateBill(ctx context.Context, bill domain.CompanyBill) (*domain.CompanyBill, error)
	GetBillByID(ctx context.Context, billID string) (*domain.CompanyBill, error)
	ListBills(ctx context.Context) ([]domain.CompanyBill, error)
	UpdateBill(ctx context.Context, bill domain.CompanyBill) (*domain.CompanyBill, error)
	DeleteBill(ctx context.Context, billID string) error
}
