package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// Domestic GST rates: intra-state invoices split 18% evenly into CGST and
// SGST, inter-state invoices carry the full 18% as IGST.
var (
	halfGSTRate = decimal.NewFromFloat(0.09)
	fullGSTRate = decimal.NewFromFloat(0.18)
)

const homeState = "Gujarat"

var invoiceNumberDigits = regexp.MustCompile(`(\d+)`)

// invoiceService implements the InvoiceService interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo portsrepo.InvoiceRepository) portssvc.InvoiceService {
	return &invoiceService{invoiceRepo: repo}
}

var _ portssvc.InvoiceService = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	if strings.TrimSpace(invoice.BuyerName) == "" {
		return nil, fmt.Errorf("buyer name is required: %w", apperrors.ErrValidation)
	}
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = uuid.NewString()
	}
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	invoice.IsDeleted = false
	invoice.DeletedAt = nil

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, financialYear string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, financialYear)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("financial_year", financialYear))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) ListDeletedInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListDeletedInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deleted invoices")
		return nil, fmt.Errorf("failed to list deleted invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoice.InvoiceID)
	if err != nil {
		return nil, err
	}
	invoice.CreatedAt = existing.CreatedAt
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return &invoice, nil
}

// DeleteInvoice soft-deletes: the row stays and the ledger engine reclassifies
// its receivable as unsecured exposure.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return err
	}
	if err := s.invoiceRepo.MarkInvoiceDeleted(ctx, invoiceID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete invoice", slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.LogInfo(ctx, "Invoice soft-deleted", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) RestoreInvoice(ctx context.Context, invoiceID string) error {
	if err := s.invoiceRepo.RestoreInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to restore invoice", slog.String("invoice_id", invoiceID))
		}
		return err
	}
	s.LogInfo(ctx, "Invoice restored", slog.String("invoice_id", invoiceID))
	return nil
}

func (s *invoiceService) ArchiveInvoice(ctx context.Context, invoiceID string) (*domain.ArchivedInvoice, error) {
	archived, err := s.invoiceRepo.ArchiveInvoice(ctx, invoiceID, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to archive invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Invoice archived",
		slog.String("invoice_id", invoiceID),
		slog.String("archive_id", archived.ArchiveID))
	return archived, nil
}

// NextInvoiceNumber increments the numeric prefix of the year's highest
// invoice number, so gaps left by deletions are never reused backwards.
func (s *invoiceService) NextInvoiceNumber(ctx context.Context, financialYear string) (string, error) {
	if financialYear == "" {
		return "", fmt.Errorf("financial year is required: %w", apperrors.ErrValidation)
	}
	latest, err := s.invoiceRepo.LatestInvoiceNumber(ctx, financialYear)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch latest invoice number",
			slog.String("financial_year", financialYear))
		return "", fmt.Errorf("failed to fetch latest invoice number: %w", err)
	}

	next := 1
	if m := invoiceNumberDigits.FindString(latest); m != "" {
		n, convErr := strconv.Atoi(m)
		if convErr == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%02d-%s", next, financialYear), nil
}

func (s *invoiceService) CalculateInvoice(ctx context.Context, input domain.InvoiceCalcInput) (*domain.InvoiceCalcResult, error) {
	base := input.BaseAmount
	if base.IsZero() && !input.TotalHours.IsZero() && !input.Rate.IsZero() {
		base = input.TotalHours.Mul(input.Rate)
	}

	result := &domain.InvoiceCalcResult{BaseAmount: base}
	switch {
	case input.Country != "India":
		// Exports: no GST, optionally converted to INR.
		result.TotalWithGST = base
		if !input.ExchangeRate.IsZero() {
			inr := base.Mul(input.ExchangeRate).Round(2)
			result.INREquivalent = &inr
		}
	case input.State == homeState:
		result.CGST = base.Mul(halfGSTRate).Round(2)
		result.SGST = result.CGST
		result.TaxTotal = result.CGST.Add(result.SGST)
		result.TotalWithGST = base.Add(result.TaxTotal).Round(2)
	default:
		result.IGST = base.Mul(fullGSTRate).Round(2)
		result.TaxTotal = result.IGST
		result.TotalWithGST = base.Add(result.IGST).Round(2)
	}

	if input.FinancialYear != "" {
		number, err := s.NextInvoiceNumber(ctx, input.FinancialYear)
		if err != nil {
			return nil, err
		}
		result.InvoiceNumber = number
	}
	return result, nil
}
