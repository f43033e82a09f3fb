package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// statementService implements the StatementService interface
type statementService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepository
	receiptRepo portsrepo.BuyerReceiptRepository
	billRepo    portsrepo.CompanyBillRepository
	txnRepo     portsrepo.OtherTransactionRepository
}

// NewStatementService creates a new account statement service
func NewStatementService(
	invoiceRepo portsrepo.InvoiceRepository,
	receiptRepo portsrepo.BuyerReceiptRepository,
	billRepo portsrepo.CompanyBillRepository,
	txnRepo portsrepo.OtherTransactionRepository,
) portssvc.StatementService {
	return &statementService{
		invoiceRepo: invoiceRepo,
		receiptRepo: receiptRepo,
		billRepo:    billRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.StatementService = (*statementService)(nil)

// AccountStatement merges a counterparty's invoices, receipts, company bills
// and miscellaneous transactions into one chronological statement with a
// running balance. Invoices debit the account; everything received credits it.
func (s *statementService) AccountStatement(ctx context.Context, name string, from, to *time.Time) (*domain.AccountStatement, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return nil, fmt.Errorf("buyer name is required: %w", apperrors.ErrValidation)
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for statement", slog.String("name", key))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	receipts, err := s.receiptRepo.ListReceipts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts for statement", slog.String("name", key))
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company bills for statement", slog.String("name", key))
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	txns, err := s.txnRepo.ListOtherTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for statement", slog.String("name", key))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var entries []domain.StatementEntry
	for _, inv := range invoices {
		if inv.IsDeleted || strings.TrimSpace(inv.BuyerName) != key {
			continue
		}
		entries = append(entries, domain.StatementEntry{
			Date:        inv.InvoiceDate,
			Description: inv.InvoiceNumber,
			Debit:       inv.ReceivableTotal(),
			Type:        "Invoice",
		})
	}
	for _, r := range receipts {
		if strings.TrimSpace(r.Name) != key {
			continue
		}
		desc := r.Notes
		if desc == "" {
			desc = "Deposit"
		}
		entries = append(entries, domain.StatementEntry{
			Date:        r.Date,
			Description: desc,
			Credit:      r.Amount,
			Type:        "Deposit",
		})
	}
	for _, b := range bills {
		if strings.TrimSpace(b.Company) != key {
			continue
		}
		desc := b.Notice
		if desc == "" {
			desc = "Company Bill Credit"
		}
		entries = append(entries, domain.StatementEntry{
			Date:        b.Date,
			Description: desc,
			Credit:      b.Amount,
			Type:        "Credit",
		})
	}
	for _, t := range txns {
		if strings.TrimSpace(t.Name) != key {
			continue
		}
		desc := t.Notice
		if desc == "" {
			desc = "Other"
		}
		entry := domain.StatementEntry{
			Date:        t.Date,
			Description: desc,
			Type:        "Other",
		}
		if t.TransactionType == domain.Credit {
			entry.Credit = t.Amount
		} else {
			entry.Debit = t.Amount
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })

	if from != nil || to != nil {
		filtered := entries[:0]
		for _, e := range entries {
			if from != nil && e.Date.Before(*from) {
				continue
			}
			if to != nil && e.Date.After(*to) {
				continue
			}
			filtered = append(filtered, e)
		}
		entries = filtered
	}

	statement := &domain.AccountStatement{
		BuyerName: key,
		Entries:   entries,
	}
	balance := decimal.Zero
	for i := range entries {
		balance = balance.Add(entries[i].Credit).Sub(entries[i].Debit)
		entries[i].Balance = balance
		statement.TotalCredit = statement.TotalCredit.Add(entries[i].Credit)
		statement.TotalDebit = statement.TotalDebit.Add(entries[i].Debit)
	}
	statement.TotalBalance = balance

	s.LogInfo(ctx, "Account statement generated",
		slog.String("name", key),
		slog.Int("entries", len(entries)))
	return statement, nil
}
