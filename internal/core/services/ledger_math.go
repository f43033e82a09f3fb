package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// settlementThreshold is the minimum absolute net amount for a ledger line to
// count as outstanding. Amounts are rounded to whole currency units first, so
// anything at or below 0.5 is a fully settled position.
var settlementThreshold = decimal.NewFromFloat(0.5)

// roundWhole rounds a monetary amount to the nearest whole currency unit.
// Every amount entering the ledger aggregation passes through this first.
func roundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

func outstanding(d decimal.Decimal) bool {
	return d.Abs().GreaterThan(settlementThreshold)
}

// typeTagIs reports whether a transaction's type tag matches a reserved tag,
// case-insensitively and ignoring surrounding whitespace.
func typeTagIs(tag, reserved string) bool {
	return strings.EqualFold(strings.TrimSpace(tag), reserved)
}

func isReservedTypeTag(tag string) bool {
	return typeTagIs(tag, domain.TypePartner) ||
		typeTagIs(tag, domain.TypeLoan) ||
		typeTagIs(tag, domain.TypeUnsecureLoan) ||
		typeTagIs(tag, domain.TypeFixedAssets)
}

// sundryExcludedNames are names that can never appear as sundry counterparties.
// The legacy "assets" and "others" aliases are kept alongside the reserved tags.
var sundryExcludedNames = map[string]struct{}{
	"partner":       {},
	"loan":          {},
	"unsecure loan": {},
	"fixed assets":  {},
	"assets":        {},
	"others":        {},
}

// signedAmount rounds a transaction's amount and applies its polarity:
// credits are positive, debits negative.
func signedAmount(t domain.OtherTransaction) decimal.Decimal {
	amt := roundWhole(t.Amount)
	if t.TransactionType == domain.Credit {
		return amt
	}
	return amt.Neg()
}

// partnerDisplayName resolves the line name for a capital (partner)
// transaction: explicit name, then notice, then a stable placeholder so the
// amount is never dropped.
func partnerDisplayName(t domain.OtherTransaction) string {
	if n := strings.TrimSpace(t.Name); n != "" {
		return n
	}
	if n := strings.TrimSpace(t.Notice); n != "" {
		return n
	}
	return "Partner_" + t.TransactionID
}

// loanDisplayName prefers the bank name for secured loans.
func loanDisplayName(t domain.OtherTransaction) string {
	if n := strings.TrimSpace(t.BankName); n != "" {
		return n
	}
	if n := strings.TrimSpace(t.Notice); n != "" {
		return n
	}
	return "Unknown_" + t.TransactionID
}

// invoiceDisplayName resolves the buyer name for a reclassified invoice,
// falling back to a stable placeholder so the amount is never dropped.
func invoiceDisplayName(buyerName, invoiceID string) string {
	if n := strings.TrimSpace(buyerName); n != "" {
		return n
	}
	return "Unknown_" + invoiceID
}

// counterpartyDisplayName resolves name, then notice, then a placeholder.
// Used for unsecured loans, fixed assets and dynamic sections.
func counterpartyDisplayName(t domain.OtherTransaction) string {
	if n := strings.TrimSpace(t.Name); n != "" {
		return n
	}
	if n := strings.TrimSpace(t.Notice); n != "" {
		return n
	}
	return "Unknown_" + t.TransactionID
}

// lineSet accumulates signed amounts per display name. The first transaction
// seen for a name fixes the line's bank name and notice.
type lineSet struct {
	byName map[string]*domain.LedgerLine
}

func newLineSet() *lineSet {
	return &lineSet{byName: make(map[string]*domain.LedgerLine)}
}

func (s *lineSet) add(name string, amount decimal.Decimal, bankName, notice, typ string) {
	if line, ok := s.byName[name]; ok {
		line.Amount = line.Amount.Add(amount)
		return
	}
	s.byName[name] = &domain.LedgerLine{
		Name:     name,
		Amount:   amount,
		BankName: bankName,
		Notice:   notice,
		Type:     typ,
	}
}

// split drops settled lines and separates the rest by polarity. Debit amounts
// are flipped positive. Both buckets come out sorted by name so repeated
// computations over the same data produce identical reports.
func (s *lineSet) split() (credit, debit []domain.LedgerLine) {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		line := s.byName[name]
		if !outstanding(line.Amount) {
			continue
		}
		if line.Amount.Sign() > 0 {
			credit = append(credit, *line)
		} else {
			flipped := *line
			flipped.Amount = line.Amount.Abs()
			debit = append(debit, flipped)
		}
	}
	return credit, debit
}

// sundryNetTotals computes the signed net position per sundry counterparty:
// invoices increase the receivable, receipts and company bills reduce it.
// Names are trimmed; empty names and reserved names contribute nothing.
// Typed miscellaneous transactions are deliberately not part of this sum,
// they surface through their own sections instead.
func sundryNetTotals(src domain.LedgerSources) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	add := func(name string, amt decimal.Decimal) {
		key := strings.TrimSpace(name)
		if key == "" {
			return
		}
		if _, excluded := sundryExcludedNames[strings.ToLower(key)]; excluded {
			return
		}
		totals[key] = totals[key].Add(amt)
	}

	for _, inv := range src.Invoices {
		add(inv.BuyerName, roundWhole(inv.ReceivableTotal()))
	}
	for _, r := range src.Receipts {
		add(r.Name, roundWhole(r.Amount).Neg())
	}
	for _, b := range src.CompanyBills {
		add(b.Company, roundWhole(b.Amount).Neg())
	}
	return totals
}

// reclassifiedInvoiceLines converts deleted and archived invoices into
// unsecure-loan debit lines: a cancelled invoice's receivable becomes a
// written-off unsecured exposure rather than disappearing from the books.
func reclassifiedInvoiceLines(deleted []domain.Invoice, archived []domain.ArchivedInvoice) []domain.LedgerLine {
	var lines []domain.LedgerLine
	for _, inv := range deleted {
		amount := roundWhole(inv.ReceivableTotal())
		if outstanding(amount) {
			lines = append(lines, domain.LedgerLine{
				Name:   invoiceDisplayName(inv.BuyerName, inv.InvoiceID),
				Amount: amount,
				Type:   "Unsecure Loan",
			})
		}
	}
	for _, inv := range archived {
		amount := roundWhole(inv.ReceivableTotal())
		if outstanding(amount) {
			lines = append(lines, domain.LedgerLine{
				Name:   invoiceDisplayName(inv.BuyerName, inv.InvoiceID),
				Amount: amount,
				Type:   "Unsecure Loan",
			})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
