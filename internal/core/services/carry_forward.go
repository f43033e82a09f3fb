package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// calculateCarryForward aggregates every transaction dated before a fiscal
// year's start into opening balances per category. It is a pure function: the
// caller fetches the pre-window sources, nothing here touches storage.
//
// Conventions inside the returned bundle:
//   - Capital holds signed per-transaction lines (credit positive).
//   - Loan and unsecure-loan lines carry positive amounts; polarity is
//     expressed by which list a line sits in.
//   - Fixed assets, salary and custom types hold positive per-name sums,
//     already separated by polarity where applicable.
//
// Settled positions (at or below the threshold after whole-unit rounding)
// are dropped here and never reach the in-year merge.
func calculateCarryForward(src domain.LedgerSources) domain.CarryForward {
	cf := domain.CarryForward{
		FixedAssetsCredit: make(map[string]decimal.Decimal),
		FixedAssetsDebit:  make(map[string]decimal.Decimal),
		Salary:            make(map[string]decimal.Decimal),
		CustomCredit:      make(map[string]map[string]decimal.Decimal),
		CustomDebit:       make(map[string]map[string]decimal.Decimal),
	}

	// Capital: each partner transaction carries forward as its own line,
	// never aggregated by name.
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypePartner) {
			continue
		}
		amt := signedAmount(t)
		if !outstanding(amt) {
			continue
		}
		cf.Capital = append(cf.Capital, domain.LedgerLine{
			Name:   partnerDisplayName(t),
			Amount: amt,
			Notice: t.Notice,
		})
	}

	// Secured loans, keyed by bank name.
	loans := newLineSet()
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypeLoan) {
			continue
		}
		loans.add(loanDisplayName(t), signedAmount(t), t.BankName, t.Notice, "")
	}
	cf.LoanCredit, cf.LoanDebit = loans.split()

	// Unsecured loans, keyed by counterparty name.
	unsecure := newLineSet()
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypeUnsecureLoan) {
			continue
		}
		unsecure.add(counterpartyDisplayName(t), signedAmount(t), t.BankName, t.Notice, "")
	}
	cf.UnsecureLoanCredit, cf.UnsecureLoanDebit = unsecure.split()

	// Fixed assets keep credit and debit sums apart; they are segregated by
	// transaction polarity, not netted.
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypeFixedAssets) {
			continue
		}
		name := counterpartyDisplayName(t)
		amt := roundWhole(t.Amount)
		if t.TransactionType == domain.Credit {
			cf.FixedAssetsCredit[name] = cf.FixedAssetsCredit[name].Add(amt)
		} else {
			cf.FixedAssetsDebit[name] = cf.FixedAssetsDebit[name].Add(amt)
		}
	}
	dropSettled(cf.FixedAssetsCredit)
	dropSettled(cf.FixedAssetsDebit)

	for _, s := range src.Salaries {
		cf.Salary[s.Name] = cf.Salary[s.Name].Add(roundWhole(s.Amount))
	}
	dropSettled(cf.Salary)

	// Sundry debtors/creditors.
	sundryTotals := sundryNetTotals(src)
	sundryNamesLower := make(map[string]struct{}, len(sundryTotals))
	for _, name := range sortedKeys(sundryTotals) {
		total := roundWhole(sundryTotals[name])
		if !outstanding(total) {
			continue
		}
		sundryNamesLower[strings.ToLower(name)] = struct{}{}
		entry := domain.SundryEntry{Name: name, Amount: total, Type: domain.SettlementDebtor}
		if total.Sign() < 0 {
			entry.Amount = total.Abs()
			entry.Type = domain.SettlementCreditor
		}
		cf.Sundry = append(cf.Sundry, entry)
	}

	// Custom (dynamic) types: everything outside the reserved tags, bucketed
	// by (tag, display name) and polarity. A tag that collides with an
	// outstanding sundry counterparty is skipped so the same money never
	// appears in two sections.
	for _, t := range src.Others {
		if isReservedTypeTag(t.Type) {
			continue
		}
		tag := strings.TrimSpace(t.Type)
		if tag == "" {
			continue
		}
		if _, clash := sundryNamesLower[strings.ToLower(tag)]; clash {
			continue
		}
		name := counterpartyDisplayName(t)
		amt := roundWhole(t.Amount)
		bucket := cf.CustomCredit
		if t.TransactionType == domain.Debit {
			bucket = cf.CustomDebit
		}
		if bucket[tag] == nil {
			bucket[tag] = make(map[string]decimal.Decimal)
		}
		bucket[tag][name] = bucket[tag][name].Add(amt)
	}
	dropSettledNested(cf.CustomCredit)
	dropSettledNested(cf.CustomDebit)

	// Cancelled receivables: deleted and archived invoices from prior years
	// carry forward as unsecure-loan debit exposure.
	cf.UnsecureLoanDebit = append(cf.UnsecureLoanDebit,
		reclassifiedInvoiceLines(src.DeletedInvoices, src.ArchivedInvoices)...)

	return cf
}

func dropSettled(m map[string]decimal.Decimal) {
	for name, amt := range m {
		if !outstanding(amt) {
			delete(m, name)
		}
	}
}

func dropSettledNested(m map[string]map[string]decimal.Decimal) {
	for tag, names := range m {
		dropSettled(names)
		if len(names) == 0 {
			delete(m, tag)
		}
	}
}
