package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// computeReport merges one fiscal year's transactions with the carry-forward
// bundle into the categorized balance-sheet report. Pure function, no shared
// state; calling it twice over the same inputs yields an identical report.
//
// Merge rule per category: a carry-forward amount for a name already present
// in-year is added to that line; otherwise it joins as a new line. Settled
// positions are filtered out after merging.
func computeReport(src domain.LedgerSources, cf domain.CarryForward) domain.BalanceSheetReport {
	report := domain.BalanceSheetReport{
		Capital:                []domain.LedgerLine{},
		LoanCredit:             []domain.LedgerLine{},
		LoanDebit:              []domain.LedgerLine{},
		UnsecureLoanCredit:     []domain.LedgerLine{},
		UnsecureLoanDebit:      []domain.LedgerLine{},
		FixedAssetsCredit:      []domain.NamedAmount{},
		FixedAssetsDebit:       []domain.NamedAmount{},
		Salary:                 []domain.NamedAmount{},
		SundryDebtorsCreditors: []domain.SundryEntry{},
		CustomTypesCredit:      map[string][]domain.NamedAmount{},
		CustomTypesDebit:       map[string][]domain.NamedAmount{},
	}

	// Capital: per-transaction lines, in-year first, then carried lines.
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypePartner) {
			continue
		}
		report.Capital = append(report.Capital, domain.LedgerLine{
			Name:   partnerDisplayName(t),
			Amount: signedAmount(t),
			Notice: t.Notice,
		})
	}
	report.Capital = append(report.Capital, cf.Capital...)
	report.Capital = filterOutstandingLines(report.Capital)

	// Secured loans.
	loans := newLineSet()
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypeLoan) {
			continue
		}
		loans.add(loanDisplayName(t), signedAmount(t), t.BankName, t.Notice, "")
	}
	mergeCarriedLines(loans, cf.LoanCredit, cf.LoanDebit)
	report.LoanCredit, report.LoanDebit = loans.split()

	// Unsecured loans.
	unsecure := newLineSet()
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypeUnsecureLoan) {
			continue
		}
		unsecure.add(counterpartyDisplayName(t), signedAmount(t), t.BankName, t.Notice, "")
	}
	mergeCarriedLines(unsecure, cf.UnsecureLoanCredit, cf.UnsecureLoanDebit)
	report.UnsecureLoanCredit, report.UnsecureLoanDebit = unsecure.split()

	// In-year cancelled receivables join the debit side directly, keeping
	// their reclassification marker.
	report.UnsecureLoanDebit = append(report.UnsecureLoanDebit,
		reclassifiedInvoiceLines(src.DeletedInvoices, src.ArchivedInvoices)...)

	// Fixed assets: credit and debit stay segregated by transaction polarity.
	assetsCredit := make(map[string]decimal.Decimal)
	assetsDebit := make(map[string]decimal.Decimal)
	for _, t := range src.Others {
		if !typeTagIs(t.Type, domain.TypeFixedAssets) {
			continue
		}
		name := counterpartyDisplayName(t)
		amt := roundWhole(t.Amount)
		if t.TransactionType == domain.Credit {
			assetsCredit[name] = assetsCredit[name].Add(amt)
		} else {
			assetsDebit[name] = assetsDebit[name].Add(amt)
		}
	}
	mergeNamedAmounts(assetsCredit, cf.FixedAssetsCredit)
	mergeNamedAmounts(assetsDebit, cf.FixedAssetsDebit)
	report.FixedAssetsCredit = outstandingNamedAmounts(assetsCredit)
	report.FixedAssetsDebit = outstandingNamedAmounts(assetsDebit)

	// Salary.
	salaries := make(map[string]decimal.Decimal)
	for _, s := range src.Salaries {
		salaries[s.Name] = salaries[s.Name].Add(roundWhole(s.Amount))
	}
	mergeNamedAmounts(salaries, cf.Salary)
	report.Salary = outstandingNamedAmounts(salaries)
	total := decimal.Zero
	for _, s := range report.Salary {
		total = total.Add(s.Amount)
	}
	report.SalaryTotal = total

	// Sundry debtors/creditors: in-year net plus carried entries, then the
	// settlement classification.
	sundryTotals := sundryNetTotals(src)
	for _, e := range cf.Sundry {
		key := strings.TrimSpace(e.Name)
		adj := e.Amount
		if e.Type == domain.SettlementCreditor {
			adj = adj.Neg()
		}
		sundryTotals[key] = sundryTotals[key].Add(adj)
	}
	sundryNamesLower := make(map[string]struct{}, len(sundryTotals))
	for _, name := range sortedKeys(sundryTotals) {
		net := roundWhole(sundryTotals[name])
		if !outstanding(net) {
			continue
		}
		sundryNamesLower[strings.ToLower(name)] = struct{}{}
		entry := domain.SundryEntry{Name: name, Amount: net, Type: domain.SettlementDebtor}
		if net.Sign() < 0 {
			entry.Amount = net.Abs()
			entry.Type = domain.SettlementCreditor
		}
		report.SundryDebtorsCreditors = append(report.SundryDebtorsCreditors, entry)
	}

	// Dynamic sections: net per (tag, display name), credit minus debit.
	// Tags colliding with an outstanding sundry counterparty are dropped at
	// output so the check covers carried-forward tags too.
	customNet := make(map[string]map[string]decimal.Decimal)
	for _, t := range src.Others {
		if isReservedTypeTag(t.Type) {
			continue
		}
		tag := strings.TrimSpace(t.Type)
		if tag == "" {
			continue
		}
		if customNet[tag] == nil {
			customNet[tag] = make(map[string]decimal.Decimal)
		}
		name := counterpartyDisplayName(t)
		customNet[tag][name] = customNet[tag][name].Add(signedAmount(t))
	}
	for tag, names := range cf.CustomCredit {
		if customNet[tag] == nil {
			customNet[tag] = make(map[string]decimal.Decimal)
		}
		for name, amt := range names {
			customNet[tag][name] = customNet[tag][name].Add(amt)
		}
	}
	for tag, names := range cf.CustomDebit {
		if customNet[tag] == nil {
			customNet[tag] = make(map[string]decimal.Decimal)
		}
		for name, amt := range names {
			customNet[tag][name] = customNet[tag][name].Sub(amt)
		}
	}

	tags := make([]string, 0, len(customNet))
	for tag := range customNet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		if _, clash := sundryNamesLower[strings.ToLower(tag)]; clash {
			continue
		}
		for _, name := range sortedKeys(customNet[tag]) {
			net := customNet[tag][name]
			if !outstanding(net) {
				continue
			}
			if net.Sign() > 0 {
				report.CustomTypesCredit[tag] = append(report.CustomTypesCredit[tag],
					domain.NamedAmount{Name: name, Amount: net})
			} else {
				report.CustomTypesDebit[tag] = append(report.CustomTypesDebit[tag],
					domain.NamedAmount{Name: name, Amount: net.Abs()})
			}
		}
	}

	return report
}

// mergeCarriedLines folds carry-forward credit and debit lines into an in-year
// accumulator. Debit lines hold positive amounts and re-enter as negatives.
func mergeCarriedLines(set *lineSet, credit, debit []domain.LedgerLine) {
	for _, l := range credit {
		set.add(l.Name, l.Amount, l.BankName, l.Notice, l.Type)
	}
	for _, l := range debit {
		set.add(l.Name, l.Amount.Neg(), l.BankName, l.Notice, l.Type)
	}
}

func mergeNamedAmounts(dst, carried map[string]decimal.Decimal) {
	for name, amt := range carried {
		dst[name] = dst[name].Add(amt)
	}
}

func filterOutstandingLines(lines []domain.LedgerLine) []domain.LedgerLine {
	kept := make([]domain.LedgerLine, 0, len(lines))
	for _, l := range lines {
		if outstanding(l.Amount) {
			kept = append(kept, l)
		}
	}
	return kept
}

func outstandingNamedAmounts(m map[string]decimal.Decimal) []domain.NamedAmount {
	out := make([]domain.NamedAmount, 0, len(m))
	for _, name := range sortedKeys(m) {
		if outstanding(m[name]) {
			out = append(out, domain.NamedAmount{Name: name, Amount: m[name]})
		}
	}
	return out
}
