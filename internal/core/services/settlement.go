package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// classifyNet applies the settlement threshold to a signed net amount.
func classifyNet(net decimal.Decimal) domain.SettlementType {
	switch {
	case net.GreaterThan(settlementThreshold):
		return domain.SettlementDebtor
	case net.LessThan(settlementThreshold.Neg()):
		return domain.SettlementCreditor
	default:
		return domain.SettlementSettled
	}
}

// buildSettlementReport lists every sundry counterparty for the year with its
// raw net total, including fully settled ones. Active entries sort first,
// then by descending absolute amount, then by name so ties are stable.
func buildSettlementReport(year domain.FiscalYear, src domain.LedgerSources, cf domain.CarryForward) *domain.SettlementReport {
	totals := sundryNetTotals(src)
	for _, e := range cf.Sundry {
		key := strings.TrimSpace(e.Name)
		adj := e.Amount
		if e.Type == domain.SettlementCreditor {
			adj = adj.Neg()
		}
		totals[key] = totals[key].Add(adj)
	}

	report := &domain.SettlementReport{
		FinancialYear:  year.String(),
		Counterparties: []domain.CounterpartySettlement{},
	}
	for _, name := range sortedKeys(totals) {
		net := roundWhole(totals[name])
		typ := classifyNet(net)
		status := "Active"
		if typ == domain.SettlementSettled {
			status = "Settled"
		}
		report.Counterparties = append(report.Counterparties, domain.CounterpartySettlement{
			Name:      name,
			NetAmount: net,
			Status:    status,
			Type:      typ,
		})
	}

	sort.SliceStable(report.Counterparties, func(i, j int) bool {
		a, b := report.Counterparties[i], report.Counterparties[j]
		if (a.Status == "Active") != (b.Status == "Active") {
			return a.Status == "Active"
		}
		if !a.NetAmount.Abs().Equal(b.NetAmount.Abs()) {
			return a.NetAmount.Abs().GreaterThan(b.NetAmount.Abs())
		}
		return a.Name < b.Name
	})

	summary := domain.SettlementSummary{Total: len(report.Counterparties)}
	for _, c := range report.Counterparties {
		switch c.Type {
		case domain.SettlementDebtor:
			summary.Active++
			summary.Debtors++
		case domain.SettlementCreditor:
			summary.Active++
			summary.Creditors++
		default:
			summary.Settled++
		}
	}
	report.Summary = summary
	return report
}
