package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

func TestClassifyNet(t *testing.T) {
	tests := []struct {
		name string
		net  decimal.Decimal
		want domain.SettlementType
	}{
		{"positive above threshold", decimal.NewFromInt(1), domain.SettlementDebtor},
		{"negative below threshold", decimal.NewFromInt(-1), domain.SettlementCreditor},
		{"zero", decimal.Zero, domain.SettlementSettled},
		{"at positive threshold", decimal.NewFromFloat(0.5), domain.SettlementSettled},
		{"at negative threshold", decimal.NewFromFloat(-0.5), domain.SettlementSettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyNet(tt.net))
		})
	}
}

func TestBuildSettlementReport_IncludesSettledCounterparties(t *testing.T) {
	src := domain.LedgerSources{
		Invoices: []domain.Invoice{
			invoiceFor("Debtor Co", 5000),
			invoiceFor("Square Co", 2000),
		},
		Receipts: []domain.BuyerReceipt{receiptFor("Square Co", 2000)},
		CompanyBills: []domain.CompanyBill{
			billFor("Creditor Co", 1500),
		},
	}
	year := domain.FiscalYear{StartYear: 2025, EndYear: 2026}

	report := buildSettlementReport(year, src, domain.CarryForward{})

	assert.Equal(t, "2025-2026", report.FinancialYear)
	require.Len(t, report.Counterparties, 3)

	// Active entries first, largest absolute amount first.
	assert.Equal(t, "Debtor Co", report.Counterparties[0].Name)
	assert.Equal(t, "Active", report.Counterparties[0].Status)
	assert.Equal(t, domain.SettlementDebtor, report.Counterparties[0].Type)

	assert.Equal(t, "Creditor Co", report.Counterparties[1].Name)
	assert.Equal(t, domain.SettlementCreditor, report.Counterparties[1].Type)
	assert.True(t, report.Counterparties[1].NetAmount.Equal(decimal.NewFromInt(-1500)),
		"net amounts stay signed in the diagnostic, got %s", report.Counterparties[1].NetAmount)

	assert.Equal(t, "Square Co", report.Counterparties[2].Name)
	assert.Equal(t, "Settled", report.Counterparties[2].Status)

	assert.Equal(t, domain.SettlementSummary{
		Total: 3, Active: 2, Settled: 1, Debtors: 1, Creditors: 1,
	}, report.Summary)
}

func TestBuildSettlementReport_TiesBreakByName(t *testing.T) {
	src := domain.LedgerSources{
		Invoices: []domain.Invoice{
			invoiceFor("Bravo", 1000),
			invoiceFor("Alpha", 1000),
		},
	}
	year := domain.FiscalYear{StartYear: 2025, EndYear: 2026}

	report := buildSettlementReport(year, src, domain.CarryForward{})

	require.Len(t, report.Counterparties, 2)
	assert.Equal(t, "Alpha", report.Counterparties[0].Name)
	assert.Equal(t, "Bravo", report.Counterparties[1].Name)
}

func TestBuildSettlementReport_MergesCarryForward(t *testing.T) {
	cf := domain.CarryForward{Sundry: []domain.SundryEntry{
		{Name: "Beta", Amount: decimal.NewFromInt(5900), Type: domain.SettlementDebtor},
	}}
	src := domain.LedgerSources{
		Receipts: []domain.BuyerReceipt{receiptFor("Beta", 100)},
	}
	year := domain.FiscalYear{StartYear: 2025, EndYear: 2026}

	report := buildSettlementReport(year, src, cf)

	require.Len(t, report.Counterparties, 1)
	assert.True(t, report.Counterparties[0].NetAmount.Equal(decimal.NewFromInt(5800)))
}
