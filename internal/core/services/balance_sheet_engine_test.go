package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testDate(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

func invoiceFor(buyer string, total int64) domain.Invoice {
	return domain.Invoice{
		InvoiceID:    "inv-" + buyer,
		BuyerName:    buyer,
		InvoiceDate:  testDate(time.June, 1),
		TotalWithGST: dec(total),
	}
}

func receiptFor(name string, amount int64) domain.BuyerReceipt {
	return domain.BuyerReceipt{
		ReceiptID: "rcpt-" + name,
		Name:      name,
		Date:      testDate(time.July, 1),
		Amount:    dec(amount),
	}
}

func billFor(company string, amount int64) domain.CompanyBill {
	return domain.CompanyBill{
		BillID:  "bill-" + company,
		Company: company,
		Date:    testDate(time.August, 1),
		Amount:  dec(amount),
	}
}

func otherTxn(id, typ, name string, amount int64, polarity domain.TransactionType) domain.OtherTransaction {
	return domain.OtherTransaction{
		TransactionID:   id,
		Type:            typ,
		Name:            name,
		Date:            testDate(time.May, 10),
		Amount:          dec(amount),
		TransactionType: polarity,
	}
}

func TestComputeReport_SundryDebtorFromNetPosition(t *testing.T) {
	src := domain.LedgerSources{
		Invoices:     []domain.Invoice{invoiceFor("Acme Traders", 11800)},
		Receipts:     []domain.BuyerReceipt{receiptFor("Acme Traders", 5000)},
		CompanyBills: []domain.CompanyBill{billFor("Acme Traders", 3000)},
	}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.SundryDebtorsCreditors, 1)
	entry := report.SundryDebtorsCreditors[0]
	assert.Equal(t, "Acme Traders", entry.Name)
	assert.True(t, entry.Amount.Equal(dec(3800)), "got %s", entry.Amount)
	assert.Equal(t, domain.SettlementDebtor, entry.Type)
}

func TestComputeReport_PrefersTotalTaxAmount(t *testing.T) {
	taxed := dec(11800)
	inv := invoiceFor("Acme", 10000)
	inv.TotalTaxAmount = &taxed

	report := computeReport(domain.LedgerSources{Invoices: []domain.Invoice{inv}}, domain.CarryForward{})

	require.Len(t, report.SundryDebtorsCreditors, 1)
	assert.True(t, report.SundryDebtorsCreditors[0].Amount.Equal(dec(11800)))
}

func TestComputeReport_FullySettledCounterpartyExcluded(t *testing.T) {
	src := domain.LedgerSources{
		Invoices: []domain.Invoice{invoiceFor("Settled Co", 5000)},
		Receipts: []domain.BuyerReceipt{receiptFor("Settled Co", 5000)},
	}

	report := computeReport(src, domain.CarryForward{})

	assert.Empty(t, report.SundryDebtorsCreditors)
}

func TestComputeReport_SundryCreditorWhenPaymentsExceedInvoices(t *testing.T) {
	src := domain.LedgerSources{
		Invoices:     []domain.Invoice{invoiceFor("Vendor Ltd", 1000)},
		CompanyBills: []domain.CompanyBill{billFor("Vendor Ltd", 4000)},
	}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.SundryDebtorsCreditors, 1)
	entry := report.SundryDebtorsCreditors[0]
	assert.Equal(t, domain.SettlementCreditor, entry.Type)
	assert.True(t, entry.Amount.Equal(dec(3000)), "creditor amounts stay positive, got %s", entry.Amount)
}

func TestCalculateCarryForward_SundryFromPriorYear(t *testing.T) {
	prior := domain.LedgerSources{
		Invoices: []domain.Invoice{invoiceFor("Beta Exports", 5900)},
	}

	cf := calculateCarryForward(prior)

	require.Len(t, cf.Sundry, 1)
	assert.Equal(t, "Beta Exports", cf.Sundry[0].Name)
	assert.True(t, cf.Sundry[0].Amount.Equal(dec(5900)))
	assert.Equal(t, domain.SettlementDebtor, cf.Sundry[0].Type)

	// An in-year receipt against the carried balance reduces it.
	inYear := domain.LedgerSources{
		Receipts: []domain.BuyerReceipt{receiptFor("Beta Exports", 900)},
	}
	report := computeReport(inYear, cf)

	require.Len(t, report.SundryDebtorsCreditors, 1)
	assert.True(t, report.SundryDebtorsCreditors[0].Amount.Equal(dec(5000)),
		"receipts reduce the carried receivable, got %s", report.SundryDebtorsCreditors[0].Amount)
}

func TestComputeReport_LoanKeyedByBankName(t *testing.T) {
	loan := otherTxn("t1", "Loan", "", 50000, domain.Credit)
	loan.BankName = "HDFC"

	report := computeReport(domain.LedgerSources{Others: []domain.OtherTransaction{loan}}, domain.CarryForward{})

	require.Len(t, report.LoanCredit, 1)
	assert.Equal(t, "HDFC", report.LoanCredit[0].Name)
	assert.True(t, report.LoanCredit[0].Amount.Equal(dec(50000)))
	assert.Empty(t, report.LoanDebit)
}

func TestComputeReport_LoanCarryForwardNetsAcrossYears(t *testing.T) {
	take := otherTxn("t1", "loan", "", 50000, domain.Credit)
	take.BankName = "HDFC"
	cf := calculateCarryForward(domain.LedgerSources{Others: []domain.OtherTransaction{take}})

	repay := otherTxn("t2", "Loan", "", 20000, domain.Debit)
	repay.BankName = "HDFC"
	report := computeReport(domain.LedgerSources{Others: []domain.OtherTransaction{repay}}, cf)

	require.Len(t, report.LoanCredit, 1)
	assert.True(t, report.LoanCredit[0].Amount.Equal(dec(30000)), "got %s", report.LoanCredit[0].Amount)
	assert.Empty(t, report.LoanDebit)
}

func TestComputeReport_DeletedInvoiceBecomesUnsecureExposure(t *testing.T) {
	deleted := invoiceFor("Gamma Industries", 2000)
	src := domain.LedgerSources{DeletedInvoices: []domain.Invoice{deleted}}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.UnsecureLoanDebit, 1)
	line := report.UnsecureLoanDebit[0]
	assert.Equal(t, "Gamma Industries", line.Name)
	assert.True(t, line.Amount.Equal(dec(2000)))
	assert.Equal(t, "Unsecure Loan", line.Type)
	assert.Empty(t, report.SundryDebtorsCreditors, "cancelled receivables never count as sundry")
}

func TestComputeReport_ArchivedInvoiceCarriesForward(t *testing.T) {
	archived := domain.ArchivedInvoice{
		ArchiveID:    "a1",
		BuyerName:    "Old Client",
		TotalWithGST: dec(7500),
	}
	cf := calculateCarryForward(domain.LedgerSources{ArchivedInvoices: []domain.ArchivedInvoice{archived}})

	report := computeReport(domain.LedgerSources{}, cf)

	require.Len(t, report.UnsecureLoanDebit, 1)
	assert.Equal(t, "Old Client", report.UnsecureLoanDebit[0].Name)
	assert.True(t, report.UnsecureLoanDebit[0].Amount.Equal(dec(7500)))
}

func TestComputeReport_CapitalKeepsPerTransactionLines(t *testing.T) {
	src := domain.LedgerSources{Others: []domain.OtherTransaction{
		otherTxn("t1", "Partner", "Asha", 10000, domain.Credit),
		otherTxn("t2", "partner", "Asha", 4000, domain.Debit),
	}}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.Capital, 2, "capital lines are never aggregated by name")
	assert.True(t, report.Capital[0].Amount.Equal(dec(10000)))
	assert.True(t, report.Capital[1].Amount.Equal(dec(-4000)))
}

func TestComputeReport_FixedAssetsStaySegregatedByPolarity(t *testing.T) {
	src := domain.LedgerSources{Others: []domain.OtherTransaction{
		otherTxn("t1", "Fixed Assets", "Machinery", 100000, domain.Debit),
		otherTxn("t2", "fixed assets", "Machinery", 20000, domain.Credit),
	}}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.FixedAssetsDebit, 1)
	require.Len(t, report.FixedAssetsCredit, 1)
	assert.True(t, report.FixedAssetsDebit[0].Amount.Equal(dec(100000)))
	assert.True(t, report.FixedAssetsCredit[0].Amount.Equal(dec(20000)))
}

func TestComputeReport_SalaryTotals(t *testing.T) {
	src := domain.LedgerSources{Salaries: []domain.Salary{
		{SalaryID: "s1", Name: "Ravi", Amount: dec(10000), Date: testDate(time.May, 31)},
		{SalaryID: "s2", Name: "Meena", Amount: dec(15000), Date: testDate(time.May, 31)},
		{SalaryID: "s3", Name: "Ravi", Amount: dec(10000), Date: testDate(time.June, 30)},
	}}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.Salary, 2)
	assert.Equal(t, "Meena", report.Salary[0].Name)
	assert.Equal(t, "Ravi", report.Salary[1].Name)
	assert.True(t, report.Salary[1].Amount.Equal(dec(20000)))
	assert.True(t, report.SalaryTotal.Equal(dec(35000)))
}

func TestComputeReport_CustomTypeNetsCreditMinusDebit(t *testing.T) {
	src := domain.LedgerSources{Others: []domain.OtherTransaction{
		otherTxn("t1", "advertisement", "Ad Agency", 1000, domain.Credit),
		otherTxn("t2", "advertisement", "Ad Agency", 300, domain.Debit),
		otherTxn("t3", "advertisement", "Print House", 200, domain.Debit),
	}}

	report := computeReport(src, domain.CarryForward{})

	require.Contains(t, report.CustomTypesCredit, "advertisement")
	credit := report.CustomTypesCredit["advertisement"]
	require.Len(t, credit, 1)
	assert.Equal(t, "Ad Agency", credit[0].Name)
	assert.True(t, credit[0].Amount.Equal(dec(700)))

	debit := report.CustomTypesDebit["advertisement"]
	require.Len(t, debit, 1)
	assert.Equal(t, "Print House", debit[0].Name)
	assert.True(t, debit[0].Amount.Equal(dec(200)))
}

func TestComputeReport_CustomTagClashingWithSundryIsSkipped(t *testing.T) {
	src := domain.LedgerSources{
		Invoices: []domain.Invoice{invoiceFor("Acme", 5000)},
		Others: []domain.OtherTransaction{
			otherTxn("t1", "acme", "Someone", 1000, domain.Credit),
		},
	}

	report := computeReport(src, domain.CarryForward{})

	assert.NotContains(t, report.CustomTypesCredit, "acme")
	assert.NotContains(t, report.CustomTypesDebit, "acme")
}

func TestComputeReport_CarriedCustomTagClashingWithSundryIsSkipped(t *testing.T) {
	cf := calculateCarryForward(domain.LedgerSources{Others: []domain.OtherTransaction{
		otherTxn("t1", "acme", "Someone", 1000, domain.Credit),
	}})
	require.Contains(t, cf.CustomCredit, "acme")

	src := domain.LedgerSources{Invoices: []domain.Invoice{invoiceFor("Acme", 5000)}}

	report := computeReport(src, cf)

	assert.NotContains(t, report.CustomTypesCredit, "acme",
		"a carried tag never duplicates a sundry counterparty name")
	assert.NotContains(t, report.CustomTypesDebit, "acme")
	require.Len(t, report.SundryDebtorsCreditors, 1)
	assert.Equal(t, "Acme", report.SundryDebtorsCreditors[0].Name)
}

func TestComputeReport_BlankBuyerNameGetsPlaceholder(t *testing.T) {
	deleted := domain.Invoice{
		InvoiceID:    "inv-42",
		BuyerName:    "   ",
		InvoiceDate:  testDate(time.June, 1),
		TotalWithGST: dec(2000),
	}
	archived := domain.ArchivedInvoice{
		ArchiveID:    "a1",
		InvoiceID:    "inv-43",
		BuyerName:    "",
		TotalWithGST: dec(500),
	}
	src := domain.LedgerSources{
		DeletedInvoices:  []domain.Invoice{deleted},
		ArchivedInvoices: []domain.ArchivedInvoice{archived},
	}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.UnsecureLoanDebit, 2)
	assert.Equal(t, "Unknown_inv-42", report.UnsecureLoanDebit[0].Name)
	assert.True(t, report.UnsecureLoanDebit[0].Amount.Equal(dec(2000)))
	assert.Equal(t, "Unknown_inv-43", report.UnsecureLoanDebit[1].Name)
	assert.True(t, report.UnsecureLoanDebit[1].Amount.Equal(dec(500)))
}

func TestComputeReport_EmptyTypeTagIsDropped(t *testing.T) {
	src := domain.LedgerSources{Others: []domain.OtherTransaction{
		otherTxn("t1", "   ", "Someone", 1000, domain.Credit),
	}}

	report := computeReport(src, domain.CarryForward{})

	assert.Empty(t, report.CustomTypesCredit)
	assert.Empty(t, report.CustomTypesDebit)
}

func TestComputeReport_SettledPositionsFiltered(t *testing.T) {
	tiny := domain.OtherTransaction{
		TransactionID:   "t1",
		Type:            "Partner",
		Name:            "Asha",
		Amount:          decimal.NewFromFloat(0.4),
		TransactionType: domain.Credit,
	}

	report := computeReport(domain.LedgerSources{Others: []domain.OtherTransaction{tiny}}, domain.CarryForward{})

	assert.Empty(t, report.Capital, "whole-unit rounding drops sub-threshold noise")
}

func TestComputeReport_PlaceholderNamesNeverDropAmounts(t *testing.T) {
	src := domain.LedgerSources{Others: []domain.OtherTransaction{
		otherTxn("tx-77", "Partner", "", 5000, domain.Credit),
		otherTxn("tx-88", "Unsecure Loan", "", 3000, domain.Credit),
	}}

	report := computeReport(src, domain.CarryForward{})

	require.Len(t, report.Capital, 1)
	assert.Equal(t, "Partner_tx-77", report.Capital[0].Name)
	require.Len(t, report.UnsecureLoanCredit, 1)
	assert.Equal(t, "Unknown_tx-88", report.UnsecureLoanCredit[0].Name)
}

func TestComputeReport_NoticeFallbackForNames(t *testing.T) {
	txn := otherTxn("t1", "Unsecure Loan", "", 3000, domain.Credit)
	txn.Notice = "Cousin's loan"

	report := computeReport(domain.LedgerSources{Others: []domain.OtherTransaction{txn}}, domain.CarryForward{})

	require.Len(t, report.UnsecureLoanCredit, 1)
	assert.Equal(t, "Cousin's loan", report.UnsecureLoanCredit[0].Name)
}

func TestComputeReport_Deterministic(t *testing.T) {
	src := domain.LedgerSources{
		Invoices: []domain.Invoice{invoiceFor("Zeta", 1000), invoiceFor("Alpha", 2000)},
		Receipts: []domain.BuyerReceipt{receiptFor("Midway", 500)},
		Others: []domain.OtherTransaction{
			otherTxn("t1", "Loan", "", 9000, domain.Credit),
			otherTxn("t2", "misc", "A", 700, domain.Debit),
			otherTxn("t3", "misc", "B", 800, domain.Credit),
		},
	}
	cf := calculateCarryForward(domain.LedgerSources{
		Invoices: []domain.Invoice{invoiceFor("Alpha", 300)},
	})

	first := computeReport(src, cf)
	second := computeReport(src, cf)

	assert.Equal(t, first, second)
	require.Len(t, first.SundryDebtorsCreditors, 3)
	assert.Equal(t, "Alpha", first.SundryDebtorsCreditors[0].Name)
	assert.Equal(t, "Midway", first.SundryDebtorsCreditors[1].Name)
	assert.Equal(t, "Zeta", first.SundryDebtorsCreditors[2].Name)
}

func TestSundryNetTotals_ExcludesReservedNames(t *testing.T) {
	src := domain.LedgerSources{
		Receipts: []domain.BuyerReceipt{
			receiptFor("Partner", 1000),
			receiptFor("  loan ", 2000),
			receiptFor("Others", 3000),
			receiptFor("Genuine Buyer", 400),
		},
	}

	totals := sundryNetTotals(src)

	require.Len(t, totals, 1)
	assert.True(t, totals["Genuine Buyer"].Equal(dec(-400)))
}

func TestLineSet_SplitSortsAndFlipsDebits(t *testing.T) {
	set := newLineSet()
	set.add("Zed", dec(-100), "", "", "")
	set.add("Amy", dec(50), "", "", "")
	set.add("Mid", decimal.Zero, "", "", "")

	credit, debit := set.split()

	require.Len(t, credit, 1)
	assert.Equal(t, "Amy", credit[0].Name)
	require.Len(t, debit, 1)
	assert.Equal(t, "Zed", debit[0].Name)
	assert.True(t, debit[0].Amount.Equal(dec(100)), "debit bucket holds positive amounts")
}
