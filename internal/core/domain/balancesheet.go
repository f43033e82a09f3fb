package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is a single named line in a balance-sheet section.
// Amount is signed while a section is being accumulated and positive once the
// line has been routed into a credit or debit bucket.
type LedgerLine struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	BankName string          `json:"bank_name,omitempty"`
	Notice   string          `json:"notice,omitempty"`
	Type     string          `json:"type,omitempty"`
}

// NamedAmount is a name/amount pair used by sections that have no extra detail.
type NamedAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SettlementType classifies a counterparty's net position.
type SettlementType string

const (
	SettlementDebtor   SettlementType = "Debtor"
	SettlementCreditor SettlementType = "Creditor"
	SettlementSettled  SettlementType = "Settled"
)

// SundryEntry is a sundry debtor/creditor line. Amount is always positive;
// Type records which side of the book the counterparty sits on.
type SundryEntry struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   SettlementType  `json:"type"`
}

// BalanceSheetReport is the full categorized balance sheet for one fiscal year.
type BalanceSheetReport struct {
	Capital                []LedgerLine             `json:"capital"`
	LoanCredit             []LedgerLine             `json:"loan_credit"`
	LoanDebit              []LedgerLine             `json:"loan_debit"`
	UnsecureLoanCredit     []LedgerLine             `json:"unsecure_loan_credit"`
	UnsecureLoanDebit      []LedgerLine             `json:"unsecure_loan_debit"`
	FixedAssetsCredit      []NamedAmount            `json:"fixed_assets_credit"`
	FixedAssetsDebit       []NamedAmount            `json:"fixed_assets_debit"`
	Salary                 []NamedAmount            `json:"salary"`
	SalaryTotal            decimal.Decimal          `json:"salary_total"`
	SundryDebtorsCreditors []SundryEntry            `json:"sundry_debtors_creditors"`
	CustomTypesCredit      map[string][]NamedAmount `json:"custom_types_credit"`
	CustomTypesDebit       map[string][]NamedAmount `json:"custom_types_debit"`
}

// CarryForward holds the opening balances for a fiscal year, computed from
// every transaction dated strictly before the year's start. It is injected
// into the in-year aggregation as an explicit argument and never persisted.
type CarryForward struct {
	Capital            []LedgerLine
	LoanCredit         []LedgerLine
	LoanDebit          []LedgerLine
	UnsecureLoanCredit []LedgerLine
	UnsecureLoanDebit  []LedgerLine
	FixedAssetsCredit  map[string]decimal.Decimal
	FixedAssetsDebit   map[string]decimal.Decimal
	Salary             map[string]decimal.Decimal
	Sundry             []SundryEntry
	CustomCredit       map[string]map[string]decimal.Decimal
	CustomDebit        map[string]map[string]decimal.Decimal
}

// BalanceSheetSnapshot is a persisted point-in-time copy of a computed report,
// keyed by the fiscal year's start year. Snapshots are audit artifacts only
// and never feed back into a fresh computation.
type BalanceSheetSnapshot struct {
	Year          int                `json:"year"`
	FinancialYear string             `json:"financialYear"`
	Data          BalanceSheetReport `json:"data"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// CounterpartySettlement is one row of the settlement diagnostic: a
// counterparty's raw net total and its classification.
type CounterpartySettlement struct {
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
	Status    string          `json:"status"` // Active | Settled
	Type      SettlementType  `json:"type"`
}

// SettlementSummary aggregates counts for the settlement diagnostic.
type SettlementSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Settled   int `json:"settled"`
	Debtors   int `json:"debtors"`
	Creditors int `json:"creditors"`
}

// SettlementReport lists every counterparty with its settlement state for a
// fiscal year, active entries first.
type SettlementReport struct {
	FinancialYear  string                   `json:"financialYear"`
	Counterparties []CounterpartySettlement `json:"counterparties"`
	Summary        SettlementSummary        `json:"summary"`
}

// StatementEntry is one row of a counterparty account statement.
type StatementEntry struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Balance     decimal.Decimal `json:"balance"`
	Type        string          `json:"type"`
}

// AccountStatement is a chronological merged statement for one counterparty
// with a running balance.
type AccountStatement struct {
	BuyerName    string           `json:"buyerName"`
	TotalCredit  decimal.Decimal  `json:"totalCredit"`
	TotalDebit   decimal.Decimal  `json:"totalDebit"`
	TotalBalance decimal.Decimal  `json:"totalBalance"`
	Entries      []StatementEntry `json:"entries"`
}
