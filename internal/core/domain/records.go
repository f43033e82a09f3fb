package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a record credits or debits the counterparty.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Reserved type tags for OtherTransaction records. Anything else is a
// user-defined ("dynamic") type and surfaces as its own balance-sheet section.
const (
	TypePartner      = "partner"
	TypeLoan         = "loan"
	TypeUnsecureLoan = "unsecure loan"
	TypeFixedAssets  = "fixed assets"
)

// Invoice is a sales (tax) invoice raised against a buyer.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	BuyerName     string          `json:"buyerName"`
	BuyerAddress  string          `json:"buyerAddress"`
	BuyerGST      string          `json:"buyerGST"`
	InvoiceNumber string          `json:"invoiceNumber"`
	FinancialYear string          `json:"financialYear"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	Particulars   string          `json:"particulars"`
	State         string          `json:"state"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	TotalWithGST  decimal.Decimal `json:"totalWithGST"`
	// TotalTaxAmount is the tax-inclusive grand total. When present it is
	// preferred over TotalWithGST for ledger aggregation.
	TotalTaxAmount *decimal.Decimal `json:"totalTaxAmount,omitempty"`
	Remark         string           `json:"remark"`
	IsDeleted      bool             `json:"isDeleted"`
	DeletedAt      *time.Time       `json:"deletedAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ReceivableTotal is the amount an invoice contributes to its buyer's ledger.
func (i Invoice) ReceivableTotal() decimal.Decimal {
	if i.TotalTaxAmount != nil {
		return *i.TotalTaxAmount
	}
	return i.TotalWithGST
}

// ArchivedInvoice is an invoice moved out of the active book. Its receivable
// is reclassified as a written-off unsecured exposure by the ledger engine.
type ArchivedInvoice struct {
	ArchiveID      string           `json:"archiveID"`
	InvoiceID      string           `json:"invoiceID"`
	BuyerName      string           `json:"buyerName"`
	InvoiceNumber  string           `json:"invoiceNumber"`
	InvoiceDate    time.Time        `json:"invoiceDate"`
	TotalWithGST   decimal.Decimal  `json:"totalWithGST"`
	TotalTaxAmount *decimal.Decimal `json:"totalTaxAmount,omitempty"`
	ArchivedAt     time.Time        `json:"archivedAt"`
}

// ReceivableTotal mirrors Invoice.ReceivableTotal for archived rows.
func (a ArchivedInvoice) ReceivableTotal() decimal.Decimal {
	if a.TotalTaxAmount != nil {
		return *a.TotalTaxAmount
	}
	return a.TotalWithGST
}

// BuyerReceipt records money received from a buyer (bank or cash).
type BuyerReceipt struct {
	ReceiptID   string          `json:"receiptID"`
	Name        string          `json:"name"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes"`
	PaymentType string          `json:"paymentType"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CompanyBill records money paid out against a vendor/company bill.
type CompanyBill struct {
	BillID      string          `json:"billID"`
	Company     string          `json:"company"`
	InvoiceRef  string          `json:"invoiceRef"`
	Date        time.Time       `json:"date"`
	Notice      string          `json:"notice"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType"`
	Bank        string          `json:"bank"`
}

// Salary records a salary payment to an employee.
type Salary struct {
	SalaryID    string          `json:"salaryID"`
	Name        string          `json:"name"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType"`
	Bank        string          `json:"bank"`
}

// OtherTransaction is a typed miscellaneous transaction. The four reserved
// type tags map to fixed balance-sheet categories; any other tag produces a
// dynamic section.
type OtherTransaction struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Notice          string          `json:"notice"`
	PaymentType     string          `json:"paymentType"`
	BankName        string          `json:"bankName"`
	TransactionType TransactionType `json:"transactionType"`
}

// OtherType is a user-defined transaction type tag.
type OtherType struct {
	TypeID string `json:"typeID"`
	Name   string `json:"name"`
}

// Employee is a payroll employee. Soft-deleted employees are retained for history.
type Employee struct {
	EmployeeID  string          `json:"employeeID"`
	Name        string          `json:"name"`
	Salary      decimal.Decimal `json:"salary"`
	JoiningDate *time.Time      `json:"joiningDate,omitempty"`
	Email       string          `json:"email"`
	Number      string          `json:"number"`
	IsDeleted   bool            `json:"isDeleted"`
	DeletedAt   *time.Time      `json:"deletedAt,omitempty"`
}

// EmployeeAction is an audit trail entry for employee changes.
type EmployeeAction struct {
	ActionID   string    `json:"actionID"`
	EmployeeID string    `json:"employeeID"`
	Action     string    `json:"action"`
	Date       time.Time `json:"date"`
	Details    string    `json:"details"`
}

// BankAccount is an entry in the bank book.
type BankAccount struct {
	AccountID     string          `json:"accountID"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	IsDeleted     bool            `json:"isDeleted"`
	DeletedAt     *time.Time      `json:"deletedAt,omitempty"`
}

// CashEntry is an entry in the cash book.
type CashEntry struct {
	EntryID     string          `json:"entryID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	IsDeleted   bool            `json:"isDeleted"`
	DeletedAt   *time.Time      `json:"deletedAt,omitempty"`
}

// LedgerSources bundles every transaction record the balance-sheet engine
// reads for a date range. The engine treats all of it as read-only.
type LedgerSources struct {
	Invoices         []Invoice
	DeletedInvoices  []Invoice
	ArchivedInvoices []ArchivedInvoice
	Receipts         []BuyerReceipt
	CompanyBills     []CompanyBill
	Salaries         []Salary
	Others           []OtherTransaction
}
