package domain

import "github.com/shopspring/decimal"

// InvoiceCalcInput carries the raw figures for a GST calculation. BaseAmount
// may be zero, in which case it is derived from TotalHours * Rate.
type InvoiceCalcInput struct {
	Country       string
	State         string
	TotalHours    decimal.Decimal
	Rate          decimal.Decimal
	BaseAmount    decimal.Decimal
	ExchangeRate  decimal.Decimal
	FinancialYear string
}

// InvoiceCalcResult is the computed tax breakdown for an invoice.
// For domestic invoices within the home state the tax splits evenly into
// CGST and SGST at 9% each; other states attract 18% IGST; exports carry
// no GST at all.
type InvoiceCalcResult struct {
	BaseAmount    decimal.Decimal  `json:"baseAmount"`
	CGST          decimal.Decimal  `json:"cgst"`
	SGST          decimal.Decimal  `json:"sgst"`
	IGST          decimal.Decimal  `json:"igst"`
	TaxTotal      decimal.Decimal  `json:"taxTotal"`
	TotalWithGST  decimal.Decimal  `json:"totalWithGST"`
	INREquivalent *decimal.Decimal `json:"inrEquivalent,omitempty"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
}
