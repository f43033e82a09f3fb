package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// CreateInvoiceRequest defines the payload for creating an invoice.
type CreateInvoiceRequest struct {
	BuyerName      string           `json:"buyerName" binding:"required"`
	BuyerAddress   string           `json:"buyerAddress"`
	BuyerGST       string           `json:"buyerGST"`
	InvoiceNumber  string           `json:"invoiceNumber" binding:"required"`
	FinancialYear  string           `json:"financialYear" binding:"required,finyear"`
	InvoiceDate    time.Time        `json:"invoiceDate" binding:"required"`
	Particulars    string           `json:"particulars"`
	State          string           `json:"state"`
	BaseAmount     decimal.Decimal  `json:"baseAmount"`
	CGST           decimal.Decimal  `json:"cgst"`
	SGST           decimal.Decimal  `json:"sgst"`
	IGST           decimal.Decimal  `json:"igst"`
	TaxTotal       decimal.Decimal  `json:"taxTotal"`
	TotalWithGST   decimal.Decimal  `json:"totalWithGST"`
	TotalTaxAmount *decimal.Decimal `json:"totalTaxAmount,omitempty"`
	Remark         string           `json:"remark"`
}

// ToDomain converts the request to a domain.Invoice.
func (r CreateInvoiceRequest) ToDomain() domain.Invoice {
	return domain.Invoice{
		BuyerName:      r.BuyerName,
		BuyerAddress:   r.BuyerAddress,
		BuyerGST:       r.BuyerGST,
		InvoiceNumber:  r.InvoiceNumber,
		FinancialYear:  r.FinancialYear,
		InvoiceDate:    r.InvoiceDate,
		Particulars:    r.Particulars,
		State:          r.State,
		BaseAmount:     r.BaseAmount,
		CGST:           r.CGST,
		SGST:           r.SGST,
		IGST:           r.IGST,
		TaxTotal:       r.TaxTotal,
		TotalWithGST:   r.TotalWithGST,
		TotalTaxAmount: r.TotalTaxAmount,
		Remark:         r.Remark,
	}
}

// UpdateInvoiceRequest defines the payload for updating an invoice. All fields
// are optional; absent fields keep their stored values.
type UpdateInvoiceRequest struct {
	BuyerName      *string          `json:"buyerName,omitempty"`
	BuyerAddress   *string          `json:"buyerAddress,omitempty"`
	BuyerGST       *string          `json:"buyerGST,omitempty"`
	InvoiceDate    *time.Time       `json:"invoiceDate,omitempty"`
	Particulars    *string          `json:"particulars,omitempty"`
	State          *string          `json:"state,omitempty"`
	BaseAmount     *decimal.Decimal `json:"baseAmount,omitempty"`
	CGST           *decimal.Decimal `json:"cgst,omitempty"`
	SGST           *decimal.Decimal `json:"sgst,omitempty"`
	IGST           *decimal.Decimal `json:"igst,omitempty"`
	TaxTotal       *decimal.Decimal `json:"taxTotal,omitempty"`
	TotalWithGST   *decimal.Decimal `json:"totalWithGST,omitempty"`
	TotalTaxAmount *decimal.Decimal `json:"totalTaxAmount,omitempty"`
	Remark         *string          `json:"remark,omitempty"`
}

// ApplyTo overlays the present fields onto an existing invoice.
func (r UpdateInvoiceRequest) ApplyTo(inv *domain.Invoice) {
	if r.BuyerName != nil {
		inv.BuyerName = *r.BuyerName
	}
	if r.BuyerAddress != nil {
		inv.BuyerAddress = *r.BuyerAddress
	}
	if r.BuyerGST != nil {
		inv.BuyerGST = *r.BuyerGST
	}
	if r.InvoiceDate != nil {
		inv.InvoiceDate = *r.InvoiceDate
	}
	if r.Particulars != nil {
		inv.Particulars = *r.Particulars
	}
	if r.State != nil {
		inv.State = *r.State
	}
	if r.BaseAmount != nil {
		inv.BaseAmount = *r.BaseAmount
	}
	if r.CGST != nil {
		inv.CGST = *r.CGST
	}
	if r.SGST != nil {
		inv.SGST = *r.SGST
	}
	if r.IGST != nil {
		inv.IGST = *r.IGST
	}
	if r.TaxTotal != nil {
		inv.TaxTotal = *r.TaxTotal
	}
	if r.TotalWithGST != nil {
		inv.TotalWithGST = *r.TotalWithGST
	}
	if r.TotalTaxAmount != nil {
		inv.TotalTaxAmount = r.TotalTaxAmount
	}
	if r.Remark != nil {
		inv.Remark = *r.Remark
	}
}

// InvoiceCalcRequest defines the payload for the GST calculation endpoint.
type InvoiceCalcRequest struct {
	Country       string          `json:"country" binding:"required"`
	State         string          `json:"state"`
	TotalHours    decimal.Decimal `json:"totalHours"`
	Rate          decimal.Decimal `json:"rate"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	FinancialYear string          `json:"financialYear" binding:"omitempty,finyear"`
}

// ToDomain converts the request to a domain.InvoiceCalcInput.
func (r InvoiceCalcRequest) ToDomain() domain.InvoiceCalcInput {
	return domain.InvoiceCalcInput{
		Country:       r.Country,
		State:         r.State,
		TotalHours:    r.TotalHours,
		Rate:          r.Rate,
		BaseAmount:    r.BaseAmount,
		ExchangeRate:  r.ExchangeRate,
		FinancialYear: r.FinancialYear,
	}
}
