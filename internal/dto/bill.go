package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// CreateBillRequest defines the payload for recording a company bill.
type CreateBillRequest struct {
	Company     string          `json:"company" binding:"required"`
	InvoiceRef  string          `json:"invoiceRef"`
	Date        time.Time       `json:"date" binding:"required"`
	Notice      string          `json:"notice"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentType string          `json:"paymentType"`
	Bank        string          `json:"bank"`
}

// ToDomain converts the request to a domain.CompanyBill.
func (r CreateBillRequest) ToDomain() domain.CompanyBill {
	return domain.CompanyBill{
		Company:     r.Company,
		InvoiceRef:  r.InvoiceRef,
		Date:        r.Date,
		Notice:      r.Notice,
		Amount:      r.Amount,
		PaymentType: r.PaymentType,
		Bank:        r.Bank,
	}
}

// UpdateBillRequest defines the payload for updating a company bill.
type UpdateBillRequest struct {
	Company     *string          `json:"company,omitempty"`
	InvoiceRef  *string          `json:"invoiceRef,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Notice      *string          `json:"notice,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	PaymentType *string          `json:"paymentType,omitempty"`
	Bank        *string          `json:"bank,omitempty"`
}

// ApplyTo overlays the present fields onto an existing bill.
func (r UpdateBillRequest) ApplyTo(bill *domain.CompanyBill) {
	if r.Company != nil {
		bill.Company = *r.Company
	}
	if r.InvoiceRef != nil {
		bill.InvoiceRef = *r.InvoiceRef
	}
	if r.Date != nil {
		bill.Date = *r.Date
	}
	if r.Notice != nil {
		bill.Notice = *r.Notice
	}
	if r.Amount != nil {
		bill.Amount = *r.Amount
	}
	if r.PaymentType != nil {
		bill.PaymentType = *r.PaymentType
	}
	if r.Bank != nil {
		bill.Bank = *r.Bank
	}
}
