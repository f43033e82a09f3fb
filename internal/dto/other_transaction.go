package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// CreateOtherTransactionRequest defines the payload for recording a typed
// miscellaneous transaction.
type CreateOtherTransactionRequest struct {
	Type            string          `json:"type" binding:"required"`
	Name            string          `json:"name"`
	Date            time.Time       `json:"date" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Notice          string          `json:"notice"`
	PaymentType     string          `json:"paymentType"`
	BankName        string          `json:"bankName"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=credit debit"`
}

// ToDomain converts the request to a domain.OtherTransaction.
func (r CreateOtherTransactionRequest) ToDomain() domain.OtherTransaction {
	return domain.OtherTransaction{
		Type:            r.Type,
		Name:            r.Name,
		Date:            r.Date,
		Amount:          r.Amount,
		Notice:          r.Notice,
		PaymentType:     r.PaymentType,
		BankName:        r.BankName,
		TransactionType: domain.TransactionType(r.TransactionType),
	}
}

// UpdateOtherTransactionRequest defines the payload for updating a typed
// miscellaneous transaction.
type UpdateOtherTransactionRequest struct {
	Type            *string          `json:"type,omitempty"`
	Name            *string          `json:"name,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Notice          *string          `json:"notice,omitempty"`
	PaymentType     *string          `json:"paymentType,omitempty"`
	BankName        *string          `json:"bankName,omitempty"`
	TransactionType *string          `json:"transactionType,omitempty" binding:"omitempty,oneof=credit debit"`
}

// ApplyTo overlays the present fields onto an existing transaction.
func (r UpdateOtherTransactionRequest) ApplyTo(t *domain.OtherTransaction) {
	if r.Type != nil {
		t.Type = *r.Type
	}
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Notice != nil {
		t.Notice = *r.Notice
	}
	if r.PaymentType != nil {
		t.PaymentType = *r.PaymentType
	}
	if r.BankName != nil {
		t.BankName = *r.BankName
	}
	if r.TransactionType != nil {
		t.TransactionType = domain.TransactionType(*r.TransactionType)
	}
}

// CreateOtherTypeRequest defines the payload for adding a user-defined type tag.
type CreateOtherTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToDomain converts the request to a domain.OtherType.
func (r CreateOtherTypeRequest) ToDomain() domain.OtherType {
	return domain.OtherType{Name: r.Name}
}
