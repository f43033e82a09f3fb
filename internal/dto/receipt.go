package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// CreateReceiptRequest defines the payload for recording a buyer receipt.
type CreateReceiptRequest struct {
	Name        string          `json:"name" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes"`
	PaymentType string          `json:"paymentType"`
}

// ToDomain converts the request to a domain.BuyerReceipt.
func (r CreateReceiptRequest) ToDomain() domain.BuyerReceipt {
	return domain.BuyerReceipt{
		Name:        r.Name,
		Date:        r.Date,
		Amount:      r.Amount,
		Notes:       r.Notes,
		PaymentType: r.PaymentType,
	}
}

// UpdateReceiptRequest defines the payload for updating a buyer receipt.
type UpdateReceiptRequest struct {
	Name        *string          `json:"name,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	PaymentType *string          `json:"paymentType,omitempty"`
}

// ApplyTo overlays the present fields onto an existing receipt.
func (r UpdateReceiptRequest) ApplyTo(receipt *domain.BuyerReceipt) {
	if r.Name != nil {
		receipt.Name = *r.Name
	}
	if r.Date != nil {
		receipt.Date = *r.Date
	}
	if r.Amount != nil {
		receipt.Amount = *r.Amount
	}
	if r.Notes != nil {
		receipt.Notes = *r.Notes
	}
	if r.PaymentType != nil {
		receipt.PaymentType = *r.PaymentType
	}
}
