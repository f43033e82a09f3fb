package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// CreateBankAccountRequest defines the payload for adding a bank book entry.
type CreateBankAccountRequest struct {
	BankName      string          `json:"bankName" binding:"required"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToDomain converts the request to a domain.BankAccount.
func (r CreateBankAccountRequest) ToDomain() domain.BankAccount {
	return domain.BankAccount{
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		Amount:        r.Amount,
	}
}

// UpdateBankAccountRequest defines the payload for updating a bank book entry.
type UpdateBankAccountRequest struct {
	BankName      *string          `json:"bankName,omitempty"`
	AccountNumber *string          `json:"accountNumber,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
}

// ApplyTo overlays the present fields onto an existing account.
func (r UpdateBankAccountRequest) ApplyTo(a *domain.BankAccount) {
	if r.BankName != nil {
		a.BankName = *r.BankName
	}
	if r.AccountNumber != nil {
		a.AccountNumber = *r.AccountNumber
	}
	if r.Amount != nil {
		a.Amount = *r.Amount
	}
}

// CreateCashEntryRequest defines the payload for adding a cash book entry.
type CreateCashEntryRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// ToDomain converts the request to a domain.CashEntry.
func (r CreateCashEntryRequest) ToDomain() domain.CashEntry {
	return domain.CashEntry{
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
	}
}

// UpdateCashEntryRequest defines the payload for updating a cash book entry.
type UpdateCashEntryRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ApplyTo overlays the present fields onto an existing entry.
func (r UpdateCashEntryRequest) ApplyTo(e *domain.CashEntry) {
	if r.Amount != nil {
		e.Amount = *r.Amount
	}
	if r.Date != nil {
		e.Date = *r.Date
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
}
