package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// CreateEmployeeRequest defines the payload for creating an employee.
type CreateEmployeeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Salary      decimal.Decimal `json:"salary"`
	JoiningDate *time.Time      `json:"joiningDate,omitempty"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Number      string          `json:"number"`
}

// ToDomain converts the request to a domain.Employee.
func (r CreateEmployeeRequest) ToDomain() domain.Employee {
	return domain.Employee{
		Name:        r.Name,
		Salary:      r.Salary,
		JoiningDate: r.JoiningDate,
		Email:       r.Email,
		Number:      r.Number,
	}
}

// UpdateEmployeeRequest defines the payload for updating an employee.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	JoiningDate *time.Time       `json:"joiningDate,omitempty"`
	Email       *string          `json:"email,omitempty" binding:"omitempty,email"`
	Number      *string          `json:"number,omitempty"`
}

// ApplyTo overlays the present fields onto an existing employee.
func (r UpdateEmployeeRequest) ApplyTo(e *domain.Employee) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	if r.JoiningDate != nil {
		e.JoiningDate = r.JoiningDate
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Number != nil {
		e.Number = *r.Number
	}
}

// PaySalaryRequest defines the payload for recording a salary payment.
type PaySalaryRequest struct {
	Name        string          `json:"name" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentType string          `json:"paymentType"`
	Bank        string          `json:"bank"`
}

// ToDomain converts the request to a domain.Salary.
func (r PaySalaryRequest) ToDomain() domain.Salary {
	return domain.Salary{
		Name:        r.Name,
		Date:        r.Date,
		Amount:      r.Amount,
		PaymentType: r.PaymentType,
		Bank:        r.Bank,
	}
}
