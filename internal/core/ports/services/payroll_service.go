package services

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// PayrollService manages employees, their action history and salary payments.
type PayrollService interface {
	CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListDeletedEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
	RestoreEmployee(ctx context.Context, employeeID string) error
	ListEmployeeActions(ctx context.Context, employeeID string) ([]domain.EmployeeAction, error)

	PaySalary(ctx context.Context, salary domain.Salary) (*domain.Salary, error)
	ListSalaries(ctx context.Context) ([]domain.Salary, error)
	DeleteSalary(ctx context.Context, salaryID string) error
}
