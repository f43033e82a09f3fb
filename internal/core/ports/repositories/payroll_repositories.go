package repositories

import (
	"context"
	"time"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// EmployeeRepository defines persistence operations for payroll employees.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	ListDeletedEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	MarkEmployeeDeleted(ctx context.Context, employeeID string, deletedAt time.Time) error
	RestoreEmployee(ctx context.Context, employeeID string) error

	RecordEmployeeAction(ctx context.Context, action domain.EmployeeAction) error
	ListEmployeeActions(ctx context.Context, employeeID string) ([]domain.EmployeeAction, error)
}

// SalaryRepository defines persistence operations for salary payments.
type SalaryRepository interface {
	SaveSalary(ctx context.Context, salary domain.Salary) error
	ListSalaries(ctx context.Context) ([]domain.Salary, error)
	DeleteSalary(ctx context.Context, salaryID string) error
}
