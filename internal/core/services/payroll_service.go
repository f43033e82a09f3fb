package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// payrollService implements the PayrollService interface
type payrollService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
	salaryRepo   portsrepo.SalaryRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(employeeRepo portsrepo.EmployeeRepository, salaryRepo portsrepo.SalaryRepository) portssvc.PayrollService {
	return &payrollService{
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
	}
}

var _ portssvc.PayrollService = (*payrollService)(nil)

func (s *payrollService) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	if strings.TrimSpace(employee.Name) == "" {
		return nil, fmt.Errorf("employee name is required: %w", apperrors.ErrValidation)
	}
	if employee.EmployeeID == "" {
		employee.EmployeeID = uuid.NewString()
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	s.recordAction(ctx, employee.EmployeeID, "created", "employee added to payroll")
	s.LogInfo(ctx, "Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("name", employee.Name))
	return &employee, nil
}

func (s *payrollService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *payrollService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *payrollService) ListDeletedEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListDeletedEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deleted employees")
		return nil, fmt.Errorf("failed to list deleted employees: %w", err)
	}
	return employees, nil
}

func (s *payrollService) UpdateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employee.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.UpdateEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employee.EmployeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	s.recordAction(ctx, employee.EmployeeID, "updated", "employee details changed")
	return &employee, nil
}

func (s *payrollService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return err
	}
	if err := s.employeeRepo.MarkEmployeeDeleted(ctx, employeeID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	s.recordAction(ctx, employeeID, "deleted", "employee removed from active payroll")
	s.LogInfo(ctx, "Employee soft-deleted", slog.String("employee_id", employeeID))
	return nil
}

func (s *payrollService) RestoreEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.RestoreEmployee(ctx, employeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to restore employee", slog.String("employee_id", employeeID))
		}
		return err
	}
	s.recordAction(ctx, employeeID, "restored", "employee returned to active payroll")
	s.LogInfo(ctx, "Employee restored", slog.String("employee_id", employeeID))
	return nil
}

func (s *payrollService) ListEmployeeActions(ctx context.Context, employeeID string) ([]domain.EmployeeAction, error) {
	actions, err := s.employeeRepo.ListEmployeeActions(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employee actions", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to list employee actions: %w", err)
	}
	return actions, nil
}

func (s *payrollService) PaySalary(ctx context.Context, salary domain.Salary) (*domain.Salary, error) {
	if strings.TrimSpace(salary.Name) == "" {
		return nil, fmt.Errorf("employee name is required: %w", apperrors.ErrValidation)
	}
	if salary.SalaryID == "" {
		salary.SalaryID = uuid.NewString()
	}
	if err := s.salaryRepo.SaveSalary(ctx, salary); err != nil {
		s.LogError(ctx, err, "Failed to save salary payment", slog.String("salary_id", salary.SalaryID))
		return nil, fmt.Errorf("failed to save salary: %w", err)
	}
	s.LogInfo(ctx, "Salary payment recorded",
		slog.String("salary_id", salary.SalaryID),
		slog.String("name", salary.Name))
	return &salary, nil
}

func (s *payrollService) ListSalaries(ctx context.Context) ([]domain.Salary, error) {
	salaries, err := s.salaryRepo.ListSalaries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary payments")
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	return salaries, nil
}

func (s *payrollService) DeleteSalary(ctx context.Context, salaryID string) error {
	if err := s.salaryRepo.DeleteSalary(ctx, salaryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete salary payment", slog.String("salary_id", salaryID))
		}
		return err
	}
	s.LogInfo(ctx, "Salary payment deleted", slog.String("salary_id", salaryID))
	return nil
}

// recordAction appends to the employee audit trail. Failures are logged but
// never fail the primary operation.
func (s *payrollService) recordAction(ctx context.Context, employeeID, action, details string) {
	entry := domain.EmployeeAction{
		ActionID:   uuid.NewString(),
		EmployeeID: employeeID,
		Action:     action,
		Date:       time.Now().UTC(),
		Details:    details,
	}
	if err := s.employeeRepo.RecordEmployeeAction(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record employee action",
			slog.String("employee_id", employeeID),
			slog.String("action", action))
	}
}
