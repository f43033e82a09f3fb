package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// employeeRepository implements the EmployeeRepository interface
type employeeRepository struct {
	BaseRepository
}

func newEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &employeeRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const employeeColumns = `employee_id, name, salary, joining_date, email, number, is_deleted, deleted_at`

func (r *employeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID, employee.Name, employee.Salary, employee.JoiningDate,
		employee.Email, employee.Number, employee.IsDeleted, employee.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	var e domain.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&e.EmployeeID, &e.Name, &e.Salary, &e.JoiningDate,
		&e.Email, &e.Number, &e.IsDeleted, &e.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying employee: %w", err)
	}
	return &e, nil
}

func (r *employeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.listEmployees(ctx, `SELECT `+employeeColumns+` FROM employees WHERE is_deleted = FALSE ORDER BY name`)
}

func (r *employeeRepository) ListDeletedEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.listEmployees(ctx, `SELECT `+employeeColumns+` FROM employees WHERE is_deleted = TRUE ORDER BY deleted_at DESC`)
}

func (r *employeeRepository) listEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.EmployeeID, &e.Name, &e.Salary, &e.JoiningDate,
			&e.Email, &e.Number, &e.IsDeleted, &e.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, salary = $3, joining_date = $4, email = $5, number = $6
		WHERE employee_id = $1`
	tag, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID, employee.Name, employee.Salary, employee.JoiningDate,
		employee.Email, employee.Number,
	)
	if err != nil {
		return fmt.Errorf("error updating employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employee.EmployeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *employeeRepository) MarkEmployeeDeleted(ctx context.Context, employeeID string, deletedAt time.Time) error {
	query := `UPDATE employees SET is_deleted = TRUE, deleted_at = $2 WHERE employee_id = $1 AND is_deleted = FALSE`
	tag, err := r.Pool.Exec(ctx, query, employeeID, deletedAt)
	if err != nil {
		return fmt.Errorf("error soft-deleting employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *employeeRepository) RestoreEmployee(ctx context.Context, employeeID string) error {
	query := `UPDATE employees SET is_deleted = FALSE, deleted_at = NULL WHERE employee_id = $1 AND is_deleted = TRUE`
	tag, err := r.Pool.Exec(ctx, query, employeeID)
	if err != nil {
		return fmt.Errorf("error restoring employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleted employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *employeeRepository) RecordEmployeeAction(ctx context.Context, action domain.EmployeeAction) error {
	query := `
		INSERT INTO employee_actions (action_id, employee_id, action, date, details)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.Pool.Exec(ctx, query,
		action.ActionID, action.EmployeeID, action.Action, action.Date, action.Details,
	)
	if err != nil {
		return fmt.Errorf("error inserting employee action: %w", err)
	}
	return nil
}

func (r *employeeRepository) ListEmployeeActions(ctx context.Context, employeeID string) ([]domain.EmployeeAction, error) {
	query := `
		SELECT action_id, employee_id, action, date, details
		FROM employee_actions
		WHERE employee_id = $1
		ORDER BY date DESC`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("error querying employee actions: %w", err)
	}
	defer rows.Close()

	actions := []domain.EmployeeAction{}
	for rows.Next() {
		var a domain.EmployeeAction
		if err := rows.Scan(&a.ActionID, &a.EmployeeID, &a.Action, &a.Date, &a.Details); err != nil {
			return nil, fmt.Errorf("error scanning employee action row: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee action rows: %w", err)
	}
	return actions, nil
}

// salaryRepository implements the SalaryRepository interface
type salaryRepository struct {
	BaseRepository
}

func newSalaryRepository(db *pgxpool.Pool) portsrepo.SalaryRepository {
	return &salaryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *salaryRepository) SaveSalary(ctx context.Context, salary domain.Salary) error {
	query := `
		INSERT INTO salaries (salary_id, name, date, amount, payment_type, bank)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.Pool.Exec(ctx, query,
		salary.SalaryID, salary.Name, salary.Date, salary.Amount, salary.PaymentType, salary.Bank,
	)
	if err != nil {
		return fmt.Errorf("error inserting salary: %w", err)
	}
	return nil
}

func (r *salaryRepository) ListSalaries(ctx context.Context) ([]domain.Salary, error) {
	query := `SELECT salary_id, name, date, amount, payment_type, bank FROM salaries ORDER BY date DESC, salary_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying salaries: %w", err)
	}
	defer rows.Close()

	salaries := []domain.Salary{}
	for rows.Next() {
		var s domain.Salary
		if err := rows.Scan(&s.SalaryID, &s.Name, &s.Date, &s.Amount, &s.PaymentType, &s.Bank); err != nil {
			return nil, fmt.Errorf("error scanning salary row: %w", err)
		}
		salaries = append(salaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary rows: %w", err)
	}
	return salaries, nil
}

func (r *salaryRepository) DeleteSalary(ctx context.Context, salaryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM salaries WHERE salary_id = $1`, salaryID)
	if err != nil {
		return fmt.Errorf("error deleting salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("salary %s: %w", salaryID, apperrors.ErrNotFound)
	}
	return nil
}
