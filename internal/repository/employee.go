package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, employee_name, department, contact_number, designation,
		email, location, manager, bio, created_at, updated_at`

func (r *Repository) observe(queryType string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(duration)
}

// CreateEmployee inserts a new employee row and returns it as stored.
// The identifier is assigned here and never changes afterwards.
func (r *Repository) CreateEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	defer r.observe("create_employee", time.Now())

	query := `
		INSERT INTO employees (id, employee_name, department, contact_number, designation,
			email, location, manager, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns + `;
	`

	row := r.db.QueryRow(ctx, query, uuid.NewString(), input.EmployeeName, input.Department,
		input.ContactNumber, input.Designation, input.Email, input.Location, input.Manager, input.Bio)

	result, err := scanEmployee(row)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// ListEmployees returns every employee in insertion order.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier string) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id=$1`

	result, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// UpdateEmployee replaces the fields set in patch and keeps the others.
func (r *Repository) UpdateEmployee(
	ctx context.Context,
	identifier string,
	patch models.EmployeePatch,
) (models.Employee, error) {
	defer r.observe("update_employee", time.Now())

	query := `
		UPDATE employees
		SET employee_name = COALESCE($2, employee_name),
			department = COALESCE($3, department),
			contact_number = COALESCE($4, contact_number),
			designation = COALESCE($5, designation),
			email = COALESCE($6, email),
			location = COALESCE($7, location),
			manager = COALESCE($8, manager),
			bio = COALESCE($9, bio),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING ` + employeeColumns + `;
	`

	row := r.db.QueryRow(ctx, query, identifier, patch.EmployeeName, patch.Department, patch.ContactNumber,
		patch.Designation, patch.Email, patch.Location, patch.Manager, patch.Bio)

	result, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return result, nil
}

// DeleteEmployee removes the employee row with the given ID.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier string) error {
	defer r.observe("delete_employee", time.Now())

	query := `DELETE FROM employees WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var result models.Employee

	err := row.Scan(
		&result.ID,
		&result.EmployeeName,
		&result.Department,
		&result.ContactNumber,
		&result.Designation,
		&result.Email,
		&result.Location,
		&result.Manager,
		&result.Bio,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return models.Employee{}, err
	}

	return result, nil
}
