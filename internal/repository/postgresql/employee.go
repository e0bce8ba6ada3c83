package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shiftnavi/shiftnavi-backend-go/internal/domain/employee"
	"github.com/shiftnavi/shiftnavi-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, name, email, role, employment_type, skills, desired_work_days,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.EmploymentType,
		&emp.Skills, &emp.DesiredWorkDays, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (name, email, role, employment_type, skills, desired_work_days)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.Role,
		emp.EmploymentType,
		emp.Skills,
		emp.DesiredWorkDays,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Role != nil {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIndex))
		args = append(args, *filter.Role)
		argIndex++
	}
	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.Name+"%")
		argIndex++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, role = $4, employment_type = $5,
			skills = $6, desired_work_days = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.Role,
		emp.EmploymentType,
		emp.Skills,
		emp.DesiredWorkDays,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
