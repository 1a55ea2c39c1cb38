package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, matricule, full_name, cin, phone, email, department, job_position,
	contract_type, base_salary, biometric_id, shift_id, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Matricule, &e.FullName, &e.CIN, &e.Phone, &e.Email,
		&e.Department, &e.JobPosition, &e.ContractType, &e.BaseSalary,
		&e.BiometricID, &e.ShiftID, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			matricule, full_name, cin, phone, email, department, job_position,
			contract_type, base_salary, biometric_id, shift_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.Matricule, newEmployee.FullName, newEmployee.CIN,
		newEmployee.Phone, newEmployee.Email, newEmployee.Department,
		newEmployee.JobPosition, newEmployee.ContractType, newEmployee.BaseSalary,
		newEmployee.BiometricID, newEmployee.ShiftID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_matricule") {
			return employee.Employee{}, employee.ErrMatriculeExists
		}
		if strings.Contains(err.Error(), "uk_employee_cin") {
			return employee.Employee{}, employee.ErrCINExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByMatricule(ctx context.Context, matricule string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE matricule = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, matricule))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by matricule: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE deleted_at IS NULL ORDER BY matricule`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.JobPosition != nil {
		addSet("job_position", *req.JobPosition)
	}
	if req.ContractType != nil {
		addSet("contract_type", *req.ContractType)
	}
	if req.BaseSalary != nil {
		addSet("base_salary", *req.BaseSalary)
	}
	if req.BiometricID != nil {
		addSet("biometric_id", *req.BiometricID)
	}
	if req.ShiftID != nil {
		addSet("shift_id", *req.ShiftID)
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(setClauses, ", "), argPos,
	)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
