package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) payroll.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, employee_id, month, base_salary,
	worked_days, worked_hours, missed_hours, extra_hours, leave_days,
	overtime_pay, absence_deduction, late_deduction, other_deduction,
	advances, bonuses, mise_a_pied_days, leave_pay, net_salary,
	created_at, updated_at`

func scanSalaryRecord(row pgx.Row) (payroll.SalaryRecord, error) {
	var rec payroll.SalaryRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BaseSalary,
		&rec.WorkedDays, &rec.WorkedHours, &rec.MissedHours, &rec.ExtraHours, &rec.LeaveDays,
		&rec.OvertimePay, &rec.AbsenceDeduction, &rec.LateDeduction, &rec.OtherDeduction,
		&rec.Advances, &rec.Bonuses, &rec.MiseAPiedDays, &rec.LeavePay, &rec.NetSalary,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Upsert replaces the record at (employee_id, month) in a single statement, so
// concurrent recomputations of the same key cannot interleave partial rows.
func (r *salaryRepository) Upsert(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (
			employee_id, month, base_salary,
			worked_days, worked_hours, missed_hours, extra_hours, leave_days,
			overtime_pay, absence_deduction, late_deduction, other_deduction,
			advances, bonuses, mise_a_pied_days, leave_pay, net_salary
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			worked_days = EXCLUDED.worked_days,
			worked_hours = EXCLUDED.worked_hours,
			missed_hours = EXCLUDED.missed_hours,
			extra_hours = EXCLUDED.extra_hours,
			leave_days = EXCLUDED.leave_days,
			overtime_pay = EXCLUDED.overtime_pay,
			absence_deduction = EXCLUDED.absence_deduction,
			late_deduction = EXCLUDED.late_deduction,
			other_deduction = EXCLUDED.other_deduction,
			advances = EXCLUDED.advances,
			bonuses = EXCLUDED.bonuses,
			mise_a_pied_days = EXCLUDED.mise_a_pied_days,
			leave_pay = EXCLUDED.leave_pay,
			net_salary = EXCLUDED.net_salary,
			updated_at = NOW()
		RETURNING ` + salaryColumns

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.BaseSalary,
		record.WorkedDays, record.WorkedHours, record.MissedHours, record.ExtraHours, record.LeaveDays,
		record.OvertimePay, record.AbsenceDeduction, record.LateDeduction, record.OtherDeduction,
		record.Advances, record.Bonuses, record.MiseAPiedDays, record.LeavePay, record.NetSalary,
	))
	if err != nil {
		return payroll.SalaryRecord{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE employee_id = $1 AND month = $2`

	rec, err := scanSalaryRecord(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return rec, nil
}

func (r *salaryRepository) ListByMonth(ctx context.Context, month string) ([]payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE month = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *salaryRepository) Delete(ctx context.Context, employeeID, month string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_records WHERE employee_id = $1 AND month = $2`, employeeID, month)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryRecordNotFound
	}

	return nil
}
