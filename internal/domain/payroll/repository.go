package payroll

import "context"

// SalaryRepository is the salary ledger: one SalaryRecord slot per
// (employee_id, month) key.
type SalaryRepository interface {
	// Upsert writes the record at its (employee_id, month) key, atomically
	// replacing any previous record. Last write wins; no history is kept.
	Upsert(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// GetByEmployeeAndMonth returns ErrSalaryRecordNotFound when the slot is
	// empty.
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (SalaryRecord, error)

	ListByMonth(ctx context.Context, month string) ([]SalaryRecord, error)
	Delete(ctx context.Context, employeeID, month string) error
}
