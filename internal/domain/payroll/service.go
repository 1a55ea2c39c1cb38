package payroll

import "context"

type PayrollService interface {
	// ComputeMonthlyStats runs the aggregation pass over the employee's clock
	// events, leave intervals and the holiday calendar for one month.
	ComputeMonthlyStats(ctx context.Context, employeeID, month string) (MonthlyStatsResponse, error)

	// PreparePayroll reports the lifecycle state of an employee-month and the
	// draft figures to edit: a fresh aggregation when no record exists, the
	// stored figures when one does.
	PreparePayroll(ctx context.Context, employeeID, month string) (PrepareResponse, error)

	// ComputePayroll turns figures plus manual adjustments into a SalaryRecord
	// and persists it, replacing any record at the same (employee, month) key.
	ComputePayroll(ctx context.Context, req ComputePayrollRequest) (SalaryRecordResponse, error)

	GetSalaryRecord(ctx context.Context, employeeID, month string) (SalaryRecordResponse, error)
	ListSalaryRecords(ctx context.Context, month string) ([]SalaryRecordResponse, error)
}
