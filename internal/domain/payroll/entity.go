package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyStats is the output of the monthly aggregation pass: worked, leave,
// holiday and missing-hour figures for one employee-month. It is derived and
// recomputable; only the SalaryRecord built from it is persisted.
type MonthlyStats struct {
	EmployeeID  string
	Month       string // "YYYY-MM"
	WorkedDays  float64
	WorkedHours float64
	ExtraHours  float64
	MissedHours float64
	LeaveDays   float64
	HolidayDays float64

	// AnomalousDates lists days whose punch pair yielded an implausible span
	// and were therefore excluded from the totals.
	AnomalousDates []string
}

// Adjustments are the manual, per-month payroll inputs entered alongside the
// aggregated stats.
type Adjustments struct {
	AbsenceDeduction decimal.Decimal
	LateDeduction    decimal.Decimal
	OtherDeduction   decimal.Decimal
	Advances         decimal.Decimal
	Bonuses          decimal.Decimal
	LeavePay         decimal.Decimal
	MiseAPiedDays    float64
}

// SalaryRecord is the persisted pay statement for one (employee, month) key.
// Recomputing the same key replaces the record wholesale.
type SalaryRecord struct {
	ID         string
	EmployeeID string
	Month      string // "YYYY-MM"
	BaseSalary decimal.Decimal

	// Time figures, possibly hand-edited before the final computation
	WorkedDays  float64
	WorkedHours float64
	MissedHours float64
	ExtraHours  float64
	LeaveDays   float64

	// Monetary breakdown
	OvertimePay      decimal.Decimal
	AbsenceDeduction decimal.Decimal
	LateDeduction    decimal.Decimal
	OtherDeduction   decimal.Decimal
	Advances         decimal.Decimal
	Bonuses          decimal.Decimal
	MiseAPiedDays    float64
	LeavePay         decimal.Decimal
	NetSalary        decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PreparationState is the lifecycle position of an employee-month:
// draft figures are editable and unsaved, a finalized record has been
// persisted to the ledger.
type PreparationState string

const (
	StateDraft     PreparationState = "draft"
	StateFinalized PreparationState = "finalized"
)
