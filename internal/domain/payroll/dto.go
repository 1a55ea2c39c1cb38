package payroll

import (
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type MonthlyStatsResponse struct {
	EmployeeID     string   `json:"employee_id"`
	Month          string   `json:"month"`
	WorkedDays     float64  `json:"worked_days"`
	WorkedHours    float64  `json:"worked_hours"`
	ExtraHours     float64  `json:"extra_hours"`
	MissedHours    float64  `json:"missed_hours"`
	LeaveDays      float64  `json:"leave_days"`
	HolidayDays    float64  `json:"holiday_days"`
	AnomalousDates []string `json:"anomalous_dates,omitempty"`
}

func StatsToResponse(s MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		EmployeeID:     s.EmployeeID,
		Month:          s.Month,
		WorkedDays:     s.WorkedDays,
		WorkedHours:    s.WorkedHours,
		ExtraHours:     s.ExtraHours,
		MissedHours:    s.MissedHours,
		LeaveDays:      s.LeaveDays,
		HolidayDays:    s.HolidayDays,
		AnomalousDates: s.AnomalousDates,
	}
}

// StatsFigures are the editable time figures of a draft: what the aggregator
// produced, possibly overridden by hand before the final computation.
type StatsFigures struct {
	WorkedDays  float64 `json:"worked_days"`
	WorkedHours float64 `json:"worked_hours"`
	MissedHours float64 `json:"missed_hours"`
	ExtraHours  float64 `json:"extra_hours"`
	LeaveDays   float64 `json:"leave_days"`
}

type AdjustmentsRequest struct {
	AbsenceDeduction decimal.Decimal `json:"absence_deduction"`
	LateDeduction    decimal.Decimal `json:"late_deduction"`
	OtherDeduction   decimal.Decimal `json:"other_deduction"`
	Advances         decimal.Decimal `json:"advances"`
	Bonuses          decimal.Decimal `json:"bonuses"`
	LeavePay         decimal.Decimal `json:"leave_pay"`
	MiseAPiedDays    float64         `json:"mise_a_pied_days"`
}

func (a AdjustmentsRequest) ToAdjustments() Adjustments {
	return Adjustments{
		AbsenceDeduction: a.AbsenceDeduction,
		LateDeduction:    a.LateDeduction,
		OtherDeduction:   a.OtherDeduction,
		Advances:         a.Advances,
		Bonuses:          a.Bonuses,
		LeavePay:         a.LeavePay,
		MiseAPiedDays:    a.MiseAPiedDays,
	}
}

type ComputePayrollRequest struct {
	EmployeeID  string             `json:"employee_id"`
	Month       string             `json:"month"`
	Stats       StatsFigures       `json:"stats"`
	Adjustments AdjustmentsRequest `json:"adjustments"`
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.Stats.WorkedDays < 0 || r.Stats.WorkedHours < 0 || r.Stats.MissedHours < 0 ||
		r.Stats.ExtraHours < 0 || r.Stats.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "stats", Message: "figures must be non-negative"})
	}
	if r.Adjustments.AbsenceDeduction.IsNegative() || r.Adjustments.LateDeduction.IsNegative() ||
		r.Adjustments.OtherDeduction.IsNegative() || r.Adjustments.Advances.IsNegative() ||
		r.Adjustments.Bonuses.IsNegative() || r.Adjustments.LeavePay.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "adjustments", Message: "amounts must be non-negative"})
	}
	if r.Adjustments.MiseAPiedDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "mise_a_pied_days", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryRecordResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Month      string          `json:"month"`
	BaseSalary decimal.Decimal `json:"base_salary"`

	WorkedDays  float64 `json:"worked_days"`
	WorkedHours float64 `json:"worked_hours"`
	MissedHours float64 `json:"missed_hours"`
	ExtraHours  float64 `json:"extra_hours"`
	LeaveDays   float64 `json:"leave_days"`

	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	AbsenceDeduction decimal.Decimal `json:"absence_deduction"`
	LateDeduction    decimal.Decimal `json:"late_deduction"`
	OtherDeduction   decimal.Decimal `json:"other_deduction"`
	Advances         decimal.Decimal `json:"advances"`
	Bonuses          decimal.Decimal `json:"bonuses"`
	MiseAPiedDays    float64         `json:"mise_a_pied_days"`
	LeavePay         decimal.Decimal `json:"leave_pay"`
	NetSalary        decimal.Decimal `json:"net_salary"`
}

func RecordToResponse(r SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		Month:            r.Month,
		BaseSalary:       r.BaseSalary,
		WorkedDays:       r.WorkedDays,
		WorkedHours:      r.WorkedHours,
		MissedHours:      r.MissedHours,
		ExtraHours:       r.ExtraHours,
		LeaveDays:        r.LeaveDays,
		OvertimePay:      r.OvertimePay,
		AbsenceDeduction: r.AbsenceDeduction,
		LateDeduction:    r.LateDeduction,
		OtherDeduction:   r.OtherDeduction,
		Advances:         r.Advances,
		Bonuses:          r.Bonuses,
		MiseAPiedDays:    r.MiseAPiedDays,
		LeavePay:         r.LeavePay,
		NetSalary:        r.NetSalary,
	}
}

// PrepareResponse describes the lifecycle position of an employee-month and
// the figures a client should show: a fresh aggregation for a draft, or the
// stored record's figures when one was already finalized.
type PrepareResponse struct {
	State       PreparationState      `json:"state"`
	Stats       StatsFigures          `json:"stats"`
	Adjustments AdjustmentsRequest    `json:"adjustments"`
	Record      *SalaryRecordResponse `json:"record,omitempty"`
}
