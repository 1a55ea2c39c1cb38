package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
)

var (
	standardMonthlyHours = decimal.NewFromFloat(StandardMonthlyHours)
	workingDaysPerMonth  = decimal.NewFromInt(WorkingDaysPerMonth)
	overtimeMultiplier   = decimal.NewFromFloat(1.5)
)

// ComputeSalary turns a base salary, the (possibly hand-edited) time figures
// and the manual adjustments into a complete SalaryRecord. Pure; persistence
// and identity are the caller's concern.
//
// Rates use the two time bases deliberately: hourly figures divide by
// StandardMonthlyHours, the mise à pied daily rate divides by
// WorkingDaysPerMonth. Derived monetary components are rounded to 2 decimals
// individually, then the net is the exact sum of the published figures:
//
//	net = base + overtime_pay + bonuses + leave_pay
//	    - (absence + late + other + advances + mise_a_pied + missed_pay)
//
// with no hidden terms. The net is not clamped and may be negative. Paid
// leave is compensated by never appearing as a deduction; leave_pay exists
// only for separate cash-out scenarios.
func ComputeSalary(
	employeeID, month string,
	baseSalary decimal.Decimal,
	stats payroll.StatsFigures,
	adj payroll.Adjustments,
) payroll.SalaryRecord {
	hourlyRate := baseSalary.Div(standardMonthlyHours)
	dailyRate := baseSalary.Div(workingDaysPerMonth)

	overtimePay := decimal.NewFromFloat(stats.ExtraHours).Mul(hourlyRate).Mul(overtimeMultiplier).Round(2)
	missedPay := decimal.NewFromFloat(stats.MissedHours).Mul(hourlyRate).Round(2)
	miseAPiedDeduction := decimal.NewFromFloat(adj.MiseAPiedDays).Mul(dailyRate).Round(2)

	totalDeductions := adj.AbsenceDeduction.
		Add(adj.LateDeduction).
		Add(adj.OtherDeduction).
		Add(adj.Advances).
		Add(miseAPiedDeduction).
		Add(missedPay)

	totalAdditions := overtimePay.
		Add(adj.Bonuses).
		Add(adj.LeavePay)

	netSalary := baseSalary.Add(totalAdditions).Sub(totalDeductions).Round(2)

	return payroll.SalaryRecord{
		EmployeeID:       employeeID,
		Month:            month,
		BaseSalary:       baseSalary,
		WorkedDays:       stats.WorkedDays,
		WorkedHours:      stats.WorkedHours,
		MissedHours:      stats.MissedHours,
		ExtraHours:       stats.ExtraHours,
		LeaveDays:        stats.LeaveDays,
		OvertimePay:      overtimePay,
		AbsenceDeduction: adj.AbsenceDeduction,
		LateDeduction:    adj.LateDeduction,
		OtherDeduction:   adj.OtherDeduction,
		Advances:         adj.Advances,
		Bonuses:          adj.Bonuses,
		MiseAPiedDays:    adj.MiseAPiedDays,
		LeavePay:         adj.LeavePay,
		NetSalary:        netSalary,
	}
}

// MiseAPiedDeduction exposes the disciplinary-suspension deduction for a
// given base salary, at the fixed per-day rate.
func MiseAPiedDeduction(baseSalary decimal.Decimal, days float64) decimal.Decimal {
	return decimal.NewFromFloat(days).Mul(baseSalary.Div(workingDaysPerMonth)).Round(2)
}
