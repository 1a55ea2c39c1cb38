package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeSalary_BaseOnly(t *testing.T) {
	record := ComputeSalary(testEmployeeID, "2025-03", dec("3000"), payroll.StatsFigures{}, payroll.Adjustments{})

	assert.Equal(t, testEmployeeID, record.EmployeeID)
	assert.Equal(t, "2025-03", record.Month)
	assert.True(t, record.NetSalary.Equal(dec("3000")), "net = %s", record.NetSalary)
	assert.True(t, record.OvertimePay.IsZero())
}

func TestComputeSalary_MissedHoursAreDeducted(t *testing.T) {
	stats := payroll.StatsFigures{
		WorkedDays:  2,
		WorkedHours: 17.83,
		MissedHours: 155.5,
	}

	record := ComputeSalary(testEmployeeID, "2025-03", dec("3000"), stats, payroll.Adjustments{})

	// 155.5 * 3000/173.33 = 2691.40 deducted
	assert.True(t, record.NetSalary.Equal(dec("308.60")), "net = %s", record.NetSalary)
}

func TestComputeSalary_OvertimeAtTimeAndAHalf(t *testing.T) {
	stats := payroll.StatsFigures{
		WorkedDays:  23,
		WorkedHours: 184,
		ExtraHours:  10.67,
	}

	record := ComputeSalary(testEmployeeID, "2025-03", dec("3000"), stats, payroll.Adjustments{})

	// 10.67 * 3000/173.33 * 1.5 = 277.01
	assert.True(t, record.OvertimePay.Equal(dec("277.01")), "overtime = %s", record.OvertimePay)
	assert.True(t, record.NetSalary.Equal(dec("3277.01")), "net = %s", record.NetSalary)
}

func TestComputeSalary_MiseAPiedUsesDailyRate(t *testing.T) {
	deduction := MiseAPiedDeduction(dec("2600"), 2)

	// 2600 / 26 = 100 per day
	assert.True(t, deduction.Equal(dec("200")), "deduction = %s", deduction)

	record := ComputeSalary(testEmployeeID, "2025-03", dec("2600"),
		payroll.StatsFigures{}, payroll.Adjustments{MiseAPiedDays: 2})

	assert.True(t, record.NetSalary.Equal(dec("2400")), "net = %s", record.NetSalary)
}

func TestComputeSalary_NetIsExactSumOfPublishedFigures(t *testing.T) {
	base := dec("2847.51")
	stats := payroll.StatsFigures{
		WorkedDays:  20,
		WorkedHours: 161.25,
		MissedHours: 12.08,
		ExtraHours:  0,
	}
	adj := payroll.Adjustments{
		AbsenceDeduction: dec("75.50"),
		LateDeduction:    dec("12.25"),
		OtherDeduction:   dec("3.10"),
		Advances:         dec("400"),
		Bonuses:          dec("150"),
		LeavePay:         dec("80.40"),
		MiseAPiedDays:    1,
	}

	record := ComputeSalary(testEmployeeID, "2025-03", base, stats, adj)

	hourlyRate := base.Div(dec("173.33"))
	missedPay := decimal.NewFromFloat(stats.MissedHours).Mul(hourlyRate).Round(2)
	miseAPied := MiseAPiedDeduction(base, adj.MiseAPiedDays)

	expected := base.
		Add(record.OvertimePay).
		Add(record.Bonuses).
		Add(record.LeavePay).
		Sub(record.AbsenceDeduction).
		Sub(record.LateDeduction).
		Sub(record.OtherDeduction).
		Sub(record.Advances).
		Sub(miseAPied).
		Sub(missedPay).
		Round(2)

	assert.True(t, record.NetSalary.Equal(expected), "net = %s, expected %s", record.NetSalary, expected)
}

func TestComputeSalary_NetMayBeNegative(t *testing.T) {
	record := ComputeSalary(testEmployeeID, "2025-03", dec("1200"),
		payroll.StatsFigures{MissedHours: 173.33},
		payroll.Adjustments{Advances: dec("500")})

	assert.True(t, record.NetSalary.IsNegative(), "net = %s", record.NetSalary)
}

func TestComputeSalary_PreservesEditedFigures(t *testing.T) {
	stats := payroll.StatsFigures{
		WorkedDays:  21.5,
		WorkedHours: 170.4,
		MissedHours: 0,
		ExtraHours:  0,
		LeaveDays:   2,
	}

	record := ComputeSalary(testEmployeeID, "2025-03", dec("3000"), stats, payroll.Adjustments{})

	assert.Equal(t, stats.WorkedDays, record.WorkedDays)
	assert.Equal(t, stats.WorkedHours, record.WorkedHours)
	assert.Equal(t, stats.LeaveDays, record.LeaveDays)
}
