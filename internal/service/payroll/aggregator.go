package payroll

import (
	"math"
	"sort"
	"time"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/leave"
	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
)

// Time-base policy constants. The hourly baseline (a 40-hour, 5-day week
// averaged over a month) and the 26-working-day convention are two different
// time bases and must stay separate named values: unifying them would change
// historical payroll outputs.
const (
	StandardMonthlyHours = 173.33
	WorkingDaysPerMonth  = 26
)

const creditedHoursPerDay = 8.0

const maxPlausibleSpanHours = 16.0

// plausibleWorkSpan reports whether a day's punch pair yields a believable
// shift duration. Days outside the range contribute nothing to the totals and
// are reported in AnomalousDates instead.
func plausibleWorkSpan(hours float64) bool {
	return hours > 0 && hours < maxPlausibleSpanHours
}

// partialPunchCredit is the compensating heuristic for a day with punches on
// one side only (a missing IN or OUT): a flat half day at four hours.
func partialPunchCredit() (hours, days float64) {
	return 4, 0.5
}

// AggregateMonthly turns one employee-month of raw clock events plus the
// leave and holiday calendars into MonthlyStats. Pure and deterministic:
// identical inputs always produce identical output, and the inputs are never
// mutated.
//
// month must be the first day of the target month. Every calendar day is
// attributed once: holiday wins over paid leave, which wins over the
// worked/unworked determination from punches. Rounding happens only here, as
// the final output step.
func AggregateMonthly(
	employeeID string,
	month time.Time,
	events []attendance.ClockEvent,
	leaves []leave.LeaveInterval,
	holidays []holiday.HolidayDate,
) payroll.MonthlyStats {
	monthStr := month.Format("2006-01")
	year, m, _ := month.Date()
	daysInMonth := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()

	// Group this employee's events of the month by calendar date.
	byDate := make(map[string][]attendance.ClockEvent)
	for _, ev := range events {
		if ev.EmployeeID != employeeID || ev.Timestamp.Format("2006-01") != monthStr {
			continue
		}
		date := ev.Timestamp.Format("2006-01-02")
		byDate[date] = append(byDate[date], ev)
	}

	var workedHours, workedDays float64
	var anomalous []string
	for date, dayEvents := range byDate {
		var ins, outs []time.Time
		for _, ev := range dayEvents {
			if ev.Direction == attendance.DirectionIn {
				ins = append(ins, ev.Timestamp)
			} else {
				outs = append(outs, ev.Timestamp)
			}
		}

		if len(ins) > 0 && len(outs) > 0 {
			span := latest(outs).Sub(earliest(ins)).Hours()
			if plausibleWorkSpan(span) {
				workedHours += span
				workedDays++
			} else {
				anomalous = append(anomalous, date)
			}
			continue
		}

		// Punches on one side only.
		h, d := partialPunchCredit()
		workedHours += h
		workedDays += d
	}
	sort.Strings(anomalous)

	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[h.Date.Format("2006-01-02")] = struct{}{}
	}

	var paidLeaves []leave.LeaveInterval
	for _, l := range leaves {
		if l.EmployeeID == employeeID && l.Kind == leave.KindPaid {
			paidLeaves = append(paidLeaves, l)
		}
	}

	var leaveDays, holidayDays float64
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
		if _, ok := holidaySet[day.Format("2006-01-02")]; ok {
			// Holiday wins; a leave overlapping it is not counted again.
			holidayDays++
			continue
		}
		for _, l := range paidLeaves {
			if l.Covers(day) {
				leaveDays++
				break
			}
		}
	}

	// Holiday and paid-leave days are credited at a flat 8h each; the credit
	// only offsets the missing-hour threshold, it is not worked time.
	creditedHours := (leaveDays + holidayDays) * creditedHoursPerDay
	accountableHours := workedHours + creditedHours

	// Overtime keys off actual worked hours, not accountable hours.
	extraHours := math.Max(0, workedHours-StandardMonthlyHours)
	missedHours := math.Max(0, StandardMonthlyHours-accountableHours)

	return payroll.MonthlyStats{
		EmployeeID:     employeeID,
		Month:          monthStr,
		WorkedDays:     round1(workedDays),
		WorkedHours:    round2(workedHours),
		ExtraHours:     round2(extraHours),
		MissedHours:    round2(missedHours),
		LeaveDays:      round1(leaveDays),
		HolidayDays:    round1(holidayDays),
		AnomalousDates: anomalous,
	}
}

func earliest(ts []time.Time) time.Time {
	min := ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
	}
	return min
}

func latest(ts []time.Time) time.Time {
	max := ts[0]
	for _, t := range ts[1:] {
		if t.After(max) {
			max = t
		}
	}
	return max
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
