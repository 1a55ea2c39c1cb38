package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/leave"
)

const testEmployeeID = "emp-1"

func mkEvent(t *testing.T, employeeID, ts string, dir attendance.Direction) attendance.ClockEvent {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	return attendance.ClockEvent{
		EmployeeID: employeeID,
		Timestamp:  parsed,
		Direction:  dir,
		Status:     attendance.StatusPresent,
	}
}

func mkDay(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func march2025() time.Time {
	return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthly_EmptyMonth(t *testing.T) {
	stats := AggregateMonthly(testEmployeeID, march2025(), nil, nil, nil)

	assert.Equal(t, testEmployeeID, stats.EmployeeID)
	assert.Equal(t, "2025-03", stats.Month)
	assert.Equal(t, 0.0, stats.WorkedDays)
	assert.Equal(t, 0.0, stats.WorkedHours)
	assert.Equal(t, 0.0, stats.ExtraHours)
	assert.Equal(t, StandardMonthlyHours, stats.MissedHours)
	assert.Equal(t, 0.0, stats.LeaveDays)
	assert.Equal(t, 0.0, stats.HolidayDays)
	assert.Empty(t, stats.AnomalousDates)
}

func TestAggregateMonthly_TwoWorkedDays(t *testing.T) {
	events := []attendance.ClockEvent{
		mkEvent(t, testEmployeeID, "2025-03-03T08:55:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-03T18:05:00Z", attendance.DirectionOut),
		mkEvent(t, testEmployeeID, "2025-03-04T09:10:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-04T17:50:00Z", attendance.DirectionOut),
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), events, nil, nil)

	// 9h10 + 8h40 of presence
	assert.Equal(t, 2.0, stats.WorkedDays)
	assert.Equal(t, 17.83, stats.WorkedHours)
	assert.Equal(t, 0.0, stats.ExtraHours)
	assert.Equal(t, 155.5, stats.MissedHours)
}

func TestAggregateMonthly_MultiplePunchesUseEarliestInLatestOut(t *testing.T) {
	events := []attendance.ClockEvent{
		mkEvent(t, testEmployeeID, "2025-03-05T12:30:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-05T08:00:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-05T12:00:00Z", attendance.DirectionOut),
		mkEvent(t, testEmployeeID, "2025-03-05T17:00:00Z", attendance.DirectionOut),
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), events, nil, nil)

	assert.Equal(t, 1.0, stats.WorkedDays)
	assert.Equal(t, 9.0, stats.WorkedHours)
}

func TestAggregateMonthly_PartialPunchGetsFlatHalfDay(t *testing.T) {
	events := []attendance.ClockEvent{
		mkEvent(t, testEmployeeID, "2025-03-06T08:00:00Z", attendance.DirectionIn),
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), events, nil, nil)

	assert.Equal(t, 0.5, stats.WorkedDays)
	assert.Equal(t, 4.0, stats.WorkedHours)
	assert.Empty(t, stats.AnomalousDates)
}

func TestAggregateMonthly_ImplausibleSpanIsExcludedAndReported(t *testing.T) {
	events := []attendance.ClockEvent{
		// OUT before IN: negative span
		mkEvent(t, testEmployeeID, "2025-03-10T18:00:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-10T08:00:00Z", attendance.DirectionOut),
		// Span of over 16 hours
		mkEvent(t, testEmployeeID, "2025-03-11T06:00:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-11T23:30:00Z", attendance.DirectionOut),
		// A normal day alongside
		mkEvent(t, testEmployeeID, "2025-03-12T09:00:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-12T17:00:00Z", attendance.DirectionOut),
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), events, nil, nil)

	assert.Equal(t, 1.0, stats.WorkedDays)
	assert.Equal(t, 8.0, stats.WorkedHours)
	assert.Equal(t, []string{"2025-03-10", "2025-03-11"}, stats.AnomalousDates)
}

func TestAggregateMonthly_IgnoresOtherEmployeesAndOtherMonths(t *testing.T) {
	events := []attendance.ClockEvent{
		mkEvent(t, "someone-else", "2025-03-03T09:00:00Z", attendance.DirectionIn),
		mkEvent(t, "someone-else", "2025-03-03T17:00:00Z", attendance.DirectionOut),
		mkEvent(t, testEmployeeID, "2025-02-28T09:00:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-02-28T17:00:00Z", attendance.DirectionOut),
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), events, nil, nil)

	assert.Equal(t, 0.0, stats.WorkedDays)
	assert.Equal(t, 0.0, stats.WorkedHours)
}

func TestAggregateMonthly_PaidLeaveCreditsEightHoursPerDay(t *testing.T) {
	leaves := []leave.LeaveInterval{
		{
			EmployeeID: testEmployeeID,
			StartDate:  mkDay(t, "2025-03-17"),
			EndDate:    mkDay(t, "2025-03-21"),
			Kind:       leave.KindPaid,
		},
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), nil, leaves, nil)

	assert.Equal(t, 5.0, stats.LeaveDays)
	// Credit offsets the missing-hour threshold but is not worked time.
	assert.Equal(t, 0.0, stats.WorkedHours)
	assert.Equal(t, 133.33, stats.MissedHours)
}

func TestAggregateMonthly_UnpaidAndSickLeaveAreNotCredited(t *testing.T) {
	leaves := []leave.LeaveInterval{
		{
			EmployeeID: testEmployeeID,
			StartDate:  mkDay(t, "2025-03-17"),
			EndDate:    mkDay(t, "2025-03-18"),
			Kind:       leave.KindUnpaid,
		},
		{
			EmployeeID: testEmployeeID,
			StartDate:  mkDay(t, "2025-03-19"),
			EndDate:    mkDay(t, "2025-03-19"),
			Kind:       leave.KindSick,
		},
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), nil, leaves, nil)

	assert.Equal(t, 0.0, stats.LeaveDays)
	assert.Equal(t, StandardMonthlyHours, stats.MissedHours)
}

func TestAggregateMonthly_HolidayWinsOverPaidLeave(t *testing.T) {
	leaves := []leave.LeaveInterval{
		{
			EmployeeID: testEmployeeID,
			StartDate:  mkDay(t, "2025-03-20"),
			EndDate:    mkDay(t, "2025-03-20"),
			Kind:       leave.KindPaid,
		},
	}
	holidays := []holiday.HolidayDate{
		{Date: mkDay(t, "2025-03-20"), Name: "Independence Day"},
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), nil, leaves, holidays)

	// The overlapping day is attributed once, as a holiday.
	assert.Equal(t, 1.0, stats.HolidayDays)
	assert.Equal(t, 0.0, stats.LeaveDays)
	assert.Equal(t, 165.33, stats.MissedHours)
}

func TestAggregateMonthly_OvertimeFromWorkedHoursOnly(t *testing.T) {
	// 23 worked days at 8h = 184h, over the monthly baseline
	var events []attendance.ClockEvent
	for d := 1; d <= 23; d++ {
		day := time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
		events = append(events,
			attendance.ClockEvent{
				EmployeeID: testEmployeeID,
				Timestamp:  day.Add(8 * time.Hour),
				Direction:  attendance.DirectionIn,
			},
			attendance.ClockEvent{
				EmployeeID: testEmployeeID,
				Timestamp:  day.Add(16 * time.Hour),
				Direction:  attendance.DirectionOut,
			},
		)
	}

	stats := AggregateMonthly(testEmployeeID, march2025(), events, nil, nil)

	assert.Equal(t, 23.0, stats.WorkedDays)
	assert.Equal(t, 184.0, stats.WorkedHours)
	assert.Equal(t, 10.67, stats.ExtraHours)
	assert.Equal(t, 0.0, stats.MissedHours)
}

func TestAggregateMonthly_Deterministic(t *testing.T) {
	events := []attendance.ClockEvent{
		mkEvent(t, testEmployeeID, "2025-03-03T08:55:00Z", attendance.DirectionIn),
		mkEvent(t, testEmployeeID, "2025-03-03T18:05:00Z", attendance.DirectionOut),
		mkEvent(t, testEmployeeID, "2025-03-07T10:00:00Z", attendance.DirectionIn),
	}
	leaves := []leave.LeaveInterval{
		{
			EmployeeID: testEmployeeID,
			StartDate:  mkDay(t, "2025-03-24"),
			EndDate:    mkDay(t, "2025-03-25"),
			Kind:       leave.KindPaid,
		},
	}
	holidays := []holiday.HolidayDate{
		{Date: mkDay(t, "2025-03-20"), Name: "Independence Day"},
	}

	first := AggregateMonthly(testEmployeeID, march2025(), events, leaves, holidays)
	second := AggregateMonthly(testEmployeeID, march2025(), events, leaves, holidays)

	assert.Equal(t, first, second)
}
