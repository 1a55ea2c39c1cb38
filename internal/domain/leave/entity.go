package leave

import "time"

// LeaveInterval is an approved leave covering start..end inclusive.
// Only the paid kind is credited by the payroll aggregator; sick and unpaid
// leave are tracked but never offset missing hours.
type LeaveInterval struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Kind       Kind
	DaysCount  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Kind string

const (
	KindPaid   Kind = "paid"
	KindSick   Kind = "sick"
	KindUnpaid Kind = "unpaid"
)

// Covers reports whether day falls inside the interval. Both bounds are
// inclusive; day is compared at date granularity.
func (l LeaveInterval) Covers(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(l.StartDate.Truncate(24*time.Hour)) && !d.After(l.EndDate.Truncate(24*time.Hour))
}
