package attendance

import (
	"context"
	"time"
)

// EventRepository stores raw clock events. The aggregator reads whatever
// snapshot is visible at call time; a device synchronization process may be
// appending concurrently.
type EventRepository interface {
	// Append records a new clock event.
	Append(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// ListByEmployeeAndRange returns the employee's events with
	// from <= timestamp < to, ordered by timestamp.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]ClockEvent, error)
}
