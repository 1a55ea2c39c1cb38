package attendance

import "time"

// ClockEvent is a single IN or OUT punch recorded for one employee at one
// instant. Events are append-only; the payroll core never mutates them.
type ClockEvent struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Direction  Direction
	Status     Status
	CreatedAt  time.Time
}

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)
