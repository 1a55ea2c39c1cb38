package shift

import "time"

type Shift struct {
	ID        string
	Name      string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	WorkDays  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
