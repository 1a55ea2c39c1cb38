package holiday

import "time"

// HolidayDate is a company-wide public holiday. Not employee-scoped.
type HolidayDate struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
