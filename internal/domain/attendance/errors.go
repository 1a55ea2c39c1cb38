package attendance

import "errors"

// Attendance domain errors
var (
	ErrEventNotFound = errors.New("clock event not found")
)
