package payroll

import "errors"

var (
	ErrInvalidMonth         = errors.New("month must be a well-formed YYYY-MM value")
	ErrSalaryRecordNotFound = errors.New("salary record not found")
)
