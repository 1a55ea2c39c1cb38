package response

import (
	"errors"
	"net/http"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/leave"
	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
	"github.com/karthago-hr/paie-backend-go/internal/domain/shift"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculeExists):
		Conflict(w, "Matricule already exists")
	case errors.Is(err, employee.ErrCINExists):
		Conflict(w, "CIN already registered")
	case errors.Is(err, employee.ErrNoBaseSalary):
		BadRequest(w, "Employee has no base salary configured", nil)

	// Shift and holiday domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees and cannot be deleted")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Leave and attendance domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave interval not found")
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Clock event not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be a well-formed YYYY-MM value", nil)
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
