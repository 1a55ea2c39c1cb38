package leave

import (
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Kind       string `json:"kind"` // paid, sick, unpaid
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if !validator.IsInSlice(r.Kind, []string{"paid", "sick", "unpaid"}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be paid, sick or unpaid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Kind       string `json:"kind"`
	DaysCount  int    `json:"days_count"`
}

func ToResponse(l LeaveInterval) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Kind:       string(l.Kind),
		DaysCount:  l.DaysCount,
	}
}
