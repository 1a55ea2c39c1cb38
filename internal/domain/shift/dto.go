package shift

import (
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type CreateShiftRequest struct {
	Name      string   `json:"name"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	WorkDays  []string `json:"work_days"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidTimeOfDay(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidTimeOfDay(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if len(r.WorkDays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "work_days", Message: "at least one day is required"})
	}
	for _, d := range r.WorkDays {
		if !validator.IsInSlice(d, weekDays) {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "days must be Mon..Sun"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	WorkDays  []string `json:"work_days"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		WorkDays:  s.WorkDays,
	}
}
