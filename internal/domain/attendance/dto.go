package attendance

import (
	"time"

	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type RecordEventRequest struct {
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"` // RFC 3339
	Direction  string `json:"direction"` // "IN" or "OUT"
	Status     string `json:"status,omitempty"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, err := time.Parse(time.RFC3339, r.Timestamp); err != nil {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "must be RFC 3339"})
	}
	if r.Direction != string(DirectionIn) && r.Direction != string(DirectionOut) {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "must be IN or OUT"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{"present", "late", "absent"}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, late or absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
	Direction  string `json:"direction"`
	Status     string `json:"status,omitempty"`
}

func ToResponse(e ClockEvent) EventResponse {
	return EventResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Timestamp:  e.Timestamp.Format(time.RFC3339),
		Direction:  string(e.Direction),
		Status:     string(e.Status),
	}
}
