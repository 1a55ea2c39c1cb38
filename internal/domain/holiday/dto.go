package holiday

import (
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

func ToResponse(h HolidayDate) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
