package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/handler/http/response"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordEvent implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	event, err := h.attendanceService.RecordEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock event recorded successfully", event)
}

// ListEvents implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")

	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	events, err := h.attendanceService.ListEvents(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
