package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/shift"
	"github.com/karthago-hr/paie-backend-go/internal/handler/http/response"
	"github.com/karthago-hr/paie-backend-go/internal/service/master"
)

// MasterHandler serves the reference data behind payroll: shifts and the
// holiday calendar.
type MasterHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== SHIFT ====================

// CreateShift implements MasterHandler.
func (h *MasterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.masterService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", created)
}

// ListShifts implements MasterHandler.
func (h *MasterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.masterService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// DeleteShift implements MasterHandler.
func (h *MasterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")
	if shiftID == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.masterService.DeleteShift(r.Context(), shiftID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// ==================== HOLIDAY ====================

// CreateHoliday implements MasterHandler.
func (h *MasterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.masterService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", created)
}

// ListHolidays implements MasterHandler.
func (h *MasterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.masterService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// DeleteHoliday implements MasterHandler.
func (h *MasterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "id")
	if holidayID == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.masterService.DeleteHoliday(r.Context(), holidayID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}
