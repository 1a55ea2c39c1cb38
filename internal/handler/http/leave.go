package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	domain "github.com/karthago-hr/paie-backend-go/internal/domain/leave"
	"github.com/karthago-hr/paie-backend-go/internal/handler/http/response"
	"github.com/karthago-hr/paie-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave interval recorded successfully", created)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	// Optional filter; an empty value lists every leave interval
	employeeID := r.URL.Query().Get("employee_id")

	leaves, err := h.leaveService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "id")
	if leaveID == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	if err := h.leaveService.Delete(r.Context(), leaveID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave interval deleted successfully", nil)
}
