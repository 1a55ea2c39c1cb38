package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
	"github.com/karthago-hr/paie-backend-go/internal/handler/http/response"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	GetMonthlyStats(w http.ResponseWriter, r *http.Request)
	Prepare(w http.ResponseWriter, r *http.Request)
	Compute(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

func monthlyParams(r *http.Request) (employeeID, month string, err error) {
	employeeID = chi.URLParam(r, "employeeID")
	month = r.URL.Query().Get("month")

	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "is required"})
	}
	if len(errs) > 0 {
		return "", "", errs
	}

	return employeeID, month, nil
}

// GetMonthlyStats implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	employeeID, month, err := monthlyParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.payrollService.ComputeMonthlyStats(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Prepare implements PayrollHandler.
func (h *PayrollHandlerImpl) Prepare(w http.ResponseWriter, r *http.Request) {
	employeeID, month, err := monthlyParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	prep, err := h.payrollService.PreparePayroll(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, prep)
}

// Compute implements PayrollHandler.
func (h *PayrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Compute payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validation happens in the service so non-HTTP callers get it too.
	record, err := h.payrollService.ComputePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary record saved successfully", record)
}

// GetRecord implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	employeeID, month, err := monthlyParams(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.payrollService.GetSalaryRecord(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListRecords implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if validator.IsEmpty(month) {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "month", Message: "is required"},
		})
		return
	}

	records, err := h.payrollService.ListSalaryRecords(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
