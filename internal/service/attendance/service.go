package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	eventRepo    attendance.EventRepository
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.EventResponse{}, err
	}

	ts, _ := time.Parse(time.RFC3339, req.Timestamp)
	status := attendance.Status(req.Status)
	if req.Status == "" {
		status = attendance.StatusPresent
	}

	event := attendance.ClockEvent{
		EmployeeID: req.EmployeeID,
		Timestamp:  ts,
		Direction:  attendance.Direction(req.Direction),
		Status:     status,
	}

	created, err := s.eventRepo.Append(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to record clock event: %w", err)
	}
	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, employeeID, month string) ([]attendance.EventResponse, error) {
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be YYYY-MM"}}
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByEmployeeAndRange(ctx, employeeID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}

	result := make([]attendance.EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, attendance.ToResponse(e))
	}
	return result, nil
}
