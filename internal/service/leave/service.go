package leave

import (
	"context"
	"fmt"

	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
	"github.com/karthago-hr/paie-backend-go/internal/domain/leave"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type LeaveService interface {
	Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	List(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	newLeave := leave.LeaveInterval{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Kind:       leave.Kind(req.Kind),
		DaysCount:  int(end.Sub(start).Hours()/24) + 1,
	}

	created, err := s.leaveRepo.Create(ctx, newLeave)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave interval: %w", err)
	}
	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	var (
		leaves []leave.LeaveInterval
		err    error
	)
	if employeeID != "" {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return nil, err
		}
		leaves, err = s.leaveRepo.ListByEmployee(ctx, employeeID)
	} else {
		leaves, err = s.leaveRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave intervals: %w", err)
	}

	result := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, leave.ToResponse(l))
	}
	return result, nil
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.leaveRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.leaveRepo.Delete(ctx, id)
}
