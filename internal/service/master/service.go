package master

import (
	"context"
	"fmt"

	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/shift"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

// MasterService manages the catalog data behind payroll: the shift
// definitions employees are assigned to and the global holiday calendar.
type MasterService interface {
	// Shift operations
	CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	ListShifts(ctx context.Context) ([]shift.ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	// Holiday operations
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	shiftRepo   shift.ShiftRepository
	holidayRepo holiday.HolidayRepository
}

func NewMasterService(
	shiftRepo shift.ShiftRepository,
	holidayRepo holiday.HolidayRepository,
) MasterService {
	return &masterServiceImpl{
		shiftRepo:   shiftRepo,
		holidayRepo: holidayRepo,
	}
}

// ==================== SHIFT OPERATIONS ====================

func (s *masterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		WorkDays:  req.WorkDays,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift.ToResponse(created), nil
}

func (s *masterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	result := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		result = append(result, shift.ToResponse(sh))
	}
	return result, nil
}

func (s *masterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id)
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *masterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.HolidayDate{
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(created), nil
}

func (s *masterServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, holiday.ToResponse(h))
	}
	return result, nil
}

func (s *masterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
