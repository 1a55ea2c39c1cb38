package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/leave"
	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/metrics"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	eventRepo    attendance.EventRepository
	leaveRepo    leave.LeaveRepository
	holidayRepo  holiday.HolidayRepository
	salaryRepo   payroll.SalaryRepository
	metrics      *metrics.Metrics
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	eventRepo attendance.EventRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	salaryRepo payroll.SalaryRepository,
	m *metrics.Metrics,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		leaveRepo:    leaveRepo,
		holidayRepo:  holidayRepo,
		salaryRepo:   salaryRepo,
		metrics:      m,
	}
}

// ========== MONTHLY STATS ==========

func (s *PayrollServiceImpl) ComputeMonthlyStats(ctx context.Context, employeeID, month string) (payroll.MonthlyStatsResponse, error) {
	stats, err := s.aggregate(ctx, employeeID, month)
	if err != nil {
		return payroll.MonthlyStatsResponse{}, err
	}

	s.metrics.IncStatsComputed()
	return payroll.StatsToResponse(stats), nil
}

// aggregate loads a snapshot of the employee's events plus both calendars and
// runs the pure aggregation pass over it.
func (s *PayrollServiceImpl) aggregate(ctx context.Context, employeeID, month string) (payroll.MonthlyStats, error) {
	monthStart, ok := validator.IsValidMonth(month)
	if !ok {
		return payroll.MonthlyStats{}, payroll.ErrInvalidMonth
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.MonthlyStats{}, err
	}

	monthEnd := monthStart.AddDate(0, 1, 0)
	events, err := s.eventRepo.ListByEmployeeAndRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return payroll.MonthlyStats{}, fmt.Errorf("failed to load clock events: %w", err)
	}

	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.MonthlyStats{}, fmt.Errorf("failed to load leave intervals: %w", err)
	}

	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return payroll.MonthlyStats{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	return AggregateMonthly(employeeID, monthStart, events, leaves, holidays), nil
}

// ========== PREPARATION LIFECYCLE ==========

func (s *PayrollServiceImpl) PreparePayroll(ctx context.Context, employeeID, month string) (payroll.PrepareResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.PrepareResponse{}, payroll.ErrInvalidMonth
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.PrepareResponse{}, err
	}

	record, err := s.salaryRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err == nil {
		// Already finalized: re-editing reuses the stored figures, including
		// prior manual edits, without rerunning the aggregator.
		resp := payroll.RecordToResponse(record)
		return payroll.PrepareResponse{
			State: payroll.StateFinalized,
			Stats: payroll.StatsFigures{
				WorkedDays:  record.WorkedDays,
				WorkedHours: record.WorkedHours,
				MissedHours: record.MissedHours,
				ExtraHours:  record.ExtraHours,
				LeaveDays:   record.LeaveDays,
			},
			Adjustments: payroll.AdjustmentsRequest{
				AbsenceDeduction: record.AbsenceDeduction,
				LateDeduction:    record.LateDeduction,
				OtherDeduction:   record.OtherDeduction,
				Advances:         record.Advances,
				Bonuses:          record.Bonuses,
				LeavePay:         record.LeavePay,
				MiseAPiedDays:    record.MiseAPiedDays,
			},
			Record: &resp,
		}, nil
	}
	if !errors.Is(err, payroll.ErrSalaryRecordNotFound) {
		return payroll.PrepareResponse{}, fmt.Errorf("failed to check existing salary record: %w", err)
	}

	stats, err := s.aggregate(ctx, employeeID, month)
	if err != nil {
		return payroll.PrepareResponse{}, err
	}

	return payroll.PrepareResponse{
		State: payroll.StateDraft,
		Stats: payroll.StatsFigures{
			WorkedDays:  stats.WorkedDays,
			WorkedHours: stats.WorkedHours,
			MissedHours: stats.MissedHours,
			ExtraHours:  stats.ExtraHours,
			LeaveDays:   stats.LeaveDays,
		},
	}, nil
}

// ========== PAYROLL COMPUTATION ==========

func (s *PayrollServiceImpl) ComputePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	if emp.BaseSalary == nil || emp.BaseSalary.IsZero() {
		return payroll.SalaryRecordResponse{}, employee.ErrNoBaseSalary
	}

	record := ComputeSalary(req.EmployeeID, req.Month, *emp.BaseSalary, req.Stats, req.Adjustments.ToAdjustments())

	saved, err := s.salaryRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.SalaryRecordResponse{}, fmt.Errorf("failed to persist salary record: %w", err)
	}

	s.metrics.IncPayrollComputed()
	return payroll.RecordToResponse(saved), nil
}

// ========== LEDGER READS ==========

func (s *PayrollServiceImpl) GetSalaryRecord(ctx context.Context, employeeID, month string) (payroll.SalaryRecordResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.SalaryRecordResponse{}, payroll.ErrInvalidMonth
	}

	record, err := s.salaryRepo.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.SalaryRecordResponse{}, err
	}
	return payroll.RecordToResponse(record), nil
}

func (s *PayrollServiceImpl) ListSalaryRecords(ctx context.Context, month string) ([]payroll.SalaryRecordResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return nil, payroll.ErrInvalidMonth
	}

	records, err := s.salaryRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}

	result := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, payroll.RecordToResponse(r))
	}
	return result, nil
}
