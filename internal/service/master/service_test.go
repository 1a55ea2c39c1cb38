package master

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/domain/shift"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/validator"
)

type stubShiftRepo struct {
	shifts []shift.Shift
}

func (r *stubShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	s.ID = "shift-1"
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *stubShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	for _, s := range r.shifts {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (r *stubShiftRepo) List(_ context.Context) ([]shift.Shift, error) {
	return r.shifts, nil
}

func (r *stubShiftRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.shifts {
		if s.ID == id {
			r.shifts = append(r.shifts[:i], r.shifts[i+1:]...)
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

type stubHolidayRepo struct {
	holidays []holiday.HolidayDate
}

func (r *stubHolidayRepo) Create(_ context.Context, h holiday.HolidayDate) (holiday.HolidayDate, error) {
	for _, existing := range r.holidays {
		if existing.Date.Equal(h.Date) {
			return holiday.HolidayDate{}, holiday.ErrHolidayExists
		}
	}
	h.ID = "holiday-1"
	r.holidays = append(r.holidays, h)
	return h, nil
}

func (r *stubHolidayRepo) List(_ context.Context) ([]holiday.HolidayDate, error) {
	return r.holidays, nil
}

func (r *stubHolidayRepo) Delete(_ context.Context, id string) error {
	for i, h := range r.holidays {
		if h.ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			return nil
		}
	}
	return holiday.ErrHolidayNotFound
}

func newTestService() MasterService {
	return NewMasterService(&stubShiftRepo{}, &stubHolidayRepo{})
}

func TestCreateShift(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{
		Name:      "Day shift",
		StartTime: "08:00",
		EndTime:   "17:00",
		WorkDays:  []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Day shift", created.Name)
	assert.Equal(t, "08:00", created.StartTime)
}

func TestCreateShift_RejectsBadTime(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{
		Name:      "Broken",
		StartTime: "8am",
		EndTime:   "17:00",
		WorkDays:  []string{"Mon"},
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
}

func TestDeleteShift_NotFound(t *testing.T) {
	svc := newTestService()

	err := svc.DeleteShift(context.Background(), "nope")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestCreateHoliday(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-03-20",
		Name: "Independence Day",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-20", created.Date)

	holidays, err := svc.ListHolidays(context.Background())
	require.NoError(t, err)
	require.Len(t, holidays, 1)
}

func TestCreateHoliday_DuplicateDate(t *testing.T) {
	svc := newTestService()

	req := holiday.CreateHolidayRequest{Date: "2025-03-20", Name: "Independence Day"}
	_, err := svc.CreateHoliday(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateHoliday(context.Background(), req)
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestCreateHoliday_ParsesDate(t *testing.T) {
	repo := &stubHolidayRepo{}
	svc := NewMasterService(&stubShiftRepo{}, repo)

	_, err := svc.CreateHoliday(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-07-25",
		Name: "Republic Day",
	})
	require.NoError(t, err)

	require.Len(t, repo.holidays, 1)
	assert.Equal(t, time.July, repo.holidays[0].Date.Month())
}
