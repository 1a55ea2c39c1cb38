package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, newHoliday HolidayDate) (HolidayDate, error)
	List(ctx context.Context) ([]HolidayDate, error)
	Delete(ctx context.Context, id string) error
}
