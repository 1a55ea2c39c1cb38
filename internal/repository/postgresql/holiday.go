package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/karthago-hr/paie-backend-go/internal/domain/holiday"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, newHoliday holiday.HolidayDate) (holiday.HolidayDate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		RETURNING id, date, name, created_at
	`

	var h holiday.HolidayDate
	err := q.QueryRow(ctx, query, newHoliday.Date, newHoliday.Name).Scan(
		&h.ID, &h.Date, &h.Name, &h.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_holiday_date") {
			return holiday.HolidayDate{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayDate{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

func (r *holidayRepository) List(ctx context.Context) ([]holiday.HolidayDate, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, date, name, created_at FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.HolidayDate
	for rows.Next() {
		var h holiday.HolidayDate
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
