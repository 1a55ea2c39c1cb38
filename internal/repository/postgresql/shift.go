package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/shift"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, work_days)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, start_time, end_time, work_days, created_at, updated_at
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query,
		newShift.Name, newShift.StartTime, newShift.EndTime, newShift.WorkDays,
	).Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.WorkDays, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, start_time, end_time, work_days, created_at, updated_at FROM shifts WHERE id = $1`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.WorkDays, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, start_time, end_time, work_days, created_at, updated_at FROM shifts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.WorkDays, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employee_shift") {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
