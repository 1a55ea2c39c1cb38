package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/attendance"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, employee_id, timestamp, direction, status, created_at`

func scanEvent(row pgx.Row) (attendance.ClockEvent, error) {
	var e attendance.ClockEvent
	err := row.Scan(&e.ID, &e.EmployeeID, &e.Timestamp, &e.Direction, &e.Status, &e.CreatedAt)
	return e, err
}

func (r *eventRepository) Append(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clock_events (employee_id, timestamp, direction, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + eventColumns

	e, err := scanEvent(q.QueryRow(ctx, query, event.EmployeeID, event.Timestamp, event.Direction, event.Status))
	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to append clock event: %w", err)
	}

	return e, nil
}

func (r *eventRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM clock_events
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
