package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/leave"
	"github.com/karthago-hr/paie-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, employee_id, start_date, end_date, kind, days_count, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.LeaveInterval, error) {
	var l leave.LeaveInterval
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Kind, &l.DaysCount,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepository) Create(ctx context.Context, newLeave leave.LeaveInterval) (leave.LeaveInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, start_date, end_date, kind, days_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + leaveColumns

	l, err := scanLeave(q.QueryRow(ctx, query,
		newLeave.EmployeeID, newLeave.StartDate, newLeave.EndDate, newLeave.Kind, newLeave.DaysCount,
	))
	if err != nil {
		return leave.LeaveInterval{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveInterval, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveInterval{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveInterval{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveInterval, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE employee_id = $1 ORDER BY start_date`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func (r *leaveRepository) List(ctx context.Context) ([]leave.LeaveInterval, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+leaveColumns+` FROM leaves ORDER BY start_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.LeaveInterval, error) {
	var leaves []leave.LeaveInterval
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
