package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, newLeave LeaveInterval) (LeaveInterval, error)
	GetByID(ctx context.Context, id string) (LeaveInterval, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveInterval, error)
	List(ctx context.Context) ([]LeaveInterval, error)
	Delete(ctx context.Context, id string) error
}
