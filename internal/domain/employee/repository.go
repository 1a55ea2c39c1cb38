package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByMatricule(ctx context.Context, matricule string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}
