package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}
