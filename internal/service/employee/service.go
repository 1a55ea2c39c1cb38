package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
	"github.com/karthago-hr/paie-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           postgresql.TxBeginner
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db postgresql.TxBeginner, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{db: db, employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		Matricule:    req.Matricule,
		FullName:     req.FullName,
		CIN:          req.CIN,
		Phone:        req.Phone,
		Email:        req.Email,
		Department:   req.Department,
		JobPosition:  req.JobPosition,
		ContractType: employee.ContractType(req.ContractType),
		BaseSalary:   req.BaseSalary,
		BiometricID:  req.BiometricID,
		ShiftID:      req.ShiftID,
	}

	// Check and insert run in one transaction so a concurrent create of the
	// same matricule cannot slip between them.
	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if _, err := s.employeeRepo.GetByMatricule(txCtx, req.Matricule); err == nil {
			return employee.ErrMatriculeExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to check matricule: %w", err)
		}

		c, err := s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
