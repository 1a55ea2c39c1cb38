package employee

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthago-hr/paie-backend-go/internal/domain/employee"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	tx *fakeTx
}

func (b *fakeTxBeginner) BeginTx(_ context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

type stubEmployeeRepo struct {
	byMatricule map[string]employee.Employee
	created     []employee.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-1"
	r.byMatricule[e.Matricule] = e
	r.created = append(r.created, e)
	return e, nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range r.byMatricule {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetByMatricule(_ context.Context, matricule string) (employee.Employee, error) {
	e, ok := r.byMatricule[matricule]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.byMatricule {
		out = append(out, e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func newTestService() (employee.EmployeeService, *stubEmployeeRepo, *fakeTx) {
	tx := &fakeTx{}
	repo := &stubEmployeeRepo{byMatricule: make(map[string]employee.Employee)}
	return NewEmployeeService(&fakeTxBeginner{tx: tx}, repo), repo, tx
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Matricule:    "M-0001",
		FullName:     "Ahmed Ben Salah",
		ContractType: "CDI",
	}
}

func TestCreateEmployee_CommitsTransaction(t *testing.T) {
	svc, repo, tx := newTestService()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "M-0001", created.Matricule)
	assert.Len(t, repo.created, 1)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestCreateEmployee_DuplicateMatriculeRollsBack(t *testing.T) {
	svc, repo, tx := newTestService()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	tx.committed = false
	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrMatriculeExists)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	assert.Len(t, repo.created, 1)
}

func TestCreateEmployee_RejectsInvalidRequest(t *testing.T) {
	svc, repo, tx := newTestService()

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Matricule:    "M-0002",
		FullName:     "",
		ContractType: "CDI",
	})
	require.Error(t, err)

	// Validation fails before any transaction is opened.
	assert.Empty(t, repo.created)
	assert.False(t, tx.committed)
	assert.False(t, tx.rolledBack)
}
