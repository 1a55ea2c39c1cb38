// Package memory holds in-memory repository implementations used by tests and
// by local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
)

type salaryKey struct {
	employeeID string
	month      string
}

// SalaryRepository is a mutex-guarded salary ledger. Writes to the same
// (employee_id, month) key replace the stored record wholesale.
type SalaryRepository struct {
	mu      sync.RWMutex
	records map[salaryKey]payroll.SalaryRecord
}

func NewSalaryRepository() *SalaryRepository {
	return &SalaryRepository{records: make(map[salaryKey]payroll.SalaryRecord)}
}

func (r *SalaryRepository) Upsert(_ context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := salaryKey{employeeID: record.EmployeeID, month: record.Month}
	now := time.Now()

	if prev, ok := r.records[key]; ok {
		record.ID = prev.ID
		record.CreatedAt = prev.CreatedAt
	} else {
		record.ID = uuid.NewString()
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	r.records[key] = record
	return record, nil
}

func (r *SalaryRepository) GetByEmployeeAndMonth(_ context.Context, employeeID, month string) (payroll.SalaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[salaryKey{employeeID: employeeID, month: month}]
	if !ok {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
	}
	return rec, nil
}

func (r *SalaryRepository) ListByMonth(_ context.Context, month string) ([]payroll.SalaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []payroll.SalaryRecord
	for key, rec := range r.records {
		if key.month == month {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].EmployeeID < records[j].EmployeeID })

	return records, nil
}

func (r *SalaryRepository) Delete(_ context.Context, employeeID, month string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := salaryKey{employeeID: employeeID, month: month}
	if _, ok := r.records[key]; !ok {
		return payroll.ErrSalaryRecordNotFound
	}
	delete(r.records, key)

	return nil
}
