package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karthago-hr/paie-backend-go/internal/domain/payroll"
)

func TestUpsert_PreservesIDAndCreatedAt(t *testing.T) {
	repo := NewSalaryRepository()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, payroll.SalaryRecord{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		WorkedDays: 26,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.Upsert(ctx, payroll.SalaryRecord{
		EmployeeID: "emp-1",
		Month:      "2025-03",
		WorkedDays: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 20.0, second.WorkedDays)
}

func TestUpsert_ConcurrentWritesSameKey(t *testing.T) {
	repo := NewSalaryRepository()
	ctx := context.Background()

	const writers = 20

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			// Each writer submits a record whose figures are all derived from
			// the same index, so a torn write would mix figures from two
			// writers and break the pairing checked below.
			_, err := repo.Upsert(ctx, payroll.SalaryRecord{
				EmployeeID:  "emp-1",
				Month:       "2025-03",
				WorkedDays:  float64(i),
				WorkedHours: float64(i) * 8,
				NetSalary:   decimal.NewFromInt(int64(i) * 100),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// One record per key, holding exactly one writer's figures.
	records, err := repo.ListByMonth(ctx, "2025-03")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.NotEmpty(t, rec.ID)
	i := rec.WorkedDays
	assert.Equal(t, i*8, rec.WorkedHours)
	assert.True(t, rec.NetSalary.Equal(decimal.NewFromFloat(i*100)),
		fmt.Sprintf("net %s does not match worked days %v", rec.NetSalary, i))

	got, err := repo.GetByEmployeeAndMonth(ctx, "emp-1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := NewSalaryRepository()
	ctx := context.Background()

	err := repo.Delete(ctx, "emp-1", "2025-03")
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)

	_, err = repo.GetByEmployeeAndMonth(ctx, "emp-1", "2025-03")
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)
}
