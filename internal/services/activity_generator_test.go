package services

import (
	"testing"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityGenerator_GenerateMonth(t *testing.T) {
	propertyID := uuid.New()
	period, err := models.NewStatementPeriod(2024, 2)
	require.NoError(t, err)

	reservations, expenses := NewActivityGenerator(42).GenerateMonth(propertyID, period, 40, 25)

	require.Len(t, reservations, 40)
	require.Len(t, expenses, 25)

	for _, r := range reservations {
		assert.Equal(t, propertyID, r.PropertyID)
		assert.True(t, period.Contains(r.CheckOut), "check-out %s outside %s", r.CheckOut, period)
		assert.NoError(t, r.Validate())
		assert.True(t, r.TotalAmount.Valid)
		assert.True(t, r.TotalAmount.Decimal.GreaterThan(decimal.Zero))
		assert.True(t, r.TotalAmount.Decimal.Equal(r.TotalAmount.Decimal.Round(2)))
	}

	for _, e := range expenses {
		assert.Equal(t, propertyID, e.PropertyID)
		assert.True(t, period.Contains(e.ExpenseDate), "expense date %s outside %s", e.ExpenseDate, period)
		assert.NoError(t, e.Validate())
	}
}

func TestActivityGenerator_SameSeedSameData(t *testing.T) {
	propertyID := uuid.New()
	period, err := models.NewStatementPeriod(2025, 6)
	require.NoError(t, err)

	a, _ := NewActivityGenerator(7).GenerateMonth(propertyID, period, 5, 0)
	b, _ := NewActivityGenerator(7).GenerateMonth(propertyID, period, 5, 0)

	for i := range a {
		assert.Equal(t, a[i].GuestName, b[i].GuestName)
		assert.True(t, a[i].TotalAmount.Decimal.Equal(b[i].TotalAmount.Decimal))
	}
}

func TestActivityGenerator_Empty(t *testing.T) {
	period, err := models.NewStatementPeriod(2025, 1)
	require.NoError(t, err)

	reservations, expenses := NewActivityGenerator(1).GenerateMonth(uuid.New(), period, 0, 0)
	assert.Empty(t, reservations)
	assert.Empty(t, expenses)
}
