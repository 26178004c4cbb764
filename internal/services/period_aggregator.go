package services

import (
	"context"
	"errors"

	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
)

// PeriodAggregator sums a property's revenue and expenses over one calendar month.
// Revenue is attributed to the month of check-out. Both sums include every row in the window,
// billable or not.
type PeriodAggregator struct {
	propertyRepo    repositories.PropertyRepositoryInterface
	reservationRepo repositories.ReservationRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
}

func NewPeriodAggregator(
	propertyRepo repositories.PropertyRepositoryInterface,
	reservationRepo repositories.ReservationRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
) PeriodAggregatorInterface {
	return &PeriodAggregator{
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
		expenseRepo:     expenseRepo,
	}
}

// Aggregate fails as a whole when either sum cannot be computed.
func (a *PeriodAggregator) Aggregate(ctx context.Context, propertyID uuid.UUID, period models.StatementPeriod) (*models.PeriodTotals, error) {
	if _, err := a.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	from, to := period.FirstDay(), period.NextMonthStart()

	revenue, err := a.reservationRepo.SumRevenue(ctx, propertyID, from, to)
	if err != nil {
		return nil, storageError("sum revenue", err)
	}

	expenses, err := a.expenseRepo.SumAmount(ctx, propertyID, from, to)
	if err != nil {
		return nil, storageError("sum expenses", err)
	}

	return &models.PeriodTotals{
		PropertyID:    propertyID,
		Period:        period,
		TotalRevenue:  revenue.Round(2),
		TotalExpenses: expenses.Round(2),
	}, nil
}
