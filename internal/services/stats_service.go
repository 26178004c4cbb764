package services

import (
	"context"

	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatsService builds dashboard summaries from the same monthly aggregation statements use.
// Figures are live and do not depend on statements having been generated.
type StatsService struct {
	propertyRepo repositories.PropertyRepositoryInterface
	taskRepo     repositories.TaskRepositoryInterface
	aggregator   PeriodAggregatorInterface
	feePercent   decimal.Decimal
}

func NewStatsService(
	propertyRepo repositories.PropertyRepositoryInterface,
	taskRepo repositories.TaskRepositoryInterface,
	aggregator PeriodAggregatorInterface,
	feePercent decimal.Decimal,
) StatsServiceInterface {
	return &StatsService{
		propertyRepo: propertyRepo,
		taskRepo:     taskRepo,
		aggregator:   aggregator,
		feePercent:   feePercent,
	}
}

// Summary totals revenue and expenses per property over r. Owners get their own properties,
// admins get every property or one owner's when ownerID is set.
func (s *StatsService) Summary(ctx context.Context, caller models.Caller, r models.StatsRange, ownerID *uuid.UUID) (*models.PortfolioStats, error) {
	filters := models.PropertyFilters{}
	switch {
	case caller.IsAdmin():
		filters.OwnerID = ownerID
	case caller.IsOwner():
		id := caller.UserID
		filters.OwnerID = &id
	default:
		return nil, ErrForbidden
	}

	periods, err := r.Periods()
	if err != nil {
		return nil, validationError(ErrValidation, err)
	}

	properties, err := s.propertyRepo.List(ctx, filters)
	if err != nil {
		return nil, storageError("list properties", err)
	}

	stats := &models.PortfolioStats{
		From:       periods[0].FirstDay(),
		To:         periods[len(periods)-1].NextMonthStart(),
		Properties: make([]models.PropertyStats, 0, len(properties)),
	}

	ids := make([]uuid.UUID, 0, len(properties))
	for _, property := range properties {
		ids = append(ids, property.ID)

		row := models.PropertyStats{
			PropertyID:    property.ID,
			PropertyName:  property.Name,
			TotalRevenue:  decimal.Zero,
			TotalExpenses: decimal.Zero,
			ManagementFee: decimal.Zero,
		}
		for _, period := range periods {
			totals, err := s.aggregator.Aggregate(ctx, property.ID, period)
			if err != nil {
				return nil, err
			}
			row.TotalRevenue = row.TotalRevenue.Add(totals.TotalRevenue)
			row.TotalExpenses = row.TotalExpenses.Add(totals.TotalExpenses)
			row.ManagementFee = row.ManagementFee.Add(CalculateManagementFee(totals.TotalRevenue, s.feePercent))
		}
		stats.Properties = append(stats.Properties, row)
	}

	if stats.OpenTasks, err = s.taskRepo.CountOpen(ctx, ids); err != nil {
		return nil, storageError("count open tasks", err)
	}
	if stats.ScheduledTasks, err = s.taskRepo.CountScheduled(ctx, ids, stats.From, stats.To); err != nil {
		return nil, storageError("count scheduled tasks", err)
	}

	return stats, nil
}
