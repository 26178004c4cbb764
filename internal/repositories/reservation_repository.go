package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// belongsToProperty matches reservations booked on the property itself or on one of its units.
// It expects the property id twice.
const belongsToProperty = "(r.property_id = ? OR r.unit_id IN (SELECT id FROM property_units WHERE property_id = ?))"

// ReservationRepository handles database operations for reservations
type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepositoryInterface {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	if reservation == nil {
		return errors.New("reservation cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Property", "Unit").Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).Preload("Unit").Where("id = ?", id).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation by ID: %w", err)
	}
	return &reservation, nil
}

func (r *ReservationRepository) List(ctx context.Context, filters models.ReservationFilters) ([]models.Reservation, int64, error) {
	offset, limit := normalizePagination(filters.Offset, filters.Limit)

	var reservations []models.Reservation
	var total int64

	query := r.db.WithContext(ctx).Table("reservations AS r")
	if filters.PropertyID != nil {
		query = query.Where(belongsToProperty, *filters.PropertyID, *filters.PropertyID)
	}
	if filters.From != nil {
		query = query.Where("r.check_out >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("r.check_out < ?", *filters.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	if err := query.Preload("Unit").
		Order("r.check_out DESC, r.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reservations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}

	return reservations, total, nil
}

// SumRevenue totals reservation amounts with check_out in [from, to). NULL amounts count as zero.
func (r *ReservationRepository) SumRevenue(ctx context.Context, propertyID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := r.db.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(r.total_amount), 0) FROM reservations r WHERE "+belongsToProperty+
			" AND r.check_out >= ? AND r.check_out < ?",
		propertyID, propertyID, from, to,
	).Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum reservation revenue: %w", err)
	}

	return total.Round(2), nil
}

// ListLines returns the rental income rows for [from, to) ordered by check-out date.
func (r *ReservationRepository) ListLines(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]models.ReservationLine, error) {
	var lines []models.ReservationLine

	err := r.db.WithContext(ctx).Raw(
		"SELECT r.guest_name, COALESCE(u.name, '') AS unit_name, r.platform, r.check_in, r.check_out, "+
			"COALESCE(r.total_amount, 0) AS amount "+
			"FROM reservations r LEFT JOIN property_units u ON u.id = r.unit_id "+
			"WHERE "+belongsToProperty+" AND r.check_out >= ? AND r.check_out < ? "+
			"ORDER BY r.check_out, r.check_in, r.guest_name, r.id",
		propertyID, propertyID, from, to,
	).Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservation lines: %w", err)
	}

	for i := range lines {
		lines[i].CheckIn = models.DateOnly(lines[i].CheckIn)
		lines[i].CheckOut = models.DateOnly(lines[i].CheckOut)
		lines[i].Amount = lines[i].Amount.Round(2)
	}

	return lines, nil
}
