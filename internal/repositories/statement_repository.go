package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatementRepository persists owner statements. Rows are immutable apart from publication and notes.
type StatementRepository struct {
	db *gorm.DB
}

func NewStatementRepository(db *gorm.DB) StatementRepositoryInterface {
	return &StatementRepository{db: db}
}

// Create inserts the statement. A second statement for the same property and month fails with ErrDuplicateStatement.
func (r *StatementRepository) Create(ctx context.Context, statement *models.OwnerStatement) error {
	if statement == nil {
		return errors.New("statement cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Property", "Owner").Create(statement).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateStatement
		}
		return fmt.Errorf("failed to create statement: %w", err)
	}

	return nil
}

func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OwnerStatement, error) {
	var statement models.OwnerStatement
	err := r.db.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&statement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement by ID: %w", err)
	}

	return &statement, nil
}

func (r *StatementRepository) ExistsForPeriod(ctx context.Context, propertyID uuid.UUID, month time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OwnerStatement{}).
		Where("property_id = ? AND statement_month = ?", propertyID, models.PeriodFromDate(month).FirstDay()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check statement period: %w", err)
	}
	return count > 0, nil
}

// List returns statements newest period first. Filters with nil values are not applied.
// OwnerID matches the property's current owner, not the owner recorded at generation time.
func (r *StatementRepository) List(ctx context.Context, filters models.StatementFilters) ([]models.OwnerStatement, error) {
	var statements []models.OwnerStatement

	query := r.db.WithContext(ctx).Model(&models.OwnerStatement{})
	if filters.OwnerID != nil {
		query = query.Where("property_id IN (SELECT id FROM properties WHERE owner_id = ?)", *filters.OwnerID)
	}
	if filters.PropertyID != nil {
		query = query.Where("property_id = ?", *filters.PropertyID)
	}
	if filters.Year != nil {
		start := time.Date(*filters.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("statement_month >= ? AND statement_month < ?", start, start.AddDate(1, 0, 0))
	}
	if filters.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	err := query.Preload("Property").
		Order("statement_month DESC, created_at DESC").
		Find(&statements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	return statements, nil
}

// MarkPublished flips is_published once. It reports false when the statement was already published or does not exist.
func (r *StatementRepository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.OwnerStatement{}).
		Where("id = ? AND is_published = ?", id, false).
		Updates(map[string]interface{}{
			"is_published": true,
			"published_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to publish statement: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *StatementRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	result := r.db.WithContext(ctx).Model(&models.OwnerStatement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"notes": notes, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update statement notes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrStatementNotFound
	}
	return nil
}
