package repositories

import (
	"context"
	"errors"
	"fmt"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyRepository handles database operations for properties and units
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepositoryInterface {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property == nil {
		return errors.New("property cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Owner", "Units").Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// GetByID loads a property together with its current owner
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property by ID: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context, filters models.PropertyFilters) ([]models.Property, error) {
	var properties []models.Property

	query := r.db.WithContext(ctx).Model(&models.Property{})
	if filters.OwnerID != nil {
		query = query.Where("owner_id = ?", *filters.OwnerID)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Preload("Units").Order("name").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, nil
}

func (r *PropertyRepository) CreateUnit(ctx context.Context, unit *models.PropertyUnit) error {
	if unit == nil {
		return errors.New("unit cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("Property").Create(unit).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("failed to create property unit: %w", err)
	}

	return nil
}

func (r *PropertyRepository) ListUnits(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyUnit, error) {
	var units []models.PropertyUnit
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("name").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to list property units: %w", err)
	}
	return units, nil
}
