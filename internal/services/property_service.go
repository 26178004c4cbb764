package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PropertyService struct {
	propertyRepo repositories.PropertyRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	auditService AuditServiceInterface
	logger       *slog.Logger
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) PropertyServiceInterface {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		auditService: auditService,
		logger:       logger,
	}
}

func (s *PropertyService) Create(ctx context.Context, caller models.Caller, req *dto.CreatePropertyRequest) (*models.Property, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	property := &models.Property{
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		City:     strings.TrimSpace(req.City),
		Bedrooms: req.Bedrooms,
		IsActive: true,
	}
	if req.IsActive != nil {
		property.IsActive = *req.IsActive
	}

	if req.Bathrooms != "" {
		bathrooms, err := decimal.NewFromString(req.Bathrooms)
		if err != nil {
			return nil, validationError(ErrValidation, fmt.Errorf("bathrooms must be a number"))
		}
		property.Bathrooms = bathrooms
	}

	if req.OwnerID != "" {
		ownerID, err := s.resolveOwner(ctx, req.OwnerID)
		if err != nil {
			return nil, err
		}
		property.OwnerID = &ownerID
	}

	if err := property.Validate(); err != nil {
		return nil, validationError(ErrValidation, err)
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, storageError("create property", err)
	}

	snapshot := models.JSONBMap{"name": property.Name, "city": property.City}
	if property.OwnerID != nil {
		snapshot["owner_id"] = property.OwnerID.String()
	}
	if err := s.auditService.Record(ctx, caller, models.AuditActionCreate, models.AuditEntityProperty, property.ID.String(), nil, snapshot); err != nil {
		s.logger.WarnContext(ctx, "failed to write property audit log", "property_id", property.ID, "error", err)
	}

	return property, nil
}

// Get returns a property. Owners only see their own.
func (s *PropertyService) Get(ctx context.Context, caller models.Caller, id uuid.UUID) (*models.Property, error) {
	if !caller.IsAdmin() && !caller.IsOwner() {
		return nil, ErrForbidden
	}

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	if caller.IsOwner() && !property.IsOwnedBy(caller.UserID) {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

// List returns every property for admins and the caller's own properties for owners.
func (s *PropertyService) List(ctx context.Context, caller models.Caller, activeOnly bool) ([]models.Property, error) {
	filters := models.PropertyFilters{ActiveOnly: activeOnly}
	switch {
	case caller.IsAdmin():
	case caller.IsOwner():
		ownerID := caller.UserID
		filters.OwnerID = &ownerID
	default:
		return nil, ErrForbidden
	}

	properties, err := s.propertyRepo.List(ctx, filters)
	if err != nil {
		return nil, storageError("list properties", err)
	}
	return properties, nil
}

func (s *PropertyService) AddUnit(ctx context.Context, caller models.Caller, propertyID uuid.UUID, req *dto.CreateUnitRequest) (*models.PropertyUnit, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	unit := &models.PropertyUnit{PropertyID: propertyID, Name: strings.TrimSpace(req.Name)}
	if unit.Name == "" {
		return nil, validationError(ErrValidation, errors.New("unit name is required"))
	}

	if err := s.propertyRepo.CreateUnit(ctx, unit); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("create property unit", err)
	}

	if err := s.auditService.Record(ctx, caller, models.AuditActionUpdate, models.AuditEntityProperty, propertyID.String(),
		nil, models.JSONBMap{"unit_id": unit.ID.String(), "unit_name": unit.Name}); err != nil {
		s.logger.WarnContext(ctx, "failed to write property audit log", "property_id", propertyID, "error", err)
	}

	return unit, nil
}

// resolveOwner checks that id names an existing user with the owner role.
func (s *PropertyService) resolveOwner(ctx context.Context, id string) (uuid.UUID, error) {
	ownerID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, validationError(ErrValidation, errors.New("owner_id must be a valid UUID"))
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return uuid.Nil, validationError(ErrValidation, errors.New("owner does not exist"))
		}
		return uuid.Nil, storageError("load owner", err)
	}
	if !owner.IsOwner() {
		return uuid.Nil, validationError(ErrValidation, errors.New("owner_id must reference a user with the owner role"))
	}

	return ownerID, nil
}
