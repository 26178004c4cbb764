package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationService struct {
	reservationRepo repositories.ReservationRepositoryInterface
	propertyRepo    repositories.PropertyRepositoryInterface
	auditService    AuditServiceInterface
	logger          *slog.Logger
}

func NewReservationService(
	reservationRepo repositories.ReservationRepositoryInterface,
	propertyRepo repositories.PropertyRepositoryInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) ReservationServiceInterface {
	return &ReservationService{
		reservationRepo: reservationRepo,
		propertyRepo:    propertyRepo,
		auditService:    auditService,
		logger:          logger,
	}
}

// Create books a stay. A unit, when given, must belong to the property.
func (s *ReservationService) Create(ctx context.Context, caller models.Caller, req *dto.CreateReservationRequest) (*models.Reservation, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}

	reservation, err := reservationFromRequest(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.GetByID(ctx, reservation.PropertyID); err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, storageError("load property", err)
	}

	if reservation.UnitID != nil {
		if err := s.checkUnit(ctx, reservation.PropertyID, *reservation.UnitID); err != nil {
			return nil, err
		}
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, storageError("create reservation", err)
	}

	snapshot := models.JSONBMap{
		"property_id": reservation.PropertyID.String(),
		"check_in":    reservation.CheckIn.Format("2006-01-02"),
		"check_out":   reservation.CheckOut.Format("2006-01-02"),
		"platform":    reservation.Platform,
	}
	if reservation.TotalAmount.Valid {
		snapshot["total_amount"] = reservation.TotalAmount.Decimal.StringFixed(2)
	}
	if err := s.auditService.Record(ctx, caller, models.AuditActionCreate, models.AuditEntityReservation, reservation.ID.String(), nil, snapshot); err != nil {
		s.logger.WarnContext(ctx, "failed to write reservation audit log", "reservation_id", reservation.ID, "error", err)
	}

	return reservation, nil
}

func (s *ReservationService) List(ctx context.Context, caller models.Caller, filters models.ReservationFilters) ([]models.Reservation, int64, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, 0, err
	}
	if filters.From != nil && filters.To != nil && !filters.From.Before(*filters.To) {
		return nil, 0, validationError(ErrValidation, errors.New("from must be before to"))
	}

	reservations, total, err := s.reservationRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, storageError("list reservations", err)
	}
	return reservations, total, nil
}

func (s *ReservationService) checkUnit(ctx context.Context, propertyID, unitID uuid.UUID) error {
	units, err := s.propertyRepo.ListUnits(ctx, propertyID)
	if err != nil {
		return storageError("list property units", err)
	}
	for _, unit := range units {
		if unit.ID == unitID {
			return nil
		}
	}
	return ErrUnitNotFound
}

func reservationFromRequest(req *dto.CreateReservationRequest) (*models.Reservation, error) {
	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, validationError(ErrValidation, errors.New("property_id must be a valid UUID"))
	}

	checkIn, err := models.ParseDate(req.CheckIn)
	if err != nil {
		return nil, validationError(ErrValidation, err)
	}
	checkOut, err := models.ParseDate(req.CheckOut)
	if err != nil {
		return nil, validationError(ErrValidation, err)
	}

	reservation := &models.Reservation{
		PropertyID: propertyID,
		GuestName:  strings.TrimSpace(req.GuestName),
		GuestEmail: strings.TrimSpace(req.GuestEmail),
		GuestPhone: strings.TrimSpace(req.GuestPhone),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Platform:   strings.ToLower(strings.TrimSpace(req.Platform)),
		Notes:      strings.TrimSpace(req.Notes),
	}
	if reservation.Platform == "" {
		reservation.Platform = models.PlatformDirect
	}

	if req.UnitID != "" {
		unitID, err := uuid.Parse(req.UnitID)
		if err != nil {
			return nil, validationError(ErrValidation, errors.New("unit_id must be a valid UUID"))
		}
		reservation.UnitID = &unitID
	}

	if req.TotalAmount != "" {
		amount, err := decimal.NewFromString(req.TotalAmount)
		if err != nil {
			return nil, validationError(ErrValidation, errors.New("total_amount must be a number"))
		}
		reservation.TotalAmount = decimal.NewNullDecimal(amount.Round(2))
	}

	if err := reservation.Validate(); err != nil {
		return nil, validationError(ErrValidation, err)
	}
	return reservation, nil
}
