package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"rental-ops/internal/errors"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"
	"rental-ops/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultGeneratedReservations = 12
	defaultGeneratedExpenses     = 6
	maxGeneratedRows             = 500
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	propertyRepo    repositories.PropertyRepositoryInterface
	reservationRepo repositories.ReservationRepositoryInterface
	expenseRepo     repositories.ExpenseRepositoryInterface
	generator       services.ActivityGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	propertyRepo repositories.PropertyRepositoryInterface,
	reservationRepo repositories.ReservationRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	generator services.ActivityGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
		expenseRepo:     expenseRepo,
		generator:       generator,
	}
}

// GenerateActivity fills one property month with fake reservations and expenses
//
// Method: POST /api/v1/dev/properties/:id/generate-activity
// Authentication: Required (admin)
// Environment: Development only
//
// Query parameters:
//   - year, month: the month to fill (default: current month)
//   - reservations: number of reservations (default: 12, max: 500)
//   - expenses: number of expenses (default: 6, max: 500)
func (h *DevHandler) GenerateActivity(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.PropertyInvalidID)
	}

	ctx := c.Request().Context()
	if _, err := h.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if stderrors.Is(err, repositories.ErrPropertyNotFound) {
			return SendError(c, errors.PropertyNotFound)
		}
		return SendDatabaseError(c, err)
	}

	now := models.PeriodFromDate(time.Now())
	period, err := models.NewStatementPeriod(getIntParam(c, "year", now.Year), getIntParam(c, "month", now.Month))
	if err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	reservations, expenses := h.generator.GenerateMonth(
		propertyID,
		period,
		clampCount(getIntParam(c, "reservations", defaultGeneratedReservations)),
		clampCount(getIntParam(c, "expenses", defaultGeneratedExpenses)),
	)

	createdReservations := 0
	for _, r := range reservations {
		if err := h.reservationRepo.Create(ctx, r); err != nil {
			slog.WarnContext(ctx, "skipping generated reservation", "property_id", propertyID, "error", err)
			continue
		}
		createdReservations++
	}

	createdExpenses := 0
	for _, e := range expenses {
		if err := h.expenseRepo.Create(ctx, e); err != nil {
			slog.WarnContext(ctx, "skipping generated expense", "property_id", propertyID, "error", err)
			continue
		}
		createdExpenses++
	}

	return SendSuccess(c, http.StatusOK, map[string]interface{}{
		"property_id":          propertyID,
		"period":               period.String(),
		"reservations_created": createdReservations,
		"expenses_created":     createdExpenses,
	})
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxGeneratedRows {
		return maxGeneratedRows
	}
	return n
}
