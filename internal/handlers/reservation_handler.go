package handlers

import (
	"net/http"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/models"
	"rental-ops/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService services.ReservationServiceInterface
}

func NewReservationHandler(reservationService services.ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ListReservations returns reservations filtered by property and check-out window
// @Summary List reservations
// @Tags Reservations
// @Produce json
// @Security BearerAuth
// @Param property_id query string false "Property ID"
// @Param from query string false "Check-out on or after (YYYY-MM-DD)"
// @Param to query string false "Check-out before (YYYY-MM-DD)"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {object} SuccessResponse{data=dto.ReservationListResponse}
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters := models.ReservationFilters{}
	if filters.PropertyID, err = parseUUIDQuery(c, "property_id"); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	if filters.From, err = parseDateQuery(c, "from"); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if filters.To, err = parseDateQuery(c, "to"); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	filters.Offset, filters.Limit = pageParams(c)

	reservations, total, err := h.reservationService.List(c.Request().Context(), caller, filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewReservationListResponse(reservations, filters.Offset, filters.Limit, total))
}

// CreateReservation records a stay
// @Summary Create a reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} SuccessResponse{data=dto.ReservationResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001 or PROPERTY_003"
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	reservation, err := h.reservationService.Create(c.Request().Context(), caller, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.NewReservationResponse(reservation))
}

func pageParams(c echo.Context) (offset, limit int) {
	offset = getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit = getIntParam(c, "limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit
}
