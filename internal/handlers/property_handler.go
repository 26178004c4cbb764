package handlers

import (
	"net/http"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PropertyHandler handles property endpoints
type PropertyHandler struct {
	propertyService services.PropertyServiceInterface
}

func NewPropertyHandler(propertyService services.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties returns all properties for admins and the caller's own for owners
// @Summary List properties
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active properties"
// @Success 200 {object} SuccessResponse{data=dto.PropertyListResponse}
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	activeOnly := c.QueryParam("active") == "true"
	properties, err := h.propertyService.List(c.Request().Context(), caller, activeOnly)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewPropertyListResponse(properties))
}

// CreateProperty adds a managed property
// @Summary Create a property
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePropertyRequest true "Property"
// @Success 201 {object} SuccessResponse{data=dto.PropertyResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	property, err := h.propertyService.Create(c.Request().Context(), caller, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.NewPropertyResponse(property))
}

// CreateUnit adds a bookable unit to a property
// @Summary Add a unit to a property
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body dto.CreateUnitRequest true "Unit"
// @Success 201 {object} SuccessResponse{data=dto.UnitResponse}
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001"
// @Router /properties/{id}/units [post]
func (h *PropertyHandler) CreateUnit(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.PropertyInvalidID)
	}

	var req dto.CreateUnitRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	unit, err := h.propertyService.AddUnit(c.Request().Context(), caller, propertyID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.NewUnitResponse(unit))
}
