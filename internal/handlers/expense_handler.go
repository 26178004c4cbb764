package handlers

import (
	"net/http"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/models"
	"rental-ops/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses returns expenses filtered by property and date window
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Security BearerAuth
// @Param property_id query string false "Property ID"
// @Param from query string false "On or after (YYYY-MM-DD)"
// @Param to query string false "Before (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse{data=dto.ExpenseListResponse}
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters := models.ExpenseFilters{}
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

	expenses, total, err := h.expenseService.List(c.Request().Context(), caller, filters)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewExpenseListResponse(expenses, filters.Offset, filters.Limit, total))
}

// CreateExpense records a property expense
// @Summary Create an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} SuccessResponse{data=dto.ExpenseResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	expense, err := h.expenseService.Create(c.Request().Context(), caller, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.NewExpenseResponse(expense))
}
