package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/models"
	"rental-ops/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves dashboard summaries
type StatsHandler struct {
	statsService services.StatsServiceInterface
	now          func() time.Time
}

func NewStatsHandler(statsService services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// GetStats returns revenue, expense and task totals for a year or a month
// @Summary Portfolio statistics
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param year query int false "Calendar year, defaults to the current year"
// @Param month query int false "Month 1-12, omit for the whole year"
// @Param owner_id query string false "Admins only: one owner's properties"
// @Success 200 {object} SuccessResponse{data=dto.StatsResponse}
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	r := models.StatsRange{Year: h.now().Year()}
	if raw := strings.TrimSpace(c.QueryParam("year")); raw != "" {
		if r.Year, err = strconv.Atoi(raw); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("year must be a number"))
		}
	}
	if raw := strings.TrimSpace(c.QueryParam("month")); raw != "" {
		if r.Month, err = strconv.Atoi(raw); err != nil || r.Month == 0 {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("month must be between 1 and 12"))
		}
	}

	ownerID, err := parseUUIDQuery(c, "owner_id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	stats, err := h.statsService.Summary(c.Request().Context(), caller, r, ownerID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewStatsResponse(stats))
}
