package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CallerContextKey holds the authenticated models.Caller set by the auth middleware
const CallerContextKey = "caller"

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// callerFromContext returns the authenticated caller with the request's IP and user agent attached
func callerFromContext(c echo.Context) (models.Caller, error) {
	caller, ok := c.Get(CallerContextKey).(models.Caller)
	if !ok || caller.UserID == uuid.Nil {
		return models.Caller{}, ErrUnauthorized
	}

	caller.IPAddress = getClientIP(c)
	caller.UserAgent = c.Request().UserAgent()
	return caller, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// parseUUIDQuery reads an optional UUID query parameter
func parseUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return &id, nil
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter
func parseDateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	date, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return &date, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
