package handlers

import (
	"log/slog"
	"net/http"

	"rental-ops/internal/errors"
	"rental-ops/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED RESPONSE PATTERNS
//
// Success bodies are {"success": true, "data": ...}; use SendSuccess.
//
// Error bodies are {"success": false, "error": {...}}:
//
// 1. SendError - client and business errors (4xx)
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Authorization errors: SendError(c, errors.AuthInsufficientPermission)
//    - Not found errors: SendError(c, errors.StatementNotFound)
//
// 2. SendSystemError - system/internal errors (500). The cause is logged, never returned.
//
// 3. handleServiceError - maps service sentinels to one of the above.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess writes data wrapped in the success envelope
func SendSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError hides err behind SYSTEM_001 and logs it with the trace ID
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError hides a storage failure behind SYSTEM_002
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapDatabaseError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "storage failure",
		"trace_id", traceID,
		"path", c.Path(),
		"error", internal)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports request validation failures as VALIDATION_001 with field details
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationErrorFromList(validation.FormatErrors(err), getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}
