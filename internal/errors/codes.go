package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCode            ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthTooManyAttempts        ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Property error codes (PROPERTY_*)
const (
	PropertyNotFound     ErrorCode = "PROPERTY_001"
	PropertyInvalidID    ErrorCode = "PROPERTY_002"
	PropertyUnitNotFound ErrorCode = "PROPERTY_003"
)

// Statement error codes (STATEMENT_*)
const (
	StatementNotFound          ErrorCode = "STATEMENT_001"
	StatementDuplicatePeriod   ErrorCode = "STATEMENT_002"
	StatementInvalidID         ErrorCode = "STATEMENT_003"
	StatementUnsupportedFormat ErrorCode = "STATEMENT_004"
	StatementRenderFailed      ErrorCode = "STATEMENT_005"
)

// Reservation error codes (RESERVATION_*)
const (
	ReservationNotFound    ErrorCode = "RESERVATION_001"
	ReservationInvalidStay ErrorCode = "RESERVATION_002"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound      ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount ErrorCode = "EXPENSE_002"
)

// Task error codes (TASK_*)
const (
	TaskNotFound          ErrorCode = "TASK_001"
	TaskInvalidID         ErrorCode = "TASK_002"
	TaskInvalidTransition ErrorCode = "TASK_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
	SystemRequestTimeout     ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCode:            "Invalid or expired verification code",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthTooManyAttempts:        "Too many verification attempts. Request a new code",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidPhone:  "Invalid phone number format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Property errors
	PropertyNotFound:     "Property not found",
	PropertyInvalidID:    "Invalid property ID format",
	PropertyUnitNotFound: "Property unit not found",

	// Statement errors
	StatementNotFound:          "Statement not found",
	StatementDuplicatePeriod:   "Statement already exists for this period",
	StatementInvalidID:         "Invalid statement ID format",
	StatementUnsupportedFormat: "Unsupported statement document format",
	StatementRenderFailed:      "Failed to render statement document",

	// Reservation errors
	ReservationNotFound:    "Reservation not found",
	ReservationInvalidStay: "Check-out must be after check-in",

	// Expense errors
	ExpenseNotFound:      "Expense not found",
	ExpenseInvalidAmount: "Expense amount must be greater than 0",

	// Task errors
	TaskNotFound:          "Task not found",
	TaskInvalidID:         "Invalid task ID format",
	TaskInvalidTransition: "Task status change not allowed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
	SystemRequestTimeout:     "Request timed out",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// AllCodes returns every registered error code.
func AllCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorMessages))
	for code := range errorMessages {
		codes = append(codes, code)
	}
	return codes
}
