package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Code",
			code:     AuthInvalidCode,
			expected: "Invalid or expired verification code",
		},
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Property Not Found",
			code:     PropertyNotFound,
			expected: "Property not found",
		},
		{
			name:     "Statement Duplicate Period",
			code:     StatementDuplicatePeriod,
			expected: "Statement already exists for this period",
		},
		{
			name:     "Statement Not Found",
			code:     StatementNotFound,
			expected: "Statement not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// codesByPrefix lists every declared constant grouped by its domain prefix
var codesByPrefix = map[string][]ErrorCode{
	"AUTH_": {
		AuthInvalidCode,
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		AuthInsufficientPermission,
		AuthTooManyAttempts,
	},
	"VALIDATION_": {
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidEmail,
		ValidationInvalidPhone,
		ValidationInvalidDate,
	},
	"PROPERTY_": {
		PropertyNotFound,
		PropertyInvalidID,
		PropertyUnitNotFound,
	},
	"STATEMENT_": {
		StatementNotFound,
		StatementDuplicatePeriod,
		StatementInvalidID,
		StatementUnsupportedFormat,
		StatementRenderFailed,
	},
	"RESERVATION_": {
		ReservationNotFound,
		ReservationInvalidStay,
	},
	"EXPENSE_": {
		ExpenseNotFound,
		ExpenseInvalidAmount,
	},
	"TASK_": {
		TaskNotFound,
		TaskInvalidID,
		TaskInvalidTransition,
	},
	"SYSTEM_": {
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemNotFound,
		SystemRequestTimeout,
	},
}

func declaredCodes() []ErrorCode {
	var codes []ErrorCode
	for _, group := range codesByPrefix {
		codes = append(codes, group...)
	}
	return codes
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range declaredCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of invalid error code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"AUTH_999",
		"ACCOUNT_001",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range declaredCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	for prefix, codes := range codesByPrefix {
		s.Run(prefix, func() {
			for _, code := range codes {
				s.True(strings.HasPrefix(string(code), prefix), "Error code %s should start with %s", code, prefix)
			}
		})
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range declaredCodes() {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}

// TestAllCodes_MatchesDeclared ensures the registry and the constants agree
func (s *CodesTestSuite) TestAllCodes_MatchesDeclared() {
	s.ElementsMatch(declaredCodes(), AllCodes())
}
