package handlers

import (
	stderrors "errors"

	"rental-ops/internal/errors"
	"rental-ops/internal/services"

	"github.com/labstack/echo/v4"
)

// handleServiceError maps service sentinels to API error codes. Anything unrecognised is a
// system error and its detail stays in the log.
func handleServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrStatementValidation),
		stderrors.Is(err, services.ErrValidation):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validationDetail(err)))
	case stderrors.Is(err, services.ErrDuplicateStatementPeriod):
		return SendError(c, errors.StatementDuplicatePeriod)
	case stderrors.Is(err, services.ErrStatementNotFound),
		stderrors.Is(err, services.ErrStatementAccessDenied):
		return SendError(c, errors.StatementNotFound)
	case stderrors.Is(err, services.ErrPropertyNotFound):
		return SendError(c, errors.PropertyNotFound)
	case stderrors.Is(err, services.ErrUnitNotFound):
		return SendError(c, errors.PropertyUnitNotFound)
	case stderrors.Is(err, services.ErrReservationNotFound):
		return SendError(c, errors.ReservationNotFound)
	case stderrors.Is(err, services.ErrExpenseNotFound):
		return SendError(c, errors.ExpenseNotFound)
	case stderrors.Is(err, services.ErrTaskNotFound):
		return SendError(c, errors.TaskNotFound)
	case stderrors.Is(err, services.ErrTaskTransition):
		return SendError(c, errors.TaskInvalidTransition, errors.WithDetails(validationDetail(err)))
	case stderrors.Is(err, services.ErrForbidden):
		return SendError(c, errors.AuthInsufficientPermission)
	case stderrors.Is(err, services.ErrUnsupportedFormat):
		return SendError(c, errors.StatementUnsupportedFormat)
	case stderrors.Is(err, services.ErrRenderFailed):
		return SendError(c, errors.StatementRenderFailed)
	case stderrors.Is(err, services.ErrInvalidOTP):
		return SendError(c, errors.AuthInvalidCode)
	case stderrors.Is(err, services.ErrTooManyOTPAttempts):
		return SendError(c, errors.AuthTooManyAttempts)
	case stderrors.Is(err, services.ErrStorage):
		return SendDatabaseError(c, err)
	default:
		return SendSystemError(c, err)
	}
}

// validationDetail returns the cause after the sentinel prefix, e.g. "check-out must be after check-in".
func validationDetail(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 1 {
			return errs[len(errs)-1].Error()
		}
	}
	return err.Error()
}
