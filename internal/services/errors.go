package services

import (
	"errors"
	"fmt"
)

var (
	ErrStatementValidation      = errors.New("invalid statement request")
	ErrDuplicateStatementPeriod = errors.New("a statement already exists for this property and month")
	ErrStatementNotFound        = errors.New("statement not found")
	ErrStatementAccessDenied    = errors.New("statement access denied")
	ErrForbidden                = errors.New("insufficient permissions")
	ErrPropertyNotFound         = errors.New("property not found")
	ErrUnitNotFound             = errors.New("property unit not found")
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrExpenseNotFound          = errors.New("expense not found")
	ErrTaskNotFound             = errors.New("task not found")
	ErrTaskTransition           = errors.New("task status change not allowed")
	ErrValidation               = errors.New("validation failed")
	ErrUnsupportedFormat        = errors.New("unsupported document format")
	ErrRenderFailed             = errors.New("failed to render statement document")
	ErrStorage                  = errors.New("storage failure")
)

// storageError tags a repository failure so handlers can answer 500 without leaking the cause.
func storageError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrStorage, op, err)
}

func validationError(sentinel error, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
