package services

import (
	"errors"

	"rental-ops/internal/models"

	"github.com/google/uuid"
)

// RequireAdmin rejects every caller that is not an admin.
func RequireAdmin(caller models.Caller) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// AuthorizeStatementRead decides whether caller may see statement. propertyOwnerID is the
// property's current owner, not the owner recorded when the statement was generated.
func AuthorizeStatementRead(caller models.Caller, statement *models.OwnerStatement, propertyOwnerID *uuid.UUID) error {
	switch {
	case caller.IsAdmin():
		return nil
	case caller.IsOwner():
		if propertyOwnerID == nil || *propertyOwnerID != caller.UserID || !statement.IsPublished {
			return ErrStatementAccessDenied
		}
		return nil
	default:
		return ErrForbidden
	}
}

// ScopeStatementFilters narrows a listing to what caller may see.
func ScopeStatementFilters(caller models.Caller, filters models.StatementFilters) (models.StatementFilters, error) {
	switch {
	case caller.IsAdmin():
		return filters, nil
	case caller.IsOwner():
		ownerID := caller.UserID
		filters.OwnerID = &ownerID
		filters.PublishedOnly = true
		return filters, nil
	default:
		return filters, ErrForbidden
	}
}

// concealDenied turns an owner's denial into not-found so hidden and missing statements look the same.
func concealDenied(err error) error {
	if errors.Is(err, ErrStatementAccessDenied) {
		return ErrStatementNotFound
	}
	return err
}
