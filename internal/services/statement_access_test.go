package services

import (
	"testing"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeStatementRead(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	published := &models.OwnerStatement{ID: uuid.New(), IsPublished: true}
	draft := &models.OwnerStatement{ID: uuid.New()}

	tests := []struct {
		name      string
		caller    models.Caller
		statement *models.OwnerStatement
		owner     *uuid.UUID
		wantErr   error
	}{
		{"admin reads draft", models.Caller{Role: models.RoleAdmin}, draft, &ownerID, nil},
		{"admin reads unmanaged", models.Caller{Role: models.RoleAdmin}, published, nil, nil},
		{"owner reads own published", models.Caller{UserID: ownerID, Role: models.RoleOwner}, published, &ownerID, nil},
		{"owner reads own draft", models.Caller{UserID: ownerID, Role: models.RoleOwner}, draft, &ownerID, ErrStatementAccessDenied},
		{"owner reads other property", models.Caller{UserID: strangerID, Role: models.RoleOwner}, published, &ownerID, ErrStatementAccessDenied},
		{"owner reads unmanaged", models.Caller{UserID: ownerID, Role: models.RoleOwner}, published, nil, ErrStatementAccessDenied},
		{"cleaner", models.Caller{UserID: ownerID, Role: models.RoleCleaner}, published, &ownerID, ErrForbidden},
		{"unknown role", models.Caller{UserID: ownerID, Role: "guest"}, published, &ownerID, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeStatementRead(tt.caller, tt.statement, tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScopeStatementFilters(t *testing.T) {
	ownerID := uuid.New()
	propertyID := uuid.New()
	requested := models.StatementFilters{PropertyID: &propertyID}

	admin, err := ScopeStatementFilters(models.Caller{Role: models.RoleAdmin}, requested)
	require.NoError(t, err)
	assert.Nil(t, admin.OwnerID)
	assert.False(t, admin.PublishedOnly)

	owner, err := ScopeStatementFilters(models.Caller{UserID: ownerID, Role: models.RoleOwner}, requested)
	require.NoError(t, err)
	require.NotNil(t, owner.OwnerID)
	assert.Equal(t, ownerID, *owner.OwnerID)
	assert.True(t, owner.PublishedOnly)
	assert.Equal(t, &propertyID, owner.PropertyID)

	_, err = ScopeStatementFilters(models.Caller{Role: models.RoleCleaner}, requested)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestConcealDenied(t *testing.T) {
	assert.ErrorIs(t, concealDenied(ErrStatementAccessDenied), ErrStatementNotFound)
	assert.ErrorIs(t, concealDenied(ErrForbidden), ErrForbidden)
	assert.NoError(t, concealDenied(nil))
}
