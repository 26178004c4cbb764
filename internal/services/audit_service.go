package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-ops/internal/models"
	"rental-ops/internal/repositories"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

// ValidateAction validates that the action is one of the allowed types
func ValidateAction(action string) error {
	validActions := map[string]bool{
		models.AuditActionLogin:        true,
		models.AuditActionOTPRequested: true,
		models.AuditActionCreate:       true,
		models.AuditActionUpdate:       true,
		models.AuditActionPublish:      true,
		models.AuditActionDelete:       true,
	}

	if !validActions[action] {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidAuditLog, action)
	}
	return nil
}

// Record writes one audit row attributed to caller. System callers are stored without a user.
func (s *AuditService) Record(ctx context.Context, caller models.Caller, action, entityType, entityID string, oldValues, newValues models.JSONBMap) error {
	if err := ValidateAction(action); err != nil {
		return err
	}
	if entityType == "" {
		return fmt.Errorf("%w: entity type is required", ErrInvalidAuditLog)
	}

	log := &models.AuditLog{
		UserID:     caller.AuditUserID(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValues:  oldValues,
		NewValues:  newValues,
		IPAddress:  caller.IPAddress,
		UserAgent:  caller.UserAgent,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// ListForEntity returns the history of one entity, newest first
func (s *AuditService) ListForEntity(ctx context.Context, entityType, entityID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if entityType == "" || entityID == "" {
		return nil, 0, fmt.Errorf("%w: entity type and id are required", ErrInvalidAuditLog)
	}
	return s.repo.GetByEntity(ctx, entityType, entityID, offset, limit)
}

// Cleanup removes audit rows older than retention
func (s *AuditService) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: retention must be positive", ErrInvalidAuditLog)
	}
	return s.repo.DeleteOlderThan(ctx, retention)
}
