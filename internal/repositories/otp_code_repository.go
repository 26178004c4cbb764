package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-ops/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPCodeRepository stores hashed one-time login codes
type OTPCodeRepository struct {
	db *gorm.DB
}

func NewOTPCodeRepository(db *gorm.DB) OTPCodeRepositoryInterface {
	return &OTPCodeRepository{db: db}
}

func (r *OTPCodeRepository) Create(ctx context.Context, code *models.OTPCode) error {
	if code == nil {
		return errors.New("otp code cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		return fmt.Errorf("failed to create otp code: %w", err)
	}
	return nil
}

// GetLatestActive returns the newest unused, unexpired code for email
func (r *OTPCodeRepository) GetLatestActive(ctx context.Context, email string, now time.Time) (*models.OTPCode, error) {
	var code models.OTPCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND used_at IS NULL AND expires_at > ?", models.NormalizeEmail(email), now).
		Order("created_at DESC").
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOTPCodeNotFound
		}
		return nil, fmt.Errorf("failed to get otp code: %w", err)
	}
	return &code, nil
}

// InvalidateActive consumes every outstanding code for email so only the next one issued is valid
func (r *OTPCodeRepository) InvalidateActive(ctx context.Context, email string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.OTPCode{}).
		Where("email = ? AND used_at IS NULL", models.NormalizeEmail(email)).
		Update("used_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to invalidate otp codes: %w", err)
	}
	return nil
}

func (r *OTPCodeRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&models.OTPCode{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment otp attempts: %w", err)
	}
	return nil
}

// MarkUsed consumes the code. It reports false when another request consumed it first.
func (r *OTPCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.OTPCode{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", at)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark otp code used: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *OTPCodeRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&models.OTPCode{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired otp codes: %w", result.Error)
	}
	return result.RowsAffected, nil
}
