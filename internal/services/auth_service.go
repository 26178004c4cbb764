package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidOTP         = errors.New("invalid or expired code")
	ErrTooManyOTPAttempts = errors.New("too many attempts, request a new code")
	ErrUserNotFound       = errors.New("user not found")
)

const otpRequestedMessage = "If the email belongs to an account, a login code has been sent"

// AuthService handles OTP login
type AuthService struct {
	userRepo     repositories.UserRepositoryInterface
	otpRepo      repositories.OTPCodeRepositoryInterface
	codeHasher   CodeHasherInterface
	mailer       MailerInterface
	tokenService TokenServiceInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	otpConfig    config.OTPConfig
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	otpRepo repositories.OTPCodeRepositoryInterface,
	codeHasher CodeHasherInterface,
	mailer MailerInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	otpConfig config.OTPConfig,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:     userRepo,
		otpRepo:      otpRepo,
		codeHasher:   codeHasher,
		mailer:       mailer,
		tokenService: tokenService,
		auditService: auditService,
		metrics:      metrics,
		otpConfig:    otpConfig,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// RequestOTP issues a new code and supersedes earlier ones. The response is the same whether or not
// the email belongs to a user.
func (s *AuthService) RequestOTP(ctx context.Context, req *dto.RequestOTPRequest, ipAddress, userAgent string) (*dto.OTPRequestedResponse, error) {
	response := &dto.OTPRequestedResponse{
		Message:          otpRequestedMessage,
		ExpiresInSeconds: int(s.otpConfig.TTL.Seconds()),
	}

	email := models.NormalizeEmail(req.Email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.otpEvent("unknown_email")
			s.logger.InfoContext(ctx, "login code requested for unknown email", "ip_address", ipAddress)
			return response, nil
		}
		return nil, storageError("load user", err)
	}

	now := s.now()
	if err := s.otpRepo.InvalidateActive(ctx, email, now); err != nil {
		return nil, storageError("invalidate login codes", err)
	}

	code, err := s.codeHasher.GenerateCode()
	if err != nil {
		return nil, err
	}

	hash, err := s.codeHasher.HashCode(code)
	if err != nil {
		return nil, err
	}

	otp := &models.OTPCode{
		Email:     email,
		CodeHash:  hash,
		ExpiresAt: now.Add(s.otpConfig.TTL),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return nil, storageError("store login code", err)
	}

	if err := s.mailer.SendLoginCode(ctx, email, code, otp.ExpiresAt); err != nil {
		s.otpEvent("delivery_failed")
		return nil, fmt.Errorf("failed to deliver login code: %w", err)
	}

	s.otpEvent("requested")
	s.audit(ctx, user, models.AuditActionOTPRequested, ipAddress, userAgent)

	return response, nil
}

// VerifyOTP checks the latest active code for the email and exchanges it for an access token.
// Wrong codes count against the code's attempt limit.
func (s *AuthService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	email := models.NormalizeEmail(req.Email)
	now := s.now()

	otp, err := s.otpRepo.GetLatestActive(ctx, email, now)
	if err != nil {
		if errors.Is(err, repositories.ErrOTPCodeNotFound) {
			s.otpEvent("invalid")
			return nil, ErrInvalidOTP
		}
		return nil, storageError("load login code", err)
	}

	if otp.Attempts >= s.otpConfig.MaxAttempts {
		s.otpEvent("locked")
		return nil, ErrTooManyOTPAttempts
	}

	if !s.codeHasher.CompareCode(otp.CodeHash, req.Code) {
		if err := s.otpRepo.IncrementAttempts(ctx, otp.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to count login code attempt", "error", err)
		}
		s.otpEvent("invalid")
		return nil, ErrInvalidOTP
	}

	used, err := s.otpRepo.MarkUsed(ctx, otp.ID, now)
	if err != nil {
		return nil, storageError("consume login code", err)
	}
	if !used {
		s.otpEvent("invalid")
		return nil, ErrInvalidOTP
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, storageError("load user", err)
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.WarnContext(ctx, "failed to update last login", "user_id", user.ID, "error", err)
	}

	s.otpEvent("verified")
	s.audit(ctx, user, models.AuditActionLogin, ipAddress, userAgent)

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.NewUserProfileResponse(user),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storageError("load user", err)
	}
	return user, nil
}

// EnsureAdmin creates an admin user for email unless a user with that email exists.
// It reports whether a user was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, firstName, lastName string) (*models.User, bool, error) {
	email = models.NormalizeEmail(email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, false, storageError("load user", err)
	}

	user := &models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleAdmin,
	}
	if err := user.Validate(); err != nil {
		return nil, false, validationError(ErrValidation, err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			existing, getErr := s.userRepo.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, false, storageError("load user", getErr)
			}
			return existing, false, nil
		}
		return nil, false, storageError("create user", err)
	}

	if err := s.auditService.Record(ctx, models.SystemCaller(), models.AuditActionCreate, models.AuditEntityUser, user.ID.String(),
		nil, models.JSONBMap{"email": user.Email, "role": user.Role}); err != nil {
		s.logger.WarnContext(ctx, "failed to audit admin creation", "user_id", user.ID, "error", err)
	}

	return user, true, nil
}

func (s *AuthService) otpEvent(event string) {
	s.metrics.IncrementCounter("otp_event", map[string]string{"event": event})
}

func (s *AuthService) audit(ctx context.Context, user *models.User, action, ipAddress, userAgent string) {
	caller := models.Caller{UserID: user.ID, Role: user.Role, IPAddress: ipAddress, UserAgent: userAgent}
	if err := s.auditService.Record(ctx, caller, action, models.AuditEntityUser, user.ID.String(), nil, nil); err != nil {
		s.logger.WarnContext(ctx, "failed to write auth audit log",
			"user_id", user.ID,
			"action", action,
			"error", err)
	}
}
