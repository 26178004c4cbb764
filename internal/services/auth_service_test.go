package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-ops/internal/config"
	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"
	"rental-ops/internal/repositories/repository_mocks"
	"rental-ops/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *repository_mocks.MockUserRepositoryInterface
	mockOTPRepo  *repository_mocks.MockOTPCodeRepositoryInterface
	mockHasher   *service_mocks.MockCodeHasherInterface
	mockMailer   *service_mocks.MockMailerInterface
	mockTokens   *service_mocks.MockTokenServiceInterface
	mockAudit    *service_mocks.MockAuditServiceInterface
	metrics      *PrometheusMetrics
	service      *AuthService
	ctx          context.Context
	now          time.Time
	user         *models.User
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.mockOTPRepo = repository_mocks.NewMockOTPCodeRepositoryInterface(s.ctrl)
	s.mockHasher = service_mocks.NewMockCodeHasherInterface(s.ctrl)
	s.mockMailer = service_mocks.NewMockMailerInterface(s.ctrl)
	s.mockTokens = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry())
	s.ctx = context.Background()
	s.now = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	s.service = NewAuthService(
		s.mockUserRepo,
		s.mockOTPRepo,
		s.mockHasher,
		s.mockMailer,
		s.mockTokens,
		s.mockAudit,
		s.metrics,
		config.OTPConfig{TTL: 10 * time.Minute, MaxAttempts: 5},
		discardLogger(),
	).(*AuthService)
	s.service.now = func() time.Time { return s.now }

	s.user = &models.User{
		ID:        uuid.New(),
		Email:     "dana@example.com",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Role:      models.RoleOwner,
	}
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) otpCount(event string) float64 {
	return testutil.ToFloat64(s.metrics.otpEvents.WithLabelValues(event))
}

func (s *AuthServiceTestSuite) TestRequestOTP_KnownEmail() {
	expiresAt := s.now.Add(10 * time.Minute)

	gomock.InOrder(
		s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "dana@example.com").Return(s.user, nil),
		s.mockOTPRepo.EXPECT().InvalidateActive(gomock.Any(), "dana@example.com", s.now).Return(nil),
		s.mockHasher.EXPECT().GenerateCode().Return("123456", nil),
		s.mockHasher.EXPECT().HashCode("123456").Return("hashed", nil),
		s.mockOTPRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, code *models.OTPCode) error {
			s.Equal("dana@example.com", code.Email)
			s.Equal("hashed", code.CodeHash)
			s.True(code.ExpiresAt.Equal(expiresAt))
			return nil
		}),
		s.mockMailer.EXPECT().SendLoginCode(gomock.Any(), "dana@example.com", "123456", expiresAt).Return(nil),
	)
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), models.AuditActionOTPRequested, models.AuditEntityUser, s.user.ID.String(), nil, nil).Return(nil)

	resp, err := s.service.RequestOTP(s.ctx, &dto.RequestOTPRequest{Email: "  Dana@Example.com "}, "203.0.113.5", "ua")

	s.Require().NoError(err)
	s.Equal(600, resp.ExpiresInSeconds)
	s.Equal(float64(1), s.otpCount("requested"))
}

func (s *AuthServiceTestSuite) TestRequestOTP_UnknownEmailLooksTheSame() {
	s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, repositories.ErrUserNotFound)

	resp, err := s.service.RequestOTP(s.ctx, &dto.RequestOTPRequest{Email: "ghost@example.com"}, "", "")

	s.Require().NoError(err)
	s.Equal(otpRequestedMessage, resp.Message)
	s.Equal(600, resp.ExpiresInSeconds)
	s.Equal(float64(1), s.otpCount("unknown_email"))
}

func (s *AuthServiceTestSuite) TestRequestOTP_DeliveryFails() {
	s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(s.user, nil)
	s.mockOTPRepo.EXPECT().InvalidateActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockHasher.EXPECT().GenerateCode().Return("123456", nil)
	s.mockHasher.EXPECT().HashCode("123456").Return("hashed", nil)
	s.mockOTPRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMailer.EXPECT().SendLoginCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("relay denied"))

	_, err := s.service.RequestOTP(s.ctx, &dto.RequestOTPRequest{Email: s.user.Email}, "", "")

	s.ErrorContains(err, "relay denied")
	s.Equal(float64(1), s.otpCount("delivery_failed"))
}

func (s *AuthServiceTestSuite) activeCode(attempts int) *models.OTPCode {
	return &models.OTPCode{
		ID:        uuid.New(),
		Email:     s.user.Email,
		CodeHash:  "hashed",
		ExpiresAt: s.now.Add(5 * time.Minute),
		Attempts:  attempts,
	}
}

func (s *AuthServiceTestSuite) TestVerifyOTP_Success() {
	code := s.activeCode(0)
	expiresAt := s.now.Add(8 * time.Hour)

	s.mockOTPRepo.EXPECT().GetLatestActive(gomock.Any(), s.user.Email, s.now).Return(code, nil)
	s.mockHasher.EXPECT().CompareCode("hashed", "123456").Return(true)
	s.mockOTPRepo.EXPECT().MarkUsed(gomock.Any(), code.ID, s.now).Return(true, nil)
	s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), s.user.Email).Return(s.user, nil)
	s.mockTokens.EXPECT().GenerateAccessToken(s.user).Return("signed.jwt.token", expiresAt, nil)
	s.mockUserRepo.EXPECT().UpdateLastLogin(gomock.Any(), s.user.ID, s.now).Return(errors.New("deadlock"))
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), models.AuditActionLogin, models.AuditEntityUser, s.user.ID.String(), nil, nil).Return(nil)

	resp, err := s.service.VerifyOTP(s.ctx, &dto.VerifyOTPRequest{Email: s.user.Email, Code: "123456"}, "", "")

	s.Require().NoError(err)
	s.Equal("signed.jwt.token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.True(resp.ExpiresAt.Equal(expiresAt))
	s.Equal(s.user.ID.String(), resp.User.ID)
	s.Equal(float64(1), s.otpCount("verified"))
}

func (s *AuthServiceTestSuite) TestVerifyOTP_WrongCodeCountsAttempt() {
	code := s.activeCode(2)

	s.mockOTPRepo.EXPECT().GetLatestActive(gomock.Any(), s.user.Email, s.now).Return(code, nil)
	s.mockHasher.EXPECT().CompareCode("hashed", "000000").Return(false)
	s.mockOTPRepo.EXPECT().IncrementAttempts(gomock.Any(), code.ID).Return(nil)

	_, err := s.service.VerifyOTP(s.ctx, &dto.VerifyOTPRequest{Email: s.user.Email, Code: "000000"}, "", "")

	s.ErrorIs(err, ErrInvalidOTP)
}

func (s *AuthServiceTestSuite) TestVerifyOTP_Locked() {
	s.mockOTPRepo.EXPECT().GetLatestActive(gomock.Any(), s.user.Email, s.now).Return(s.activeCode(5), nil)

	_, err := s.service.VerifyOTP(s.ctx, &dto.VerifyOTPRequest{Email: s.user.Email, Code: "123456"}, "", "")

	s.ErrorIs(err, ErrTooManyOTPAttempts)
	s.Equal(float64(1), s.otpCount("locked"))
}

func (s *AuthServiceTestSuite) TestVerifyOTP_NoActiveCode() {
	s.mockOTPRepo.EXPECT().GetLatestActive(gomock.Any(), s.user.Email, s.now).Return(nil, repositories.ErrOTPCodeNotFound)

	_, err := s.service.VerifyOTP(s.ctx, &dto.VerifyOTPRequest{Email: s.user.Email, Code: "123456"}, "", "")

	s.ErrorIs(err, ErrInvalidOTP)
}

func (s *AuthServiceTestSuite) TestVerifyOTP_ConsumedConcurrently() {
	code := s.activeCode(0)
	s.mockOTPRepo.EXPECT().GetLatestActive(gomock.Any(), s.user.Email, s.now).Return(code, nil)
	s.mockHasher.EXPECT().CompareCode("hashed", "123456").Return(true)
	s.mockOTPRepo.EXPECT().MarkUsed(gomock.Any(), code.ID, s.now).Return(false, nil)

	_, err := s.service.VerifyOTP(s.ctx, &dto.VerifyOTPRequest{Email: s.user.Email, Code: "123456"}, "", "")

	s.ErrorIs(err, ErrInvalidOTP)
}

func (s *AuthServiceTestSuite) TestGetProfile() {
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), s.user.ID).Return(s.user, nil)
	user, err := s.service.GetProfile(s.ctx, s.user.ID)
	s.Require().NoError(err)
	s.Equal(s.user.Email, user.Email)

	missing := uuid.New()
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, repositories.ErrUserNotFound)
	_, err = s.service.GetProfile(s.ctx, missing)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *AuthServiceTestSuite) TestEnsureAdmin_Creates() {
	s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ops@example.com").Return(nil, repositories.ErrUserNotFound)
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *models.User) error {
		s.Equal(models.RoleAdmin, user.Role)
		user.ID = uuid.New()
		return nil
	})
	s.mockAudit.EXPECT().Record(gomock.Any(), models.SystemCaller(), models.AuditActionCreate, models.AuditEntityUser, gomock.Any(), nil, gomock.Any()).Return(nil)

	user, created, err := s.service.EnsureAdmin(s.ctx, "Ops@Example.com", "Ops", "Team")

	s.Require().NoError(err)
	s.True(created)
	s.Equal("ops@example.com", user.Email)
}

func (s *AuthServiceTestSuite) TestEnsureAdmin_Existing() {
	s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), s.user.Email).Return(s.user, nil)

	user, created, err := s.service.EnsureAdmin(s.ctx, s.user.Email, "x", "y")

	s.Require().NoError(err)
	s.False(created)
	s.Equal(s.user.ID, user.ID)
}

func (s *AuthServiceTestSuite) TestEnsureAdmin_Invalid() {
	s.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "not-an-email").Return(nil, repositories.ErrUserNotFound)

	_, _, err := s.service.EnsureAdmin(s.ctx, "not-an-email", "Ops", "Team")

	s.ErrorIs(err, ErrValidation)
}
