package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/services"
	"rental-ops/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestRequestOTP() {
	s.Run("accepted", func() {
		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/otp/request", `{"email":"dana@example.com"}`, models.Caller{})

		s.authService.EXPECT().
			RequestOTP(gomock.Any(), &dto.RequestOTPRequest{Email: "dana@example.com"}, "203.0.113.9", "handler-test").
			Return(&dto.OTPRequestedResponse{Message: "sent", ExpiresInSeconds: 600}, nil)

		s.NoError(s.handler.RequestOTP(c))
		s.Equal(http.StatusOK, rec.Code)

		var data dto.OTPRequestedResponse
		s.Require().NoError(json.Unmarshal(decode(s.T(), rec).Data, &data))
		s.Equal(600, data.ExpiresInSeconds)
	})

	s.Run("invalid email", func() {
		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/otp/request", `{"email":"dana"}`, models.Caller{})

		s.NoError(s.handler.RequestOTP(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(decode(s.T(), rec).Error.Details, "email: must be a valid email address")
	})

	s.Run("delivery failure", func() {
		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/otp/request", `{"email":"dana@example.com"}`, models.Caller{})
		s.authService.EXPECT().RequestOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrStorage)

		s.NoError(s.handler.RequestOTP(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AuthHandlerSuite) TestVerifyOTP() {
	s.Run("token issued", func() {
		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/otp/verify", `{"email":"dana@example.com","code":"123456"}`, models.Caller{})

		s.authService.EXPECT().VerifyOTP(gomock.Any(), &dto.VerifyOTPRequest{Email: "dana@example.com", Code: "123456"}, gomock.Any(), gomock.Any()).
			Return(&dto.TokenResponse{AccessToken: "jwt", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		s.NoError(s.handler.VerifyOTP(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"access_token":"jwt"`)
	})

	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{name: "short code", body: `{"email":"dana@example.com","code":"123"}`, status: http.StatusBadRequest, code: "VALIDATION_001"},
		{name: "letters in code", body: `{"email":"dana@example.com","code":"12a456"}`, status: http.StatusBadRequest, code: "VALIDATION_001"},
		{name: "wrong code", body: `{"email":"dana@example.com","code":"000000"}`, err: services.ErrInvalidOTP, status: http.StatusUnauthorized, code: "AUTH_001"},
		{name: "locked", body: `{"email":"dana@example.com","code":"000000"}`, err: services.ErrTooManyOTPAttempts, status: http.StatusTooManyRequests, code: "AUTH_006"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/otp/verify", tt.body, models.Caller{})
			if tt.err != nil {
				s.authService.EXPECT().VerifyOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}

			s.NoError(s.handler.VerifyOTP(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, decode(s.T(), rec).Error.Code)
		})
	}
}

func (s *AuthHandlerSuite) TestMe() {
	caller := ownerCaller()

	s.Run("profile", func() {
		c, rec := newRequest(s.e, http.MethodGet, "/api/v1/auth/me", "", caller)
		s.authService.EXPECT().GetProfile(gomock.Any(), caller.UserID).Return(&models.User{
			ID: caller.UserID, Email: "dana@example.com", FirstName: "Dana", Role: models.RoleOwner,
		}, nil)

		s.NoError(s.handler.Me(c))
		s.Equal(http.StatusOK, rec.Code)

		var data dto.UserProfileResponse
		s.Require().NoError(json.Unmarshal(decode(s.T(), rec).Data, &data))
		s.Equal(models.RoleOwner, data.Role)
	})

	s.Run("user deleted after token issued", func() {
		c, rec := newRequest(s.e, http.MethodGet, "/api/v1/auth/me", "", caller)
		s.authService.EXPECT().GetProfile(gomock.Any(), caller.UserID).Return(nil, services.ErrUserNotFound)

		s.NoError(s.handler.Me(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("no caller", func() {
		c, rec := newRequest(s.e, http.MethodGet, "/api/v1/auth/me", "", models.Caller{UserID: uuid.Nil})

		s.NoError(s.handler.Me(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
