package handlers

import (
	stderrors "errors"
	"net/http"

	"rental-ops/internal/dto"
	"rental-ops/internal/errors"
	"rental-ops/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RequestOTP sends a one-time login code
// @Summary Request a login code
// @Description The response is the same whether or not the email belongs to a user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RequestOTPRequest true "Email"
// @Success 200 {object} SuccessResponse{data=dto.OTPRequestedResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 429 {object} errors.ErrorResponse "SYSTEM_006"
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req dto.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	resp, err := h.authService.RequestOTP(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// VerifyOTP exchanges a login code for an access token
// @Summary Verify a login code
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 429 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req dto.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	resp, err := h.authService.VerifyOTP(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(c.Request().Context(), caller.UserID)
	if err != nil {
		if stderrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.AuthInvalidTokenFormat)
		}
		return handleServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.NewUserProfileResponse(user))
}
