package dto

import (
	"time"

	"rental-ops/internal/models"
)

// Auth Request DTOs

// RequestOTPRequest asks for a one-time login code to be sent to email
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest exchanges a one-time code for an access token
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Auth Response DTOs

// OTPRequestedResponse is returned whether or not the email belongs to a user
type OTPRequestedResponse struct {
	Message          string `json:"message"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// TokenResponse contains the access token issued after OTP verification
type TokenResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresAt   time.Time           `json:"expires_at"`
	User        UserProfileResponse `json:"user"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

func NewUserProfileResponse(u *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}
