package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CustomClaims are the claims carried by access tokens issued after OTP login.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// Caller converts verified claims into the identity threaded through services.
func (c *CustomClaims) Caller() (Caller, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Caller{}, err
	}
	return Caller{UserID: userID, Role: c.Role}, nil
}
