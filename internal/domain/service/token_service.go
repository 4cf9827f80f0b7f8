package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"library/internal/domain/entity"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user. An empty role is allowed.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken verifies the signature and expiry of a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
