package auth

import (
	"testing"
	"time"

	"library/config"
	"library/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL: time.Hour,
			Issuer:         "library",
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokenService.GenerateAccessToken(userID, entity.RoleLibrarian)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "librarian", claims.Role)
	assert.Equal(t, "library", claims.Issuer)
}

func TestJWTService_EmptyRole(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := tokenService.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	cfg := newTestConfig()
	tokenService, err := NewJWTService(cfg)
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_that_does_not_match"
	otherService, err := NewJWTService(other)
	require.NoError(t, err)

	foreign, err := otherService.GenerateAccessToken(uuid.New(), entity.RoleReader)
	require.NoError(t, err)

	expiredService := tokenService.(*jwtService)
	expiredService.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredService.GenerateAccessToken(uuid.New(), entity.RoleReader)
	require.NoError(t, err)
	expiredService.now = time.Now

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    "library",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "unsigned", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokenService.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
