package auth

import (
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.AccessTTL = 15 * time.Minute

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.Issue("user@example.com", time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	// Zero ttl falls back to the configured default, so the token is valid.
	token, err := jwtService.Issue("user@example.com", 0)
	require.NoError(t, err)

	subject, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.Issue("user@example.com", -time.Minute)
	require.NoError(t, err)

	subject, err := jwtService.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Empty(t, subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	subject, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Empty(t, subject)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := jwtService.Issue("user@example.com", time.Minute)
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "a") {
		tampered += "b"
	} else {
		tampered += "a"
	}

	subject, err := jwtService.Validate(tampered)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Empty(t, subject)
}

func TestJWTService_WrongScope(t *testing.T) {
	cfg := testConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Token signed with the right secret but the wrong scope claim.
	claims := jwt.MapClaims{
		"sub":   "user@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Minute).Unix(),
		"scope": "refresh_token",
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	subject, err := jwtService.Validate(raw)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Empty(t, subject)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
