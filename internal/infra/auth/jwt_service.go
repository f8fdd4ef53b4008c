package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/service"
)

// tokenScope marks a token as usable for authenticating API requests.
const tokenScope = "access_token"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing access tokens.
	defaultTTL time.Duration // Time-to-live applied when the caller passes zero.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := cfg.JWT.AccessTTL
	if ttl == 0 {
		ttl = 15 * time.Minute
	}
	return &jwtService{
		secret:     cfg.JWT.Secret,
		defaultTTL: ttl,
	}, nil
}

// Issue creates a signed token identifying the subject. A zero ttl falls
// back to the configured default; a negative ttl produces an already
// expired token.
func (s *jwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
		"scope": tokenScope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string and returns its subject.
func (s *jwtService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", service.ErrTokenExpired
		}
		return "", service.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", service.ErrTokenInvalid
	}

	if scope, _ := claims["scope"].(string); scope != tokenScope {
		return "", service.ErrTokenInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", service.ErrTokenInvalid
	}

	return subject, nil
}
