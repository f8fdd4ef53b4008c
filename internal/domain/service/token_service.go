package service

import (
	"time"

	"github.com/pkg/errors"
)

// Sentinel token validation failures. Both surface to the client as 401, but
// callers can tell an expired token from a forged or malformed one.
var (
	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for tokens with a bad signature, a missing
	// or foreign claim set, or any other structural defect.
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenService defines the interface for issuing and validating signed,
// time-limited bearer tokens carrying a subject claim.
type TokenService interface {
	// Issue creates a signed token for the subject. A zero ttl is replaced
	// by the configured default; a negative ttl produces an already-expired
	// token.
	Issue(subject string, ttl time.Duration) (string, error)

	// Validate verifies signature, expiry, and scope, returning the subject
	// claim. Failures are ErrTokenExpired or ErrTokenInvalid.
	Validate(tokenString string) (string, error)
}
