// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account. Role is
// part of the registration contract and must be a valid Role value.
type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        entity.Role
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's public information.
type SignupOutput struct {
	User *entity.User
}

// TokenOutput returns the issued bearer token after a successful login.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new account. A duplicate email or phone number
	// fails with an AccountExists error.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and issues an access token. A missing
	// account and a wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// ResolveCurrentUser validates a bearer token and loads the account it
	// identifies. Any token or lookup failure surfaces as Unauthorized.
	ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error)
}
