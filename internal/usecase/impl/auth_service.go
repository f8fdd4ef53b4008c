// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the account registration process.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	phone, err := normalizePhoneNumber(input.PhoneNumber)
	if err != nil {
		srv.log(ctx).Warn("Phone validation failed during signup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	// Lookup first keeps the common duplicate path cheap. The unique
	// constraint still guards against a concurrent signup racing past
	// this check.
	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing account")
	}
	if existing != nil {
		srv.log(ctx).Warn("Signup for already registered email", slog.String("email", input.Email))

		return nil, domainerrors.ErrAccountExists.WrapMessage("email already registered")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  phone,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		IsActive:     true,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login orchestrates the login process and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.Email, 0)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.TokenOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// ResolveCurrentUser validates the token and loads the account it identifies.
// Runs on every authenticated request.
func (srv *authService) ResolveCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	email, err := srv.tokenService.Validate(token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "token validation failed")
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token validation failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Valid token for missing account", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// normalizePhoneNumber reduces the input to digits and stores the number in
// the "38xxxxxxxxxx" form. A bare 10-digit local number gets the country
// prefix added.
func normalizePhoneNumber(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	switch number := digits.String(); {
	case len(number) == 10:
		return "38" + number, nil
	case len(number) == 12 && strings.HasPrefix(number, "38"):
		return number, nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("phone number must contain 10 digits")
	}
}
