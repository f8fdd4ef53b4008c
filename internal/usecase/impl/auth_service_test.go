package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(userRepo *fakeUserRepo, hasher *fakeHasher, tokens *fakeTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       slog.Default(),
	})
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := newAuthService(&fakeUserRepo{}, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane@example.com",
			PhoneNumber: "0931234567",
			Password:    "s3cret",
			Role:        entity.RoleUser,
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.NotEqual(t, uuid.Nil, out.User.ID)
		assert.Equal(t, "380931234567", out.User.PhoneNumber)
		assert.Equal(t, "hashed:s3cret", out.User.PasswordHash)
		assert.Equal(t, entity.RoleUser, out.User.Role)
		assert.True(t, out.User.IsActive)
	})

	t.Run("SuppliedRolePersisted", func(t *testing.T) {
		var created *entity.User
		userRepo := &fakeUserRepo{
			createFn: func(_ context.Context, user *entity.User) error {
				user.ID = uuid.New()
				created = user

				return nil
			},
		}
		srv := newAuthService(userRepo, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "admin@example.com",
			PhoneNumber: "0931234567",
			Password:    "s3cret",
			Role:        entity.RoleAdmin,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, entity.RoleAdmin, created.Role)
		assert.Equal(t, entity.RoleAdmin, out.User.Role)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		srv := newAuthService(&fakeUserRepo{}, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:       "jane@example.com",
			PhoneNumber: "0931234567",
			Password:    "s3cret",
			Role:        entity.Role("superuser"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Nil(t, out)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: uuid.New(), Email: email}, nil
			},
		}
		srv := newAuthService(userRepo, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:       "jane@example.com",
			PhoneNumber: "0931234567",
			Password:    "s3cret",
			Role:        entity.RoleUser,
		})
		assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
		assert.Nil(t, out)
	})

	t.Run("BadPhone", func(t *testing.T) {
		srv := newAuthService(&fakeUserRepo{}, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:       "jane@example.com",
			PhoneNumber: "12345",
			Password:    "s3cret",
			Role:        entity.RoleUser,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Nil(t, out)
	})
}

func TestAuthService_Login(t *testing.T) {
	account := &entity.User{
		ID:           uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: "hashed:s3cret",
	}
	userRepo := &fakeUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			if email == account.Email {
				return account, nil
			}

			return nil, repository.ErrUserNotFound
		},
	}

	t.Run("Success", func(t *testing.T) {
		srv := newAuthService(userRepo, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "jane@example.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, "token-for-jane@example.com", out.AccessToken)
		assert.Equal(t, "bearer", out.TokenType)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		srv := newAuthService(userRepo, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "ghost@example.com",
			Password: "s3cret",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Nil(t, out)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		srv := newAuthService(userRepo, &fakeHasher{}, &fakeTokenService{})

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Nil(t, out)
	})
}

func TestAuthService_ResolveCurrentUser(t *testing.T) {
	account := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	userRepo := &fakeUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			if email == account.Email {
				return account, nil
			}

			return nil, repository.ErrUserNotFound
		},
	}

	t.Run("Success", func(t *testing.T) {
		tokens := &fakeTokenService{
			validateFn: func(string) (string, error) { return account.Email, nil },
		}
		srv := newAuthService(userRepo, &fakeHasher{}, tokens)

		user, err := srv.ResolveCurrentUser(context.Background(), "valid-token")
		require.NoError(t, err)
		assert.Equal(t, account.ID, user.ID)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokens := &fakeTokenService{
			validateFn: func(string) (string, error) { return "", service.ErrTokenExpired },
		}
		srv := newAuthService(userRepo, &fakeHasher{}, tokens)

		user, err := srv.ResolveCurrentUser(context.Background(), "expired-token")
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
		assert.Nil(t, user)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		tokens := &fakeTokenService{
			validateFn: func(string) (string, error) { return "", service.ErrTokenInvalid },
		}
		srv := newAuthService(userRepo, &fakeHasher{}, tokens)

		user, err := srv.ResolveCurrentUser(context.Background(), "garbage")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Nil(t, user)
	})

	t.Run("MissingAccount", func(t *testing.T) {
		tokens := &fakeTokenService{
			validateFn: func(string) (string, error) { return "ghost@example.com", nil },
		}
		srv := newAuthService(userRepo, &fakeHasher{}, tokens)

		user, err := srv.ResolveCurrentUser(context.Background(), "valid-token")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.Nil(t, user)
	})
}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "BareLocal", input: "0931234567", want: "380931234567"},
		{name: "Formatted", input: "(093) 123-45-67", want: "380931234567"},
		{name: "AlreadyPrefixed", input: "380931234567", want: "380931234567"},
		{name: "PlusPrefixed", input: "+380931234567", want: "380931234567"},
		{name: "TooShort", input: "12345", wantErr: true},
		{name: "TooLong", input: "3809312345678", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhoneNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
