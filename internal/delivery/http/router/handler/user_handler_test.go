package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	signupFunc func(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error)
	loginFunc  func(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error)
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	return f.signupFunc(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	return f.loginFunc(ctx, input)
}

func (f *fakeAuthUsecase) ResolveCurrentUser(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Signup(t *testing.T) {
	uc := &fakeAuthUsecase{
		signupFunc: func(_ context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
			return &usecase.SignupOutput{
				User: &entity.User{
					ID:          uuid.New(),
					FirstName:   input.FirstName,
					LastName:    input.LastName,
					Email:       input.Email,
					PhoneNumber: "380931234567",
					Role:        input.Role,
					IsActive:    true,
				},
			}, nil
		},
	}
	handler := NewUserHandler(uc, slog.Default())

	body := `{"first_name":"Olena","last_name":"Kovalenko","email":"olena@example.com","phone_number":"0931234567","password":"supersecret","role":"admin"}`
	c, rec := newTestContext(t, http.MethodPost, "/user/signup", body)

	require.NoError(t, handler.Signup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "olena@example.com")
	assert.Contains(t, rec.Body.String(), "380931234567")
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Signup_UnknownRole(t *testing.T) {
	handler := NewUserHandler(&fakeAuthUsecase{}, slog.Default())

	body := `{"first_name":"Olena","last_name":"Kovalenko","email":"olena@example.com","phone_number":"0931234567","password":"supersecret","role":"superuser"}`
	c, _ := newTestContext(t, http.MethodPost, "/user/signup", body)

	require.Error(t, handler.Signup(c))
}

func TestUserHandler_Signup_ValidationFailure(t *testing.T) {
	handler := NewUserHandler(&fakeAuthUsecase{}, slog.Default())

	// Password below the minimum length never reaches the use case.
	body := `{"first_name":"Olena","last_name":"Kovalenko","email":"olena@example.com","phone_number":"0931234567","password":"short"}`
	c, _ := newTestContext(t, http.MethodPost, "/user/signup", body)

	err := handler.Signup(c)
	require.Error(t, err)
}

func TestUserHandler_Login(t *testing.T) {
	uc := &fakeAuthUsecase{
		loginFunc: func(_ context.Context, _ *usecase.LoginInput) (*usecase.TokenOutput, error) {
			return &usecase.TokenOutput{AccessToken: "signed-token", TokenType: "bearer"}, nil
		},
	}
	handler := NewUserHandler(uc, slog.Default())

	body := `{"email":"olena@example.com","password":"supersecret"}`
	c, rec := newTestContext(t, http.MethodPost, "/user/login", body)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), "bearer")
}

func TestUserHandler_Me_MissingUser(t *testing.T) {
	handler := NewUserHandler(&fakeAuthUsecase{}, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/user/me", "")

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestParseListOptions(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/products?offset=20&limit=10", "")
	opts := parseListOptions(c)
	require.NotNil(t, opts.Offset)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, 20, *opts.Offset)
	assert.Equal(t, 10, *opts.Limit)

	c, _ = newTestContext(t, http.MethodGet, "/products?offset=abc&limit=-5", "")
	opts = parseListOptions(c)
	assert.Nil(t, opts.Offset)
	assert.Nil(t, opts.Limit)

	c, _ = newTestContext(t, http.MethodGet, "/products", "")
	opts = parseListOptions(c)
	assert.Nil(t, opts.Offset)
	assert.Nil(t, opts.Limit)
}
