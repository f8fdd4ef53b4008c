package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyCurrentUser is the echo context key holding the resolved account.
const keyCurrentUser = "currentUser"

// AuthMiddleware provides middleware for bearer token authentication and
// role-based authorization. Every authenticated request resolves the
// account behind the token, so a deactivated or deleted account is locked
// out immediately regardless of token expiry.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and loads the current user into
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		user, err := m.authUC.ResolveCurrentUser(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return response.Unauthorized(c, "UNAUTHORIZED", "Account is deactivated")
		}

		c.Set(keyCurrentUser, user)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the current user's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: user information missing")
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
		}
	}
}

// CurrentUser returns the account resolved by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(keyCurrentUser).(*entity.User); ok {
		return user
	}

	return nil
}
