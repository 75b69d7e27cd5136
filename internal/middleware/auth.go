package middleware

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/MohammedIhsaan28/Acquisition/internal/auth"
	apperrors "github.com/MohammedIhsaan28/Acquisition/internal/errors"
)

// identityContextKey is where the verified identity lives in the echo context.
const identityContextKey = "identity"

// Identity is the verified identity derived from a valid token. It is trusted
// for the duration of the request only and never persisted.
type Identity struct {
	ID    uint
	Email string
	Role  string
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// Authenticate reads the token from the session cookie and verifies it. A
// missing token halts with 401; a token that fails verification halts with
// 403. On success the verified identity is attached to the request context.
func Authenticate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityContextKey,
		TokenLookup: "cookie:" + auth.CookieName,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.Verify(tokenString)
			if err != nil {
				return nil, err
			}
			return &Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, apperrors.ErrTokenExpired) || errors.Is(err, apperrors.ErrTokenInvalid) {
				c.Logger().Warnf("authentication failed for %s %s: %v", c.Request().Method, c.Path(), err)
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "no authentication token provided",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireRole gates a route on an allow-list of roles, bound at route
// registration time. Authentication must have run first.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHORIZED",
				})
			}

			for _, role := range allowedRoles {
				if identity.Role == role {
					return next(c)
				}
			}

			c.Logger().Warnf("access denied for user %d (role %s) on %s %s",
				identity.ID, identity.Role, c.Request().Method, c.Path())
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "this action requires one of the following roles: " + strings.Join(allowedRoles, ", "),
				Code:  "FORBIDDEN",
			})
		}
	}
}

// CurrentIdentity returns the verified identity attached by Authenticate.
func CurrentIdentity(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*Identity)
	return identity, ok
}
