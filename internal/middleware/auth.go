package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sims/internal/service"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/pkg/logging"
	"github.com/Skotchmaster/sims/pkg/tokens"
)

const (
	tokenKey    = "user"
	authUserKey = "auth_user"

	msgInvalidCredentials = "Could not validate credentials"
	msgUserNotFound       = "Could not find user"
)

func unauthorized(c echo.Context, code int, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(code, msg)
}

// Bearer validates the Authorization header against the access secret.
// A missing header is 401; any other token problem is 403.
func Bearer(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    secret,
		SigningMethod: "HS256",
		ContextKey:    tokenKey,
		TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(tokens.AccessClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l := logging.FromContext(c.Request().Context()).With("mw", "bearer")

			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				l.Warn("auth_error", "status", 401, "reason", "missing bearer token")
				return unauthorized(c, http.StatusUnauthorized, "Not authenticated")
			}
			l.Warn("auth_error", "status", 403, "reason", "invalid token", "error", err)
			return unauthorized(c, http.StatusForbidden, msgInvalidCredentials)
		},
	})
}

// RequireUser runs after Bearer and resolves the token subject to a stored
// user.
func RequireUser(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			l := logging.FromContext(ctx).With("mw", "require_user")

			token, ok := c.Get(tokenKey).(*jwt.Token)
			if !ok {
				return unauthorized(c, http.StatusForbidden, msgInvalidCredentials)
			}
			claims, ok := token.Claims.(*tokens.AccessClaims)
			if !ok || claims.Type != tokens.TypeAccess || claims.Subject == "" {
				l.Warn("auth_error", "status", 403, "reason", "not an access token")
				return unauthorized(c, http.StatusForbidden, msgInvalidCredentials)
			}

			user, err := auth.CurrentUser(ctx, claims.Subject)
			if err != nil {
				if errors.Is(err, service.ErrNotFound) {
					l.Warn("auth_error", "status", 404, "reason", "user not found", "error", err)
					return echo.NewHTTPError(http.StatusNotFound, msgUserNotFound)
				}
				l.Error("auth_error", "status", 500, "error", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			c.Set(authUserKey, user)
			c.SetRequest(c.Request().WithContext(logging.With(ctx, "user", user.Email)))
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*transport.AuthUser, bool) {
	u, ok := c.Get(authUserKey).(*transport.AuthUser)
	return u, ok
}
