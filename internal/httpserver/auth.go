package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sims/internal/service"
	"github.com/Skotchmaster/sims/internal/transport"
	"github.com/Skotchmaster/sims/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("signup_error", "status", 400, "reason", "email taken", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "User with this email already exist")
		case errors.Is(err, service.ErrValidation):
			l.Warn("signup_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("signup_error", "status", 500, "reason", "cannot create user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("signup_success")
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	pair, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			l.Warn("login_error", "status", 400, "reason", "bad credentials", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Incorrect email or password")
		}
		l.Error("login_error", "status", 500, "reason", "cannot issue tokens", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, pair)
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("refresh_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	pair, err := h.Svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			l.Warn("refresh_error", "status", 403, "reason", "invalid refresh token", "error", err)
			return echo.NewHTTPError(http.StatusForbidden, "Could not validate credentials")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("refresh_error", "status", 404, "reason", "user not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Could not find user")
		}
		l.Error("refresh_error", "status", 500, "reason", "cannot issue tokens", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	l.Info("refresh_success")
	return c.JSON(http.StatusOK, pair)
}
