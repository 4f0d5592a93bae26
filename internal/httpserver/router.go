package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sims/internal/middleware"
	"github.com/Skotchmaster/sims/internal/service"
	"github.com/Skotchmaster/sims/pkg/logging"
)

type Deps struct {
	ItemsHandler  *ItemsHTTP
	AuthHandler   *AuthHTTP
	ProfitHandler *ProfitHTTP
	AuthService   *service.AuthService
	JWTSecret     []byte
	Ready         func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				logging.FromContext(c.Request().Context()).Error("ready_error", "status", 503, "error", err)
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	items := e.Group("/items")
	items.POST("", d.ItemsHandler.CreateItem)
	items.GET("", d.ItemsHandler.ListItems)
	items.GET("/search", d.ItemsHandler.FullTextSearch)
	items.PUT("", d.ItemsHandler.UpdateItem)
	items.DELETE("", d.ItemsHandler.DeleteItem)
	e.GET("/item", d.ItemsHandler.SearchItems)

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/login", d.AuthHandler.Login)
	e.POST("/refresh", d.AuthHandler.Refresh)

	authMW := []echo.MiddlewareFunc{middleware.Bearer(d.JWTSecret), middleware.RequireUser(d.AuthService)}
	e.GET("/profit", d.ProfitHandler.Profit, authMW...)
	e.PUT("/sell", d.ItemsHandler.SellItem, authMW...)
}
