package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/metrics"
	"github.com/Skotchmaster/storefront/internal/middleware/auth"
)

type Deps struct {
	Users    *UserHTTP
	Products *ProductHTTP
	Orders   *OrderHTTP
	Guard    *auth.Guard
	Metrics  *metrics.Metrics
	Ready    func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "storefront api") })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready")
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET(metrics.Path, echo.WrapHandler(d.Metrics.Handler()))
	}

	guarded := d.Guard.RequireToken

	e.GET("/users", d.Users.Index, guarded)
	e.POST("/users", d.Users.Create)
	e.POST("/users/authenticate", d.Users.Authenticate)
	e.GET("/users/:id", d.Users.Read, guarded)
	e.PUT("/users/:id", d.Users.Update, guarded)
	e.DELETE("/users/:id", d.Users.Delete, guarded)
	e.GET("/users/:id/orders", d.Users.Orders, guarded)

	e.GET("/products", d.Products.Index)
	e.GET("/products/search", d.Products.Search)
	e.POST("/products/create", d.Products.Create, guarded)
	e.GET("/products/:id", d.Products.Read)
	e.PUT("/products/:id", d.Products.Update)
	e.DELETE("/products/:id", d.Products.Delete)

	e.POST("/order", d.Orders.Create)
	e.GET("/user/:id/order", d.Orders.ByUser, guarded)
	e.DELETE("/order/:id", d.Orders.Delete)
}
