package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Create(ctx, repo.NewOrder{UserID: req.UserID, Products: req.Products})
	if err != nil {
		return failure(l, "create_order_error", err)
	}
	l.Info("create_order_success", "order_id", order.ID, "user_id", order.UserID)
	return c.JSON(http.StatusOK, order)
}

// ByUser reads the status from the JSON body or the query string.
func (h *OrderHTTP) ByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.by_user")

	userID, err := parseID(c, l, "order_by_user_error")
	if err != nil {
		return err
	}
	var req transport.OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("order_by_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.GetOrderByUser(ctx, userID, req.Status)
	if err != nil {
		return failure(l, "order_by_user_error", err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete")

	id, err := parseID(c, l, "delete_order_error")
	if err != nil {
		return err
	}
	order, err := h.Svc.DeleteOrder(ctx, id)
	if err != nil {
		return failure(l, "delete_order_error", err)
	}
	l.Info("delete_order_success", "order_id", id)
	return c.JSON(http.StatusOK, order)
}
