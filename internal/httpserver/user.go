package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Index(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.index")

	users, err := h.Svc.List(ctx)
	if err != nil {
		return failure(l, "index_users_error", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.Register(ctx, repo.NewUser{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return failure(l, "create_user_error", err)
	}
	return c.JSON(http.StatusOK, token)
}

func (h *UserHTTP) Authenticate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.authenticate")

	var req transport.AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("authenticate_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return failure(l, "authenticate_error", err)
	}
	return c.JSON(http.StatusOK, transport.AuthenticateResponse{ID: res.ID, Token: res.Token})
}

func (h *UserHTTP) Read(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.read")

	id, err := parseID(c, l, "read_user_error")
	if err != nil {
		return err
	}
	user, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(l, "read_user_error", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := parseID(c, l, "update_user_error")
	if err != nil {
		return err
	}
	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Update(ctx, repo.UserUpdate{
		ID:        id,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return failure(l, "update_user_error", err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := parseID(c, l, "delete_user_error")
	if err != nil {
		return err
	}
	if _, err := h.Svc.Delete(ctx, id); err != nil {
		return failure(l, "delete_user_error", err)
	}
	l.Info("delete_user_success", "user_id", id)
	return c.String(http.StatusOK, fmt.Sprintf("Deleted user with id: %d", id))
}

func (h *UserHTTP) Orders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.orders")

	id, err := parseID(c, l, "list_orders_error")
	if err != nil {
		return err
	}
	orders, err := h.Svc.ListOrders(ctx, id)
	if err != nil {
		return failure(l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, orders)
}
