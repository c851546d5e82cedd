package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/search"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) Index(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.index")

	products, err := h.Svc.List(ctx)
	if err != nil {
		return failure(l, "index_products_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Create(ctx, models.Product{Name: req.Name, Price: req.Price, Category: req.Category})
	if err != nil {
		return failure(l, "create_product_error", err)
	}
	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Read(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.read")

	id, err := parseID(c, l, "read_product_error")
	if err != nil {
		return err
	}
	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(l, "read_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c, l, "update_product_error")
	if err != nil {
		return err
	}
	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Update(ctx, models.Product{ID: id, Name: req.Name, Price: req.Price, Category: req.Category})
	if err != nil {
		return failure(l, "update_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c, l, "delete_product_error")
	if err != nil {
		return err
	}
	product, err := h.Svc.Delete(ctx, id)
	if err != nil {
		return failure(l, "delete_product_error", err)
	}
	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	page := search.ParseIntDefault(c.QueryParam("page"), 1)
	size := search.ParseIntDefault(c.QueryParam("size"), search.DefaultPageSize)

	res, err := h.Svc.Search(ctx, c.QueryParam("q"), page, size)
	if err != nil {
		return failure(l, "search_products_error", err)
	}
	return c.JSON(http.StatusOK, res)
}
