package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
)

// failure maps a service or store error onto an HTTP error and logs it
// under event.
func failure(l *slog.Logger, event string, err error) error {
	var se *repo.StoreError
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(event, "status", 400, "reason", "invalid input", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(event, "status", 401, "reason", "invalid credentials")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, repo.ErrNotFound):
		l.Warn(event, "status", 404, "reason", "not found", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSearchUnavailable):
		l.Error(event, "status", 503, "reason", "search unavailable", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search unavailable")
	case errors.As(err, &se):
		l.Warn(event, "status", 400, "reason", se.Op, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, se.Error())
	default:
		l.Error(event, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

func parseID(c echo.Context, l *slog.Logger, event string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		l.Warn(event, "status", 400, "reason", "id is not a positive integer", "id", c.Param("id"))
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return uint(id), nil
}
