package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/tokens"
)

const CtxUser = "user"

type Verifier interface {
	Verify(token string) (*models.PublicUser, error)
}

type Guard struct {
	Tokens Verifier
}

func NewGuard(v Verifier) *Guard {
	return &Guard{Tokens: v}
}

// RequireToken rejects the request with 401 unless the Authorization header
// carries a valid token. The reason is logged but never sent to the client.
func (g *Guard) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := logging.FromContext(c.Request().Context())

		raw, err := tokens.BearerFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			l.Warn("auth_rejected", "status", 401, "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		user, err := g.Tokens.Verify(raw)
		if err != nil || user == nil {
			l.Warn("auth_rejected", "status", 401, "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(CtxUser, user)
		return next(c)
	}
}

func UserFromContext(c echo.Context) (*models.PublicUser, bool) {
	u, ok := c.Get(CtxUser).(*models.PublicUser)
	return u, ok && u != nil
}
