package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/tokens"
)

func newGuardEnv(t *testing.T) (*echo.Echo, *tokens.Issuer) {
	t.Helper()

	iss := tokens.NewIssuer([]byte("test-token-secret"))
	guard := NewGuard(iss)

	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		u, ok := UserFromContext(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, u)
	}, guard.RequireToken)

	return e, iss
}

func doGet(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireToken_Accepts(t *testing.T) {
	e, iss := newGuardEnv(t)

	token, err := iss.Issue(models.PublicUser{ID: 1, Username: "t1"})
	require.NoError(t, err)

	rec := doGet(e, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"t1"`)
}

func TestRequireToken_Rejects(t *testing.T) {
	e, iss := newGuardEnv(t)

	token, err := iss.Issue(models.PublicUser{ID: 1, Username: "t1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme prefix", header: token},
		{name: "garbage token", header: "Bearer garbage"},
		{name: "foreign secret", header: "Bearer " + foreignToken(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(e, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid token")
		})
	}
}

func foreignToken(t *testing.T) string {
	t.Helper()
	tok, err := tokens.NewIssuer([]byte("someone-else")).Issue(models.PublicUser{ID: 1})
	require.NoError(t, err)
	return tok
}
