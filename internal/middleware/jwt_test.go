package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wicketgate/cricket-ticketing/internal/utils"
)

const testSecret = "unit-test-secret"

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func doRequest(t *testing.T, mw []echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := okHandler
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "FAN", 5)
	require.NoError(t, err)

	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 42, "FAN", 5)
	require.NoError(t, err)

	rec := doRequest(t, []echo.MiddlewareFunc{JWTAuth(testSecret)}, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 1, "ADMIN", 5)
	require.NoError(t, err)

	rec := doRequest(t,
		[]echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("ADMIN")},
		"Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 1, "FAN", 5)
	require.NoError(t, err)

	rec := doRequest(t,
		[]echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole("ADMIN")},
		"Bearer "+at.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingClaims(t *testing.T) {
	rec := doRequest(t, []echo.MiddlewareFunc{RequireRole("ADMIN")}, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
