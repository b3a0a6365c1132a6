package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefront/restaurant-api/internal/config"
	"github.com/platefront/restaurant-api/internal/handler"
	"github.com/platefront/restaurant-api/internal/model"
	"github.com/platefront/restaurant-api/internal/utils"
)

const testSecret = "router-test-secret"

// newAuthServer wires only the auth routes.  The handler gets no
// repositories: every request in these tests must be stopped by the
// middleware chain, so reaching a repository would itself be a failure
// (and would panic loudly).
func newAuthServer() *echo.Echo {
	e := echo.New()
	a := handler.NewAuthHandler(config.Config{JWTSecret: testSecret}, nil, nil)
	RegisterAuth(e, a, testSecret)
	return e
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, 1, role, 5)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

// Provisioning accounts is reserved for administrators: an anonymous
// caller must be rejected outright, and a staff token must not be able
// to escalate by asking for the ADMIN role.
func TestRegisterRequiresAdmin(t *testing.T) {
	e := newAuthServer()
	body := `{"username":"mallory","password":"secret","role":"ADMIN"}`

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "anonymous", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "staff token", authHeader: bearerFor(t, model.RoleStaff), wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

// Login stays public; the middleware chain must not swallow it.  With
// nil repositories the handler can only get as far as input validation,
// which is exactly the depth this test needs.
func TestLoginIsPublic(t *testing.T) {
	e := newAuthServer()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
