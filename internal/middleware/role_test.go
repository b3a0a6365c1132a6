package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		role       any
		wantStatus int
	}{
		{
			name:       "admin allowed on admin route",
			allowed:    []string{"ADMIN"},
			role:       "ADMIN",
			wantStatus: http.StatusOK,
		},
		{
			name:       "staff allowed on shared route",
			allowed:    []string{"ADMIN", "STAFF"},
			role:       "STAFF",
			wantStatus: http.StatusOK,
		},
		{
			name:       "staff rejected on admin route",
			allowed:    []string{"ADMIN"},
			role:       "STAFF",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing role rejected",
			allowed:    []string{"ADMIN", "STAFF"},
			role:       nil,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "non-string role rejected",
			allowed:    []string{"ADMIN"},
			role:       42,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}

			h := RequireRole(tc.allowed...)(func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})
			assert.NoError(t, h(c))
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
