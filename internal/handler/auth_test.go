package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefront/restaurant-api/internal/config"
)

// Me resolves the account from the identity the JWT middleware stored
// in the context.  A context without a usable user id must be rejected
// before any repository call; the handler below has no repositories, so
// getting past the identity check would panic.
func TestMeRejectsBrokenIdentity(t *testing.T) {
	h := NewAuthHandler(config.Config{}, nil, nil)
	e := echo.New()

	tests := []struct {
		name  string
		value any
	}{
		{name: "missing", value: nil},
		{name: "garbage string", value: "not-a-number"},
		{name: "wrong type", value: []string{"nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.value != nil {
				c.Set("user_id", tt.value)
			}
			require.NoError(t, h.Me(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
