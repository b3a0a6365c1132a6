package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    uint64
		wantErr bool
	}{
		{name: "uint64", value: uint64(7), want: 7},
		{name: "int", value: 42, want: 42},
		{name: "int64", value: int64(9), want: 9},
		{name: "float64 from jwt claims", value: float64(13), want: 13},
		{name: "numeric string", value: "21", want: 21},
		{name: "garbage string", value: "abc", wantErr: true},
		{name: "missing", value: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			if tt.value != nil {
				c.Set("user_id", tt.value)
			}
			got, err := getUserID(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    uint64
		wantErr bool
	}{
		{name: "plain", raw: "12", want: 12},
		{name: "zero rejected", raw: "0", wantErr: true},
		{name: "negative rejected", raw: "-3", wantErr: true},
		{name: "non-numeric rejected", raw: "abc", wantErr: true},
		{name: "empty rejected", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			c.SetParamNames("id")
			c.SetParamValues(tt.raw)
			got, err := parseID(c, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2026-03-01T19:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC), got)

	_, err = parseTime("next tuesday at eight")
	assert.Error(t, err)

	_, err = parseTime("")
	assert.Error(t, err)
}

func TestValidateItemReq(t *testing.T) {
	id := uint64(4)
	price := int64(1199)
	negPrice := int64(-1)
	qty := uint32(2)
	zeroQty := uint32(0)

	tests := []struct {
		name string
		req  orderItemReq
		ok   bool
	}{
		{name: "catalog item", req: orderItemReq{MenuItemID: &id}, ok: true},
		{name: "catalog item with quantity", req: orderItemReq{MenuItemID: &id, Quantity: &qty}, ok: true},
		{name: "custom item", req: orderItemReq{Name: "Corkage", PriceCents: &price}, ok: true},
		{name: "custom item missing name", req: orderItemReq{PriceCents: &price}, ok: false},
		{name: "custom item missing price", req: orderItemReq{Name: "Corkage"}, ok: false},
		{name: "custom item negative price", req: orderItemReq{Name: "Corkage", PriceCents: &negPrice}, ok: false},
		{name: "zero quantity", req: orderItemReq{MenuItemID: &id, Quantity: &zeroQty}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateItemReq(tt.req)
			if tt.ok {
				assert.Nil(t, msg)
			} else {
				assert.NotNil(t, msg)
			}
		})
	}
}
