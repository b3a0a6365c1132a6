package handler // handler defines http handlers

import (
	"context" // context bounds the fire-and-forget broadcast
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types
	"time"    // time bounds the broadcast and parses reservation times

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/platefront/restaurant-api/internal/event" // event is the broadcast fan-out
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64: // JWT numeric claims decode as float64
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// parseTime parses an RFC 3339 timestamp and normalizes it to UTC.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// broadcast publishes a change event without blocking the request.
// Failures are logged inside the publisher and never surface here: the
// fan-out is best-effort and a lost notification does not roll back
// the mutation that preceded it.
func broadcast(ev event.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = event.Publish(ctx, ev)
	}()
}
