package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventEnvelopeJSON(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{
			name: "entity payload",
			ev:   Event{Type: TypeMenuCreated, Data: map[string]any{"id": 1, "name": "Caesar Salad"}},
			want: `{"type":"menu.created","data":{"id":1,"name":"Caesar Salad"}}`,
		},
		{
			name: "deletion carries only the id",
			ev:   Event{Type: TypeMenuDeleted, ID: 7},
			want: `{"type":"menu.deleted","id":7}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.ev)
			assert.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestFormatLogLine(t *testing.T) {
	at := time.Date(2025, time.October, 1, 12, 0, 0, 0, time.UTC)

	line, err := FormatLogLine(at, Event{Type: TypePaymentCreated, Data: map[string]any{"amount_cents": 2500}})
	assert.NoError(t, err)
	assert.Equal(t, "[2025-10-01T12:00:00Z] payment.created | {\"amount_cents\":2500}\n", line)

	line, err = FormatLogLine(at, Event{Type: TypeTableDeleted, ID: 3})
	assert.NoError(t, err)
	assert.Equal(t, "[2025-10-01T12:00:00Z] table.deleted | id=3\n", line)
}
