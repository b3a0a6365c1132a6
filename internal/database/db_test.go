package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolSettings(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantOpen     int
		wantIdle     int
		wantLifetime time.Duration
	}{
		{
			name:         "zero values take defaults",
			cfg:          Config{},
			wantOpen:     defaultMaxOpenConns,
			wantIdle:     defaultMaxIdleConns,
			wantLifetime: defaultConnMaxLifetime,
		},
		{
			name:         "explicit values pass through",
			cfg:          Config{MaxOpenConns: 40, MaxIdleConns: 20, ConnMaxLifetime: time.Hour},
			wantOpen:     40,
			wantIdle:     20,
			wantLifetime: time.Hour,
		},
		{
			name:         "idle clamped to open",
			cfg:          Config{MaxOpenConns: 5, MaxIdleConns: 50},
			wantOpen:     5,
			wantIdle:     5,
			wantLifetime: defaultConnMaxLifetime,
		},
		{
			name:         "negative values take defaults",
			cfg:          Config{MaxOpenConns: -1, MaxIdleConns: -1, ConnMaxLifetime: -time.Minute},
			wantOpen:     defaultMaxOpenConns,
			wantIdle:     defaultMaxIdleConns,
			wantLifetime: defaultConnMaxLifetime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, lifetime := tt.cfg.poolSettings()
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantIdle, idle)
			assert.Equal(t, tt.wantLifetime, lifetime)
		})
	}
}
