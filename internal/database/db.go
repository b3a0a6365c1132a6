package database

// MySQL connection management.  The DSN always carries parseTime=true
// so DATETIME columns scan into time.Time, and loc=UTC so every
// timestamp in the system lives in one zone regardless of where the
// database server thinks it is.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Config carries the connection parameters plus pool tuning.  Zero
// pool values fall back to defaults sized for a restaurant's worth of
// floor terminals, not a public API.
type Config struct {
	User string
	Pass string // empty means no password in the DSN
	Host string
	Port string
	Name string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 10
	defaultConnMaxLifetime = 30 * time.Minute
)

// poolSettings normalizes the pool tuning: zero or negative values take
// the defaults, and idle can never exceed open.
func (c Config) poolSettings() (open, idle int, lifetime time.Duration) {
	open, idle, lifetime = c.MaxOpenConns, c.MaxIdleConns, c.ConnMaxLifetime
	if open <= 0 {
		open = defaultMaxOpenConns
	}
	if idle <= 0 {
		idle = defaultMaxIdleConns
	}
	if idle > open {
		idle = open
	}
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}
	return open, idle, lifetime
}

// Open connects to MySQL, applies the pool settings and verifies the
// connection with a short ping before handing the pool back.
func Open(cfg Config) (*sql.DB, error) {
	auth := cfg.User
	if cfg.Pass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.Host, cfg.Port, cfg.Name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	open, idle, lifetime := cfg.poolSettings()
	db.SetMaxOpenConns(open)
	db.SetMaxIdleConns(idle)
	db.SetConnMaxLifetime(lifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
