package database

// schema.go creates the application tables on startup when they do not
// exist yet.  Statements are idempotent (CREATE TABLE IF NOT EXISTS) so
// running the server against an already-initialized database is safe.
// Order deletion cascades to order_items and payments at the schema
// level; order_items keep their name/price snapshot when the referenced
// menu item is deleted (FK SET NULL).

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(80)  NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(20)  NOT NULL DEFAULT 'STAFF',
		is_active     TINYINT(1)   NOT NULL DEFAULT 1,
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_refresh_tokens_hash (token_hash),
		CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS menu_items (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(120) NOT NULL,
		price_cents BIGINT       NOT NULL,
		category    VARCHAR(80)  NOT NULL DEFAULT 'General',
		available   TINYINT(1)   NOT NULL DEFAULT 1,
		created_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS dining_tables (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		label      VARCHAR(20)  NOT NULL UNIQUE,
		capacity   INT UNSIGNED NOT NULL DEFAULT 2,
		occupied   TINYINT(1)   NOT NULL DEFAULT 0,
		created_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name       VARCHAR(120) NOT NULL,
		phone      VARCHAR(40)  NOT NULL,
		size       INT UNSIGNED NOT NULL,
		res_time   DATETIME     NOT NULL,
		table_id   BIGINT UNSIGNED NULL,
		created_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_reservations_table FOREIGN KEY (table_id) REFERENCES dining_tables (id) ON DELETE SET NULL
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS orders (
		id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		table_id   BIGINT UNSIGNED NULL,
		status     VARCHAR(20) NOT NULL DEFAULT 'open',
		created_at DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_orders_table FOREIGN KEY (table_id) REFERENCES dining_tables (id) ON DELETE SET NULL
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS order_items (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		order_id     BIGINT UNSIGNED NOT NULL,
		menu_item_id BIGINT UNSIGNED NULL,
		name         VARCHAR(120) NOT NULL,
		price_cents  BIGINT       NOT NULL,
		quantity     INT UNSIGNED NOT NULL DEFAULT 1,
		CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE,
		CONSTRAINT fk_order_items_menu  FOREIGN KEY (menu_item_id) REFERENCES menu_items (id) ON DELETE SET NULL
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS payments (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		order_id     BIGINT UNSIGNED NOT NULL,
		amount_cents BIGINT      NOT NULL,
		method       VARCHAR(30) NOT NULL DEFAULT 'cash',
		created_at   DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_payments_order FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE
	) ENGINE=InnoDB`,
}

// EnsureSchema executes all schema statements in order.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
