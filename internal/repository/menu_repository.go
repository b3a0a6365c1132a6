package repository // repository defines data access for the menu catalog

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/platefront/restaurant-api/internal/model"
)

// ErrMenuItemNotFound is returned when a menu item lookup yields no rows.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepo provides methods to work with menu items in the database.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo constructs a MenuRepo with the given DB handle.
func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

// DB exposes the underlying handle for starting transactions.
func (r *MenuRepo) DB() *sql.DB { return r.db }

const menuColumns = `id, name, price_cents, category, available, created_at, updated_at`

// Create inserts a menu item. On success the item's ID is populated.
func (r *MenuRepo) Create(ctx context.Context, m *model.MenuItem) error {
	const q = `INSERT INTO menu_items (name, price_cents, category, available)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.PriceCents, m.Category, m.Available)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// List retrieves all menu items, newest first.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.MenuItem{}
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(
			&m.ID, &m.Name, &m.PriceCents, &m.Category, &m.Available,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a menu item by its id.
func (r *MenuRepo) GetByID(ctx context.Context, id uint64) (*model.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ?`
	var m model.MenuItem
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Name, &m.PriceCents, &m.Category, &m.Available, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetByIDTx is GetByID inside an existing transaction; used when an
// order snapshots a catalog item so the price read and the line-item
// insert see the same state.
func (r *MenuRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ?`
	var m model.MenuItem
	err := tx.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Name, &m.PriceCents, &m.Category, &m.Available, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Update overwrites all mutable fields of a menu item.
// Returns ErrMenuItemNotFound when no row matches.
func (r *MenuRepo) Update(ctx context.Context, m *model.MenuItem) error {
	const q = `UPDATE menu_items
	           SET name = ?, price_cents = ?, category = ?, available = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.PriceCents, m.Category, m.Available, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also zero when the values did not change, so
		// confirm the row is actually missing before reporting 404.
		if _, gerr := r.GetByID(ctx, m.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a menu item. Existing order line items keep their
// name/price snapshot; the schema sets their menu_item_id to NULL.
func (r *MenuRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM menu_items WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// Count returns the number of catalog rows; used by the seeder.
func (r *MenuRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	return n, err
}
