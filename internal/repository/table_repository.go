package repository // repository defines data access for dining tables

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/platefront/restaurant-api/internal/model"
)

// ErrTableNotFound is returned when a table lookup yields no rows.
var ErrTableNotFound = errors.New("table not found")

// TableRepo provides methods to work with dining tables in the database.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo constructs a TableRepo with the given DB handle.
func NewTableRepo(db *sql.DB) *TableRepo {
	return &TableRepo{db: db}
}

const tableColumns = `id, label, capacity, occupied, created_at, updated_at`

// Create inserts a table record. Duplicate labels surface as ErrConflict.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	const q = `INSERT INTO dining_tables (label, capacity) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Label, t.Capacity)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// List retrieves all tables, newest first.
func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM dining_tables ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Table{}
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.Label, &t.Capacity, &t.Occupied, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a table by its id.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
	const q = `SELECT ` + tableColumns + ` FROM dining_tables WHERE id = ?`
	var t model.Table
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&t.ID, &t.Label, &t.Capacity, &t.Occupied, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update overwrites label, capacity and occupied.
// Returns ErrTableNotFound when no row matches and ErrConflict when the
// new label collides with another table.
func (r *TableRepo) Update(ctx context.Context, t *model.Table) error {
	const q = `UPDATE dining_tables
	           SET label = ?, capacity = ?, occupied = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.Label, t.Capacity, t.Occupied, t.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, t.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a table. Orders and reservations pointing at it keep
// their rows; the schema nulls their table_id.
func (r *TableRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM dining_tables WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}

// Count returns the number of tables; used by the seeder.
func (r *TableRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dining_tables`).Scan(&n)
	return n, err
}
