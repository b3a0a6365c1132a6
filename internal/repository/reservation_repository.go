package repository // repository defines data access for reservations

import (
	"context"
	"database/sql"
	"errors"

	"github.com/platefront/restaurant-api/internal/model"
)

// ErrReservationNotFound is returned when a reservation lookup yields no rows.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides methods to work with reservations in the database.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo constructs a ReservationRepo with the given DB handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

const reservationColumns = `id, name, phone, size, res_time, table_id, created_at, updated_at`

// Create inserts a reservation record. On success the ID is populated.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations (name, phone, size, res_time, table_id)
	           VALUES (?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, res.Name, res.Phone, res.Size, res.Time, res.TableID)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return nil
}

// List retrieves all reservations, newest first.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Reservation{}
	for rows.Next() {
		var (
			res     model.Reservation
			tableID sql.NullInt64
		)
		if err := rows.Scan(&res.ID, &res.Name, &res.Phone, &res.Size, &res.Time, &tableID, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		if tableID.Valid {
			id := uint64(tableID.Int64)
			res.TableID = &id
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a reservation by its id.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
	var (
		res     model.Reservation
		tableID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&res.ID, &res.Name, &res.Phone, &res.Size, &res.Time, &tableID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if tableID.Valid {
		tid := uint64(tableID.Int64)
		res.TableID = &tid
	}
	return &res, nil
}

// Update overwrites all mutable fields of a reservation.
// Returns ErrReservationNotFound when no row matches.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	const q = `UPDATE reservations
	           SET name = ?, phone = ?, size = ?, res_time = ?, table_id = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	out, err := r.db.ExecContext(ctx, q, res.Name, res.Phone, res.Size, res.Time, res.TableID, res.ID)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		if _, gerr := r.GetByID(ctx, res.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a reservation unconditionally.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM reservations WHERE id = ?`
	out, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
