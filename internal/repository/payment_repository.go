package repository // repository defines read access to the payments ledger

import (
	"context"
	"database/sql"

	"github.com/platefront/restaurant-api/internal/model"
)

// PaymentRepo provides read access to payments across all orders.
// Writes go through OrderRepo.InsertPaymentTx so they always run in
// the same transaction as the status update.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the given DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// List retrieves all payments, newest first.
func (r *PaymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	const q = `SELECT id, order_id, amount_cents, method, created_at
	           FROM payments ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.AmountCents, &p.Method, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
