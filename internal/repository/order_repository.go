package repository

// Data access for orders, their line items and their payments.  Orders
// own both child sets exclusively: the schema cascades deletes, and all
// multi-row mutations run through *Tx variants so handlers can compose
// them atomically.

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/platefront/restaurant-api/internal/model"
)

// ErrOrderNotFound is returned when an order lookup yields no rows.
var ErrOrderNotFound = errors.New("order not found")

// ErrOrderItemNotFound is returned when a line item lookup yields no rows.
var ErrOrderItemNotFound = errors.New("order item not found")

// OrderRepo provides methods to work with orders in the database.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the given DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// DB exposes the underlying handle for starting transactions.
func (r *OrderRepo) DB() *sql.DB { return r.db }

// CreateTx inserts an order row with status open and returns its ID.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, tableID *uint64) (uint64, error) {
	const q = `INSERT INTO orders (table_id, status) VALUES (?, ?)`
	res, err := tx.ExecContext(ctx, q, tableID, model.OrderStatusOpen)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// InsertItemTx inserts a line item row. On success the item's ID is populated.
func (r *OrderRepo) InsertItemTx(ctx context.Context, tx *sql.Tx, it *model.OrderItem) error {
	const q = `INSERT INTO order_items (order_id, menu_item_id, name, price_cents, quantity)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, it.OrderID, it.MenuItemID, it.Name, it.PriceCents, it.Quantity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	return nil
}

// scanOrderRow reads one orders row from any row scanner.
func scanOrderRow(scan func(dest ...any) error) (model.Order, error) {
	var (
		o       model.Order
		tableID sql.NullInt64
	)
	if err := scan(&o.ID, &tableID, &o.Status, &o.CreatedAt); err != nil {
		return model.Order{}, err
	}
	if tableID.Valid {
		id := uint64(tableID.Int64)
		o.TableID = &id
	}
	o.Items = []model.OrderItem{}
	o.Payments = []model.Payment{}
	return o, nil
}

// GetByID retrieves an order with its line items and payments loaded.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (*model.Order, error) {
	return r.getByID(ctx, r.db, id)
}

// GetByIDTx is GetByID inside an existing transaction.
func (r *OrderRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Order, error) {
	return r.getByID(ctx, tx, id)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *OrderRepo) getByID(ctx context.Context, q querier, id uint64) (*model.Order, error) {
	const qo = `SELECT id, table_id, status, created_at FROM orders WHERE id = ?`
	o, err := scanOrderRow(q.QueryRowContext(ctx, qo, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, q, id)
	if err != nil {
		return nil, err
	}
	o.Items = items

	payments, err := r.paymentsForOrder(ctx, q, id)
	if err != nil {
		return nil, err
	}
	o.Payments = payments
	return &o, nil
}

func (r *OrderRepo) itemsForOrder(ctx context.Context, q querier, orderID uint64) ([]model.OrderItem, error) {
	const qi = `SELECT id, order_id, menu_item_id, name, price_cents, quantity
	            FROM order_items WHERE order_id = ? ORDER BY id`
	rows, err := q.QueryContext(ctx, qi, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		it, err := scanOrderItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepo) paymentsForOrder(ctx context.Context, q querier, orderID uint64) ([]model.Payment, error) {
	const qp = `SELECT id, order_id, amount_cents, method, created_at
	            FROM payments WHERE order_id = ? ORDER BY id`
	rows, err := q.QueryContext(ctx, qp, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.AmountCents, &p.Method, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func scanOrderItem(scan func(dest ...any) error) (model.OrderItem, error) {
	var (
		it         model.OrderItem
		menuItemID sql.NullInt64
	)
	if err := scan(&it.ID, &it.OrderID, &menuItemID, &it.Name, &it.PriceCents, &it.Quantity); err != nil {
		return model.OrderItem{}, err
	}
	if menuItemID.Valid {
		id := uint64(menuItemID.Int64)
		it.MenuItemID = &id
	}
	return it, nil
}

// List retrieves all orders with their line items and payments, newest
// order first.  Children are fetched in two bulk queries and stitched
// in memory to avoid a query per order.
func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	const qo = `SELECT id, table_id, status, created_at FROM orders ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, qo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	index := map[uint64]int{}
	for rows.Next() {
		o, err := scanOrderRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	const qi = `SELECT id, order_id, menu_item_id, name, price_cents, quantity
	            FROM order_items ORDER BY id`
	irows, err := r.db.QueryContext(ctx, qi)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		it, err := scanOrderItem(irows.Scan)
		if err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}

	const qp = `SELECT id, order_id, amount_cents, method, created_at
	            FROM payments ORDER BY id`
	prows, err := r.db.QueryContext(ctx, qp)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var p model.Payment
		if err := prows.Scan(&p.ID, &p.OrderID, &p.AmountCents, &p.Method, &p.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[p.OrderID]; ok {
			orders[i].Payments = append(orders[i].Payments, p)
		}
	}
	return orders, prows.Err()
}

// Delete removes an order. The schema cascades the delete to the
// order's line items and payments.
func (r *OrderRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM orders WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// GetItemByID retrieves a single line item scoped to its order.
func (r *OrderRepo) GetItemByID(ctx context.Context, orderID, itemID uint64) (*model.OrderItem, error) {
	const q = `SELECT id, order_id, menu_item_id, name, price_cents, quantity
	           FROM order_items WHERE id = ? AND order_id = ?`
	it, err := scanOrderItem(r.db.QueryRowContext(ctx, q, itemID, orderID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

// UpdateItem overwrites a line item's unit price and quantity.  The two
// fields are independent; neither is validated against the other.
func (r *OrderRepo) UpdateItem(ctx context.Context, it *model.OrderItem) error {
	const q = `UPDATE order_items SET price_cents = ?, quantity = ? WHERE id = ? AND order_id = ?`
	res, err := r.db.ExecContext(ctx, q, it.PriceCents, it.Quantity, it.ID, it.OrderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, gerr := r.GetItemByID(ctx, it.OrderID, it.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// DeleteItem removes a line item unconditionally; deleting the last
// item of an order is allowed and leaves a zero-total order.
func (r *OrderRepo) DeleteItem(ctx context.Context, orderID, itemID uint64) error {
	const q = `DELETE FROM order_items WHERE id = ? AND order_id = ?`
	res, err := r.db.ExecContext(ctx, q, itemID, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderItemNotFound
	}
	return nil
}

// InsertPaymentTx records a payment. On success the payment's ID is
// populated; CreatedAt is set to the current UTC time before insert.
func (r *OrderRepo) InsertPaymentTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	p.CreatedAt = time.Now().UTC()
	const q = `INSERT INTO payments (order_id, amount_cents, method, created_at) VALUES (?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, p.OrderID, p.AmountCents, p.Method, p.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// UpdateStatusTx sets the order's derived status.
func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, orderID uint64, status string) error {
	const q = `UPDATE orders SET status = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, status, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Status may be unchanged; verify existence before failing.
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM orders WHERE id = ?`, orderID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrOrderNotFound
			}
			return err
		}
	}
	return nil
}
