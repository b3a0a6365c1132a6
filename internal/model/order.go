package model

import "time"

// Order status values.  An order starts open, moves to partial or paid
// as payments arrive, and is never closed beyond its status.
const (
	OrderStatusOpen    = "open"
	OrderStatusPartial = "partial"
	OrderStatusPaid    = "paid"
)

// Order is the unit of billing for a visit.  It owns its line items
// and payments exclusively: deleting the order deletes both.  Status
// is derived from payments against the total, never set directly.
//
// Fields:
//  ID        – primary key identifier.
//  TableID   – optional table the order is for (nullable).
//  Status    – open | partial | paid.
//  CreatedAt – creation timestamp.
//  Items     – line items, in insertion order.
//  Payments  – payments, in insertion order.
type Order struct {
	ID        uint64      `json:"id"`                 // orders.id
	TableID   *uint64     `json:"table_id,omitempty"` // orders.table_id (nullable)
	Status    string      `json:"status"`             // orders.status
	CreatedAt time.Time   `json:"created_at"`         // orders.created_at
	Items     []OrderItem `json:"items"`              // child order_items rows
	Payments  []Payment   `json:"payments"`           // child payments rows
}

// OrderItem is a quantity of one priced item attached to an order.
// Name and PriceCents are snapshots taken when the item was added;
// later catalog changes never touch existing line items.  MenuItemID
// is nil for custom (off-catalog) items and after the referenced menu
// item is deleted.
//
// Fields:
//  ID         – primary key identifier.
//  OrderID    – owning order.
//  MenuItemID – catalog reference, if any (nullable).
//  Name       – snapshot of the item name at add time.
//  PriceCents – snapshot of the unit price at add time.
//  Quantity   – number of units (always >= 1).
type OrderItem struct {
	ID         uint64  `json:"id"`                     // order_items.id
	OrderID    uint64  `json:"order_id"`               // order_items.order_id
	MenuItemID *uint64 `json:"menu_item_id,omitempty"` // order_items.menu_item_id (nullable)
	Name       string  `json:"name"`                   // order_items.name
	PriceCents int64   `json:"price_cents"`            // order_items.price_cents
	Quantity   uint32  `json:"quantity"`               // order_items.quantity
}

// Payment is an amount received against an order.  Payments are
// immutable once recorded; the amount is stored as submitted with no
// validation against the remaining balance.
//
// Fields:
//  ID          – primary key identifier.
//  OrderID     – owning order.
//  AmountCents – amount received, in cents.
//  Method      – payment method ("cash", "card", ...).
//  CreatedAt   – when the payment was recorded.
type Payment struct {
	ID          uint64    `json:"id"`           // payments.id
	OrderID     uint64    `json:"order_id"`     // payments.order_id
	AmountCents int64     `json:"amount_cents"` // payments.amount_cents
	Method      string    `json:"method"`       // payments.method
	CreatedAt   time.Time `json:"created_at"`   // payments.created_at
}
