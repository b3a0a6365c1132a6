package model

import "time"

// MenuItem describes a priced item on the restaurant's catalog.  The
// availability flag lets staff pull an item from sale without deleting
// it; order line items that already snapshot this item are unaffected
// by any later change or deletion.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – display name of the item.
//  PriceCents – unit price in cents (never negative).
//  Category   – free-form grouping such as "Pizza" or "Salad".
//  Available  – whether the item is currently offered.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type MenuItem struct {
	ID         uint64    `json:"id"`          // menu_items.id
	Name       string    `json:"name"`        // menu_items.name
	PriceCents int64     `json:"price_cents"` // menu_items.price_cents
	Category   string    `json:"category"`    // menu_items.category
	Available  bool      `json:"available"`   // menu_items.available
	CreatedAt  time.Time `json:"created_at"`  // menu_items.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // menu_items.updated_at
}
