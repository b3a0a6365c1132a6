package model

import "time"

// Reservation records a booking for a party at a future time.  A
// reservation may optionally be pinned to a specific table; the
// reference is for display only and does not drive any lifecycle.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – name the booking is held under.
//  Phone     – contact phone number.
//  Size      – party size (always > 0).
//  Time      – when the party is expected.
//  TableID   – optional table assignment (nullable).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Reservation struct {
	ID        uint64    `json:"id"`                 // reservations.id
	Name      string    `json:"name"`               // reservations.name
	Phone     string    `json:"phone"`              // reservations.phone
	Size      uint32    `json:"size"`               // reservations.size
	Time      time.Time `json:"time"`               // reservations.res_time
	TableID   *uint64   `json:"table_id,omitempty"` // reservations.table_id (nullable)
	CreatedAt time.Time `json:"created_at"`         // reservations.created_at
	UpdatedAt time.Time `json:"updated_at"`         // reservations.updated_at
}
