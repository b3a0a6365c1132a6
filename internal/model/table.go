package model

import "time"

// Table is a physical dining table on the floor.  Labels are unique so
// staff can refer to tables by name ("T1", "Patio 3").  The occupied
// flag is set by staff; it is not derived from orders or reservations.
//
// Fields:
//  ID        – primary key identifier.
//  Label     – unique human-readable label.
//  Capacity  – number of seats at the table.
//  Occupied  – whether the table currently has guests.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Table struct {
	ID        uint64    `json:"id"`         // dining_tables.id
	Label     string    `json:"label"`      // dining_tables.label (unique)
	Capacity  uint32    `json:"capacity"`   // dining_tables.capacity
	Occupied  bool      `json:"occupied"`   // dining_tables.occupied
	CreatedAt time.Time `json:"created_at"` // dining_tables.created_at
	UpdatedAt time.Time `json:"updated_at"` // dining_tables.updated_at
}
