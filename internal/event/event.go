// Package event defines the state-change notifications broadcast to
// listening clients after every successful mutation.
package event

// Event names, one per mutation.  The payload carried alongside the
// name is the serialized entity after the change (or just the id for
// deletions), so consumers can update their view without querying the
// primary database.
const (
	TypeMenuCreated        = "menu.created"
	TypeMenuUpdated        = "menu.updated"
	TypeMenuDeleted        = "menu.deleted"
	TypeTableCreated       = "table.created"
	TypeTableUpdated       = "table.updated"
	TypeTableDeleted       = "table.deleted"
	TypeReservationCreated = "reservation.created"
	TypeReservationUpdated = "reservation.updated"
	TypeReservationDeleted = "reservation.deleted"
	TypeOrderCreated       = "order.created"
	TypeOrderDeleted       = "order.deleted"
	TypeOrderItemAdded     = "order.item_added"
	TypeOrderItemUpdated   = "order.item_updated"
	TypeOrderItemDeleted   = "order.item_deleted"
	TypePaymentCreated     = "payment.created"
)

// Event is the broadcast envelope.  Type names what happened; Data
// holds the affected entity (its JSON shape matches the HTTP response
// for the same entity); ID is set instead of Data for deletions.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
	ID   uint64 `json:"id,omitempty"`
}
