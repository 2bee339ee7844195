package model

import "time"

// StatusEvent is an immutable audit record of an item state transition.
// Events are append-only; they are only removed by the item's cascading
// deletion or by retention cleanup.
type StatusEvent struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	Status     string    `json:"status"`
	StatusDate time.Time `json:"status_date"`
}

// Status labels written to the history.
const (
	StatusUnclaimed = "Unclaimed"
	StatusClaimed   = "Claimed"
)
