package model

import "time"

// Item represents a found physical object held by the lost-and-found desk.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	DateFound   time.Time `json:"date_found"`
	FoundAt     string    `json:"found_at"`
	ClaimState  string    `json:"claim_state"`
	PhotoMime   string    `json:"photo_mime,omitempty"`
	DateUpdated time.Time `json:"date_updated"`

	// Derived field (only populated by unclaimed listings).
	DaysUnclaimed int `json:"days_unclaimed,omitempty"`
}

// Claim states. An item starts unclaimed and becomes claimed at most
// once, when a claim against it is approved.
const (
	ClaimStateUnclaimed = "unclaimed"
	ClaimStateClaimed   = "claimed"
)

// ItemFilter narrows unclaimed-item listings. Zero values mean "no filter".
type ItemFilter struct {
	Category    string
	Color       string
	Location    string
	FoundAfter  time.Time
	FoundBefore time.Time
	Search      string
}
