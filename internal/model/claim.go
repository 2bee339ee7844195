package model

import "time"

// Claim represents an ownership assertion against one item.
type Claim struct {
	ID                 int64     `json:"id"`
	ItemID             int64     `json:"item_id"`
	ClaimDate          time.Time `json:"claim_date"`
	VerificationCode   string    `json:"verification_code"`
	OwnerFirstName     string    `json:"owner_first_name"`
	OwnerLastName      string    `json:"owner_last_name"`
	VerificationStatus string    `json:"verification_status"`
	HandledBy          *int64    `json:"handled_by,omitempty"`

	// Joined fields (not always populated).
	ItemName     string `json:"item_name,omitempty"`
	ItemCategory string `json:"item_category,omitempty"`
	FoundAt      string `json:"found_at,omitempty"`
	HandlerName  string `json:"handler_name,omitempty"`
}

// Verification statuses. Pending is the only non-terminal state.
const (
	ClaimPending  = "pending"
	ClaimApproved = "approved"
	ClaimRejected = "rejected"
)
