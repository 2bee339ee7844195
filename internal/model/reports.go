package model

// DashboardMetrics summarizes the current state of the desk.
type DashboardMetrics struct {
	TotalItems       int     `json:"total_items"`
	TotalUnclaimed   int     `json:"total_unclaimed"`
	TotalClaimed     int     `json:"total_claimed"`
	AvgDaysUnclaimed float64 `json:"avg_days_unclaimed"`
	PendingClaims    int     `json:"pending_claims"`
	ApprovedClaims   int     `json:"approved_claims"`
}

// EmployeePerformance aggregates claim-handling counters per employee.
type EmployeePerformance struct {
	Employee
	ClaimsHandled int `json:"claims_handled"`
	ApprovedCount int `json:"approved_count"`
	PendingCount  int `json:"pending_count"`
}

// DisputedItem is an unclaimed item with more than one pending claim.
type DisputedItem struct {
	ItemID     int64  `json:"item_id"`
	ItemName   string `json:"item_name"`
	Category   string `json:"category"`
	FoundAt    string `json:"found_at"`
	ClaimCount int    `json:"claim_count"`
	Claimants  string `json:"claimants"`
}
