package model

// Employee represents a staff member who may be assigned to handle claims.
type Employee struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	ItemsManaged int    `json:"items_managed"`
}
