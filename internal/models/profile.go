package models

// Profile is the persisted shape of a counterparty row.
type Profile struct {
	ProfileID string `json:"profileID"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	AuditFields
}
