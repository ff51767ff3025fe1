package domain

// Profile is a counterparty record: the supplier on a goods receipt or
// supplier return, the customer on a customer return. Owned by the external
// identity subsystem; this service reads and caches nothing beyond the id.
type Profile struct {
	ProfileID string   `json:"profileID"` // Primary Key (e.g., UUID)
	Name      string   `json:"name"`
	Role      UserRole `json:"role"` // SUPPLIER, CUSTOMER, AGENT, ...
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	AuditFields
}
