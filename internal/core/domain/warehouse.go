package domain

// Warehouse is the scope boundary for stock balances.
type Warehouse struct {
	WarehouseID string `json:"warehouseID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	Address     string `json:"address"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
