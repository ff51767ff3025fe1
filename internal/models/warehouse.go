package models

// Warehouse is the persisted shape of a warehouse reference row.
type Warehouse struct {
	WarehouseID string `json:"warehouseID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
