package dto

import "github.com/bvtvshop/inventory_backend/internal/core/domain"

// CreateWarehouseRequest registers a new warehouse.
type CreateWarehouseRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// UpdateWarehouseRequest edits a warehouse. Nil fields are unchanged.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

// WarehouseResponse is a warehouse in a response.
type WarehouseResponse struct {
	WarehouseID string `json:"warehouseID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	IsActive    bool   `json:"isActive"`
}

// ToWarehouseResponse converts a domain warehouse.
func ToWarehouseResponse(w *domain.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		WarehouseID: w.WarehouseID,
		Name:        w.Name,
		Address:     w.Address,
		IsActive:    w.IsActive,
	}
}
