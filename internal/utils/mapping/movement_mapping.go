package mapping

import (
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/models"
)

// ToModelMovement converts a domain InventoryMovement to a model row.
func ToModelMovement(d domain.InventoryMovement) models.InventoryMovement {
	return models.InventoryMovement{
		MovementID:    d.MovementID,
		ProductUnitID: d.ProductUnitID,
		WarehouseID:   d.WarehouseID,
		Type:          string(d.Type),
		Quantity:      d.Quantity,
		ReferenceType: d.ReferenceType,
		ReferenceID:   d.ReferenceID,
		LineNo:        d.LineNo,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainMovement converts a model row to a domain InventoryMovement.
func ToDomainMovement(m models.InventoryMovement) domain.InventoryMovement {
	return domain.InventoryMovement{
		MovementID:    m.MovementID,
		ProductUnitID: m.ProductUnitID,
		WarehouseID:   m.WarehouseID,
		Type:          domain.MovementType(m.Type),
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		LineNo:        m.LineNo,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainMovementSlice converts a slice of model rows to domain movements.
func ToDomainMovementSlice(ms []models.InventoryMovement) []domain.InventoryMovement {
	ds := make([]domain.InventoryMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
