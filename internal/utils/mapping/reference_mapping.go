package mapping

import (
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/models"
)

// ToDomainProductUnit converts a model product unit row to domain.
func ToDomainProductUnit(m models.ProductUnit) domain.ProductUnit {
	return domain.ProductUnit{
		ProductUnitID: m.ProductUnitID,
		SKU:           m.SKU,
		Name:          m.Name,
		Unit:          m.Unit,
		VATRate:       m.VATRate,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProductUnit converts a domain product unit to its model row.
func ToModelProductUnit(d domain.ProductUnit) models.ProductUnit {
	return models.ProductUnit{
		ProductUnitID: d.ProductUnitID,
		SKU:           d.SKU,
		Name:          d.Name,
		Unit:          d.Unit,
		VATRate:       d.VATRate,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWarehouse converts a model warehouse row to domain.
func ToDomainWarehouse(m models.Warehouse) domain.Warehouse {
	return domain.Warehouse{
		WarehouseID: m.WarehouseID,
		Name:        m.Name,
		Address:     m.Address,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWarehouse converts a domain warehouse to its model row.
func ToModelWarehouse(d domain.Warehouse) models.Warehouse {
	return models.Warehouse{
		WarehouseID: d.WarehouseID,
		Name:        d.Name,
		Address:     d.Address,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfile converts a model profile row to domain.
func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:   m.ProfileID,
		Name:        m.Name,
		Role:        domain.UserRole(m.Role),
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProfile converts a domain profile to its model row.
func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		ProfileID:   d.ProfileID,
		Name:        d.Name,
		Role:        string(d.Role),
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder assembles a domain order from its header and item rows.
func ToDomainOrder(m models.Order, items []models.OrderItem) domain.Order {
	domainItems := make([]domain.OrderItem, len(items))
	for i, it := range items {
		domainItems[i] = domain.OrderItem{
			OrderItemID:   it.OrderItemID,
			OrderID:       it.OrderID,
			ProductUnitID: it.ProductUnitID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
		}
	}
	return domain.Order{
		OrderID:    m.OrderID,
		CustomerID: m.CustomerID,
		Status:     m.Status,
		OrderedAt:  m.OrderedAt,
		Items:      domainItems,
	}
}
