package dto

import (
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductUnitRequest registers a new product unit.
type CreateProductUnitRequest struct {
	SKU     string          `json:"sku" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Unit    string          `json:"unit"`
	VATRate decimal.Decimal `json:"vatRate"`
}

// UpdateProductUnitRequest edits a product unit. Nil fields are unchanged.
// Changing the VAT rate never touches existing document lines: they keep
// their snapshot.
type UpdateProductUnitRequest struct {
	SKU      *string          `json:"sku"`
	Name     *string          `json:"name"`
	Unit     *string          `json:"unit"`
	VATRate  *decimal.Decimal `json:"vatRate"`
	IsActive *bool            `json:"isActive"`
}

// ProductUnitResponse is a product unit in a response.
type ProductUnitResponse struct {
	ProductUnitID string          `json:"productUnitID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	VATRate       decimal.Decimal `json:"vatRate"`
	IsActive      bool            `json:"isActive"`
}

// ToProductUnitResponse converts a domain product unit.
func ToProductUnitResponse(p *domain.ProductUnit) ProductUnitResponse {
	return ProductUnitResponse{
		ProductUnitID: p.ProductUnitID,
		SKU:           p.SKU,
		Name:          p.Name,
		Unit:          p.Unit,
		VATRate:       p.VATRate,
		IsActive:      p.IsActive,
	}
}
