package models

import "github.com/shopspring/decimal"

// ProductUnit is the persisted shape of a product unit reference row.
type ProductUnit struct {
	ProductUnitID string          `json:"productUnitID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	VATRate       decimal.Decimal `json:"vatRate"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
