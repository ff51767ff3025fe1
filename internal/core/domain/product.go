package domain

import "github.com/shopspring/decimal"

// ProductUnit is the sellable/stockable unit of a product. Reference data from
// the ledger's viewpoint: documents snapshot its VAT rate at line creation
// time and never re-read it.
type ProductUnit struct {
	ProductUnitID string          `json:"productUnitID"` // Primary Key (e.g., UUID)
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"` // e.g. "chai", "gói", "kg"
	VATRate       decimal.Decimal `json:"vatRate"` // fraction, e.g. 0.10 for 10%
	IsActive      bool            `json:"isActive"`
	AuditFields
}
