package mapping

import (
	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/bvtvshop/inventory_backend/internal/models"
)

// ToModelDocument converts a domain Document to its model row (lines mapped
// separately).
func ToModelDocument(d domain.Document) models.Document {
	var paymentStatus *string
	if d.PaymentStatus != nil {
		s := string(*d.PaymentStatus)
		paymentStatus = &s
	}
	return models.Document{
		DocumentID:     d.DocumentID,
		Kind:           string(d.Kind),
		DocumentNo:     d.DocumentNo,
		WarehouseID:    d.WarehouseID,
		CounterpartyID: d.CounterpartyID,
		SourceOrderID:  d.SourceOrderID,
		SourceDocID:    d.SourceDocID,
		Status:         string(d.Status),
		PaymentStatus:  paymentStatus,
		Reason:         d.Reason,
		Notes:          d.Notes,
		TotalVAT:       d.TotalVAT,
		ApproverID:     d.ApproverID,
		ApprovedAt:     d.ApprovedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model row (plus mapped lines) back to domain.
func ToDomainDocument(m models.Document, lines []models.LineItem) domain.Document {
	var paymentStatus *domain.PaymentStatus
	if m.PaymentStatus != nil {
		s := domain.PaymentStatus(*m.PaymentStatus)
		paymentStatus = &s
	}
	return domain.Document{
		DocumentID:     m.DocumentID,
		Kind:           domain.DocumentKind(m.Kind),
		DocumentNo:     m.DocumentNo,
		WarehouseID:    m.WarehouseID,
		CounterpartyID: m.CounterpartyID,
		SourceOrderID:  m.SourceOrderID,
		SourceDocID:    m.SourceDocID,
		Status:         domain.DocumentStatus(m.Status),
		PaymentStatus:  paymentStatus,
		Reason:         m.Reason,
		Notes:          m.Notes,
		TotalVAT:       m.TotalVAT,
		Lines:          ToDomainLineItemSlice(lines),
		ApproverID:     m.ApproverID,
		ApprovedAt:     m.ApprovedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain line item to its model row.
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:    d.LineItemID,
		DocumentID:    d.DocumentID,
		LineNo:        d.LineNo,
		ProductUnitID: d.ProductUnitID,
		Quantity:      d.Quantity,
		UnitAmount:    d.UnitAmount,
		VATRate:       d.VATRate,
	}
}

// ToDomainLineItem converts a model line row to domain.
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:    m.LineItemID,
		DocumentID:    m.DocumentID,
		LineNo:        m.LineNo,
		ProductUnitID: m.ProductUnitID,
		Quantity:      m.Quantity,
		UnitAmount:    m.UnitAmount,
		VATRate:       m.VATRate,
	}
}

// ToDomainLineItemSlice converts model line rows to domain line items.
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
