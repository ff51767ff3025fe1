package domain_test

import (
	"testing"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMovementType_Direction(t *testing.T) {
	inbound := []domain.MovementType{
		domain.MovementPurchase,
		domain.MovementReturnIn,
		domain.MovementTransferIn,
		domain.MovementConversionIn,
		domain.MovementAdjustmentPos,
	}
	outbound := []domain.MovementType{
		domain.MovementSale,
		domain.MovementReturnOut,
		domain.MovementTransferOut,
		domain.MovementConversionOut,
		domain.MovementAdjustmentNeg,
	}

	for _, mt := range inbound {
		assert.Equal(t, domain.DirectionInbound, mt.Direction(), "%s should be inbound", mt)
		assert.True(t, mt.Valid())
	}
	for _, mt := range outbound {
		assert.Equal(t, domain.DirectionOutbound, mt.Direction(), "%s should be outbound", mt)
		assert.True(t, mt.Valid())
	}

	unknown := domain.MovementType("RECOUNT")
	assert.Equal(t, domain.MovementDirection(0), unknown.Direction())
	assert.False(t, unknown.Valid())
}

func TestMovementType_Opposite(t *testing.T) {
	// Every valid type reverses polarity under Opposite.
	all := []domain.MovementType{
		domain.MovementPurchase,
		domain.MovementSale,
		domain.MovementReturnIn,
		domain.MovementReturnOut,
		domain.MovementTransferIn,
		domain.MovementTransferOut,
		domain.MovementConversionIn,
		domain.MovementConversionOut,
		domain.MovementAdjustmentPos,
		domain.MovementAdjustmentNeg,
	}
	for _, mt := range all {
		opp := mt.Opposite()
		assert.True(t, opp.Valid(), "opposite of %s must be a valid type", mt)
		assert.Equal(t, -int(mt.Direction()), int(opp.Direction()), "opposite of %s must flip polarity", mt)
	}

	// A reversed purchase leaves through RETURN_OUT, not through SALE.
	assert.Equal(t, domain.MovementReturnOut, domain.MovementPurchase.Opposite())
	assert.Equal(t, domain.MovementReturnIn, domain.MovementSale.Opposite())
}

func TestReversalReferenceType(t *testing.T) {
	assert.Equal(t, domain.RefGoodsReceiptsReversal, domain.ReversalReferenceType(domain.RefGoodsReceipts))
	assert.Equal(t, domain.RefCustomerReturnsReversal, domain.ReversalReferenceType(domain.RefCustomerReturns))
	assert.Equal(t, domain.RefSupplierReturnsReversal, domain.ReversalReferenceType(domain.RefSupplierReturns))
	assert.Equal(t, "manual_reversal", domain.ReversalReferenceType(domain.RefManual))
}

func TestDocumentKind_ReferenceType(t *testing.T) {
	assert.Equal(t, domain.RefGoodsReceipts, domain.KindGoodsReceipt.ReferenceType())
	assert.Equal(t, domain.RefCustomerReturns, domain.KindCustomerReturn.ReferenceType())
	assert.Equal(t, domain.RefSupplierReturns, domain.KindSupplierReturn.ReferenceType())
	assert.Equal(t, "", domain.DocumentKind("TRANSFER").ReferenceType())
}
