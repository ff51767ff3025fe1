package stock

import (
	"testing"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedQuantity(t *testing.T) {
	in := domain.InventoryMovement{MovementID: "m-1", Type: domain.MovementPurchase, Quantity: 10}
	got, err := SignedQuantity(in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)

	out := domain.InventoryMovement{MovementID: "m-2", Type: domain.MovementSale, Quantity: 4}
	got, err = SignedQuantity(out)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), got)

	_, err = SignedQuantity(domain.InventoryMovement{MovementID: "m-3", Type: "RECOUNT", Quantity: 1})
	assert.Error(t, err)
}

func TestBalanceChanges(t *testing.T) {
	drafts := []domain.MovementDraft{
		{ProductUnitID: "pu-1", WarehouseID: "wh-1", Type: domain.MovementPurchase, Quantity: 10},
		{ProductUnitID: "pu-1", WarehouseID: "wh-1", Type: domain.MovementSale, Quantity: 3},
		{ProductUnitID: "pu-1", WarehouseID: "wh-2", Type: domain.MovementTransferIn, Quantity: 5},
		{ProductUnitID: "pu-2", WarehouseID: "wh-1", Type: domain.MovementReturnOut, Quantity: 2},
	}

	changes, err := BalanceChanges(drafts)
	require.NoError(t, err)

	assert.Len(t, changes, 3)
	assert.Equal(t, int64(7), changes[BalanceKey{ProductUnitID: "pu-1", WarehouseID: "wh-1"}])
	assert.Equal(t, int64(5), changes[BalanceKey{ProductUnitID: "pu-1", WarehouseID: "wh-2"}])
	assert.Equal(t, int64(-2), changes[BalanceKey{ProductUnitID: "pu-2", WarehouseID: "wh-1"}])
}

func TestBalanceChanges_UnknownType(t *testing.T) {
	drafts := []domain.MovementDraft{
		{ProductUnitID: "pu-1", WarehouseID: "wh-1", Type: "RECOUNT", Quantity: 1},
	}
	_, err := BalanceChanges(drafts)
	assert.Error(t, err)
}

func TestShortfallDetail(t *testing.T) {
	key := BalanceKey{ProductUnitID: "pu-1", WarehouseID: "wh-1"}
	assert.Equal(t, "product unit pu-1 in warehouse wh-1: have 10, need 15", ShortfallDetail(key, 10, 15))
}

func TestBalanceChanges_Empty(t *testing.T) {
	changes, err := BalanceChanges(nil)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
