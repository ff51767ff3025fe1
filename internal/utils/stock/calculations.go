package stock

import (
	"fmt"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
)

// SignedQuantity applies the polarity of the movement type to the stored
// positive quantity.
func SignedQuantity(m domain.InventoryMovement) (int64, error) {
	dir := m.Type.Direction()
	if dir == 0 {
		return 0, fmt.Errorf("unknown movement type %q for movement %s", m.Type, m.MovementID)
	}
	return int64(dir) * m.Quantity, nil
}

// SignedDraftQuantity is SignedQuantity over a draft that has not been posted
// yet.
func SignedDraftQuantity(d domain.MovementDraft) (int64, error) {
	dir := d.Type.Direction()
	if dir == 0 {
		return 0, fmt.Errorf("unknown movement type %q", d.Type)
	}
	return int64(dir) * d.Quantity, nil
}

// BalanceChanges aggregates the net signed quantity per (product unit,
// warehouse) pair for a batch of drafts. The repository locks and updates the
// materialized balances from this map.
func BalanceChanges(drafts []domain.MovementDraft) (map[BalanceKey]int64, error) {
	changes := make(map[BalanceKey]int64, len(drafts))
	for _, d := range drafts {
		signed, err := SignedDraftQuantity(d)
		if err != nil {
			return nil, err
		}
		key := BalanceKey{ProductUnitID: d.ProductUnitID, WarehouseID: d.WarehouseID}
		changes[key] += signed
	}
	return changes, nil
}

// BalanceKey identifies one stock balance row.
type BalanceKey struct {
	ProductUnitID string
	WarehouseID   string
}

// ShortfallDetail renders the insufficient-stock detail for one pair. The
// service pre-check and the in-transaction re-check both report through it so
// the caller sees the same shape whichever check fires.
func ShortfallDetail(key BalanceKey, have, need int64) string {
	return fmt.Sprintf("product unit %s in warehouse %s: have %d, need %d", key.ProductUnitID, key.WarehouseID, have, need)
}
