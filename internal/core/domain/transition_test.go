package domain_test

import (
	"testing"

	"github.com/bvtvshop/inventory_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.DocumentKind
		from    domain.DocumentStatus
		action  domain.TransitionAction
		want    domain.DocumentStatus
		wantErr bool
	}{
		{
			name:   "goods receipt confirm from draft",
			kind:   domain.KindGoodsReceipt,
			from:   domain.StatusDraft,
			action: domain.ActionConfirm,
			want:   domain.StatusConfirmed,
		},
		{
			name:   "goods receipt cancel after confirm",
			kind:   domain.KindGoodsReceipt,
			from:   domain.StatusConfirmed,
			action: domain.ActionCancel,
			want:   domain.StatusCancelled,
		},
		{
			name:    "goods receipt has no submit",
			kind:    domain.KindGoodsReceipt,
			from:    domain.StatusDraft,
			action:  domain.ActionSubmit,
			wantErr: true,
		},
		{
			name:    "goods receipt confirm is not repeatable",
			kind:    domain.KindGoodsReceipt,
			from:    domain.StatusConfirmed,
			action:  domain.ActionConfirm,
			wantErr: true,
		},
		{
			name:   "customer return submit",
			kind:   domain.KindCustomerReturn,
			from:   domain.StatusDraft,
			action: domain.ActionSubmit,
			want:   domain.StatusPending,
		},
		{
			name:   "customer return approve from pending",
			kind:   domain.KindCustomerReturn,
			from:   domain.StatusPending,
			action: domain.ActionApprove,
			want:   domain.StatusApproved,
		},
		{
			name:    "customer return cannot approve straight from draft",
			kind:    domain.KindCustomerReturn,
			from:    domain.StatusDraft,
			action:  domain.ActionApprove,
			wantErr: true,
		},
		{
			name:   "customer return cancel after approve",
			kind:   domain.KindCustomerReturn,
			from:   domain.StatusApproved,
			action: domain.ActionCancel,
			want:   domain.StatusCancelled,
		},
		{
			name:   "supplier return approve straight from draft",
			kind:   domain.KindSupplierReturn,
			from:   domain.StatusDraft,
			action: domain.ActionApprove,
			want:   domain.StatusApproved,
		},
		{
			name:   "supplier return reject from pending",
			kind:   domain.KindSupplierReturn,
			from:   domain.StatusPending,
			action: domain.ActionReject,
			want:   domain.StatusRejected,
		},
		{
			name:    "supplier return draft has no cancel",
			kind:    domain.KindSupplierReturn,
			from:    domain.StatusDraft,
			action:  domain.ActionCancel,
			wantErr: true,
		},
		{
			name:    "no transitions leave a rejected document",
			kind:    domain.KindCustomerReturn,
			from:    domain.StatusRejected,
			action:  domain.ActionApprove,
			wantErr: true,
		},
		{
			name:    "unknown kind",
			kind:    domain.DocumentKind("TRANSFER"),
			from:    domain.StatusDraft,
			action:  domain.ActionSubmit,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextStatus(tt.kind, tt.from, tt.action)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostingMovementType(t *testing.T) {
	mt, posts := domain.PostingMovementType(domain.KindGoodsReceipt, domain.ActionConfirm, domain.StatusConfirmed)
	require.True(t, posts)
	assert.Equal(t, domain.MovementPurchase, mt)

	mt, posts = domain.PostingMovementType(domain.KindCustomerReturn, domain.ActionApprove, domain.StatusApproved)
	require.True(t, posts)
	assert.Equal(t, domain.MovementReturnIn, mt)

	mt, posts = domain.PostingMovementType(domain.KindSupplierReturn, domain.ActionApprove, domain.StatusApproved)
	require.True(t, posts)
	assert.Equal(t, domain.MovementReturnOut, mt)

	// Non-posting transitions carry no stock effect.
	_, posts = domain.PostingMovementType(domain.KindCustomerReturn, domain.ActionSubmit, domain.StatusPending)
	assert.False(t, posts)
	_, posts = domain.PostingMovementType(domain.KindCustomerReturn, domain.ActionReject, domain.StatusRejected)
	assert.False(t, posts)
	_, posts = domain.PostingMovementType(domain.KindGoodsReceipt, domain.ActionCancel, domain.StatusCancelled)
	assert.False(t, posts)
}

func TestPostedStatus(t *testing.T) {
	assert.Equal(t, domain.StatusConfirmed, domain.PostedStatus(domain.KindGoodsReceipt))
	assert.Equal(t, domain.StatusApproved, domain.PostedStatus(domain.KindCustomerReturn))
	assert.Equal(t, domain.StatusApproved, domain.PostedStatus(domain.KindSupplierReturn))
}

func TestDocumentStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusRejected.IsTerminal())
	assert.True(t, domain.StatusCancelled.IsTerminal())
	assert.False(t, domain.StatusDraft.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusConfirmed.IsTerminal())
	assert.False(t, domain.StatusApproved.IsTerminal())
}
