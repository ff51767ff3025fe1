package domain

import "fmt"

// TransitionAction is a requested lifecycle transition.
type TransitionAction string

const (
	ActionSubmit  TransitionAction = "submit"
	ActionConfirm TransitionAction = "confirm"
	ActionApprove TransitionAction = "approve"
	ActionReject  TransitionAction = "reject"
	ActionCancel  TransitionAction = "cancel"
)

// transitionKey pairs a current status with a requested action.
type transitionKey struct {
	from   DocumentStatus
	action TransitionAction
}

// Per-kind legal transition subgraphs. Statuses absent from a kind's table
// (IN_TRANSIT, COMPLETED here) simply never match, so requests for them fail
// as illegal transitions.
var transitionTables = map[DocumentKind]map[transitionKey]DocumentStatus{
	KindGoodsReceipt: {
		{StatusDraft, ActionConfirm}:    StatusConfirmed,
		{StatusDraft, ActionCancel}:     StatusCancelled,
		{StatusConfirmed, ActionCancel}: StatusCancelled,
	},
	KindCustomerReturn: {
		{StatusDraft, ActionSubmit}:    StatusPending,
		{StatusPending, ActionApprove}: StatusApproved,
		{StatusPending, ActionReject}:  StatusRejected,
		{StatusDraft, ActionCancel}:    StatusCancelled,
		{StatusPending, ActionCancel}:  StatusCancelled,
		{StatusApproved, ActionCancel}: StatusCancelled,
	},
	KindSupplierReturn: {
		{StatusDraft, ActionSubmit}:    StatusPending,
		{StatusDraft, ActionApprove}:   StatusApproved,
		{StatusPending, ActionApprove}: StatusApproved,
		{StatusDraft, ActionReject}:    StatusRejected,
		{StatusPending, ActionReject}:  StatusRejected,
		{StatusPending, ActionCancel}:  StatusCancelled,
		{StatusApproved, ActionCancel}: StatusCancelled,
	},
}

// NextStatus resolves the target status for the requested action, or an error
// describing why the transition is illegal. It does not apply guard rules
// beyond the shape of the graph; role and line-count guards live in the
// posting coordinator.
func NextStatus(kind DocumentKind, from DocumentStatus, action TransitionAction) (DocumentStatus, error) {
	table, ok := transitionTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown document kind %q", kind)
	}
	next, ok := table[transitionKey{from, action}]
	if !ok {
		return "", fmt.Errorf("transition %q is not legal from status %s for %s", action, from, kind)
	}
	return next, nil
}

// PostingMovementType returns the ledger movement type a transition posts, or
// false when the transition has no stock effect.
func PostingMovementType(kind DocumentKind, action TransitionAction, next DocumentStatus) (MovementType, bool) {
	switch {
	case kind == KindGoodsReceipt && next == StatusConfirmed:
		return MovementPurchase, true
	case kind == KindCustomerReturn && next == StatusApproved:
		return MovementReturnIn, true
	case kind == KindSupplierReturn && next == StatusApproved:
		return MovementReturnOut, true
	}
	return "", false
}

// PostedStatus returns the status in which a document of the given kind holds
// posted stock.
func PostedStatus(kind DocumentKind) DocumentStatus {
	if kind == KindGoodsReceipt {
		return StatusConfirmed
	}
	return StatusApproved
}
