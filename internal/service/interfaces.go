package service

import (
	"context"

	"ticket-engine/internal/model"
)

// DraftEditor is the part of the ticket builder other components may mutate
type DraftEditor interface {
	// AddSelection inserts sel or replaces the selection for the same match
	AddSelection(sel model.Selection)
}

// StatusApplier receives server-driven status transitions of saved tickets
type StatusApplier interface {
	// ApplyStatus updates the matching saved ticket; false when it is unknown locally
	ApplyStatus(update model.TicketStatusUpdate) bool
}

// BalanceRefresher reloads the cached credit balance from the server
type BalanceRefresher interface {
	LoadBalance(ctx context.Context) error
}

// ProposalStatusRecorder mirrors a proposal's status into locally cached chat messages
type ProposalStatusRecorder interface {
	SetProposalStatus(proposalID string, status model.ProposalStatus) bool
}

// Ledger is what the unlock gate needs from the credit ledger client
type Ledger interface {
	BalanceRefresher

	Balance() (model.CreditBalance, bool)
	CanAfford(cost int) bool
	Spend(ctx context.Context, ref model.ContentRef) (*model.CreditBalance, error)
	CheckUnlock(ctx context.Context, ref model.ContentRef) (*model.UnlockStatus, error)
}
