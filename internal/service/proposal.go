package service

import (
	"context"
	"fmt"

	"ticket-engine/internal/gateway"
	"ticket-engine/internal/model"

	"github.com/rs/zerolog"
)

// ProposalAdapter turns an AI-suggested ticket into draft selections.
type ProposalAdapter struct {
	draft    DraftEditor
	api      gateway.ChatAPI
	recorder ProposalStatusRecorder
	logger   zerolog.Logger
}

// NewProposalAdapter wires the adapter; recorder may be nil when no chat cache is kept.
func NewProposalAdapter(draft DraftEditor, api gateway.ChatAPI, recorder ProposalStatusRecorder, logger zerolog.Logger) *ProposalAdapter {
	return &ProposalAdapter{
		draft:    draft,
		api:      api,
		recorder: recorder,
		logger:   logger,
	}
}

// Accept adds every proposed selection to the draft, one per match, then
// marks the proposal accepted on the server. If that call fails the
// selections stay in the draft and the proposal stays pending.
func (a *ProposalAdapter) Accept(ctx context.Context, proposal *model.TicketProposal) error {
	if proposal.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", model.ErrProposalFinalized, proposal.ID, proposal.Status)
	}

	for _, sel := range proposal.Selections {
		a.draft.AddSelection(sel)
	}

	if err := a.setStatus(ctx, proposal, model.ProposalAccepted); err != nil {
		return err
	}

	a.logger.Info().
		Str("proposal_id", proposal.ID).
		Int("selections", len(proposal.Selections)).
		Msg("ticket proposal accepted")
	return nil
}

// Decline marks the proposal declined; the draft is not touched.
func (a *ProposalAdapter) Decline(ctx context.Context, proposal *model.TicketProposal) error {
	if proposal.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", model.ErrProposalFinalized, proposal.ID, proposal.Status)
	}

	if err := a.setStatus(ctx, proposal, model.ProposalDeclined); err != nil {
		return err
	}

	a.logger.Info().Str("proposal_id", proposal.ID).Msg("ticket proposal declined")
	return nil
}

func (a *ProposalAdapter) setStatus(ctx context.Context, proposal *model.TicketProposal, status model.ProposalStatus) error {
	if err := a.api.UpdateProposalStatus(ctx, proposal.ID, status); err != nil {
		return fmt.Errorf("mark proposal %s %s: %w", proposal.ID, status, err)
	}

	proposal.Status = status
	if a.recorder != nil {
		a.recorder.SetProposalStatus(proposal.ID, status)
	}
	return nil
}
