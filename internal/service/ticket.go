package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ticket-engine/internal/gateway"
	"ticket-engine/internal/kvstore"
	"ticket-engine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const persistTimeout = 5 * time.Second

var (
	_ DraftEditor   = (*TicketBuilder)(nil)
	_ StatusApplier = (*TicketBuilder)(nil)
)

// TicketBuilder owns the in-progress parlay and the list of saved tickets.
// Local mutations are applied in call order and persisted before they return.
type TicketBuilder struct {
	api    gateway.TicketAPI
	store  kvstore.Store
	logger zerolog.Logger
	newKey func() string

	mu      sync.Mutex
	draft   model.Draft
	tickets []model.Ticket
	saving  bool
}

func NewTicketBuilder(api gateway.TicketAPI, store kvstore.Store, logger zerolog.Logger) *TicketBuilder {
	return &TicketBuilder{
		api:     api,
		store:   store,
		logger:  logger,
		newKey:  uuid.NewString,
		draft:   model.NewDraft(),
		tickets: []model.Ticket{},
	}
}

// Restore loads the persisted draft, if any. Call it once at startup.
func (b *TicketBuilder) Restore(ctx context.Context) error {
	var snapshot model.Draft
	found, err := kvstore.GetJSON(ctx, b.store, kvstore.KeyCurrentTicket, &snapshot)
	if err != nil {
		return fmt.Errorf("restore draft: %w", err)
	}
	if !found {
		return nil
	}

	draft := model.NewDraft()
	for _, sel := range snapshot.Selections {
		draft.Selections = upsertSelection(draft.Selections, sel)
	}
	if snapshot.Stake.IsPositive() {
		draft.Stake = clampStake(snapshot.Stake)
	}

	b.mu.Lock()
	b.draft = draft
	b.mu.Unlock()

	b.logger.Debug().Int("selections", len(draft.Selections)).Str("stake", draft.Stake.String()).Msg("draft restored")
	return nil
}

// AddSelection inserts sel, or replaces in place the selection already held for the same match.
func (b *TicketBuilder) AddSelection(sel model.Selection) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.draft.Selections = upsertSelection(b.draft.Selections, sel)
	b.persistLocked()
}

// RemoveSelection drops the selection for matchID; unknown ids are ignored.
func (b *TicketBuilder) RemoveSelection(matchID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.draft.Selections[:0:0]
	for _, s := range b.draft.Selections {
		if s.MatchID != matchID {
			kept = append(kept, s)
		}
	}
	b.draft.Selections = kept
	b.persistLocked()
}

// UpdateStake sets the stake, raising anything below the minimum to the minimum.
func (b *TicketBuilder) UpdateStake(stake decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.draft.Stake = clampStake(stake)
	b.persistLocked()
}

// Clear resets the draft and deletes its persisted snapshot.
func (b *TicketBuilder) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetLocked()
}

func (b *TicketBuilder) TotalOdds() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft.TotalOdds()
}

func (b *TicketBuilder) PotentialWin() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft.PotentialWin()
}

func (b *TicketBuilder) Stake() decimal.Decimal {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft.Stake
}

// Draft returns a copy of the current draft.
func (b *TicketBuilder) Draft() model.Draft {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft.Clone()
}

func (b *TicketBuilder) HasSelection(matchID int64) bool {
	_, ok := b.Selection(matchID)
	return ok
}

func (b *TicketBuilder) Selection(matchID int64) (model.Selection, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.draft.Selections {
		if s.MatchID == matchID {
			return s, true
		}
	}
	return model.Selection{}, false
}

func (b *TicketBuilder) SelectionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.draft.Selections)
}

// Save submits the draft. On success the saved ticket is recorded and the
// draft cleared; on failure the draft is left exactly as it was.
func (b *TicketBuilder) Save(ctx context.Context) (*model.Ticket, error) {
	b.mu.Lock()
	if b.draft.Empty() {
		b.mu.Unlock()
		return nil, model.ErrNoSelections
	}
	if b.saving {
		b.mu.Unlock()
		return nil, model.ErrSaveInProgress
	}
	snapshot := b.draft.Clone()
	b.saving = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.saving = false
		b.mu.Unlock()
	}()

	req := &model.CreateTicketRequest{
		Selections:   snapshot.Selections,
		TotalOdds:    snapshot.TotalOdds(),
		Stake:        snapshot.Stake,
		PotentialWin: snapshot.PotentialWin(),
	}

	ticket, err := b.api.CreateTicket(ctx, req, b.newKey())
	if err != nil {
		b.logger.Warn().Err(err).Int("selections", len(req.Selections)).Msg("failed to save ticket")
		return nil, fmt.Errorf("save ticket: %w", err)
	}

	b.mu.Lock()
	b.tickets = append([]model.Ticket{*ticket}, b.tickets...)
	b.resetLocked()
	b.mu.Unlock()

	b.logger.Info().
		Str("ticket_id", ticket.ID).
		Int("selections", len(ticket.Selections)).
		Str("total_odds", ticket.TotalOdds.StringFixed(2)).
		Str("stake", ticket.Stake.StringFixed(2)).
		Msg("ticket saved")

	return ticket, nil
}

// LoadTickets replaces the local saved-ticket list with the server's.
func (b *TicketBuilder) LoadTickets(ctx context.Context) error {
	tickets, err := b.api.ListTickets(ctx)
	if err != nil {
		return fmt.Errorf("load tickets: %w", err)
	}
	if tickets == nil {
		tickets = []model.Ticket{}
	}

	b.mu.Lock()
	b.tickets = tickets
	b.mu.Unlock()
	return nil
}

func (b *TicketBuilder) DeleteTicket(ctx context.Context, id string) error {
	if err := b.api.DeleteTicket(ctx, id); err != nil {
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.tickets[:0:0]
	for _, t := range b.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	b.tickets = kept
	return nil
}

// Tickets returns a copy of the saved tickets, newest first.
func (b *TicketBuilder) Tickets() []model.Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Ticket, len(b.tickets))
	copy(out, b.tickets)
	return out
}

func (b *TicketBuilder) ApplyStatus(update model.TicketStatusUpdate) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.tickets {
		if b.tickets[i].ID != update.TicketID {
			continue
		}
		b.tickets[i].Status = update.Status
		if update.SettledAt != nil {
			settled := *update.SettledAt
			b.tickets[i].SettledAt = &settled
		}
		b.logger.Info().Str("ticket_id", update.TicketID).Str("status", update.Status.String()).Msg("ticket status updated")
		return true
	}
	return false
}

func (b *TicketBuilder) resetLocked() {
	b.draft = model.NewDraft()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := b.store.Delete(ctx, kvstore.KeyCurrentTicket); err != nil {
		b.logger.Error().Err(err).Msg("failed to delete persisted draft")
	}
}

func (b *TicketBuilder) persistLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := kvstore.SetJSON(ctx, b.store, kvstore.KeyCurrentTicket, b.draft); err != nil {
		b.logger.Error().Err(err).Msg("failed to persist draft")
	}
}

func upsertSelection(sels []model.Selection, sel model.Selection) []model.Selection {
	out := make([]model.Selection, len(sels), len(sels)+1)
	copy(out, sels)
	for i := range out {
		if out[i].MatchID == sel.MatchID {
			out[i] = sel
			return out
		}
	}
	return append(out, sel)
}

func clampStake(stake decimal.Decimal) decimal.Decimal {
	if stake.LessThan(model.MinStake) {
		return model.MinStake
	}
	return stake
}
