package sandbox

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(opts Options) *Store {
	s := NewStore(opts)
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	s.now = func() time.Time { return time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC) }
	return s
}

func defaultOptions() Options {
	return Options{
		SubscriptionCredits: 4,
		PurchasedCredits:    6,
		Tier:                model.TierExpert,
		TokenLimit:          100,
		TokensPerCredit:     500,
		Costs:               DefaultCosts(),
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.SandboxConfig{SubscriptionCredits: 20, Tier: "EXPERT", AIChatTokenLimit: 10, TokensPerCredit: 100})
	assert.Equal(t, model.TierExpert, opts.Tier)
	assert.Equal(t, 5, opts.Costs.MatchPrediction)

	opts = OptionsFromConfig(config.SandboxConfig{Tier: "platinum"})
	assert.Equal(t, model.TierFree, opts.Tier)
}

func TestStore_Spend_SubscriptionFirst(t *testing.T) {
	s := newTestStore(defaultOptions())

	balance, err := s.Spend("alice", model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: "1"})

	require.NoError(t, err)
	assert.Equal(t, 0, balance.Subscription)
	assert.Equal(t, 5, balance.Purchased)
	assert.Equal(t, 5, balance.Total)

	history := s.History("alice")
	require.Len(t, history, 1)
	assert.Equal(t, -5, history[0].Amount)
	assert.Equal(t, model.CreditSpend, history[0].Type)
}

func TestStore_Spend_AlreadyUnlockedIsFree(t *testing.T) {
	s := newTestStore(defaultOptions())
	ref := model.ContentRef{ContentType: model.ContentTip, ContentID: "tip-1"}

	_, err := s.Spend("alice", ref)
	require.NoError(t, err)
	balance, err := s.Spend("alice", ref)
	require.NoError(t, err)

	assert.Equal(t, 7, balance.Total)
	assert.Len(t, s.History("alice"), 1)
	assert.True(t, s.CheckUnlock("alice", ref).IsUnlocked)
}

func TestStore_Spend_Insufficient(t *testing.T) {
	opts := defaultOptions()
	opts.SubscriptionCredits, opts.PurchasedCredits = 2, 0
	s := newTestStore(opts)

	_, err := s.Spend("bob", model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: "42"})

	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 5, apiErr.Required)
	assert.Equal(t, 2, apiErr.Available)
	assert.Equal(t, 2, s.Balance("bob").Total)

	status := s.CheckUnlock("bob", model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: "42"})
	assert.False(t, status.CanAfford)
	assert.Equal(t, 5, status.Cost)
}

func TestStore_WalletsAreSeparate(t *testing.T) {
	s := newTestStore(defaultOptions())

	_, err := s.Spend("alice", model.ContentRef{ContentType: model.ContentParlay, ContentID: "p"})
	require.NoError(t, err)

	assert.Equal(t, 0, s.Balance("alice").Total)
	assert.Equal(t, 10, s.Balance("bob").Total)
	assert.Equal(t, 10, s.Balance("").Total)
}

func TestStore_UnlockPrediction_IsStable(t *testing.T) {
	s := newTestStore(defaultOptions())

	first, err := s.UnlockPrediction("alice", 42)
	require.NoError(t, err)
	second, err := s.UnlockPrediction("alice", 42)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.IsUnlocked)
	assert.Equal(t, 5, s.Balance("alice").Total)
}

func TestStore_CreateTicket(t *testing.T) {
	s := newTestStore(defaultOptions())
	sels := []model.Selection{
		{MatchID: 1, Bet: "1", Odds: decimal.RequireFromString("1.80")},
		{MatchID: 2, Bet: "X", Odds: decimal.RequireFromString("2.10")},
	}

	ticket, err := s.CreateTicket("alice", &model.CreateTicketRequest{
		Selections: sels,
		TotalOdds:  decimal.NewFromInt(99),
		Stake:      decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.Equal(t, "37.80", ticket.PotentialWin.StringFixed(2))
	assert.Equal(t, "3.78", ticket.TotalOdds.StringFixed(2))
	assert.Equal(t, model.TicketPending, ticket.Status)

	second, err := s.CreateTicket("alice", &model.CreateTicketRequest{Selections: sels[:1], Stake: decimal.NewFromInt(5)})
	require.NoError(t, err)

	tickets := s.Tickets("alice")
	require.Len(t, tickets, 2)
	assert.Equal(t, second.ID, tickets[0].ID)
}

func TestStore_CreateTicket_Invalid(t *testing.T) {
	s := newTestStore(defaultOptions())
	one := decimal.NewFromInt(1)

	tests := []struct {
		name string
		req  *model.CreateTicketRequest
	}{
		{"no selections", &model.CreateTicketRequest{Stake: one}},
		{"zero stake", &model.CreateTicketRequest{Selections: []model.Selection{{MatchID: 1, Odds: one}}}},
		{"duplicate match", &model.CreateTicketRequest{Selections: []model.Selection{{MatchID: 1, Odds: one}, {MatchID: 1, Odds: one}}, Stake: one}},
		{"odds below one", &model.CreateTicketRequest{Selections: []model.Selection{{MatchID: 1, Odds: decimal.RequireFromString("0.5")}}, Stake: one}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateTicket("alice", tt.req)
			assert.ErrorIs(t, err, ErrInvalidTicket)
		})
	}
}

func TestStore_DeleteAndSettle(t *testing.T) {
	s := newTestStore(defaultOptions())
	req := &model.CreateTicketRequest{
		Selections: []model.Selection{{MatchID: 1, Bet: "1", Odds: decimal.RequireFromString("1.5")}},
		Stake:      decimal.NewFromInt(10),
	}

	a, err := s.CreateTicket("alice", req)
	require.NoError(t, err)
	b, err := s.CreateTicket("alice", req)
	require.NoError(t, err)

	token, update, err := s.Settle(a.ID, model.TicketWon)
	require.NoError(t, err)
	assert.Equal(t, "alice", token)
	assert.Equal(t, model.TicketWon, update.Status)
	require.NotNil(t, update.SettledAt)

	_, _, err = s.Settle(a.ID, model.TicketLost)
	assert.ErrorIs(t, err, ErrTicketSettled)
	_, _, err = s.Settle(b.ID, model.TicketPending)
	assert.ErrorIs(t, err, ErrInvalidSettlement)
	_, _, err = s.Settle("nope", model.TicketVoid)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	require.NoError(t, s.DeleteTicket("alice", b.ID))
	assert.ErrorIs(t, s.DeleteTicket("alice", b.ID), ErrTicketNotFound)
	assert.Len(t, s.Tickets("alice"), 1)
}

func TestStore_Chat(t *testing.T) {
	s := newTestStore(defaultOptions())

	reply, err := s.SendMessage("alice", 42, "Build me a ticket")
	require.NoError(t, err)
	require.NotNil(t, reply.TicketProposal)
	assert.Equal(t, reply.ID, reply.TicketProposal.ID)
	assert.Equal(t, model.ProposalPending, reply.TicketProposal.Status)
	assert.Len(t, reply.TicketProposal.Selections, 2)

	usage := s.Usage("alice")
	assert.Equal(t, reply.TokensUsed, usage.Used)
	assert.Equal(t, 100-reply.TokensUsed, usage.Remaining)

	history, err := s.ChatHistory("alice", 42)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.RoleUser, history[0].Role)

	require.NoError(t, s.UpdateProposalStatus("alice", reply.ID, model.ProposalAccepted))
	assert.ErrorIs(t, s.UpdateProposalStatus("alice", reply.ID, model.ProposalDeclined), model.ErrProposalFinalized)
	assert.ErrorIs(t, s.UpdateProposalStatus("alice", history[0].ID, model.ProposalDeclined), ErrNoProposal)
	assert.ErrorIs(t, s.UpdateProposalStatus("alice", "missing", model.ProposalDeclined), ErrMessageNotFound)
	assert.ErrorIs(t, s.UpdateProposalStatus("alice", reply.ID, model.ProposalPending), model.ErrInvalidProposalStatus)

	history, err = s.ChatHistory("alice", 42)
	require.NoError(t, err)
	assert.Equal(t, model.ProposalAccepted, history[1].TicketProposal.Status)

	require.NoError(t, s.DeleteConversation("alice", 42))
	history, err = s.ChatHistory("alice", 42)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStore_Chat_RequiresExpert(t *testing.T) {
	opts := defaultOptions()
	opts.Tier = model.TierPremium
	s := newTestStore(opts)

	_, err := s.SendMessage("alice", 1, "hi")
	assert.ErrorIs(t, err, ErrExpertRequired)
	_, err = s.ChatHistory("alice", 1)
	assert.ErrorIs(t, err, ErrExpertRequired)

	s.SetTier("alice", model.TierExpert)
	_, err = s.SendMessage("alice", 1, "hi")
	assert.NoError(t, err)
}

func TestStore_Chat_TokensExhaustedAndConvert(t *testing.T) {
	opts := defaultOptions()
	opts.TokenLimit = 10
	s := newTestStore(opts)

	_, err := s.SendMessage("alice", 1, "first question")
	require.NoError(t, err)
	_, err = s.SendMessage("alice", 1, "second question")
	assert.ErrorIs(t, err, ErrTokensExhausted)

	usage, err := s.ConvertCredits("alice")
	require.NoError(t, err)
	assert.Equal(t, 510, usage.Limit)
	assert.Positive(t, usage.Remaining)
	assert.Equal(t, 9, s.Balance("alice").Total)

	_, err = s.SendMessage("alice", 1, "second question")
	assert.NoError(t, err)
}

func TestHub_PublishesToOwnerOnly(t *testing.T) {
	h := NewHub(zerolog.Nop())
	alice := h.Subscribe("alice")
	bob := h.Subscribe("bob")

	update := model.TicketStatusUpdate{TicketID: "t-1", Status: model.TicketWon}
	assert.Equal(t, 1, h.Publish("alice", update))

	select {
	case got := <-alice.Updates:
		assert.Equal(t, "t-1", got.TicketID)
	default:
		t.Fatal("alice did not receive the update")
	}
	assert.Empty(t, bob.Updates)
	assert.Equal(t, 1, h.Subscribers("bob"))

	h.Unsubscribe(alice)
	h.Unsubscribe(alice)
	_, open := <-alice.Updates
	assert.False(t, open)
	assert.Equal(t, 0, h.Publish("alice", update))
	assert.Equal(t, 0, h.Subscribers("alice"))
}

func TestIdempotencyCache(t *testing.T) {
	c := NewIdempotencyCache()

	cached, err := c.Begin("k1")
	require.NoError(t, err)
	assert.Nil(t, cached)

	_, err = c.Begin("k1")
	assert.ErrorIs(t, err, ErrIdempotencyInUse)

	c.Complete("k1", CachedResponse{Status: http.StatusCreated, Body: []byte(`{"id":"t-1"}`)})
	cached, err = c.Begin("k1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, http.StatusCreated, cached.Status)

	_, err = c.Begin("k2")
	require.NoError(t, err)
	c.Complete("k2", CachedResponse{Status: http.StatusInternalServerError})
	cached, err = c.Begin("k2")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestRateLimiter(t *testing.T) {
	unlimited := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, unlimited.Allow("alice"))
	}

	l := NewRateLimiter(0.001, 1)
	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))
	assert.True(t, l.Allow("bob"))
}
