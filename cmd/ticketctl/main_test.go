package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/gateway"
	"ticket-engine/internal/handler"
	"ticket-engine/internal/kvstore"
	"ticket-engine/internal/model"
	"ticket-engine/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, tier model.SubscriptionTier) (*app, *bytes.Buffer) {
	t.Helper()
	logger := zerolog.Nop()

	store := sandbox.NewStore(sandbox.Options{
		SubscriptionCredits: 20,
		Tier:                tier,
		TokenLimit:          10000,
		TokensPerCredit:     1000,
		Costs:               sandbox.DefaultCosts(),
	})
	srv := httptest.NewServer(handler.NewHandler(store, sandbox.NewHub(logger), false, logger).SetupRoutes())
	t.Cleanup(srv.Close)

	cfg := &config.Config{Gateway: config.GatewayConfig{
		BaseURL:         srv.URL + "/api",
		Timeout:         5 * time.Second,
		BreakerFailures: 5,
		BreakerOpenFor:  time.Second,
		BreakerHalfOpen: 1,
	}}
	kv := kvstore.NewMemoryStore()
	client := gateway.NewClient(cfg.Gateway, kv, logger)

	var out bytes.Buffer
	a := newApp(cfg, client, kv, &out, logger)
	require.NoError(t, a.run(context.Background(), "login", []string{"cli-user"}))
	return a, &out
}

func TestApp_AcceptChatProposal(t *testing.T) {
	a, out := newTestApp(t, model.TierExpert)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, "chat", []string{"10", "Build", "me", "a", "ticket"}))
	assert.Contains(t, out.String(), "proposal ")

	entries := a.chat.Messages(10)
	require.Len(t, entries, 2)
	assert.Equal(t, "Build me a ticket", entries[0].Message.Content)
	proposal := entries[1].Message.TicketProposal
	require.NotNil(t, proposal)

	out.Reset()
	require.NoError(t, a.run(ctx, "accept", []string{"10", proposal.ID}))
	assert.Contains(t, out.String(), "total odds")

	draft := a.tickets.Draft()
	require.Len(t, draft.Selections, len(proposal.Selections))
	assert.Equal(t, int64(10), draft.Selections[0].MatchID)

	err := a.run(ctx, "decline", []string{"10", proposal.ID})
	assert.ErrorIs(t, err, model.ErrProposalFinalized)

	require.NoError(t, a.run(ctx, "history", []string{"10"}))
	assert.Contains(t, out.String(), string(model.ProposalAccepted))
}

func TestApp_DeclineChatProposal(t *testing.T) {
	a, out := newTestApp(t, model.TierExpert)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, "chat", []string{"12", "parlay", "please"}))
	proposal := a.chat.Messages(12)[1].Message.TicketProposal
	require.NotNil(t, proposal)

	require.NoError(t, a.run(ctx, "decline", []string{"12", proposal.ID}))

	assert.Contains(t, out.String(), "declined")
	assert.True(t, a.tickets.Draft().Empty())
}

func TestApp_UnknownProposal(t *testing.T) {
	a, _ := newTestApp(t, model.TierExpert)

	err := a.run(context.Background(), "accept", []string{"10", "missing"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestApp_ChatNeedsExpertTier(t *testing.T) {
	a, _ := newTestApp(t, model.TierPremium)

	err := a.run(context.Background(), "chat", []string{"3", "hello"})

	assert.Equal(t, model.KindTierRequired, model.KindOf(err))
	assert.Equal(t, "this feature needs the expert subscription", describe(err))
}

func TestApp_Usage(t *testing.T) {
	a, out := newTestApp(t, model.TierExpert)

	require.NoError(t, a.run(context.Background(), "usage", nil))

	assert.Contains(t, out.String(), "tokens used 0 of 10000, 10000 remaining")
}

func TestApp_BadArguments(t *testing.T) {
	a, _ := newTestApp(t, model.TierExpert)
	ctx := context.Background()

	assert.ErrorIs(t, a.run(ctx, "chat", []string{"3"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, "accept", []string{"3"}), errUsage)
	assert.Error(t, a.run(ctx, "history", []string{"abc"}))
	assert.ErrorIs(t, a.run(ctx, "nope", nil), errUsage)
}
