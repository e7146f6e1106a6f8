package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticket-engine/internal/model"
	"ticket-engine/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() sandbox.Options {
	return sandbox.Options{
		SubscriptionCredits: 20,
		Tier:                model.TierPremium,
		TokenLimit:          1000,
		TokensPerCredit:     500,
		Costs:               sandbox.DefaultCosts(),
	}
}

func newTestHandler(t *testing.T, opts sandbox.Options, requireAuth bool) *Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewHandler(sandbox.NewStore(opts), sandbox.NewHub(zerolog.Nop()), requireAuth, zerolog.Nop())
}

func newTestRouter(t *testing.T, opts sandbox.Options, requireAuth bool) (*gin.Engine, *sandbox.Store) {
	h := newTestHandler(t, opts, requireAuth)
	return h.SetupRoutes(), h.store
}

func doJSON(router http.Handler, method, path, token string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func ticketRequest() model.CreateTicketRequest {
	return model.CreateTicketRequest{
		Selections: []model.Selection{
			{MatchID: 1, Match: model.MatchSnapshot{ID: 1}, Bet: "1", Odds: decimal.RequireFromString("1.80")},
			{MatchID: 2, Match: model.MatchSnapshot{ID: 2}, Bet: "X", Odds: decimal.RequireFromString("2.10")},
		},
		// The server recomputes these.
		TotalOdds:    decimal.NewFromInt(99),
		Stake:        decimal.NewFromInt(10),
		PotentialWin: decimal.NewFromInt(990),
	}
}

func TestHandler_Health(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_AccessLogUsesHandlerLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	h := NewHandler(sandbox.NewStore(testOptions()), sandbox.NewHub(zerolog.Nop()), false, zerolog.New(&buf))

	w := doJSON(h.SetupRoutes(), http.MethodGet, "/health", "", nil, "X-Request-ID", "req-42", "X-App-Version", "1.2.0")

	require.Equal(t, http.StatusOK, w.Code)
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["message"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "/health", line["path"])
	assert.Equal(t, "1.2.0", line["app_version"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
}

func TestHandler_CreateTicket_RecomputesTotals(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodPost, "/api/tickets", "alice", ticketRequest())

	require.Equal(t, http.StatusCreated, w.Code)
	var ticket model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, model.TicketPending, ticket.Status)
	assert.True(t, decimal.RequireFromString("3.78").Equal(ticket.TotalOdds), ticket.TotalOdds.String())
	assert.True(t, decimal.RequireFromString("37.8").Equal(ticket.PotentialWin), ticket.PotentialWin.String())
	assert.Contains(t, w.Body.String(), `"totalOdds":3.78`)

	w = doJSON(router, http.MethodGet, "/api/tickets", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, ticket.ID, list[0].ID)

	// Wallets are per token.
	w = doJSON(router, http.MethodGet, "/api/tickets", "bob", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_CreateTicket_Errors(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantKind string
	}{
		{name: "malformed body", body: `{"selections":`, wantCode: http.StatusBadRequest, wantKind: "BAD_REQUEST"},
		{name: "no selections", body: `{"selections":[],"stake":10}`, wantCode: http.StatusUnprocessableEntity, wantKind: "VALIDATION"},
		{name: "zero stake", body: `{"selections":[{"matchId":1,"bet":"1","odds":1.5}],"stake":0}`, wantCode: http.StatusUnprocessableEntity, wantKind: "VALIDATION"},
		{
			name:     "duplicate match",
			body:     `{"selections":[{"matchId":1,"bet":"1","odds":1.5},{"matchId":1,"bet":"2","odds":2.5}],"stake":10}`,
			wantCode: http.StatusUnprocessableEntity,
			wantKind: "VALIDATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/api/tickets", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp model.ErrorResponse
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			assert.Equal(t, tt.wantKind, resp.Code)
		})
	}
}

func TestHandler_CreateTicket_IdempotencyKeyReplays(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	first := doJSON(router, http.MethodPost, "/api/tickets", "alice", ticketRequest(), "Idempotency-Key", "k-1")
	second := doJSON(router, http.MethodPost, "/api/tickets", "alice", ticketRequest(), "Idempotency-Key", "k-1")

	require.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))

	// Same key from another wallet is a different request.
	other := doJSON(router, http.MethodPost, "/api/tickets", "bob", ticketRequest(), "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusCreated, other.Code)
	assert.Empty(t, other.Header().Get("Idempotent-Replayed"))

	w := doJSON(router, http.MethodGet, "/api/tickets", "alice", nil)
	var list []model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestHandler_DeleteTicket(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodPost, "/api/tickets", "", ticketRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	var ticket model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))

	w = doJSON(router, http.MethodDelete, "/api/tickets/"+ticket.ID, "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/tickets/"+ticket.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), true)

	w := doJSON(router, http.MethodGet, "/api/credits/balance", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNAUTHORIZED", resp.Code)

	w = doJSON(router, http.MethodGet, "/api/credits/balance", "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Spend(t *testing.T) {
	opts := testOptions()
	opts.SubscriptionCredits = 3
	opts.PurchasedCredits = 4
	router, _ := newTestRouter(t, opts, false)

	ref := model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: "42"}
	w := doJSON(router, http.MethodPost, "/api/credits/spend", "alice", ref)

	require.Equal(t, http.StatusOK, w.Code)
	var balance model.CreditBalance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, 0, balance.Subscription)
	assert.Equal(t, 2, balance.Purchased)
	assert.Equal(t, 2, balance.Total)

	// Already unlocked content is free.
	w = doJSON(router, http.MethodPost, "/api/credits/spend", "alice", ref)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, 2, balance.Total)

	w = doJSON(router, http.MethodGet, "/api/credits/check/match_prediction/42", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status model.UnlockStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.IsUnlocked)

	w = doJSON(router, http.MethodGet, "/api/credits/history", "alice", nil)
	var history []model.CreditTransaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 1)
}

func TestHandler_Spend_InsufficientCredits(t *testing.T) {
	opts := testOptions()
	opts.SubscriptionCredits = 2
	router, _ := newTestRouter(t, opts, false)

	w := doJSON(router, http.MethodPost, "/api/credits/spend", "alice",
		model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: "42"})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INSUFFICIENT_CREDITS", resp.Code)
	require.NotNil(t, resp.Required)
	require.NotNil(t, resp.Available)
	assert.Equal(t, 5, *resp.Required)
	assert.Equal(t, 2, *resp.Available)
}

func TestHandler_Spend_BadInput(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodPost, "/api/credits/spend", "", model.ContentRef{ContentType: "horoscope", ContentID: "1"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(router, http.MethodPost, "/api/credits/spend", "", model.ContentRef{ContentType: model.ContentTip})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/credits/check/horoscope/1", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_CatalogEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodGet, "/api/credits/costs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var costs model.CreditCosts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &costs))
	assert.Equal(t, 5, costs.MatchPrediction)
	assert.Equal(t, 3, costs.Tip)

	w = doJSON(router, http.MethodGet, "/api/credits/packs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var packs []model.CreditPack
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packs))
	assert.NotEmpty(t, packs)
}

func TestHandler_UnlockPrediction(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodPost, "/api/predictions/7/unlock", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prediction model.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prediction))
	assert.Equal(t, int64(7), prediction.MatchID)
	assert.True(t, prediction.IsUnlocked)

	w = doJSON(router, http.MethodGet, "/api/credits/balance", "", nil)
	var balance model.CreditBalance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.Equal(t, 15, balance.Total)

	w = doJSON(router, http.MethodPost, "/api/predictions/abc/unlock", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UnlockTip(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodPost, "/api/tips/tip-9/unlock", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tip model.Tip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tip))
	assert.Equal(t, "tip-9", tip.ID)
	assert.True(t, tip.IsUnlocked)
}

func TestHandler_Chat_RequiresExpert(t *testing.T) {
	router, _ := newTestRouter(t, testOptions(), false)

	w := doJSON(router, http.MethodPost, "/api/ai-chat/match/1/message", "", model.SendMessageRequest{Message: "hi"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EXPERT_REQUIRED", resp.Code)
}

func TestHandler_Chat_ProposalLifecycle(t *testing.T) {
	opts := testOptions()
	opts.Tier = model.TierExpert
	router, _ := newTestRouter(t, opts, false)

	w := doJSON(router, http.MethodPost, "/api/ai-chat/match/10/message", "", model.SendMessageRequest{Message: "Build me a ticket"})
	require.Equal(t, http.StatusOK, w.Code)
	var reply model.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, model.RoleAssistant, reply.Role)
	require.NotNil(t, reply.TicketProposal)
	assert.Equal(t, model.ProposalPending, reply.TicketProposal.Status)

	path := "/api/ai-chat/ticket-proposal/" + reply.ID + "/status"
	w = doJSON(router, http.MethodPut, path, "", model.ProposalStatusRequest{Status: model.ProposalAccepted})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodPut, path, "", model.ProposalStatusRequest{Status: model.ProposalDeclined})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPut, path, "", model.ProposalStatusRequest{Status: "maybe"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(router, http.MethodPut, "/api/ai-chat/ticket-proposal/missing/status", "", model.ProposalStatusRequest{Status: model.ProposalAccepted})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/ai-chat/match/10/history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []model.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, model.ProposalAccepted, history[1].TicketProposal.Status)

	w = doJSON(router, http.MethodGet, "/api/ai-chat/usage", "", nil)
	var usage model.TokenUsage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &usage))
	assert.Equal(t, reply.TokensUsed, usage.Used)

	w = doJSON(router, http.MethodDelete, "/api/ai-chat/match/10", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(router, http.MethodGet, "/api/ai-chat/match/10/history", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_Chat_TokensExhausted(t *testing.T) {
	opts := testOptions()
	opts.Tier = model.TierExpert
	opts.TokenLimit = 0
	router, _ := newTestRouter(t, opts, false)

	w := doJSON(router, http.MethodPost, "/api/ai-chat/match/1/message", "", model.SendMessageRequest{Message: "hi"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = doJSON(router, http.MethodPost, "/api/ai-chat/convert-credits", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var usage model.TokenUsage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &usage))
	assert.Equal(t, 500, usage.Limit)

	w = doJSON(router, http.MethodPost, "/api/ai-chat/match/1/message", "", model.SendMessageRequest{Message: "hi"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/ai-chat/match/1/message", "", model.SendMessageRequest{Message: "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_SettleTicket_PushesFeedUpdate(t *testing.T) {
	h := newTestHandler(t, testOptions(), false)
	router := h.SetupRoutes()
	srv := httptest.NewServer(router)
	defer srv.Close()

	w := doJSON(router, http.MethodPost, "/api/tickets", "alice", ticketRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	var ticket model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))

	header := http.Header{}
	header.Set("Authorization", "Bearer alice")
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/tickets/feed", header)
	require.NoError(t, err)
	defer conn.Close()

	// The subscription is registered after the upgrade completes.
	require.Eventually(t, func() bool { return h.hub.Subscribers("alice") == 1 }, 2*time.Second, 10*time.Millisecond)

	w = doJSON(router, http.MethodPost, "/api/sandbox/tickets/"+ticket.ID+"/settle", "", map[string]string{"status": "won"})
	require.Equal(t, http.StatusOK, w.Code)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update model.TicketStatusUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, ticket.ID, update.TicketID)
	assert.Equal(t, model.TicketWon, update.Status)
	assert.NotNil(t, update.SettledAt)

	w = doJSON(router, http.MethodPost, "/api/sandbox/tickets/"+ticket.ID+"/settle", "", map[string]string{"status": "lost"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPost, "/api/sandbox/tickets/"+ticket.ID+"/settle", "", map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(router, http.MethodPost, "/api/sandbox/tickets/nope/settle", "", map[string]string{"status": "won"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RateLimitPerWallet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(sandbox.NewStore(testOptions()), sandbox.NewHub(zerolog.Nop()), false, zerolog.Nop(),
		WithRateLimit(0.001, 2))
	router := h.SetupRoutes()

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/api/credits/balance", "alice", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/api/credits/balance", "alice", nil).Code)

	w := doJSON(router, http.MethodGet, "/api/credits/balance", "alice", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RATE_LIMIT", resp.Code)

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/api/credits/balance", "bob", nil).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodGet, "/health", "alice", nil).Code)
}
