package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/kvstore"
	"ticket-engine/internal/model"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

const maxResponseBytes = 10 << 20

var (
	_ TicketAPI  = (*Client)(nil)
	_ CreditAPI  = (*Client)(nil)
	_ ContentAPI = (*Client)(nil)
	_ ChatAPI    = (*Client)(nil)
)

// Client talks to the remote betting API. One instance is shared by every
// service; it is safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	appVersion     string
	buildNumber    string
	store          kvstore.Store
	breaker        *gobreaker.CircuitBreaker
	logger         zerolog.Logger
	onUnauthorized func()
}

type Option func(*Client)

// WithHTTPClient replaces the default client; its Timeout is overwritten by cfg.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSessionInvalidated registers fn to run after a 401 cleared the stored credentials.
func WithSessionInvalidated(fn func()) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

func NewClient(cfg config.GatewayConfig, store kvstore.Store, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		appVersion:  cfg.AppVersion,
		buildNumber: cfg.BuildNumber,
		store:       store,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Timeout = cfg.Timeout

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "remote-api",
		MaxRequests: cfg.BreakerHalfOpen,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return !tripsBreaker(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("circuit", name).
				Str("from_state", from.String()).
				Str("to_state", to.String()).
				Msg("remote API circuit breaker state changed")
		},
	})
	return c
}

// SetAuthToken stores the bearer token sent with every request.
func (c *Client) SetAuthToken(ctx context.Context, token string) error {
	return c.store.Set(ctx, kvstore.KeyAuthToken, []byte(token))
}

func (c *Client) AuthToken(ctx context.Context) (string, error) {
	raw, err := c.store.Get(ctx, kvstore.KeyAuthToken)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(raw), nil
}

func (c *Client) ClearAuthToken(ctx context.Context) error {
	return c.store.Delete(ctx, kvstore.KeyAuthToken)
}

// Headers returns the headers attached to every request, including auth.
func (c *Client) Headers(ctx context.Context) http.Header {
	h := http.Header{}
	h.Set("X-App-Version", c.appVersion)
	h.Set("X-Build-Number", c.buildNumber)

	token, err := c.AuthToken(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to get auth token")
	}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// FeedURL is the websocket endpoint streaming ticket status updates.
func (c *Client) FeedURL() (string, error) {
	u, err := url.Parse(c.baseURL + "/tickets/feed")
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, extra http.Header) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.roundTrip(ctx, method, path, payload, extra)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &model.APIError{
				Kind:    model.KindServer,
				Code:    string(model.KindServer),
				Status:  http.StatusServiceUnavailable,
				Message: "Service temporarily unavailable",
				Err:     err,
			}
		}
		c.logFailure(method, path, start, err)
		if model.KindOf(err) == model.KindUnauthorized {
			c.invalidateSession(ctx)
		}
		return err
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Dur("latency", time.Since(start)).
		Msg("remote API request")

	raw := result.([]byte)
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &model.APIError{
			Kind:    model.KindUnknown,
			Code:    string(model.KindUnknown),
			Message: "Malformed response",
			Err:     err,
		}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, extra http.Header) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for k, vs := range c.Headers(ctx) {
		req.Header[k] = vs
	}
	for k, vs := range extra {
		req.Header[k] = vs
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errorFromTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errorFromTransport(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) invalidateSession(ctx context.Context) {
	// Clearing must survive the caller's context being done.
	ctx = context.WithoutCancel(ctx)
	if err := c.store.Delete(ctx, kvstore.KeyAuthToken); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear auth token")
	}
	if err := c.store.Delete(ctx, kvstore.KeyUserData); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear user data")
	}
	c.logger.Info().Msg("session invalidated after unauthorized response")
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func (c *Client) logFailure(method, path string, start time.Time, err error) {
	evt := c.logger.Warn()
	if model.KindOf(err) == model.KindServer {
		evt = c.logger.Error()
	}
	evt.Err(err).
		Str("method", method).
		Str("path", path).
		Str("kind", string(model.KindOf(err))).
		Dur("latency", time.Since(start)).
		Msg("remote API request failed")
}

func idempotencyHeader(key string) http.Header {
	if key == "" {
		return nil
	}
	h := http.Header{}
	h.Set("Idempotency-Key", key)
	return h
}

// Tickets

func (c *Client) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := c.do(ctx, http.MethodGet, "/tickets", nil, &tickets, nil); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (c *Client) CreateTicket(ctx context.Context, req *model.CreateTicketRequest, idempotencyKey string) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := c.do(ctx, http.MethodPost, "/tickets", req, &ticket, idempotencyHeader(idempotencyKey)); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tickets/"+url.PathEscape(id), nil, nil, nil)
}

// Credits

func (c *Client) GetBalance(ctx context.Context) (*model.CreditBalance, error) {
	var balance model.CreditBalance
	if err := c.do(ctx, http.MethodGet, "/credits/balance", nil, &balance, nil); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) Spend(ctx context.Context, ref model.ContentRef, idempotencyKey string) (*model.CreditBalance, error) {
	var balance model.CreditBalance
	if err := c.do(ctx, http.MethodPost, "/credits/spend", ref, &balance, idempotencyHeader(idempotencyKey)); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) CheckUnlock(ctx context.Context, ref model.ContentRef) (*model.UnlockStatus, error) {
	path := fmt.Sprintf("/credits/check/%s/%s", url.PathEscape(ref.ContentType.String()), url.PathEscape(ref.ContentID))
	var status model.UnlockStatus
	if err := c.do(ctx, http.MethodGet, path, nil, &status, nil); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) GetPacks(ctx context.Context) ([]model.CreditPack, error) {
	var packs []model.CreditPack
	if err := c.do(ctx, http.MethodGet, "/credits/packs", nil, &packs, nil); err != nil {
		return nil, err
	}
	return packs, nil
}

func (c *Client) CreditHistory(ctx context.Context) ([]model.CreditTransaction, error) {
	var txs []model.CreditTransaction
	if err := c.do(ctx, http.MethodGet, "/credits/history", nil, &txs, nil); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *Client) GetCosts(ctx context.Context) (*model.CreditCosts, error) {
	var costs model.CreditCosts
	if err := c.do(ctx, http.MethodGet, "/credits/costs", nil, &costs, nil); err != nil {
		return nil, err
	}
	return &costs, nil
}

// Content

func (c *Client) UnlockPrediction(ctx context.Context, matchID int64) (*model.Prediction, error) {
	var prediction model.Prediction
	path := "/predictions/" + strconv.FormatInt(matchID, 10) + "/unlock"
	if err := c.do(ctx, http.MethodPost, path, nil, &prediction, nil); err != nil {
		return nil, err
	}
	return &prediction, nil
}

func (c *Client) UnlockTip(ctx context.Context, id string) (*model.Tip, error) {
	var tip model.Tip
	if err := c.do(ctx, http.MethodPost, "/tips/"+url.PathEscape(id)+"/unlock", nil, &tip, nil); err != nil {
		return nil, err
	}
	return &tip, nil
}

// AI chat

func (c *Client) GetUsage(ctx context.Context) (*model.TokenUsage, error) {
	var usage model.TokenUsage
	if err := c.do(ctx, http.MethodGet, "/ai-chat/usage", nil, &usage, nil); err != nil {
		return nil, err
	}
	return &usage, nil
}

func (c *Client) ConvertCredits(ctx context.Context) (*model.TokenUsage, error) {
	var usage model.TokenUsage
	if err := c.do(ctx, http.MethodPost, "/ai-chat/convert-credits", nil, &usage, nil); err != nil {
		return nil, err
	}
	return &usage, nil
}

func (c *Client) ChatHistory(ctx context.Context, matchID int64) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	path := "/ai-chat/match/" + strconv.FormatInt(matchID, 10) + "/history"
	if err := c.do(ctx, http.MethodGet, path, nil, &msgs, nil); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendChatMessage(ctx context.Context, matchID int64, message string) (*model.ChatMessage, error) {
	var reply model.ChatMessage
	path := "/ai-chat/match/" + strconv.FormatInt(matchID, 10) + "/message"
	if err := c.do(ctx, http.MethodPost, path, model.SendMessageRequest{Message: message}, &reply, nil); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) DeleteConversation(ctx context.Context, matchID int64) error {
	return c.do(ctx, http.MethodDelete, "/ai-chat/match/"+strconv.FormatInt(matchID, 10), nil, nil, nil)
}

func (c *Client) UpdateProposalStatus(ctx context.Context, messageID string, status model.ProposalStatus) error {
	path := "/ai-chat/ticket-proposal/" + url.PathEscape(messageID) + "/status"
	return c.do(ctx, http.MethodPut, path, model.ProposalStatusRequest{Status: status}, nil, nil)
}
