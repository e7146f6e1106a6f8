package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/model"
	"ticket-engine/internal/service"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const handshakeTimeout = 10 * time.Second

// Source tells the listener where the feed lives and how to authenticate.
// The gateway client satisfies it.
type Source interface {
	FeedURL() (string, error)
	Headers(ctx context.Context) http.Header
}

// Listener applies server-pushed ticket status transitions to the saved
// ticket list. It reconnects with exponential backoff until stopped.
type Listener struct {
	source     Source
	applier    service.StatusApplier
	dialer     *websocket.Dialer
	delay      time.Duration
	maxBackoff time.Duration
	logger     zerolog.Logger
}

func NewListener(source Source, applier service.StatusApplier, cfg config.FeedConfig, logger zerolog.Logger) *Listener {
	delay := cfg.ReconnectDelay
	if delay <= 0 {
		delay = time.Second
	}
	maxBackoff := cfg.MaxBackoff
	if maxBackoff < delay {
		maxBackoff = delay
	}
	return &Listener{
		source:     source,
		applier:    applier,
		dialer:     &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		delay:      delay,
		maxBackoff: maxBackoff,
		logger:     logger,
	}
}

// Run blocks until ctx is done. Connection failures are logged and retried.
func (l *Listener) Run(ctx context.Context) {
	backoff := l.delay
	for {
		connected, err := l.session(ctx)
		if ctx.Err() != nil {
			l.logger.Info().Msg("Ticket feed stopped")
			return
		}
		if connected {
			backoff = l.delay
		}

		l.logger.Warn().Err(err).Dur("retry_in", backoff).Msg("Ticket feed disconnected")

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.logger.Info().Msg("Ticket feed stopped")
			return
		case <-timer.C:
		}

		backoff *= 2
		if backoff > l.maxBackoff {
			backoff = l.maxBackoff
		}
	}
}

// session holds one connection open; connected reports whether the handshake succeeded.
func (l *Listener) session(ctx context.Context) (connected bool, err error) {
	u, err := l.source.FeedURL()
	if err != nil {
		return false, err
	}

	conn, resp, err := l.dialer.DialContext(ctx, u, l.source.Headers(ctx))
	if err != nil {
		if resp != nil {
			return false, fmt.Errorf("feed handshake failed with status %d: %w", resp.StatusCode, err)
		}
		return false, fmt.Errorf("failed to connect to feed: %w", err)
	}
	defer conn.Close()

	// ReadMessage does not take a context.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	l.logger.Info().Str("url", u).Msg("Ticket feed connected")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return true, errors.New("feed closed by server")
			}
			return true, err
		}
		l.handle(raw)
	}
}

func (l *Listener) handle(raw []byte) {
	var update model.TicketStatusUpdate
	if err := json.Unmarshal(raw, &update); err != nil {
		l.logger.Warn().Err(err).Msg("Malformed ticket feed event")
		return
	}
	if update.TicketID == "" {
		l.logger.Warn().Msg("Ticket feed event without ticket id")
		return
	}
	if _, err := model.ParseTicketStatus(update.Status.String()); err != nil {
		l.logger.Warn().Str("ticket_id", update.TicketID).Str("status", update.Status.String()).Msg("Unknown ticket status in feed")
		return
	}

	if !l.applier.ApplyStatus(update) {
		l.logger.Debug().Str("ticket_id", update.TicketID).Msg("Feed event for ticket not held locally")
	}
}
