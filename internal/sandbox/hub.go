package sandbox

import (
	"sync"

	"ticket-engine/internal/model"

	"github.com/rs/zerolog"
)

const subscriberBuffer = 16

// Subscriber receives the status updates of one wallet's tickets.
type Subscriber struct {
	token   string
	Updates chan model.TicketStatusUpdate
}

// Hub fans ticket status updates out to the feed connections of the
// wallet that owns the ticket.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]map[*Subscriber]struct{}
	logger zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[*Subscriber]struct{}),
		logger: logger,
	}
}

func (h *Hub) Subscribe(token string) *Subscriber {
	if token == "" {
		token = AnonymousToken
	}
	sub := &Subscriber{token: token, Updates: make(chan model.TicketStatusUpdate, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[token] == nil {
		h.subs[token] = make(map[*Subscriber]struct{})
	}
	h.subs[token][sub] = struct{}{}

	h.logger.Debug().Int("subscribers", len(h.subs[token])).Msg("Feed subscriber registered")
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subs[sub.token]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.Updates)
	if len(subs) == 0 {
		delete(h.subs, sub.token)
	}
}

// Publish delivers update to every subscriber of token and returns how many
// received it. Subscribers whose buffer is full miss the update.
func (h *Hub) Publish(token string, update model.TicketStatusUpdate) int {
	if token == "" {
		token = AnonymousToken
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for sub := range h.subs[token] {
		select {
		case sub.Updates <- update:
			delivered++
		default:
			h.logger.Warn().Str("ticket_id", update.TicketID).Msg("Feed subscriber too slow, update dropped")
		}
	}
	return delivered
}

// Subscribers reports how many feed connections token currently holds.
func (h *Hub) Subscribers(token string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[token])
}
