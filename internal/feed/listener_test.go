package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/model"
	mocks "ticket-engine/mocks/service"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type staticSource struct {
	url string
}

func (s staticSource) FeedURL() (string, error) { return s.url, nil }

func (s staticSource) Headers(context.Context) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer feed-token")
	return h
}

func TestListener_AppliesStatusUpdates(t *testing.T) {
	upgrader := websocket.Upgrader{}
	auths := make(chan string, 10)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case auths <- r.Header.Get("Authorization"):
		default:
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"ticketId":"t-1","status":"bogus"}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"ticketId":"missing","status":"lost"}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"ticketId":"t-1","status":"won","settledAt":"2026-05-01T20:00:00Z"}`))

		// Hold the connection until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	applied := make(chan model.TicketStatusUpdate, 4)
	applier := mocks.NewStatusApplier(t)
	applier.On("ApplyStatus", mock.MatchedBy(func(u model.TicketStatusUpdate) bool { return u.TicketID == "missing" })).
		Return(false)
	applier.On("ApplyStatus", mock.MatchedBy(func(u model.TicketStatusUpdate) bool { return u.TicketID == "t-1" })).
		Run(func(args mock.Arguments) { applied <- args.Get(0).(model.TicketStatusUpdate) }).
		Return(true)

	ctx, cancel := context.WithCancel(context.Background())
	l := NewListener(staticSource{url: "ws" + strings.TrimPrefix(srv.URL, "http")}, applier, config.FeedConfig{
		ReconnectDelay: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
	}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case u := <-applied:
		assert.Equal(t, model.TicketWon, u.Status)
		if assert.NotNil(t, u.SettledAt) {
			assert.Equal(t, 2026, u.SettledAt.Year())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("status update was not applied")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Equal(t, "Bearer feed-token", <-auths)
}

func TestListener_RetriesUntilStopped(t *testing.T) {
	attempts := make(chan struct{}, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case attempts <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	l := NewListener(staticSource{url: "ws" + strings.TrimPrefix(srv.URL, "http")}, mocks.NewStatusApplier(t), config.FeedConfig{
		ReconnectDelay: 5 * time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-attempts:
		case <-time.After(2 * time.Second):
			t.Fatal("listener did not retry")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
}
