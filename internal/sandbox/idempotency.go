package sandbox

import (
	"net/http"
	"sync"
)

// CachedResponse is the first response produced for an idempotency key.
type CachedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

type idempotencyEntry struct {
	done bool
	resp CachedResponse
}

// IdempotencyCache remembers responses by key for the life of the process.
type IdempotencyCache struct {
	mu      sync.Mutex
	entries map[string]*idempotencyEntry
}

func NewIdempotencyCache() *IdempotencyCache {
	return &IdempotencyCache{entries: make(map[string]*idempotencyEntry)}
}

// Begin claims key. It returns the stored response when key already
// completed, and ErrIdempotencyInUse while another request holds it.
func (c *IdempotencyCache) Begin(key string) (*CachedResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		if !e.done {
			return nil, ErrIdempotencyInUse
		}
		resp := e.resp
		return &resp, nil
	}
	c.entries[key] = &idempotencyEntry{}
	return nil, nil
}

// Complete stores resp for key. Server errors release the key so the
// request can be retried.
func (c *IdempotencyCache) Complete(key string, resp CachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if resp.Status >= http.StatusInternalServerError {
		delete(c.entries, key)
		return
	}
	c.entries[key] = &idempotencyEntry{done: true, resp: resp}
}
