package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ticket-engine/internal/model"
)

// Keys written by the engine. No other subsystem writes them.
const (
	KeyCurrentTicket = "current_ticket"
	KeyCreditBalance = "credit_balance"
	KeyAuthToken     = "auth_token"
	KeyUserData      = "user_data"
)

// Store is durable device-local storage keyed by string.
type Store interface {
	// Get returns model.ErrKeyNotFound when key was never set or was deleted
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into dest. found is false when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
