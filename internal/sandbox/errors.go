package sandbox

import "errors"

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketSettled     = errors.New("ticket already settled")
	ErrInvalidTicket     = errors.New("invalid ticket")
	ErrMessageNotFound   = errors.New("chat message not found")
	ErrEmptyMessage      = errors.New("message must not be empty")
	ErrNoProposal        = errors.New("message carries no ticket proposal")
	ErrExpertRequired    = errors.New("expert subscription required")
	ErrTokensExhausted   = errors.New("AI chat token limit reached")
	ErrUnauthorized      = errors.New("missing bearer token")
	ErrIdempotencyInUse  = errors.New("request with this idempotency key is still in progress")
	ErrInvalidSettlement = errors.New("settlement status must be won, lost or void")
)
