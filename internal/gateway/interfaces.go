package gateway

import (
	"context"

	"ticket-engine/internal/model"
)

// TicketAPI covers the saved-ticket endpoints
type TicketAPI interface {
	// ListTickets returns the user's saved tickets, newest first
	ListTickets(ctx context.Context) ([]model.Ticket, error)

	// CreateTicket submits a draft; idempotencyKey identifies one logical submission
	CreateTicket(ctx context.Context, req *model.CreateTicketRequest, idempotencyKey string) (*model.Ticket, error)

	// DeleteTicket removes a saved ticket
	DeleteTicket(ctx context.Context, id string) error
}

// CreditAPI covers the credit ledger endpoints
type CreditAPI interface {
	GetBalance(ctx context.Context) (*model.CreditBalance, error)

	// Spend performs the authoritative spend and returns the post-spend balance
	Spend(ctx context.Context, ref model.ContentRef, idempotencyKey string) (*model.CreditBalance, error)

	// CheckUnlock is advisory and never reserves credits
	CheckUnlock(ctx context.Context, ref model.ContentRef) (*model.UnlockStatus, error)

	GetPacks(ctx context.Context) ([]model.CreditPack, error)
	CreditHistory(ctx context.Context) ([]model.CreditTransaction, error)
	GetCosts(ctx context.Context) (*model.CreditCosts, error)
}

// ContentAPI covers the endpoints that spend and unlock in one server-side step
type ContentAPI interface {
	UnlockPrediction(ctx context.Context, matchID int64) (*model.Prediction, error)
	UnlockTip(ctx context.Context, id string) (*model.Tip, error)
}

// ChatAPI covers the AI match chat endpoints
type ChatAPI interface {
	GetUsage(ctx context.Context) (*model.TokenUsage, error)
	ConvertCredits(ctx context.Context) (*model.TokenUsage, error)
	ChatHistory(ctx context.Context, matchID int64) ([]model.ChatMessage, error)
	SendChatMessage(ctx context.Context, matchID int64, message string) (*model.ChatMessage, error)
	DeleteConversation(ctx context.Context, matchID int64) error
	UpdateProposalStatus(ctx context.Context, messageID string, status model.ProposalStatus) error
}
