package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ticket-engine/internal/gateway"
	"ticket-engine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var _ ProposalStatusRecorder = (*ChatService)(nil)

// ChatService keeps the AI match chat conversations. A sent message is held
// as a pending entry until the server answers, then replaced by confirmed
// entries, or dropped if the send failed.
type ChatService struct {
	api    gateway.ChatAPI
	logger zerolog.Logger
	newID  func() string
	now    func() time.Time

	mu            sync.Mutex
	conversations map[int64][]model.ChatEntry
	usage         *model.TokenUsage
}

func NewChatService(api gateway.ChatAPI, logger zerolog.Logger) *ChatService {
	return &ChatService{
		api:           api,
		logger:        logger,
		newID:         uuid.NewString,
		now:           time.Now,
		conversations: make(map[int64][]model.ChatEntry),
	}
}

func (s *ChatService) LoadUsage(ctx context.Context) error {
	usage, err := s.api.GetUsage(ctx)
	if err != nil {
		return fmt.Errorf("load chat usage: %w", err)
	}
	s.mu.Lock()
	s.usage = usage
	s.mu.Unlock()
	return nil
}

// ConvertCredits trades credits for chat tokens.
func (s *ChatService) ConvertCredits(ctx context.Context) (*model.TokenUsage, error) {
	usage, err := s.api.ConvertCredits(ctx)
	if err != nil {
		return nil, fmt.Errorf("convert credits: %w", err)
	}
	s.mu.Lock()
	s.usage = usage
	s.mu.Unlock()

	out := *usage
	return &out, nil
}

func (s *ChatService) Usage() (model.TokenUsage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usage == nil {
		return model.TokenUsage{}, false
	}
	return *s.usage, true
}

func (s *ChatService) HasTokens() bool {
	u, ok := s.Usage()
	return ok && u.Remaining > 0
}

func (s *ChatService) RemainingTokens() int {
	u, _ := s.Usage()
	return u.Remaining
}

// LoadHistory replaces the confirmed part of a conversation with the server's
// copy. Entries still waiting for an answer are kept at the end.
func (s *ChatService) LoadHistory(ctx context.Context, matchID int64) error {
	history, err := s.api.ChatHistory(ctx, matchID)
	if err != nil {
		return fmt.Errorf("load chat history for match %d: %w", matchID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]model.ChatEntry, 0, len(history))
	for _, m := range history {
		entries = append(entries, model.ChatEntry{State: model.EntryConfirmed, Message: m})
	}
	for _, e := range s.conversations[matchID] {
		if e.State == model.EntryPending {
			entries = append(entries, e)
		}
	}
	s.conversations[matchID] = entries
	return nil
}

// SendMessage posts text to the match chat and returns the assistant reply.
func (s *ChatService) SendMessage(ctx context.Context, matchID int64, text string) (*model.ChatMessage, error) {
	pending := model.ChatMessage{
		ID:        "pending-" + s.newID(),
		Role:      model.RoleUser,
		Content:   text,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.conversations[matchID] = append(s.conversations[matchID], model.ChatEntry{State: model.EntryPending, Message: pending})
	s.mu.Unlock()

	reply, err := s.api.SendChatMessage(ctx, matchID, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.withoutEntry(matchID, pending.ID)
	if err != nil {
		s.conversations[matchID] = entries
		s.logger.Warn().Err(err).Int64("match_id", matchID).Msg("failed to send chat message")
		return nil, fmt.Errorf("send chat message for match %d: %w", matchID, err)
	}

	sent := pending
	sent.ID = "user-" + reply.ID
	entries = append(entries,
		model.ChatEntry{State: model.EntryConfirmed, Message: sent},
		model.ChatEntry{State: model.EntryConfirmed, Message: *reply},
	)
	s.conversations[matchID] = entries

	if reply.TokensUsed > 0 && s.usage != nil {
		s.usage.Used += reply.TokensUsed
		s.usage.Remaining = max(s.usage.Remaining-reply.TokensUsed, 0)
	}

	out := *reply
	return &out, nil
}

func (s *ChatService) DeleteConversation(ctx context.Context, matchID int64) error {
	if err := s.api.DeleteConversation(ctx, matchID); err != nil {
		return fmt.Errorf("delete conversation for match %d: %w", matchID, err)
	}
	s.mu.Lock()
	delete(s.conversations, matchID)
	s.mu.Unlock()
	return nil
}

// Messages returns a copy of the conversation for matchID, oldest first.
func (s *ChatService) Messages(matchID int64) []model.ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatEntry, len(s.conversations[matchID]))
	copy(out, s.conversations[matchID])
	return out
}

// SetProposalStatus updates the proposal carried by a cached message. The
// proposal is matched by its own id or by the id of the message carrying it.
func (s *ChatService) SetProposalStatus(proposalID string, status model.ProposalStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for matchID, entries := range s.conversations {
		for i := range entries {
			p := entries[i].Message.TicketProposal
			if p == nil || (p.ID != proposalID && entries[i].Message.ID != proposalID) {
				continue
			}
			updated := *p
			updated.Status = status
			entries[i].Message.TicketProposal = &updated
			s.conversations[matchID] = entries
			return true
		}
	}
	return false
}

// withoutEntry returns the conversation minus the entry with id. Must hold s.mu.
func (s *ChatService) withoutEntry(matchID int64, id string) []model.ChatEntry {
	current := s.conversations[matchID]
	out := make([]model.ChatEntry, 0, len(current))
	for _, e := range current {
		if e.Message.ID != id {
			out = append(out, e)
		}
	}
	return out
}
