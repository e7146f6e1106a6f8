package sandbox

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"ticket-engine/internal/config"
	"ticket-engine/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnonymousToken names the wallet used by requests without a bearer token.
const AnonymousToken = "anonymous"

const weeklyResetPeriod = 7 * 24 * time.Hour

// Options seeds every wallet the store creates.
type Options struct {
	SubscriptionCredits int
	PurchasedCredits    int
	Tier                model.SubscriptionTier
	TokenLimit          int
	TokensPerCredit     int
	Costs               model.CreditCosts
}

// OptionsFromConfig maps the SANDBOX_* settings, using the default content costs.
func OptionsFromConfig(cfg config.SandboxConfig) Options {
	tier := model.SubscriptionTier(strings.ToLower(cfg.Tier))
	switch tier {
	case model.TierFree, model.TierPremium, model.TierVIP, model.TierExpert:
	default:
		tier = model.TierFree
	}
	return Options{
		SubscriptionCredits: cfg.SubscriptionCredits,
		PurchasedCredits:    cfg.PurchasedCredits,
		Tier:                tier,
		TokenLimit:          cfg.AIChatTokenLimit,
		TokensPerCredit:     cfg.TokensPerCredit,
		Costs:               DefaultCosts(),
	}
}

func DefaultCosts() model.CreditCosts {
	return model.CreditCosts{
		MatchPrediction: model.DefaultCosts[model.ContentMatchPrediction],
		Tip:             model.DefaultCosts[model.ContentTip],
		Parlay:          model.DefaultCosts[model.ContentParlay],
		AIChat:          model.DefaultCosts[model.ContentAIChat],
		ValueBet:        model.DefaultCosts[model.ContentValueBet],
		TeamAnalysis:    model.DefaultCosts[model.ContentTeamAnalysis],
		PlayerAnalysis:  model.DefaultCosts[model.ContentPlayerAnalysis],
	}
}

type wallet struct {
	token        string
	tier         model.SubscriptionTier
	subscription int
	purchased    int
	weeklyReset  time.Time
	unlocked     map[model.ContentRef]bool
	history      []model.CreditTransaction
	tickets      []model.Ticket
	predictions  map[int64]model.Prediction
	usage        model.TokenUsage
	chats        map[int64][]model.ChatMessage
}

func (w *wallet) balance() model.CreditBalance {
	reset := w.weeklyReset
	return model.CreditBalance{
		Subscription: w.subscription,
		Purchased:    w.purchased,
		Total:        w.subscription + w.purchased,
		WeeklyReset:  &reset,
	}
}

// Store is the in-memory state behind the sandbox gateway. One wallet is
// kept per bearer token and created on first use.
type Store struct {
	opts  Options
	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	wallets map[string]*wallet
}

func NewStore(opts Options) *Store {
	return &Store{
		opts:    opts,
		now:     time.Now,
		newID:   uuid.NewString,
		wallets: make(map[string]*wallet),
	}
}

func (s *Store) walletLocked(token string) *wallet {
	if token == "" {
		token = AnonymousToken
	}
	if w, ok := s.wallets[token]; ok {
		return w
	}

	now := s.now()
	w := &wallet{
		token:        token,
		tier:         s.opts.Tier,
		subscription: s.opts.SubscriptionCredits,
		purchased:    s.opts.PurchasedCredits,
		weeklyReset:  now.Add(weeklyResetPeriod).UTC().Truncate(time.Second),
		unlocked:     make(map[model.ContentRef]bool),
		tickets:      []model.Ticket{},
		predictions:  make(map[int64]model.Prediction),
		chats:        make(map[int64][]model.ChatMessage),
		usage: model.TokenUsage{
			Limit:     s.opts.TokenLimit,
			Remaining: s.opts.TokenLimit,
			ResetAt:   now.Add(24 * time.Hour).UTC().Truncate(time.Second),
		},
	}
	s.wallets[token] = w
	return w
}

// SetTier changes the subscription tier of token's wallet.
func (s *Store) SetTier(token string, tier model.SubscriptionTier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletLocked(token).tier = tier
}

// Credits

func (s *Store) Balance(token string) model.CreditBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walletLocked(token).balance()
}

func (s *Store) Costs() model.CreditCosts {
	return s.opts.Costs
}

func (s *Store) Packs() []model.CreditPack {
	return []model.CreditPack{
		{ID: "starter", Name: "Starter", Credits: 50, Price: decimal.RequireFromString("4.99"), Currency: "EUR"},
		{ID: "pro", Name: "Pro", Credits: 150, Price: decimal.RequireFromString("12.99"), Currency: "EUR", Bonus: 15, Popular: true},
		{ID: "max", Name: "Max", Credits: 400, Price: decimal.RequireFromString("29.99"), Currency: "EUR", Bonus: 60},
	}
}

func (s *Store) History(token string) []model.CreditTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)
	out := make([]model.CreditTransaction, len(w.history))
	copy(out, w.history)
	return out
}

func (s *Store) CheckUnlock(token string, ref model.ContentRef) model.UnlockStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	if w.unlocked[ref] {
		return model.UnlockStatus{IsUnlocked: true, Cost: 0, CanAfford: true}
	}
	cost := s.opts.Costs.For(ref.ContentType)
	return model.UnlockStatus{Cost: cost, CanAfford: w.subscription+w.purchased >= cost}
}

// Spend unlocks ref for token. Content that is already unlocked is free.
func (s *Store) Spend(token string, ref model.ContentRef) (model.CreditBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	if err := s.unlockLocked(w, ref); err != nil {
		return model.CreditBalance{}, err
	}
	return w.balance(), nil
}

func (s *Store) unlockLocked(w *wallet, ref model.ContentRef) error {
	if w.unlocked[ref] {
		return nil
	}
	cost := s.opts.Costs.For(ref.ContentType)
	desc := fmt.Sprintf("Unlocked %s %s", ref.ContentType, ref.ContentID)
	if err := s.chargeLocked(w, cost, ref, desc); err != nil {
		return err
	}
	w.unlocked[ref] = true
	return nil
}

// chargeLocked takes cost from subscription credits first, then purchased ones.
func (s *Store) chargeLocked(w *wallet, cost int, ref model.ContentRef, desc string) error {
	available := w.subscription + w.purchased
	if available < cost {
		return model.NewInsufficientCredits(cost, available)
	}

	fromSubscription := min(cost, w.subscription)
	w.subscription -= fromSubscription
	w.purchased -= cost - fromSubscription

	w.history = append([]model.CreditTransaction{{
		ID:          s.newID(),
		Type:        model.CreditSpend,
		Amount:      -cost,
		Description: desc,
		ContentType: ref.ContentType,
		ContentID:   ref.ContentID,
		CreatedAt:   s.now(),
	}}, w.history...)
	return nil
}

// Content

func (s *Store) UnlockPrediction(token string, matchID int64) (model.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	ref := model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: fmt.Sprint(matchID)}
	if err := s.unlockLocked(w, ref); err != nil {
		return model.Prediction{}, err
	}

	if p, ok := w.predictions[matchID]; ok {
		return p, nil
	}
	p := model.Prediction{
		ID:         s.newID(),
		MatchID:    matchID,
		Prediction: "1",
		Confidence: 55 + int(matchID%30),
		Odds:       decimal.RequireFromString("1.85"),
		Reasoning:  "Home side unbeaten in five and the visitors travel poorly.",
		RiskAssessment: &model.RiskAssessment{
			Level:   "medium",
			Factors: []string{"away side rotation", "weather"},
		},
		IsUnlocked: true,
		CreatedAt:  s.now(),
	}
	w.predictions[matchID] = p
	return p, nil
}

func (s *Store) UnlockTip(token, id string) (model.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	ref := model.ContentRef{ContentType: model.ContentTip, ContentID: id}
	if err := s.unlockLocked(w, ref); err != nil {
		return model.Tip{}, err
	}
	return model.Tip{
		ID:         id,
		Category:   "goals",
		Tip:        "Over 2.5 goals",
		Odds:       decimal.RequireFromString("1.90"),
		Confidence: 68,
		Reasoning:  "Both sides average more than three goals per game this season.",
		IsUnlocked: true,
		CreatedAt:  s.now(),
	}, nil
}

// Tickets

func (s *Store) Tickets(token string) []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)
	out := make([]model.Ticket, len(w.tickets))
	copy(out, w.tickets)
	return out
}

// CreateTicket stores a pending ticket. Combined odds and payout are recomputed
// from the selections rather than trusted from the request.
func (s *Store) CreateTicket(token string, req *model.CreateTicketRequest) (model.Ticket, error) {
	if len(req.Selections) == 0 {
		return model.Ticket{}, fmt.Errorf("%w: no selections", ErrInvalidTicket)
	}
	if !req.Stake.IsPositive() {
		return model.Ticket{}, fmt.Errorf("%w: stake must be positive", ErrInvalidTicket)
	}
	seen := make(map[int64]bool, len(req.Selections))
	total := decimal.NewFromInt(1)
	for _, sel := range req.Selections {
		if seen[sel.MatchID] {
			return model.Ticket{}, fmt.Errorf("%w: duplicate match %d", ErrInvalidTicket, sel.MatchID)
		}
		if sel.Odds.LessThan(decimal.NewFromInt(1)) {
			return model.Ticket{}, fmt.Errorf("%w: odds below 1 for match %d", ErrInvalidTicket, sel.MatchID)
		}
		seen[sel.MatchID] = true
		total = total.Mul(sel.Odds)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	sels := make([]model.Selection, len(req.Selections))
	copy(sels, req.Selections)
	ticket := model.Ticket{
		ID:           s.newID(),
		Selections:   sels,
		TotalOdds:    total,
		Stake:        req.Stake,
		PotentialWin: req.Stake.Mul(total),
		Status:       model.TicketPending,
		CreatedAt:    s.now(),
	}
	w.tickets = append([]model.Ticket{ticket}, w.tickets...)
	return ticket, nil
}

func (s *Store) DeleteTicket(token, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	for i, t := range w.tickets {
		if t.ID == id {
			w.tickets = append(w.tickets[:i:i], w.tickets[i+1:]...)
			return nil
		}
	}
	return ErrTicketNotFound
}

// Settle moves a pending ticket to a final status. It returns the owning
// token so the caller can notify that wallet's feed subscribers.
func (s *Store) Settle(id string, status model.TicketStatus) (string, model.TicketStatusUpdate, error) {
	if !status.Settled() {
		return "", model.TicketStatusUpdate{}, ErrInvalidSettlement
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for token, w := range s.wallets {
		for i := range w.tickets {
			if w.tickets[i].ID != id {
				continue
			}
			if w.tickets[i].Status.Settled() {
				return "", model.TicketStatusUpdate{}, ErrTicketSettled
			}
			settledAt := s.now().UTC()
			w.tickets[i].Status = status
			w.tickets[i].SettledAt = &settledAt
			return token, model.TicketStatusUpdate{TicketID: id, Status: status, SettledAt: &settledAt}, nil
		}
	}
	return "", model.TicketStatusUpdate{}, ErrTicketNotFound
}

// AI chat

func (s *Store) Usage(token string) model.TokenUsage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walletLocked(token).usage
}

// ConvertCredits spends one AI chat unit of credits for TokensPerCredit tokens.
func (s *Store) ConvertCredits(token string) (model.TokenUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	ref := model.ContentRef{ContentType: model.ContentAIChat, ContentID: "tokens"}
	if err := s.chargeLocked(w, s.opts.Costs.AIChat, ref, "Converted credits to AI chat tokens"); err != nil {
		return model.TokenUsage{}, err
	}
	w.usage.Limit += s.opts.TokensPerCredit
	w.usage.Remaining = max(w.usage.Limit-w.usage.Used, 0)
	return w.usage, nil
}

func (s *Store) ChatHistory(token string, matchID int64) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)
	if w.tier != model.TierExpert {
		return nil, ErrExpertRequired
	}

	msgs := w.chats[matchID]
	out := make([]model.ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = cloneMessage(m)
	}
	return out, nil
}

// SendMessage records the user's message and a canned assistant reply. A
// message mentioning a ticket or parlay gets a ticket proposal attached.
func (s *Store) SendMessage(token string, matchID int64, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	if w.tier != model.TierExpert {
		return model.ChatMessage{}, ErrExpertRequired
	}
	if w.usage.Remaining <= 0 {
		return model.ChatMessage{}, ErrTokensExhausted
	}

	now := s.now()
	tokens := 40 + len(text)/4
	userMsg := model.ChatMessage{ID: s.newID(), Role: model.RoleUser, Content: text, CreatedAt: now}
	reply := model.ChatMessage{
		ID:         s.newID(),
		Role:       model.RoleAssistant,
		Content:    fmt.Sprintf("Match %d: the home side has the stronger recent form.", matchID),
		TokensUsed: tokens,
		CreatedAt:  now,
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "ticket") || strings.Contains(lower, "parlay") {
		reply.Content += " Here is a ticket you could build around it."
		reply.TicketProposal = s.proposal(reply.ID, matchID)
	}

	w.usage.Used += tokens
	w.usage.Remaining = max(w.usage.Limit-w.usage.Used, 0)
	w.chats[matchID] = append(w.chats[matchID], userMsg, reply)

	return cloneMessage(reply), nil
}

func (s *Store) proposal(messageID string, matchID int64) *model.TicketProposal {
	sels := []model.Selection{
		{
			MatchID: matchID,
			Match:   model.MatchSnapshot{ID: matchID, HomeTeam: model.Team{Name: "Home"}, AwayTeam: model.Team{Name: "Away"}},
			Bet:     "1",
			Odds:    decimal.RequireFromString("1.85"),
		},
		{
			MatchID: matchID + 1,
			Match:   model.MatchSnapshot{ID: matchID + 1, HomeTeam: model.Team{Name: "Home"}, AwayTeam: model.Team{Name: "Away"}},
			Bet:     "Over 2.5",
			Odds:    decimal.RequireFromString("1.90"),
		},
	}
	draft := model.Draft{Selections: sels, Stake: model.DefaultStake}
	stake := draft.Stake
	win := draft.PotentialWin()
	return &model.TicketProposal{
		ID:           messageID,
		Selections:   sels,
		TotalOdds:    draft.TotalOdds(),
		Stake:        &stake,
		PotentialWin: &win,
		Reasoning:    "Two favourites in form; the combined price stays under 4.",
		Risks:        []string{"early red card", "rotation before midweek fixtures"},
		Status:       model.ProposalPending,
	}
}

func (s *Store) DeleteConversation(token string, matchID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)
	if w.tier != model.TierExpert {
		return ErrExpertRequired
	}
	delete(w.chats, matchID)
	return nil
}

// UpdateProposalStatus finalizes the proposal carried by messageID. A proposal
// is finalized once; later changes fail with model.ErrProposalFinalized.
func (s *Store) UpdateProposalStatus(token, messageID string, status model.ProposalStatus) error {
	if !status.Terminal() {
		return fmt.Errorf("%w: %q", model.ErrInvalidProposalStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.walletLocked(token)

	for _, msgs := range w.chats {
		for i := range msgs {
			if msgs[i].ID != messageID {
				continue
			}
			p := msgs[i].TicketProposal
			if p == nil {
				return ErrNoProposal
			}
			if p.Status.Terminal() {
				return model.ErrProposalFinalized
			}
			p.Status = status
			return nil
		}
	}
	return ErrMessageNotFound
}

func cloneMessage(m model.ChatMessage) model.ChatMessage {
	if m.TicketProposal != nil {
		p := *m.TicketProposal
		p.Selections = append([]model.Selection(nil), p.Selections...)
		m.TicketProposal = &p
	}
	return m
}
