package model

type TicketStatus string

const (
	TicketPending TicketStatus = "pending"
	TicketWon     TicketStatus = "won"
	TicketLost    TicketStatus = "lost"
	TicketVoid    TicketStatus = "void"
)

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch s {
	case string(TicketPending):
		return TicketPending, nil
	case string(TicketWon):
		return TicketWon, nil
	case string(TicketLost):
		return TicketLost, nil
	case string(TicketVoid):
		return TicketVoid, nil
	default:
		return "", ErrInvalidTicketStatus
	}
}

func (s TicketStatus) String() string {
	return string(s)
}

// Settled reports whether the ticket reached a final outcome.
func (s TicketStatus) Settled() bool {
	return s == TicketWon || s == TicketLost || s == TicketVoid
}

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalDeclined ProposalStatus = "declined"
)

func ParseProposalStatus(s string) (ProposalStatus, error) {
	switch s {
	case string(ProposalPending):
		return ProposalPending, nil
	case string(ProposalAccepted):
		return ProposalAccepted, nil
	case string(ProposalDeclined):
		return ProposalDeclined, nil
	default:
		return "", ErrInvalidProposalStatus
	}
}

func (s ProposalStatus) String() string {
	return string(s)
}

// Terminal reports whether no further transition is allowed.
func (s ProposalStatus) Terminal() bool {
	return s == ProposalAccepted || s == ProposalDeclined
}

type ContentType string

const (
	ContentMatchPrediction ContentType = "match_prediction"
	ContentTip             ContentType = "tip"
	ContentParlay          ContentType = "parlay"
	ContentAIChat          ContentType = "ai_chat"
	ContentValueBet        ContentType = "value_bet"
	ContentTeamAnalysis    ContentType = "team_analysis"
	ContentPlayerAnalysis  ContentType = "player_analysis"
)

// DefaultCost is charged for content types missing from DefaultCosts.
const DefaultCost = 5

// DefaultCosts are used until the server-defined costs have been loaded.
var DefaultCosts = map[ContentType]int{
	ContentMatchPrediction: 5,
	ContentTip:             3,
	ContentParlay:          10,
	ContentAIChat:          1,
	ContentValueBet:        5,
	ContentTeamAnalysis:    8,
	ContentPlayerAnalysis:  5,
}

func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(s)
	if _, ok := DefaultCosts[ct]; !ok {
		return "", ErrInvalidContentType
	}
	return ct, nil
}

func (c ContentType) String() string {
	return string(c)
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// EntryState tags a chat entry as sent-but-unanswered or acknowledged by the server.
type EntryState int

const (
	EntryPending EntryState = iota
	EntryConfirmed
)

func (s EntryState) String() string {
	switch s {
	case EntryPending:
		return "pending"
	case EntryConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

type CreditTransactionType string

const (
	CreditPurchase     CreditTransactionType = "purchase"
	CreditSpend        CreditTransactionType = "spend"
	CreditRefund       CreditTransactionType = "refund"
	CreditReward       CreditTransactionType = "reward"
	CreditSubscription CreditTransactionType = "subscription"
)

type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
	TierVIP     SubscriptionTier = "vip"
	TierExpert  SubscriptionTier = "expert"
)
