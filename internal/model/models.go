package model

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	DefaultStake = decimal.NewFromInt(10)
	MinStake     = decimal.NewFromInt(1)
)

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type League struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// MatchSnapshot is the denormalized match shown next to a selection. It is
// never re-validated client-side.
type MatchSnapshot struct {
	ID       int64  `json:"id"`
	HomeTeam Team   `json:"homeTeam"`
	AwayTeam Team   `json:"awayTeam"`
	League   League `json:"league"`
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Selection is one leg of a parlay.
type Selection struct {
	MatchID int64           `json:"matchId"`
	Match   MatchSnapshot   `json:"match"`
	Bet     string          `json:"bet"`
	Odds    decimal.Decimal `json:"odds"`
}

// Draft is the in-progress ticket. Combined odds and payout are derived on
// every call and never stored.
type Draft struct {
	Selections []Selection     `json:"selections"`
	Stake      decimal.Decimal `json:"stake"`
}

func NewDraft() Draft {
	return Draft{Selections: []Selection{}, Stake: DefaultStake}
}

// TotalOdds is the product of all selection odds, 1 for an empty draft.
func (d Draft) TotalOdds() decimal.Decimal {
	total := decimal.NewFromInt(1)
	for _, sel := range d.Selections {
		total = total.Mul(sel.Odds)
	}
	return total
}

func (d Draft) PotentialWin() decimal.Decimal {
	return d.Stake.Mul(d.TotalOdds())
}

func (d Draft) Empty() bool {
	return len(d.Selections) == 0
}

// Clone returns a copy that shares no slice storage with d.
func (d Draft) Clone() Draft {
	sels := make([]Selection, len(d.Selections))
	copy(sels, d.Selections)
	return Draft{Selections: sels, Stake: d.Stake}
}

type CreateTicketRequest struct {
	Selections   []Selection     `json:"selections"`
	TotalOdds    decimal.Decimal `json:"totalOdds"`
	Stake        decimal.Decimal `json:"stake"`
	PotentialWin decimal.Decimal `json:"potentialWin"`
}

// Ticket is the server-authoritative record of a submitted parlay.
type Ticket struct {
	ID           string          `json:"id"`
	Selections   []Selection     `json:"selections"`
	TotalOdds    decimal.Decimal `json:"totalOdds"`
	Stake        decimal.Decimal `json:"stake"`
	PotentialWin decimal.Decimal `json:"potentialWin"`
	Status       TicketStatus    `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	SettledAt    *time.Time      `json:"settledAt,omitempty"`
}

// TicketStatusUpdate is a server-driven status transition of a saved ticket.
type TicketStatusUpdate struct {
	TicketID  string       `json:"ticketId"`
	Status    TicketStatus `json:"status"`
	SettledAt *time.Time   `json:"settledAt,omitempty"`
}

type CreditBalance struct {
	Subscription int        `json:"subscription"`
	Purchased    int        `json:"purchased"`
	Total        int        `json:"total"`
	WeeklyReset  *time.Time `json:"weeklyReset,omitempty"`
}

type CreditPack struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Credits  int             `json:"credits"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Bonus    int             `json:"bonus,omitempty"`
	Popular  bool            `json:"popular,omitempty"`
}

type CreditTransaction struct {
	ID          string                `json:"id"`
	Type        CreditTransactionType `json:"type"`
	Amount      int                   `json:"amount"`
	Description string                `json:"description"`
	ContentType ContentType           `json:"contentType,omitempty"`
	ContentID   string                `json:"contentId,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

type CreditCosts struct {
	MatchPrediction int `json:"matchPrediction"`
	Tip             int `json:"tip"`
	Parlay          int `json:"parlay"`
	AIChat          int `json:"aiChat"`
	ValueBet        int `json:"valueBet"`
	TeamAnalysis    int `json:"teamAnalysis"`
	PlayerAnalysis  int `json:"playerAnalysis"`
}

// For returns the cost of a content type, DefaultCost when unknown.
func (c CreditCosts) For(ct ContentType) int {
	switch ct {
	case ContentMatchPrediction:
		return c.MatchPrediction
	case ContentTip:
		return c.Tip
	case ContentParlay:
		return c.Parlay
	case ContentAIChat:
		return c.AIChat
	case ContentValueBet:
		return c.ValueBet
	case ContentTeamAnalysis:
		return c.TeamAnalysis
	case ContentPlayerAnalysis:
		return c.PlayerAnalysis
	default:
		return DefaultCost
	}
}

// ContentRef names a piece of credit-gated content.
type ContentRef struct {
	ContentType ContentType `json:"contentType"`
	ContentID   string      `json:"contentId"`
}

type SpendRequest = ContentRef

type UnlockStatus struct {
	IsUnlocked bool `json:"isUnlocked"`
	Cost       int  `json:"cost"`
	CanAfford  bool `json:"canAfford"`
}

type RiskAssessment struct {
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}

type Prediction struct {
	ID             string          `json:"id"`
	MatchID        int64           `json:"matchId"`
	Prediction     string          `json:"prediction"`
	Confidence     int             `json:"confidence"`
	Odds           decimal.Decimal `json:"odds"`
	Reasoning      string          `json:"reasoning,omitempty"`
	AIAnalysis     string          `json:"aiAnalysis,omitempty"`
	RiskAssessment *RiskAssessment `json:"riskAssessment,omitempty"`
	IsUnlocked     bool            `json:"isUnlocked"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type Tip struct {
	ID         string          `json:"id"`
	MatchID    int64           `json:"matchId"`
	Match      MatchSnapshot   `json:"match"`
	Category   string          `json:"category"`
	Tip        string          `json:"tip"`
	Odds       decimal.Decimal `json:"odds"`
	Confidence int             `json:"confidence"`
	Reasoning  string          `json:"reasoning,omitempty"`
	IsUnlocked bool            `json:"isUnlocked"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// UnlockResult carries whatever the unlock endpoint returned for ref.
type UnlockResult struct {
	Ref        ContentRef
	Prediction *Prediction
	Tip        *Tip
	Balance    *CreditBalance
}

type TicketProposal struct {
	ID           string           `json:"id"`
	Selections   []Selection      `json:"selections"`
	TotalOdds    decimal.Decimal  `json:"totalOdds"`
	Stake        *decimal.Decimal `json:"stake,omitempty"`
	PotentialWin *decimal.Decimal `json:"potentialWin,omitempty"`
	Reasoning    string           `json:"reasoning"`
	Risks        []string         `json:"risks"`
	Status       ProposalStatus   `json:"status"`
}

type ProposalStatusRequest struct {
	Status ProposalStatus `json:"status"`
}

type ChatMessage struct {
	ID             string          `json:"id"`
	Role           ChatRole        `json:"role"`
	Content        string          `json:"content"`
	TicketProposal *TicketProposal `json:"ticketProposal,omitempty"`
	TokensUsed     int             `json:"tokensUsed,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

// ChatEntry is a message in a local conversation, tagged with whether the
// server has acknowledged it yet.
type ChatEntry struct {
	State   EntryState
	Message ChatMessage
}

type TokenUsage struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"resetAt"`
}

type ErrorResponse struct {
	Message   string              `json:"message"`
	Code      string              `json:"code,omitempty"`
	Required  *int                `json:"required,omitempty"`
	Available *int                `json:"available,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}
