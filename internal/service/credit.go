package service

import (
	"context"
	"fmt"
	"sync"

	"ticket-engine/internal/gateway"
	"ticket-engine/internal/kvstore"
	"ticket-engine/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var _ Ledger = (*CreditLedger)(nil)

// CreditLedger caches the user's credit balance. The cached balance is only
// ever replaced by a balance the server returned; it is never decremented locally.
type CreditLedger struct {
	api    gateway.CreditAPI
	store  kvstore.Store
	logger zerolog.Logger
	newKey func() string

	mu       sync.RWMutex
	balance  *model.CreditBalance
	packs    []model.CreditPack
	history  []model.CreditTransaction
	costs    *model.CreditCosts
	spending int
}

func NewCreditLedger(api gateway.CreditAPI, store kvstore.Store, logger zerolog.Logger) *CreditLedger {
	return &CreditLedger{
		api:    api,
		store:  store,
		logger: logger,
		newKey: uuid.NewString,
	}
}

// Restore loads the last balance the server reported, so it can be shown before the first refresh.
func (l *CreditLedger) Restore(ctx context.Context) error {
	var cached model.CreditBalance
	found, err := kvstore.GetJSON(ctx, l.store, kvstore.KeyCreditBalance, &cached)
	if err != nil {
		return fmt.Errorf("restore balance: %w", err)
	}
	if !found {
		return nil
	}

	l.mu.Lock()
	if l.balance == nil {
		l.balance = &cached
	}
	l.mu.Unlock()
	return nil
}

// LoadBalance replaces the cached balance with the server's. On failure the
// previous balance stays in place.
func (l *CreditLedger) LoadBalance(ctx context.Context) error {
	balance, err := l.api.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("load balance: %w", err)
	}
	l.setBalance(ctx, balance)
	return nil
}

// Balance returns the cached balance; ok is false until one has been loaded.
func (l *CreditLedger) Balance() (model.CreditBalance, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.balance == nil {
		return model.CreditBalance{}, false
	}
	return *l.balance, true
}

func (l *CreditLedger) TotalCredits() int {
	b, _ := l.Balance()
	return b.Total
}

// CanAfford is a local check only; it is false while no balance is loaded.
func (l *CreditLedger) CanAfford(cost int) bool {
	b, ok := l.Balance()
	if !ok {
		return false
	}
	return b.Total >= cost
}

// Spend asks the server to spend credits on ref. Concurrent spends are all
// sent; the server decides which succeed.
func (l *CreditLedger) Spend(ctx context.Context, ref model.ContentRef) (*model.CreditBalance, error) {
	l.mu.Lock()
	l.spending++
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.spending--
		l.mu.Unlock()
	}()

	balance, err := l.api.Spend(ctx, ref, l.newKey())
	if err != nil {
		l.logger.Warn().Err(err).
			Str("content_type", ref.ContentType.String()).
			Str("content_id", ref.ContentID).
			Msg("failed to spend credits")
		return nil, fmt.Errorf("spend %s/%s: %w", ref.ContentType, ref.ContentID, err)
	}

	l.setBalance(ctx, balance)
	l.logger.Info().
		Str("content_type", ref.ContentType.String()).
		Str("content_id", ref.ContentID).
		Int("total", balance.Total).
		Msg("credits spent")

	out := *balance
	return &out, nil
}

// Spending reports how many spends are in flight, for disabling controls.
func (l *CreditLedger) Spending() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.spending
}

func (l *CreditLedger) CheckUnlock(ctx context.Context, ref model.ContentRef) (*model.UnlockStatus, error) {
	status, err := l.api.CheckUnlock(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("check unlock %s/%s: %w", ref.ContentType, ref.ContentID, err)
	}
	return status, nil
}

func (l *CreditLedger) LoadPacks(ctx context.Context) error {
	packs, err := l.api.GetPacks(ctx)
	if err != nil {
		return fmt.Errorf("load packs: %w", err)
	}
	l.mu.Lock()
	l.packs = packs
	l.mu.Unlock()
	return nil
}

func (l *CreditLedger) LoadHistory(ctx context.Context) error {
	txs, err := l.api.CreditHistory(ctx)
	if err != nil {
		return fmt.Errorf("load credit history: %w", err)
	}
	l.mu.Lock()
	l.history = txs
	l.mu.Unlock()
	return nil
}

func (l *CreditLedger) LoadCosts(ctx context.Context) error {
	costs, err := l.api.GetCosts(ctx)
	if err != nil {
		return fmt.Errorf("load costs: %w", err)
	}
	l.mu.Lock()
	l.costs = costs
	l.mu.Unlock()
	return nil
}

// RefreshAll reloads balance, packs and costs concurrently. Every load runs
// to completion; the first failure is returned.
func (l *CreditLedger) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return l.LoadBalance(ctx) })
	g.Go(func() error { return l.LoadPacks(ctx) })
	g.Go(func() error { return l.LoadCosts(ctx) })
	return g.Wait()
}

func (l *CreditLedger) Packs() []model.CreditPack {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.CreditPack, len(l.packs))
	copy(out, l.packs)
	return out
}

func (l *CreditLedger) History() []model.CreditTransaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.CreditTransaction, len(l.history))
	copy(out, l.history)
	return out
}

func (l *CreditLedger) Costs() (model.CreditCosts, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.costs == nil {
		return model.CreditCosts{}, false
	}
	return *l.costs, true
}

func (l *CreditLedger) CostsLoaded() bool {
	_, ok := l.Costs()
	return ok
}

// CostFor uses the server costs once loaded and the built-in defaults before that.
func (l *CreditLedger) CostFor(ct model.ContentType) int {
	if costs, ok := l.Costs(); ok {
		return costs.For(ct)
	}
	if cost, ok := model.DefaultCosts[ct]; ok {
		return cost
	}
	return model.DefaultCost
}

func (l *CreditLedger) setBalance(ctx context.Context, balance *model.CreditBalance) {
	b := *balance
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = &b

	// Written under the lock so the cache matches the last balance applied.
	if err := kvstore.SetJSON(context.WithoutCancel(ctx), l.store, kvstore.KeyCreditBalance, b); err != nil {
		l.logger.Error().Err(err).Msg("failed to cache balance")
	}
}
