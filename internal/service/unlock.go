package service

import (
	"context"
	"fmt"
	"strconv"

	"ticket-engine/internal/gateway"
	"ticket-engine/internal/model"

	"github.com/rs/zerolog"
)

// UnlockGate unlocks credit-gated content. The check step is advisory; the
// unlock call performs spend and unlock in one server-side step.
type UnlockGate struct {
	content gateway.ContentAPI
	ledger  Ledger
	logger  zerolog.Logger
}

func NewUnlockGate(content gateway.ContentAPI, ledger Ledger, logger zerolog.Logger) *UnlockGate {
	return &UnlockGate{
		content: content,
		ledger:  ledger,
		logger:  logger,
	}
}

// Check asks the server whether ref is unlocked, what it costs and whether it
// is affordable. Nothing is reserved.
func (g *UnlockGate) Check(ctx context.Context, ref model.ContentRef) (*model.UnlockStatus, error) {
	if _, err := model.ParseContentType(ref.ContentType.String()); err != nil {
		return nil, err
	}
	return g.ledger.CheckUnlock(ctx, ref)
}

// Unlock spends credits on ref and returns what the server unlocked. Only the
// server judges affordability; owned content unlocks free. It is never
// retried automatically.
func (g *UnlockGate) Unlock(ctx context.Context, ref model.ContentRef) (*model.UnlockResult, error) {
	if _, err := model.ParseContentType(ref.ContentType.String()); err != nil {
		return nil, err
	}

	result := &model.UnlockResult{Ref: ref}

	switch ref.ContentType {
	case model.ContentMatchPrediction:
		matchID, err := strconv.ParseInt(ref.ContentID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: match id %q", model.ErrValidation, ref.ContentID)
		}
		prediction, err := g.content.UnlockPrediction(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("unlock prediction %d: %w", matchID, err)
		}
		result.Prediction = prediction
		g.refreshBalance(ctx)

	case model.ContentTip:
		tip, err := g.content.UnlockTip(ctx, ref.ContentID)
		if err != nil {
			return nil, fmt.Errorf("unlock tip %s: %w", ref.ContentID, err)
		}
		result.Tip = tip
		g.refreshBalance(ctx)

	default:
		balance, err := g.ledger.Spend(ctx, ref)
		if err != nil {
			return nil, err
		}
		result.Balance = balance
	}

	g.logger.Info().
		Str("content_type", ref.ContentType.String()).
		Str("content_id", ref.ContentID).
		Msg("content unlocked")
	return result, nil
}

func (g *UnlockGate) UnlockPrediction(ctx context.Context, matchID int64) (*model.Prediction, error) {
	res, err := g.Unlock(ctx, model.ContentRef{
		ContentType: model.ContentMatchPrediction,
		ContentID:   strconv.FormatInt(matchID, 10),
	})
	if err != nil {
		return nil, err
	}
	return res.Prediction, nil
}

func (g *UnlockGate) UnlockTip(ctx context.Context, id string) (*model.Tip, error) {
	res, err := g.Unlock(ctx, model.ContentRef{ContentType: model.ContentTip, ContentID: id})
	if err != nil {
		return nil, err
	}
	return res.Tip, nil
}

// refreshBalance picks up the spend made by a content-specific unlock.
// Failure only leaves the cached balance stale.
func (g *UnlockGate) refreshBalance(ctx context.Context) {
	if err := g.ledger.LoadBalance(ctx); err != nil {
		g.logger.Warn().Err(err).Msg("failed to refresh balance after unlock")
	}
}
