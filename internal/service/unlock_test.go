package service

import (
	"context"
	"testing"

	"ticket-engine/internal/model"
	mocks "ticket-engine/mocks/gateway"
	svcmocks "ticket-engine/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockGate_Unlock_InvalidContentType(t *testing.T) {
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())

	_, err := gate.Unlock(context.Background(), model.ContentRef{ContentType: "horoscope", ContentID: "1"})

	assert.ErrorIs(t, err, model.ErrInvalidContentType)
	assert.Equal(t, model.KindValidation, model.KindOf(err))
}

func TestUnlockGate_Unlock_OwnedContentWithEmptyBalance(t *testing.T) {
	ctx := context.Background()
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())

	content.On("UnlockPrediction", ctx, int64(7)).Return(&model.Prediction{ID: "pr-7", MatchID: 7, Prediction: "X", IsUnlocked: true}, nil)
	ledger.On("LoadBalance", ctx).Return(nil)

	prediction, err := gate.UnlockPrediction(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, "pr-7", prediction.ID)
	ledger.AssertNotCalled(t, "Balance")
}

func TestUnlockGate_Unlock_ServerRefusalPassesThrough(t *testing.T) {
	ctx := context.Background()
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())
	ref := model.ContentRef{ContentType: model.ContentParlay, ContentID: "p-1"}

	ledger.On("Spend", ctx, ref).Return(nil, model.NewInsufficientCredits(10, 2))

	_, err := gate.Unlock(ctx, ref)

	assert.ErrorIs(t, err, model.ErrInsufficientCredits)
}

func TestUnlockGate_Unlock_GenericSpend(t *testing.T) {
	ctx := context.Background()
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())
	ref := model.ContentRef{ContentType: model.ContentValueBet, ContentID: "vb-9"}

	ledger.On("Spend", ctx, ref).Return(&model.CreditBalance{Total: 15}, nil)

	result, err := gate.Unlock(ctx, ref)

	require.NoError(t, err)
	require.NotNil(t, result.Balance)
	assert.Equal(t, 15, result.Balance.Total)
	assert.Nil(t, result.Prediction)
}

func TestUnlockGate_UnlockPrediction_RefreshesBalance(t *testing.T) {
	ctx := context.Background()
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())

	content.On("UnlockPrediction", ctx, int64(42)).Return(&model.Prediction{ID: "pr-1", MatchID: 42, Prediction: "1", IsUnlocked: true}, nil)
	ledger.On("LoadBalance", ctx).Return(nil).Once()

	prediction, err := gate.UnlockPrediction(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, "pr-1", prediction.ID)
	assert.True(t, prediction.IsUnlocked)
}

func TestUnlockGate_UnlockTip_BalanceRefreshFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())

	content.On("UnlockTip", ctx, "tip-3").Return(&model.Tip{ID: "tip-3", Tip: "Over 2.5", IsUnlocked: true}, nil)
	ledger.On("LoadBalance", ctx).Return(&model.APIError{Kind: model.KindNetwork})

	tip, err := gate.UnlockTip(ctx, "tip-3")

	require.NoError(t, err)
	assert.Equal(t, "Over 2.5", tip.Tip)
}

func TestUnlockGate_Unlock_MalformedMatchID(t *testing.T) {
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())


	_, err := gate.Unlock(context.Background(), model.ContentRef{ContentType: model.ContentMatchPrediction, ContentID: "abc"})

	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, model.KindValidation, model.KindOf(err))
}

func TestUnlockGate_Check(t *testing.T) {
	ctx := context.Background()
	content := mocks.NewContentAPI(t)
	ledger := svcmocks.NewLedger(t)
	gate := NewUnlockGate(content, ledger, zerolog.Nop())
	ref := model.ContentRef{ContentType: model.ContentTip, ContentID: "tip-1"}

	ledger.On("CheckUnlock", ctx, ref).Return(&model.UnlockStatus{IsUnlocked: true, Cost: 0, CanAfford: true}, nil)

	status, err := gate.Check(ctx, ref)

	require.NoError(t, err)
	assert.True(t, status.IsUnlocked)
}
