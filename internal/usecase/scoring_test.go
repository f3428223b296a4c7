package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AlphaForge/internal/domain/models"
	icache "AlphaForge/internal/service/cache"
	"AlphaForge/internal/services/risk"
	"AlphaForge/internal/services/session"
)

func seriesOf(n int, base float64) []models.Candle {
	out := make([]models.Candle, n)
	for i := range out {
		c := base + 0.2*float64(i%7)
		out[i] = models.Candle{Open: c, High: c + 1.5, Low: c - 1.5, Close: c + 0.3, TickVolume: 50}
	}
	return out
}

func newTestUseCase(t *testing.T, now time.Time) *ScoringUseCase {
	t.Helper()
	stack, err := NewAlphaStack(DefaultWeights())
	require.NoError(t, err)

	uc := NewScoringUseCase(
		stack,
		risk.NewScaler(risk.BaseRiskPct),
		session.NewMachine(7, 21, nil),
		nil,
		icache.NewTTLCache(),
		true,
		time.Minute,
	)
	uc.now = func() time.Time { return now }
	return uc
}

func TestScoreProducesFullPacket(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(t, now)

	req := &models.ScoreRequest{
		Symbol:    "XAUUSD",
		Execution: seriesOf(210, 2300),
		Context:   seriesOf(210, 2300),
	}
	packet, err := uc.Score(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "XAUUSD", packet.Symbol)
	assert.Equal(t, now, packet.Timestamp)
	assert.False(t, packet.Degraded)
	require.NotNil(t, packet.Forensics)
	assert.Equal(t, models.SessionOpen, packet.Session.SessionStatus)
	assert.GreaterOrEqual(t, packet.Risk.RiskPct, 0.25)
	assert.LessOrEqual(t, packet.Risk.RiskPct, 1.00)
}

func TestScoreFlagsShortHistoryDegraded(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(t, now)

	req := &models.ScoreRequest{
		Symbol:    "GBPUSD",
		Execution: seriesOf(60, 1.27),
		Context:   seriesOf(60, 1.27),
	}
	packet, err := uc.Score(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, packet.Degraded)
}

func TestScoreOutsideSessionNeverActionable(t *testing.T) {
	now := time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC)
	uc := newTestUseCase(t, now)

	req := &models.ScoreRequest{
		Symbol:    "XAUUSD",
		Execution: seriesOf(210, 2300),
		Context:   seriesOf(210, 2300),
	}
	packet, err := uc.Score(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.SessionClosed, packet.Session.SessionStatus)
	assert.False(t, packet.Actionable)
}

func TestScoreForensicsDisabled(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	stack, err := NewAlphaStack(DefaultWeights())
	require.NoError(t, err)
	uc := NewScoringUseCase(stack, risk.NewScaler(risk.BaseRiskPct), session.NewMachine(7, 21, nil), nil, nil, false, time.Minute)
	uc.now = func() time.Time { return now }

	packet, err := uc.Score(context.Background(), &models.ScoreRequest{
		Symbol:    "GBPUSD",
		Execution: seriesOf(210, 1.27),
		Context:   seriesOf(210, 1.27),
	})
	require.NoError(t, err)
	assert.Nil(t, packet.Forensics)
}

func TestLatestRoundTripsThroughCache(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(t, now)

	_, ok := uc.Latest("XAUUSD")
	assert.False(t, ok)

	packet, err := uc.Score(context.Background(), &models.ScoreRequest{
		Symbol:    "XAUUSD",
		Execution: seriesOf(210, 2300),
		Context:   seriesOf(210, 2300),
	})
	require.NoError(t, err)

	got, ok := uc.Latest("XAUUSD")
	require.True(t, ok)
	assert.Equal(t, packet, got)
}

func TestSpreadGateBySymbolClass(t *testing.T) {
	assert.Equal(t, SpreadLimitMetalPips, SpreadLimit("XAUUSD"))
	assert.Equal(t, SpreadLimitFXPips, SpreadLimit("GBPUSD"))
	assert.Equal(t, SpreadLimitFXPips, SpreadLimit("USDJPY"))

	assert.True(t, spreadAcceptable("XAUUSD", 0), "missing spread passes")
	assert.True(t, spreadAcceptable("XAUUSD", 3.0))
	assert.False(t, spreadAcceptable("GBPUSD", 3.0))
	assert.False(t, spreadAcceptable("XAUUSD", 5.0))
}
