package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AlphaForge/internal/domain/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func TestNewMachineStartsClosedNeutral(t *testing.T) {
	m := NewMachine(DefaultOpenHour, DefaultCloseHour, nil)
	snap := m.Snapshot()

	assert.Equal(t, models.SessionClosed, snap.SessionStatus)
	assert.Equal(t, models.BiasNeutral, snap.LockedBias)
}

func TestSessionOpenClearsStaleBias(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.ApplyTrendView(models.TrendBullish, models.TrendBullish, models.KeyLevels{Support: 1, Resistance: 2})

	m.Tick(at(6, 59))
	snap := m.Snapshot()
	require.Equal(t, models.SessionClosed, snap.SessionStatus)
	require.Equal(t, models.BiasNeutral, snap.LockedBias)

	// re-lock while closed, then cross the open boundary
	m.ApplyTrendView(models.TrendBullish, models.TrendBullish, models.KeyLevels{})
	m.Tick(at(7, 0))
	snap = m.Snapshot()
	assert.Equal(t, models.SessionOpen, snap.SessionStatus)
	assert.Equal(t, models.BiasNeutral, snap.LockedBias, "opening the session must not inherit an overnight bias")
}

func TestTickOutsideWindowCloses(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.Tick(at(12, 0))
	require.Equal(t, models.SessionOpen, m.Snapshot().SessionStatus)

	m.ApplyTrendView(models.TrendBearish, models.TrendBearish, models.KeyLevels{})
	m.Tick(at(21, 0))
	snap := m.Snapshot()
	assert.Equal(t, models.SessionClosed, snap.SessionStatus)
	assert.Equal(t, models.BiasNeutral, snap.LockedBias)
}

func TestAgreementLocksBias(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.Tick(at(12, 0))

	levels := models.KeyLevels{Support: 2300.5, Resistance: 2380.0}
	m.ApplyTrendView(models.TrendBearish, models.TrendBearish, levels)

	snap := m.Snapshot()
	assert.Equal(t, models.BiasBearish, snap.LockedBias)
	assert.Equal(t, levels, snap.KeyLevels)
}

func TestDisagreementKeepsExistingBias(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.Tick(at(12, 0))
	m.ApplyTrendView(models.TrendBearish, models.TrendBearish, models.KeyLevels{Support: 1})

	m.ApplyTrendView(models.TrendBullish, models.TrendBearish, models.KeyLevels{Support: 9})
	snap := m.Snapshot()
	assert.Equal(t, models.BiasBearish, snap.LockedBias, "conflicting timeframes must not flip the lock")
	assert.Equal(t, models.KeyLevels{Support: 1}, snap.KeyLevels, "levels only move with the bias")
}

func TestNeutralAgreementDoesNotLock(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.Tick(at(12, 0))
	m.ApplyTrendView(models.TrendNeutral, models.TrendNeutral, models.KeyLevels{Support: 5})

	snap := m.Snapshot()
	assert.Equal(t, models.BiasNeutral, snap.LockedBias)
	assert.Equal(t, models.KeyLevels{}, snap.KeyLevels)
}

func TestResetClearsBiasAndLevels(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.Tick(at(12, 0))
	m.ApplyTrendView(models.TrendBullish, models.TrendBullish, models.KeyLevels{Support: 1, Resistance: 2})

	m.Reset()
	snap := m.Snapshot()
	assert.Equal(t, models.BiasNeutral, snap.LockedBias)
	assert.Equal(t, models.KeyLevels{}, snap.KeyLevels)
	assert.Equal(t, models.SessionOpen, snap.SessionStatus, "reset does not touch the session window")
}

func TestSnapshotInstructionNamesBias(t *testing.T) {
	m := NewMachine(7, 21, nil)
	m.Tick(at(12, 0))
	m.ApplyTrendView(models.TrendBullish, models.TrendBullish, models.KeyLevels{})

	snap := m.Snapshot()
	assert.Equal(t, "ONLY look for BULLISH setups. IGNORE counter-trend signals.", snap.Instruction)
}

func TestNewMachineRejectsBadWindow(t *testing.T) {
	m := NewMachine(22, 7, nil)
	m.Tick(at(12, 0))
	assert.Equal(t, models.SessionOpen, m.Snapshot().SessionStatus, "invalid window falls back to the default hours")
}
