package service

import (
	"time"

	"AlphaForge/internal/domain/models"
)

// BiasController is the seam between the scoring cycle / control surface
// and the long-lived session bias state machine.
type BiasController interface {
	// Tick evaluates the session window for the given time and applies
	// the open/close transitions.
	Tick(now time.Time)
	// ApplyTrendView fuses the daily and 4-hour trend tags; the bias
	// only flips when both agree on a non-neutral direction.
	ApplyTrendView(daily, h4 models.Trend, levels models.KeyLevels)
	// Reset clears the locked bias and key levels atomically. Safe to
	// call at any time from the control surface.
	Reset()
	// Snapshot returns an immutable copy of the current state.
	Snapshot() models.SessionSnapshot
}
