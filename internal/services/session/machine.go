package session

import (
	"fmt"
	"sync"
	"time"

	"AlphaForge/internal/domain/models"
	domrepo "AlphaForge/internal/domain/repository"
	domsvc "AlphaForge/internal/domain/service"
)

const (
	// DefaultOpenHour .. DefaultCloseHour is the active UTC window
	// (London pre-market through the NY afternoon).
	DefaultOpenHour  = 7
	DefaultCloseHour = 21
)

// Machine is the process-wide session bias state. It is the only engine
// state whose invariants span cycles: the scoring loop ticks it and the
// control surface may reset it at any time, so every access runs under
// the mutex and a reset is never partially applied.
type Machine struct {
	mu        sync.Mutex
	openHour  int
	closeHour int

	status  models.SessionStatus
	bias    models.Bias
	levels  models.KeyLevels
	metrics domrepo.Metrics
}

// NewMachine builds a machine in the CLOSED/NEUTRAL idle state.
// metrics may be nil.
func NewMachine(openHour, closeHour int, metrics domrepo.Metrics) *Machine {
	if openHour < 0 || openHour > 23 || closeHour <= openHour || closeHour > 24 {
		openHour, closeHour = DefaultOpenHour, DefaultCloseHour
	}
	return &Machine{
		openHour:  openHour,
		closeHour: closeHour,
		status:    models.SessionClosed,
		bias:      models.BiasNeutral,
		metrics:   metrics,
	}
}

// Tick applies the session window transitions for the given time.
// Entering the window from CLOSED forces the bias back to NEUTRAL so a
// stale overnight bias never leaks into a fresh session; leaving the
// window closes the session and neutralizes the bias.
func (m *Machine) Tick(now time.Time) {
	hour := now.UTC().Hour()

	m.mu.Lock()
	defer m.mu.Unlock()

	if hour >= m.openHour && hour < m.closeHour {
		if m.status == models.SessionClosed {
			m.setBias(models.BiasNeutral)
		}
		m.status = models.SessionOpen
		return
	}
	m.status = models.SessionClosed
	m.setBias(models.BiasNeutral)
}

// ApplyTrendView fuses the daily and 4-hour trend tags. The bias locks
// to their shared direction only when both agree on a non-neutral
// direction; on disagreement the existing bias holds until an explicit
// reset. Key levels update together with the bias, never separately.
func (m *Machine) ApplyTrendView(daily, h4 models.Trend, levels models.KeyLevels) {
	if daily != h4 || daily == models.TrendNeutral {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch daily {
	case models.TrendBullish:
		m.setBias(models.BiasBullish)
	case models.TrendBearish:
		m.setBias(models.BiasBearish)
	}
	m.levels = levels
}

// Reset clears the locked bias and key levels in one critical section.
// Safe to invoke at any time from the out-of-band control surface.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setBias(models.BiasNeutral)
	m.levels = models.KeyLevels{}
}

// Snapshot returns an immutable copy of the current state, including
// the instruction string for the downstream decision collaborator.
func (m *Machine) Snapshot() models.SessionSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.SessionSnapshot{
		SessionStatus: m.status,
		LockedBias:    m.bias,
		KeyLevels:     m.levels,
		Instruction:   fmt.Sprintf("ONLY look for %s setups. IGNORE counter-trend signals.", m.bias),
	}
}

// setBias mutates the bias under the caller-held lock and records the
// transition.
func (m *Machine) setBias(b models.Bias) {
	if b == m.bias {
		return
	}
	if m.metrics != nil {
		m.metrics.RecordBiasTransition(string(m.bias), string(b))
	}
	m.bias = b
}

var _ domsvc.BiasController = (*Machine)(nil)
