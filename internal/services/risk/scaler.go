package risk

import (
	"math"
	"strings"

	"AlphaForge/internal/domain/models"
)

const (
	// BaseRiskPct is the unscaled per-trade risk percentage.
	BaseRiskPct = 0.50
	// MinScaling and MaxScaling bound the volatility throttle band.
	MinScaling = 0.5
	MaxScaling = 2.0

	// Reference ATRs per symbol class. Calmer-than-reference markets
	// scale risk up, hotter ones scale it down, inside the band above.
	MetalReferenceATR = 5.0
	FXReferenceATR    = 0.0020
	JPYReferenceATR   = 0.40
)

// Scaler maps current volatility against a symbol-class reference ATR
// into a bounded risk percentage. It holds no per-cycle state.
type Scaler struct {
	baseRisk float64
}

// NewScaler builds a scaler with the given base risk percentage; a
// non-positive base falls back to BaseRiskPct.
func NewScaler(baseRisk float64) *Scaler {
	if baseRisk <= 0 {
		baseRisk = BaseRiskPct
	}
	return &Scaler{baseRisk: baseRisk}
}

// Scale computes the risk allocation for one symbol and its current
// ATR. A degenerate ATR (<= 0) returns the base risk unscaled.
func (sc *Scaler) Scale(symbol string, currentATR float64) models.RiskAllocation {
	ref := ReferenceATR(symbol)
	if currentATR <= 0 {
		return models.RiskAllocation{
			RiskPct:       round2(sc.baseRisk),
			ScalingFactor: 1.0,
			CurrentATR:    currentATR,
			ReferenceATR:  ref,
		}
	}

	factor := ref / currentATR
	if factor < MinScaling {
		factor = MinScaling
	}
	if factor > MaxScaling {
		factor = MaxScaling
	}

	return models.RiskAllocation{
		RiskPct:       round2(sc.baseRisk * factor),
		ScalingFactor: factor,
		CurrentATR:    currentATR,
		ReferenceATR:  ref,
	}
}

// ReferenceATR returns the symbol-class reference ATR: metal-style
// quotes, JPY-quoted pairs, and default FX-style quotes each carry their
// own constant.
func ReferenceATR(symbol string) float64 {
	up := strings.ToUpper(symbol)
	switch {
	case strings.Contains(up, "XAU") || strings.Contains(up, "XAG"):
		return MetalReferenceATR
	case strings.HasSuffix(up, "JPY"):
		return JPYReferenceATR
	default:
		return FXReferenceATR
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
