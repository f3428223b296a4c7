package features

import (
	"math"

	"AlphaForge/internal/domain/models"
	"AlphaForge/internal/services/indicators"
)

// Feature extractors are pure: one timeframe's candle window plus its
// derived ATR in, one bounded [0,1] score out. Insufficient history or a
// degenerate ATR degrades to a zero score, never an error.

const (
	// StructureLookback is the swing window, excluding the current bar.
	StructureLookback = 20
	// StructureThreshold is the proximity decay width in ATR units.
	StructureThreshold = 0.5
	// FairValuePeriod is the EMA period treated as fair value.
	FairValuePeriod = 50
	// VolatilityAvgPeriod is the rolling-average window for ATR.
	VolatilityAvgPeriod = 50
	// MomentumFast and MomentumSlow are the EMA pair for trend strength.
	MomentumFast = 9
	MomentumSlow = 21

	// reversionCapATR saturates the reversion z-score at 2.5 ATRs.
	reversionCapATR = 2.5
	// momentumScale normalizes the EMA gap for FX-scale prices.
	momentumScale = 1000
)

// StructureScore measures how hard the current bar presses into the
// prior swing low/high, in ATR units. A pierced or touched level scores
// 1.0 and decays linearly to 0 at StructureThreshold ATRs away. The tag
// names the winning side; ties go to RESISTANCE_HIGH because the
// comparison is strictly low > high.
func StructureScore(s models.Series, atr float64) (float64, models.StructureType) {
	n := s.Len()
	if atr <= 0 || n < StructureLookback+1 {
		return 0, models.StructureResistanceHigh
	}

	lows := s.Lows()
	highs := s.Highs()
	// swing window shifted one bar back so the current bar never sees itself
	recentLow, okLo := indicators.WindowMin(lows, n-1-StructureLookback, n-1)
	recentHigh, okHi := indicators.WindowMax(highs, n-1-StructureLookback, n-1)
	if !okLo || !okHi {
		return 0, models.StructureResistanceHigh
	}

	cur := s.Last()
	distLow := (cur.Low - recentLow) / atr
	distHigh := (recentHigh - cur.High) / atr

	scoreLow := proximityScore(distLow)
	scoreHigh := proximityScore(distHigh)

	if scoreLow > scoreHigh {
		return scoreLow, models.StructureSupportLow
	}
	return scoreHigh, models.StructureResistanceHigh
}

// proximityScore maps a signed ATR distance to [0,1]: pierced or touched
// is 1.0, then linear decay out to the threshold.
func proximityScore(dist float64) float64 {
	switch {
	case dist <= 0:
		return 1.0
	case dist <= StructureThreshold:
		return 1.0 - dist/StructureThreshold
	default:
		return 0.0
	}
}

// ReversionScore measures how stretched the close is from its 50-period
// EMA fair value, as an absolute z-score in ATR units capped at 2.5.
func ReversionScore(closes []float64, atr float64) float64 {
	if atr <= 0 {
		return 0
	}
	ema := indicators.EMA(closes, FairValuePeriod)
	fair, ok := indicators.Last(ema)
	if !ok {
		return 0
	}
	z := (closes[len(closes)-1] - fair) / atr
	return clamp01(math.Abs(z) / reversionCapATR)
}

// VolatilityScore is the ratio of current ATR to its own 50-bar rolling
// average, clamped to [0,1]. Above-average volatility saturates at 1.0;
// it is an activity gate, not a magnitude signal.
func VolatilityScore(atrSeries []float64) float64 {
	cur, ok := indicators.Last(atrSeries)
	if !ok {
		return 0
	}
	avgSeries := indicators.SMA(atrSeries, VolatilityAvgPeriod)
	avg, ok := indicators.Last(avgSeries)
	if !ok || avg <= 0 {
		return 0
	}
	return clamp01(cur / avg)
}

// MomentumScore is the absolute gap between the fast and slow EMA,
// normalized by close and scaled for FX-style prices. It measures
// trend-alignment strength, not direction.
func MomentumScore(closes []float64) float64 {
	fast, okF := indicators.Last(indicators.EMA(closes, MomentumFast))
	slow, okS := indicators.Last(indicators.EMA(closes, MomentumSlow))
	if !okF || !okS {
		return 0
	}
	last := closes[len(closes)-1]
	if last <= 0 {
		return 0
	}
	gap := math.Abs(fast-slow) / last
	return clamp01(gap * momentumScale)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
