package forensics

import (
	"AlphaForge/internal/domain/models"
	"AlphaForge/internal/services/indicators"
)

const (
	// SweepWickATR is the wick size, in ATR units, that qualifies a sweep.
	SweepWickATR = 1.5
	// VolumeSpikeRatio is the tick-volume multiple over its 50-bar average.
	VolumeSpikeRatio = 2.0
	// VolumeAvgPeriod is the averaging window for tick volume.
	VolumeAvgPeriod = 50
	// PinbarWickRatio is the wick-to-range ratio that qualifies a pinbar.
	PinbarWickRatio = 0.60

	// Liquidity evidence compares against the swing computed over bars
	// [-22,-2]; the two most recent bars are excluded so the current bar
	// cannot validate its own breakout.
	liquidityWindow = 22
	liquidityGap    = 2
)

// Analyze runs the wick/volume/price-action forensics over the latest
// bar of one timeframe. ATR degeneracy and short history degrade to the
// zero evidence, never an error.
func Analyze(s models.Series, atr float64) models.ForensicsEvidence {
	ev := models.ForensicsEvidence{
		SweepType: models.SweepNone,
		Pattern:   models.PatternNone,
	}
	if s.Len() == 0 {
		return ev
	}
	cur := s.Last()

	if rng := cur.Range(); rng > 0 {
		ev.UpperWickRatio = cur.UpperWick() / rng
		ev.LowerWickRatio = cur.LowerWick() / rng
	}

	ev.SweepType = classifySweep(cur, atr)
	ev.VolumeSpike = volumeSpike(s)
	ev.HighProbSetup = ev.SweepType != models.SweepNone && ev.VolumeSpike
	ev.Pattern = classifyPattern(s)

	applyLiquidityEvidence(&ev, s)
	return ev
}

// classifySweep tags a long-wick rejection candle: a bearish sweep needs
// an upper wick of at least 1.5 ATR on a red close, a bullish sweep the
// mirror on a green close. The directions are mutually exclusive.
func classifySweep(c models.Candle, atr float64) models.SweepType {
	if atr <= 0 {
		return models.SweepNone
	}
	switch {
	case c.UpperWick() >= SweepWickATR*atr && c.IsRed():
		return models.SweepBearish
	case c.LowerWick() >= SweepWickATR*atr && c.IsGreen():
		return models.SweepBullish
	default:
		return models.SweepNone
	}
}

// volumeSpike reports whether the latest bar's tick volume is at least
// VolumeSpikeRatio times the average of the preceding 50 bars.
func volumeSpike(s models.Series) bool {
	n := s.Len()
	if n < VolumeAvgPeriod+1 {
		return false
	}
	vols := s.Volumes()
	sum := 0.0
	for _, v := range vols[n-1-VolumeAvgPeriod : n-1] {
		sum += v
	}
	avg := sum / float64(VolumeAvgPeriod)
	if avg <= 0 {
		return false
	}
	return vols[n-1] >= VolumeSpikeRatio*avg
}

// classifyPattern detects pinbars and engulfing candles on the latest
// bar. Engulfing requires strict body containment against an
// opposite-color prior bar and overwrites any pinbar tag.
func classifyPattern(s models.Series) models.Pattern {
	cur := s.Last()
	pattern := models.PatternNone

	if rng := cur.Range(); rng > 0 {
		if cur.LowerWick()/rng >= PinbarWickRatio {
			pattern = models.PatternBullishPinbar
		} else if cur.UpperWick()/rng >= PinbarWickRatio {
			pattern = models.PatternBearishPinbar
		}
	}

	if s.Len() < 2 {
		return pattern
	}
	prev := s[s.Len()-2]
	if cur.IsGreen() && prev.IsRed() && cur.Close > prev.Open && cur.Open < prev.Close {
		pattern = models.PatternBullishEngulfing
	} else if cur.IsRed() && prev.IsGreen() && cur.Open > prev.Close && cur.Close < prev.Open {
		pattern = models.PatternBearishEngulfing
	}
	return pattern
}

// applyLiquidityEvidence fills the pierce/fakeout fields: how far the
// current bar probed past the [-22,-2] swing, and whether it closed back
// inside (a trapped-breakout signal).
func applyLiquidityEvidence(ev *models.ForensicsEvidence, s models.Series) {
	n := s.Len()
	if n < liquidityWindow+liquidityGap {
		return
	}
	from := n - liquidityWindow
	to := n - liquidityGap
	recentHigh, okHi := indicators.WindowMax(s.Highs(), from, to)
	recentLow, okLo := indicators.WindowMin(s.Lows(), from, to)
	if !okHi || !okLo {
		return
	}

	cur := s.Last()
	if d := cur.High - recentHigh; d > 0 {
		ev.PiercedHigh = d
		ev.FakeoutHigh = cur.Close < recentHigh
	}
	if d := recentLow - cur.Low; d > 0 {
		ev.PiercedLow = d
		ev.FakeoutLow = cur.Close > recentLow
	}
}
