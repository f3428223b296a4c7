package forensics

import (
	"AlphaForge/internal/domain/models"
	"AlphaForge/internal/services/indicators"
)

const (
	// ADXPeriod is the lookback for ADX and the directional indicators.
	ADXPeriod = 14
	// ADXTrending is the ADX floor for a trending read.
	ADXTrending = 25.0
	// ADXRanging is the ADX ceiling for a ranging read.
	ADXRanging = 20.0
	// DonchianWindow is the channel lookback for range containment.
	DonchianWindow = 20
)

// ClassifyRegime tags one timeframe's trend state. ADX >= 25 is
// TRENDING; ADX < 20 with price contained inside the 20-bar Donchian
// channel is RANGING; everything else is TRANSITION. The trend tag comes
// from the directional indicator pair.
func ClassifyRegime(s models.Series) models.RegimeContext {
	adx, plusDI, minusDI, ok := indicators.ADX(s, ADXPeriod)
	if !ok {
		return models.RegimeContext{
			Regime: models.RegimeTransition,
			Trend:  models.TrendNeutral,
		}
	}

	trend := models.TrendNeutral
	if plusDI > minusDI {
		trend = models.TrendBullish
	} else if minusDI > plusDI {
		trend = models.TrendBearish
	}

	regime := models.RegimeTransition
	switch {
	case adx >= ADXTrending:
		regime = models.RegimeTrending
	case adx < ADXRanging:
		if hi, lo, chOK := indicators.Donchian(s, DonchianWindow); chOK {
			close := s.Last().Close
			if close <= hi && close >= lo {
				regime = models.RegimeRanging
			}
		}
	}

	return models.RegimeContext{Regime: regime, Trend: trend, ADX: adx}
}
