package models

// SweepType classifies a liquidity-sweep candle.
type SweepType string

const (
	SweepNone    SweepType = "NONE"
	SweepBullish SweepType = "BULLISH_SWEEP"
	SweepBearish SweepType = "BEARISH_SWEEP"
)

// Pattern classifies the candlestick pattern on the latest bar.
// Engulfing takes precedence over pinbar when both qualify.
type Pattern string

const (
	PatternNone             Pattern = "NONE"
	PatternBullishPinbar    Pattern = "BULLISH_PINBAR"
	PatternBearishPinbar    Pattern = "BEARISH_PINBAR"
	PatternBullishEngulfing Pattern = "BULLISH_ENGULFING"
	PatternBearishEngulfing Pattern = "BEARISH_ENGULFING"
)

// Regime tags the trend state of one timeframe.
type Regime string

const (
	RegimeTrending   Regime = "TRENDING"
	RegimeRanging    Regime = "RANGING"
	RegimeTransition Regime = "TRANSITION"
)

// Trend is a directional tag derived from the directional index.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
	TrendNeutral Trend = "NEUTRAL"
)

// ForensicsEvidence is the wick/volume/price-action read of the latest
// bar for one timeframe. Same lifecycle as AlphaPacket: one cycle,
// read-only after creation.
type ForensicsEvidence struct {
	SweepType      SweepType `json:"sweep_type"`
	VolumeSpike    bool      `json:"volume_spike"`
	HighProbSetup  bool      `json:"high_prob_setup"`
	UpperWickRatio float64   `json:"upper_wick_ratio"`
	LowerWickRatio float64   `json:"lower_wick_ratio"`
	Pattern        Pattern   `json:"pattern"`
	PiercedHigh    float64   `json:"pierced_high"`
	PiercedLow     float64   `json:"pierced_low"`
	FakeoutHigh    bool      `json:"fakeout_high"`
	FakeoutLow     bool      `json:"fakeout_low"`
}

// RegimeContext is the regime classification for one timeframe,
// recomputed from fresh indicator series every cycle.
type RegimeContext struct {
	Regime Regime  `json:"regime"`
	Trend  Trend   `json:"trend"`
	ADX    float64 `json:"adx"`
}
