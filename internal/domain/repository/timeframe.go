package repository

// Timeframe identifies one candle resolution.
type Timeframe string

const (
	TFM5  Timeframe = "M5"
	TFM15 Timeframe = "M15"
	TFH1  Timeframe = "H1"
	TFH4  Timeframe = "H4"
	TFD1  Timeframe = "D1"
)

// IsValidTimeframe returns true if tf is a supported timeframe.
func IsValidTimeframe(tf Timeframe) bool {
	switch tf {
	case TFM5, TFM15, TFH1, TFH4, TFD1:
		return true
	default:
		return false
	}
}

// DefaultTimeframe returns the default execution timeframe.
func DefaultTimeframe() Timeframe { return TFM5 }

// NormalizeTimeframe converts raw string to a valid timeframe (or default).
func NormalizeTimeframe(s string) Timeframe {
	if s == "" {
		return DefaultTimeframe()
	}
	tf := Timeframe(s)
	if IsValidTimeframe(tf) {
		return tf
	}
	return DefaultTimeframe()
}

// MinBars returns the minimum history a scoring cycle needs on tf.
// Slow-indicator consumers (50-period EMA and ATR averages plus warmup)
// want 200 bars; the bias-fusion timeframes get by with 50.
func MinBars(tf Timeframe) int {
	switch tf {
	case TFH4, TFD1:
		return 50
	default:
		return 200
	}
}
