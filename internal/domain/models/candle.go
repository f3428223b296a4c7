package models

import "time"

// Candle represents one OHLCV bar. TickVolume mirrors the venue's tick
// count for the bar; Spread is in points and optional.
type Candle struct {
	Time       time.Time `json:"time"`
	Open       float64   `json:"open"`
	High       float64   `json:"high"`
	Low        float64   `json:"low"`
	Close      float64   `json:"close"`
	TickVolume float64   `json:"tick_volume"`
}

// Series is an oldest-first rolling window of candles for one
// symbol/timeframe. A Series is owned by the cycle that scored it and is
// never mutated after handoff.
type Series []Candle

// Len returns the number of bars.
func (s Series) Len() int { return len(s) }

// Last returns the most recent bar. Callers must check Len() > 0 first.
func (s Series) Last() Candle { return s[len(s)-1] }

// Closes extracts the close column.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high column.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low column.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Low
	}
	return out
}

// Volumes extracts the tick-volume column.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.TickVolume
	}
	return out
}

// IsRed reports whether the candle closed below its open.
func (c Candle) IsRed() bool { return c.Close < c.Open }

// IsGreen reports whether the candle closed above its open.
func (c Candle) IsGreen() bool { return c.Close > c.Open }

// Body returns the absolute body size.
func (c Candle) Body() float64 {
	b := c.Close - c.Open
	if b < 0 {
		return -b
	}
	return b
}

// Range returns high minus low.
func (c Candle) Range() float64 { return c.High - c.Low }

// UpperWick returns the distance from the body top to the high.
func (c Candle) UpperWick() float64 {
	top := c.Close
	if c.Open > c.Close {
		top = c.Open
	}
	return c.High - top
}

// LowerWick returns the distance from the body bottom to the low.
func (c Candle) LowerWick() float64 {
	bot := c.Close
	if c.Open < c.Close {
		bot = c.Open
	}
	return bot - c.Low
}
