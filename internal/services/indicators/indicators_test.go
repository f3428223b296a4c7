package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AlphaForge/internal/domain/models"
)

func flatSeries(n int, high, low, close float64) models.Series {
	s := make(models.Series, n)
	for i := range s {
		s[i] = models.Candle{Open: close, High: high, Low: low, Close: close}
	}
	return s
}

func TestATRConstantRange(t *testing.T) {
	s := flatSeries(40, 101, 100, 100.5)
	atr := ATR(s, 14)
	require.Len(t, atr, 40)

	for i := 0; i < 14; i++ {
		assert.True(t, math.IsNaN(atr[i]), "index %d should be warmup", i)
	}
	for i := 14; i < 40; i++ {
		assert.InDelta(t, 1.0, atr[i], 1e-9)
	}
}

func TestATRShortSeries(t *testing.T) {
	s := flatSeries(10, 101, 100, 100.5)
	atr := ATR(s, 14)
	_, ok := Last(atr)
	assert.False(t, ok)
}

func TestEMAConstantInput(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100.5
	}
	ema := EMA(closes, 9)
	for i := 0; i < 8; i++ {
		assert.True(t, math.IsNaN(ema[i]))
	}
	last, ok := Last(ema)
	require.True(t, ok)
	assert.InDelta(t, 100.5, last, 1e-9)
}

func TestSMAPropagatesNaN(t *testing.T) {
	values := []float64{math.NaN(), 1, 2, 3, 4}
	sma := SMA(values, 3)
	assert.True(t, math.IsNaN(sma[2]), "window touching NaN input stays NaN")
	assert.InDelta(t, 2.0, sma[3], 1e-9)
	assert.InDelta(t, 3.0, sma[4], 1e-9)
}

func TestRSIAllGains(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSI(closes, 14)
	last, ok := Last(rsi)
	require.True(t, ok)
	assert.InDelta(t, 100.0, last, 1e-9)
}

func TestDonchianExcludesCurrentBar(t *testing.T) {
	s := flatSeries(25, 110, 100, 105)
	// the latest bar pokes outside the prior channel on both sides
	s[24] = models.Candle{Open: 105, High: 120, Low: 99, Close: 105}

	high, low, ok := Donchian(s, 20)
	require.True(t, ok)
	assert.InDelta(t, 110.0, high, 1e-9)
	assert.InDelta(t, 100.0, low, 1e-9)
}

func TestDonchianShortSeries(t *testing.T) {
	s := flatSeries(20, 110, 100, 105)
	_, _, ok := Donchian(s, 20)
	assert.False(t, ok)
}

func TestADXNeedsTwoPasses(t *testing.T) {
	s := flatSeries(28, 101, 100, 100.5)
	_, _, _, ok := ADX(s, 14)
	assert.False(t, ok)
}

func TestADXStrongUptrend(t *testing.T) {
	s := make(models.Series, 60)
	for i := range s {
		c := 100 + float64(i)
		s[i] = models.Candle{Open: c - 1, High: c + 0.5, Low: c - 0.5, Close: c}
	}
	adx, plusDI, minusDI, ok := ADX(s, 14)
	require.True(t, ok)
	assert.Greater(t, plusDI, minusDI)
	assert.Greater(t, adx, 25.0)
}

func TestWindowBounds(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}

	max, ok := WindowMax(values, 0, 5)
	require.True(t, ok)
	assert.Equal(t, 5.0, max)

	min, ok := WindowMin(values, 1, 4)
	require.True(t, ok)
	assert.Equal(t, 1.0, min)

	_, ok = WindowMax(values, 3, 3)
	assert.False(t, ok)
	_, ok = WindowMin(values, -1, 2)
	assert.False(t, ok)
}

func TestValidAndLast(t *testing.T) {
	values := []float64{math.NaN(), 2.0}
	assert.False(t, Valid(values, 0))
	assert.True(t, Valid(values, 1))
	assert.False(t, Valid(values, 2))

	last, ok := Last(values)
	require.True(t, ok)
	assert.Equal(t, 2.0, last)

	_, ok = Last(nil)
	assert.False(t, ok)
}
