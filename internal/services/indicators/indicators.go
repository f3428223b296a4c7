package indicators

import (
	"math"

	"AlphaForge/internal/domain/models"
)

// Derived series keep the length of their input; bars inside the warmup
// window are NaN and must never be read. Valid(series, i) guards that.

// Valid reports whether series[i] exists and is a real number.
func Valid(series []float64, i int) bool {
	return i >= 0 && i < len(series) && !math.IsNaN(series[i])
}

// Last returns the latest defined value of a series.
func Last(series []float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	v := series[len(series)-1]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// TrueRange computes the per-bar true range. The first bar falls back to
// high-low since there is no prior close.
func TrueRange(s models.Series) []float64 {
	out := make([]float64, s.Len())
	for i, c := range s {
		hl := c.High - c.Low
		if i == 0 {
			out[i] = hl
			continue
		}
		prev := s[i-1].Close
		hc := math.Abs(c.High - prev)
		lc := math.Abs(c.Low - prev)
		out[i] = math.Max(hl, math.Max(hc, lc))
	}
	return out
}

// ATR computes the Wilder-smoothed average true range. Values before
// index `period` are NaN.
func ATR(s models.Series, period int) []float64 {
	n := s.Len()
	out := nanSlice(n)
	if period <= 0 || n <= period {
		return out
	}
	tr := TrueRange(s)

	// seed with simple average of the first `period` true ranges
	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += tr[i]
	}
	prev := sum / float64(period)
	out[period] = prev
	for i := period + 1; i < n; i++ {
		prev = (prev*float64(period-1) + tr[i]) / float64(period)
		out[i] = prev
	}
	return out
}

// EMA computes an exponential moving average seeded with the simple
// average of the first `period` values. Values before index period-1 are NaN.
func EMA(values []float64, period int) []float64 {
	n := len(values)
	out := nanSlice(n)
	if period <= 0 || n < period {
		return out
	}
	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	prev := sum / float64(period)
	out[period-1] = prev

	k := 2.0 / float64(period+1)
	for i := period; i < n; i++ {
		prev = (values[i]-prev)*k + prev
		out[i] = prev
	}
	return out
}

// SMA computes a rolling simple average. A window containing any NaN
// input (e.g. ATR warmup) stays NaN. Values before a full window are NaN.
func SMA(values []float64, window int) []float64 {
	n := len(values)
	out := nanSlice(n)
	if window <= 0 || n < window {
		return out
	}
	for i := window - 1; i < n; i++ {
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				ok = false
				break
			}
			sum += values[j]
		}
		if ok {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// RSI computes the Wilder relative strength index over `period` bars of
// closes. Values before index `period` are NaN.
func RSI(closes []float64, period int) []float64 {
	n := len(closes)
	out := nanSlice(n)
	if period <= 0 || n <= period {
		return out
	}
	var gain, loss float64
	for i := 1; i <= period; i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)
	out[period] = rsiValue(avgGain, avgLoss)
	for i := period + 1; i < n; i++ {
		d := closes[i] - closes[i-1]
		g, l := 0.0, 0.0
		if d > 0 {
			g = d
		} else {
			l = -d
		}
		avgGain = (avgGain*float64(period-1) + g) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + l) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// ADX computes the Wilder average directional index plus the last
// directional indicator pair. Returns ok=false when the series is too
// short for one full smoothing pass.
func ADX(s models.Series, period int) (adx, plusDI, minusDI float64, ok bool) {
	n := s.Len()
	if period <= 0 || n < 2*period+1 {
		return 0, 0, 0, false
	}

	tr := TrueRange(s)
	var trSum, plusSum, minusSum float64
	for i := 1; i <= period; i++ {
		pDM, mDM := directionalMove(s, i)
		trSum += tr[i]
		plusSum += pDM
		minusSum += mDM
	}

	var dxSum float64
	dxCount := 0
	var dxLast float64
	for i := period + 1; i < n; i++ {
		pDM, mDM := directionalMove(s, i)
		trSum = trSum - trSum/float64(period) + tr[i]
		plusSum = plusSum - plusSum/float64(period) + pDM
		minusSum = minusSum - minusSum/float64(period) + mDM

		if trSum > 0 {
			plusDI = 100 * plusSum / trSum
			minusDI = 100 * minusSum / trSum
		}
		dx := 0.0
		if plusDI+minusDI > 0 {
			dx = 100 * math.Abs(plusDI-minusDI) / (plusDI + minusDI)
		}
		if dxCount < period {
			dxSum += dx
			dxCount++
			dxLast = dxSum / float64(dxCount)
		} else {
			dxLast = (dxLast*float64(period-1) + dx) / float64(period)
		}
	}
	return dxLast, plusDI, minusDI, true
}

func directionalMove(s models.Series, i int) (plusDM, minusDM float64) {
	up := s[i].High - s[i-1].High
	down := s[i-1].Low - s[i].Low
	if up > down && up > 0 {
		plusDM = up
	}
	if down > up && down > 0 {
		minusDM = down
	}
	return plusDM, minusDM
}

// Donchian returns the channel high/low over the `window` bars preceding
// the latest bar (the latest bar itself is excluded so the channel is
// not self-referential).
func Donchian(s models.Series, window int) (high, low float64, ok bool) {
	n := s.Len()
	if window <= 0 || n < window+1 {
		return 0, 0, false
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := n - 1 - window; i < n-1; i++ {
		high = math.Max(high, s[i].High)
		low = math.Min(low, s[i].Low)
	}
	return high, low, true
}

// WindowMax returns the maximum of values[from:to). ok=false when the
// range is empty or out of bounds.
func WindowMax(values []float64, from, to int) (float64, bool) {
	if from < 0 || to > len(values) || from >= to {
		return 0, false
	}
	m := values[from]
	for _, v := range values[from+1 : to] {
		if v > m {
			m = v
		}
	}
	return m, true
}

// WindowMin returns the minimum of values[from:to). ok=false when the
// range is empty or out of bounds.
func WindowMin(values []float64, from, to int) (float64, bool) {
	if from < 0 || to > len(values) || from >= to {
		return 0, false
	}
	m := values[from]
	for _, v := range values[from+1 : to] {
		if v < m {
			m = v
		}
	}
	return m, true
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
