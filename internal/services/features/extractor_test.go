package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AlphaForge/internal/domain/models"
)

func rangeSeries(n int, high, low float64) models.Series {
	s := make(models.Series, n)
	mid := (high + low) / 2
	for i := range s {
		s[i] = models.Candle{Open: mid, High: high, Low: low, Close: mid}
	}
	return s
}

func TestStructureScorePiercedSupport(t *testing.T) {
	s := rangeSeries(25, 110, 100)
	s[24] = models.Candle{Open: 101, High: 105, Low: 99.5, Close: 100.2}

	score, tag := StructureScore(s, 1.0)
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, models.StructureSupportLow, tag)
}

func TestStructureScoreTieGoesToResistance(t *testing.T) {
	s := rangeSeries(25, 110, 100)
	// symmetric probe: 0.3 ATR off each side of the swing
	s[24] = models.Candle{Open: 105, High: 109.7, Low: 100.3, Close: 105}

	score, tag := StructureScore(s, 1.0)
	assert.InDelta(t, 0.4, score, 1e-9)
	assert.Equal(t, models.StructureResistanceHigh, tag)
}

func TestStructureScoreFarFromLevels(t *testing.T) {
	s := rangeSeries(25, 110, 100)
	s[24] = models.Candle{Open: 105, High: 105.5, Low: 104.5, Close: 105}

	score, _ := StructureScore(s, 1.0)
	assert.Zero(t, score)
}

func TestStructureScoreDegenerateInputs(t *testing.T) {
	s := rangeSeries(25, 110, 100)

	score, _ := StructureScore(s, 0)
	assert.Zero(t, score, "non-positive ATR degrades to zero")

	score, _ = StructureScore(rangeSeries(10, 110, 100), 1.0)
	assert.Zero(t, score, "short history degrades to zero")
}

func TestReversionScoreFlatMarket(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100
	}
	assert.Zero(t, ReversionScore(closes, 1.0))
}

func TestReversionScoreStretchedClose(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100
	}
	closes[59] = 103

	score := ReversionScore(closes, 1.0)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestReversionScoreDegenerateATR(t *testing.T) {
	closes := make([]float64, 60)
	assert.Zero(t, ReversionScore(closes, 0))
	assert.Zero(t, ReversionScore(closes, -1))
}

func TestVolatilityScoreSteadyATR(t *testing.T) {
	atrSeries := make([]float64, 70)
	for i := range atrSeries {
		atrSeries[i] = 1.5
	}
	assert.InDelta(t, 1.0, VolatilityScore(atrSeries), 1e-9)
}

func TestVolatilityScoreContractingATR(t *testing.T) {
	atrSeries := make([]float64, 70)
	for i := range atrSeries {
		atrSeries[i] = 2.0
	}
	atrSeries[69] = 1.0

	score := VolatilityScore(atrSeries)
	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestVolatilityScoreShortSeries(t *testing.T) {
	assert.Zero(t, VolatilityScore(make([]float64, 10)))
	assert.Zero(t, VolatilityScore(nil))
}

func TestMomentumScoreFlatMarket(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 1.2345
	}
	assert.Zero(t, MomentumScore(closes))
}

func TestMomentumScoreTrendingMarket(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 1.2000 + float64(i)*0.0010
	}
	score := MomentumScore(closes)
	require.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestScoresAreIdempotent(t *testing.T) {
	s := rangeSeries(60, 110, 100)
	s[59] = models.Candle{Open: 104, High: 108, Low: 99.8, Close: 100.5}
	closes := s.Closes()

	s1, t1 := StructureScore(s, 1.2)
	s2, t2 := StructureScore(s, 1.2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, MomentumScore(closes), MomentumScore(closes))
}
