package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleAtReference(t *testing.T) {
	sc := NewScaler(BaseRiskPct)
	alloc := sc.Scale("XAUUSD", MetalReferenceATR)

	assert.InDelta(t, 1.0, alloc.ScalingFactor, 1e-9)
	assert.InDelta(t, 0.50, alloc.RiskPct, 1e-9)
	assert.Equal(t, MetalReferenceATR, alloc.ReferenceATR)
}

func TestScaleHotMarketClampsDown(t *testing.T) {
	sc := NewScaler(BaseRiskPct)
	alloc := sc.Scale("XAUUSD", 20.0)

	assert.InDelta(t, MinScaling, alloc.ScalingFactor, 1e-9)
	assert.InDelta(t, 0.25, alloc.RiskPct, 1e-9)
}

func TestScaleCalmMarketClampsUp(t *testing.T) {
	sc := NewScaler(BaseRiskPct)
	alloc := sc.Scale("XAUUSD", 1.0)

	assert.InDelta(t, MaxScaling, alloc.ScalingFactor, 1e-9)
	assert.InDelta(t, 1.00, alloc.RiskPct, 1e-9)
}

func TestScaleDegenerateATR(t *testing.T) {
	sc := NewScaler(BaseRiskPct)

	alloc := sc.Scale("XAUUSD", 0)
	assert.InDelta(t, 0.50, alloc.RiskPct, 1e-9)
	assert.InDelta(t, 1.0, alloc.ScalingFactor, 1e-9)

	alloc = sc.Scale("XAUUSD", -3)
	assert.InDelta(t, 0.50, alloc.RiskPct, 1e-9)
}

func TestRiskStaysInsideBand(t *testing.T) {
	sc := NewScaler(BaseRiskPct)
	for _, atr := range []float64{0.1, 1, 2.5, 5, 7.5, 12, 50} {
		alloc := sc.Scale("XAUUSD", atr)
		assert.GreaterOrEqual(t, alloc.RiskPct, 0.25, "atr %v", atr)
		assert.LessOrEqual(t, alloc.RiskPct, 1.00, "atr %v", atr)
	}
}

func TestReferenceATRBySymbolClass(t *testing.T) {
	assert.Equal(t, MetalReferenceATR, ReferenceATR("XAUUSD"))
	assert.Equal(t, MetalReferenceATR, ReferenceATR("xagusd"))
	assert.Equal(t, JPYReferenceATR, ReferenceATR("USDJPY"))
	assert.Equal(t, JPYReferenceATR, ReferenceATR("GBPJPY"))
	assert.Equal(t, FXReferenceATR, ReferenceATR("GBPUSD"))
	assert.Equal(t, FXReferenceATR, ReferenceATR("EURUSD"))
}

func TestNewScalerFallsBackOnBadBase(t *testing.T) {
	sc := NewScaler(-1)
	alloc := sc.Scale("GBPUSD", FXReferenceATR)
	assert.InDelta(t, BaseRiskPct, alloc.RiskPct, 1e-9)
}
