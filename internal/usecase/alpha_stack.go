package usecase

import (
	"fmt"
	"math"
	"time"

	"AlphaForge/internal/domain/models"
	"AlphaForge/internal/services/features"
	"AlphaForge/internal/services/indicators"
)

const (
	// ATRPeriod is the base volatility lookback shared by the extractors.
	ATRPeriod = 14

	// Status tier boundaries. Both comparisons are strict: an alpha of
	// exactly 0.85 is still REVIEW_REQUIRED.
	ReviewThreshold         = 0.60
	HighConvictionThreshold = 0.85

	// weightTolerance absorbs float addition noise when checking the
	// sum-to-one invariant.
	weightTolerance = 1e-9
)

// Weights holds the fixed linear-combination weights of the alpha stack.
type Weights struct {
	Structure  float64 `yaml:"structure" json:"structure"`
	Reversion  float64 `yaml:"reversion" json:"reversion"`
	Volatility float64 `yaml:"volatility" json:"volatility"`
	Momentum   float64 `yaml:"momentum" json:"momentum"`
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return w.Structure + w.Reversion + w.Volatility + w.Momentum
}

// DefaultWeights returns the reference weight set.
func DefaultWeights() Weights {
	return Weights{Structure: 0.35, Reversion: 0.30, Volatility: 0.20, Momentum: 0.15}
}

// AlphaStack folds the four feature scores into one clamped alpha value
// per timeframe. Construction fails when the weights do not sum to 1.0;
// that is a configuration error, not a per-cycle condition.
type AlphaStack struct {
	weights Weights
}

// NewAlphaStack validates the weight invariant and builds the stack.
func NewAlphaStack(w Weights) (*AlphaStack, error) {
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return nil, fmt.Errorf("alpha weights must sum to 1.0, got %v", w.Sum())
	}
	return &AlphaStack{weights: w}, nil
}

// Combine applies the weighted linear combination, clamped to [0,1].
func (a *AlphaStack) Combine(b models.Breakdown) float64 {
	alpha := a.weights.Structure*b.Structure +
		a.weights.Reversion*b.Reversion +
		a.weights.Volatility*b.Volatility +
		a.weights.Momentum*b.Momentum
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

// StatusFor maps an alpha value to its conviction tier.
func StatusFor(alpha float64) models.Status {
	switch {
	case alpha > HighConvictionThreshold:
		return models.StatusHighConviction
	case alpha > ReviewThreshold:
		return models.StatusReviewRequired
	default:
		return models.StatusWait
	}
}

// ScoreTimeframe runs the four extractors over one timeframe's window
// and combines them. Each timeframe is scored from its own indicator
// series only; nothing mixes across timeframes here.
func (a *AlphaStack) ScoreTimeframe(s models.Series) models.TimeframeAlpha {
	atrSeries := indicators.ATR(s, ATRPeriod)
	atr, _ := indicators.Last(atrSeries)
	closes := s.Closes()

	structure, structType := features.StructureScore(s, atr)
	reversion := features.ReversionScore(closes, atr)
	volatility := features.VolatilityScore(atrSeries)
	momentum := features.MomentumScore(closes)

	alpha := a.Combine(models.Breakdown{
		Structure:  structure,
		Reversion:  reversion,
		Volatility: volatility,
		Momentum:   momentum,
	})

	tfAlpha := models.TimeframeAlpha{
		Alpha: round2(alpha),
		Breakdown: models.Breakdown{
			Structure:  round2(structure),
			Reversion:  round2(reversion),
			Volatility: round2(volatility),
			Momentum:   round2(momentum),
		},
		StructureType: structType,
		ATR:           atr,
	}
	if s.Len() > 0 {
		tfAlpha.Close = s.Last().Close
	}
	return tfAlpha
}

// BuildPacket scores the execution and context timeframes independently
// and assembles the per-cycle alpha packet. Status derives from the
// execution timeframe's alpha.
func (a *AlphaStack) BuildPacket(symbol string, execution, context models.Series, now time.Time) models.AlphaPacket {
	exec := a.ScoreTimeframe(execution)
	ctx := a.ScoreTimeframe(context)

	return models.AlphaPacket{
		Symbol:     symbol,
		Timestamp:  now,
		FinalAlpha: exec.Alpha,
		Status:     StatusFor(exec.Alpha),
		Execution:  exec,
		Context:    ctx,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
