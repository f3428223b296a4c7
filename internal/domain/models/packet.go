package models

import "time"

// Status is the conviction tier derived from the final alpha value.
type Status string

const (
	StatusWait           Status = "WAIT"
	StatusReviewRequired Status = "REVIEW_REQUIRED"
	StatusHighConviction Status = "HIGH_CONVICTION"
)

// StructureType tags which side of the structure produced the winning
// structure score.
type StructureType string

const (
	StructureSupportLow     StructureType = "SUPPORT_LOW"
	StructureResistanceHigh StructureType = "RESISTANCE_HIGH"
)

// Breakdown holds the four feature scores feeding the alpha value.
// Every field is in [0,1], rounded to two decimals.
type Breakdown struct {
	Structure  float64 `json:"structure"`
	Reversion  float64 `json:"reversion"`
	Volatility float64 `json:"volatility"`
	Momentum   float64 `json:"momentum"`
}

// TimeframeAlpha is one timeframe's scored slice of an AlphaPacket.
type TimeframeAlpha struct {
	Alpha         float64       `json:"alpha"`
	Breakdown     Breakdown     `json:"breakdown"`
	StructureType StructureType `json:"structure_type"`
	Close         float64       `json:"close"`
	ATR           float64       `json:"atr"`
}

// AlphaPacket is the per-symbol scoring result for one cycle. It is
// created once per cycle and read-only afterwards; nothing in it carries
// over to the next cycle.
type AlphaPacket struct {
	Symbol     string         `json:"symbol"`
	Timestamp  time.Time      `json:"timestamp"`
	FinalAlpha float64        `json:"final_alpha_score"`
	Status     Status         `json:"status"`
	Execution  TimeframeAlpha `json:"execution"`
	Context    TimeframeAlpha `json:"context"`
}

// RiskAllocation is the volatility-scaled risk output for one cycle.
type RiskAllocation struct {
	RiskPct       float64 `json:"risk_pct"`
	ScalingFactor float64 `json:"scaling_factor"`
	CurrentATR    float64 `json:"current_atr"`
	ReferenceATR  float64 `json:"reference_atr"`
}

// MarketPacket merges the three engine outputs for one symbol and cycle:
// alpha/status, risk allocation, and the session bias snapshot. It is the
// unit handed to the downstream decision collaborator.
type MarketPacket struct {
	Symbol     string              `json:"symbol"`
	Timestamp  time.Time           `json:"timestamp"`
	Alpha      AlphaPacket         `json:"alpha"`
	Forensics  *TimeframeForensics `json:"forensics,omitempty"`
	Risk       RiskAllocation      `json:"risk"`
	Session    SessionSnapshot     `json:"session"`
	Actionable bool                `json:"actionable"`
	Degraded   bool                `json:"degraded,omitempty"`
}

// TimeframeForensics groups forensic evidence and regime context per
// analyzed timeframe.
type TimeframeForensics struct {
	Execution ForensicsReport `json:"execution"`
	Context   ForensicsReport `json:"context"`
}

// ForensicsReport pairs price-action evidence with the regime read for
// one timeframe.
type ForensicsReport struct {
	Evidence ForensicsEvidence `json:"evidence"`
	Regime   RegimeContext     `json:"regime"`
}
