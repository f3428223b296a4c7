package models

// Requests for scoring HTTP endpoints. Defined in domain for consistency and reuse.

// ScoreRequest carries one symbol's candle bundle for a scoring cycle.
// Execution and Context are the two scored timeframes (M5/H1 in the
// reference setup); H4 and Daily feed the session bias fusion and may be
// omitted, in which case the locked bias is left untouched.
type ScoreRequest struct {
	Symbol      string   `json:"symbol" validate:"required"`
	Execution   []Candle `json:"execution" validate:"required,min=50"`
	Context     []Candle `json:"context" validate:"required,min=50"`
	H4          []Candle `json:"h4,omitempty" validate:"omitempty,min=50"`
	Daily       []Candle `json:"daily,omitempty" validate:"omitempty,min=50"`
	ExecutionTF string   `json:"execution_tf,omitempty"`
	ContextTF   string   `json:"context_tf,omitempty"`
	SpreadPips  float64  `json:"spread_pips,omitempty" validate:"gte=0"`
}

// LatestRequest fetches the most recent packet for a symbol.
type LatestRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
}
