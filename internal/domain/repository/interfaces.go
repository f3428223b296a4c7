package repository

// Metrics abstracts the engine's observability sink so use cases do not
// depend on a concrete metrics backend.
type Metrics interface {
	RecordCycleScored(symbol string, status string)
	RecordCycleDegraded(symbol, reason string)
	RecordAlpha(symbol, timeframe string, alpha float64)
	RecordRiskPct(symbol string, pct float64)
	RecordBiasTransition(from, to string)
	RecordLatency(op string, seconds float64)
	RecordError(kind string)
}
