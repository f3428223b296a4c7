package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	cyclesScored    *prometheus.CounterVec
	cyclesDegraded  *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	lastAlpha       *prometheus.GaugeVec
	lastRiskPct     *prometheus.GaugeVec
	biasTransitions *prometheus.CounterVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		cyclesScored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphaforge_cycles_scored_total",
				Help: "Total scoring cycles completed, by resulting status",
			},
			[]string{"symbol", "status"},
		),
		cyclesDegraded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphaforge_cycles_degraded_total",
				Help: "Scoring cycles that fell back to neutral scores",
			},
			[]string{"symbol", "reason"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphaforge_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastAlpha: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "alphaforge_last_alpha",
				Help: "Last alpha value per symbol and timeframe",
			},
			[]string{"symbol", "timeframe"},
		),
		lastRiskPct: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "alphaforge_last_risk_pct",
				Help: "Last scaled risk percentage per symbol",
			},
			[]string{"symbol"},
		),
		biasTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alphaforge_bias_transitions_total",
				Help: "Session bias transitions by from/to direction",
			},
			[]string{"from", "to"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alphaforge_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordCycleScored records a completed scoring cycle.
func (r *Recorder) RecordCycleScored(symbol, status string) {
	r.cyclesScored.WithLabelValues(symbol, status).Inc()
}

// RecordCycleDegraded records a cycle that degraded to neutral output.
func (r *Recorder) RecordCycleDegraded(symbol, reason string) {
	r.cyclesDegraded.WithLabelValues(symbol, reason).Inc()
}

// RecordAlpha records the last alpha value for a symbol/timeframe.
func (r *Recorder) RecordAlpha(symbol, timeframe string, alpha float64) {
	r.lastAlpha.WithLabelValues(symbol, timeframe).Set(alpha)
}

// RecordRiskPct records the last scaled risk percentage for a symbol.
func (r *Recorder) RecordRiskPct(symbol string, pct float64) {
	r.lastRiskPct.WithLabelValues(symbol).Set(pct)
}

// RecordBiasTransition records a session bias transition.
func (r *Recorder) RecordBiasTransition(from, to string) {
	r.biasTransitions.WithLabelValues(from, to).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
