package di

import (
	"fmt"

	"AlphaForge/internal/domain/repository"
	domsvc "AlphaForge/internal/domain/service"
	"AlphaForge/internal/handler/api"
	icache "AlphaForge/internal/service/cache"
	"AlphaForge/internal/services/risk"
	"AlphaForge/internal/services/session"
	"AlphaForge/internal/usecase"
	"AlphaForge/pkg/config"
	applogger "AlphaForge/pkg/logger"
	"AlphaForge/pkg/metrics"
	"AlphaForge/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideBiasMachine creates the process-wide session bias state.
func ProvideBiasMachine(cfg *config.Config, m repository.Metrics) domsvc.BiasController {
	return session.NewMachine(cfg.Session.OpenHourUTC, cfg.Session.CloseHourUTC, m)
}

// ProvideAlphaStack builds the aggregator; the weight-sum invariant is
// enforced here so a bad configuration fails at startup.
func ProvideAlphaStack(cfg *config.Config) (*usecase.AlphaStack, error) {
	w := usecase.Weights{
		Structure:  cfg.Engine.Weights.Structure,
		Reversion:  cfg.Engine.Weights.Reversion,
		Volatility: cfg.Engine.Weights.Volatility,
		Momentum:   cfg.Engine.Weights.Momentum,
	}
	stack, err := usecase.NewAlphaStack(w)
	if err != nil {
		return nil, fmt.Errorf("alpha stack: %w", err)
	}
	return stack, nil
}

// ProvideRiskScaler creates the volatility risk scaler.
func ProvideRiskScaler(cfg *config.Config) *risk.Scaler {
	return risk.NewScaler(cfg.Engine.BaseRiskPct)
}

// ProvidePacketCache creates the in-process latest-packet cache.
func ProvidePacketCache() *icache.TTLCache {
	return icache.NewTTLCache()
}

// ProvideScoringUseCase wires up the scoring cycle.
func ProvideScoringUseCase(
	stack *usecase.AlphaStack,
	scaler *risk.Scaler,
	bias domsvc.BiasController,
	m repository.Metrics,
	cache *icache.TTLCache,
	cfg *config.Config,
) *usecase.ScoringUseCase {
	return usecase.NewScoringUseCase(stack, scaler, bias, m, cache, cfg.Engine.ForensicsEnabled, cfg.Engine.PacketTTL)
}

// ProvideFeed creates the websocket packet feed.
func ProvideFeed(l *applogger.Logger) *api.Feed {
	return api.NewFeed(l)
}

// ProvideScoreHandler creates the HTTP handler for the scoring surface.
func ProvideScoreHandler(l *applogger.Logger, scoring *usecase.ScoringUseCase, feed *api.Feed, cfg *config.Config) *api.ScoreEchoHandler {
	h := api.NewScoreEchoHandler(l, scoring, feed)
	if cfg.RateLimit.Enabled {
		h.SetRateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h *api.ScoreEchoHandler, feed *api.Feed) *server.App {
	return server.New(cfg, l, h, feed)
}
