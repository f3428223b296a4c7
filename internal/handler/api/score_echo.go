package api

import (
	"net/http"
	"time"

	models "AlphaForge/internal/domain/models"
	"AlphaForge/internal/domain/repository"
	"AlphaForge/internal/service/metrics"
	"AlphaForge/internal/service/ratelimit"
	"AlphaForge/internal/usecase"
	xhttp "AlphaForge/pkg/http"
	xlogger "AlphaForge/pkg/logger"
	"AlphaForge/pkg/util"

	"github.com/labstack/echo/v4"
)

// ScoreEchoHandler exposes the scoring engine over HTTP: candle bundles
// in, merged market packets out, plus the session-bias control surface.
type ScoreEchoHandler struct {
	logger  *xlogger.Logger
	scoring *usecase.ScoringUseCase
	feed    *Feed
	rl      *ratelimit.Limiter

	rlCapacity float64
	rlRefill   float64
}

func NewScoreEchoHandler(logger *xlogger.Logger, scoring *usecase.ScoringUseCase, feed *Feed) *ScoreEchoHandler {
	metrics.Register()
	return &ScoreEchoHandler{
		logger:     logger,
		scoring:    scoring,
		feed:       feed,
		rl:         ratelimit.New(),
		rlCapacity: 5,
		rlRefill:   2,
	}
}

// SetRateLimit overrides the per-symbol token bucket parameters.
func (h *ScoreEchoHandler) SetRateLimit(capacity, refillPerSec float64) {
	h.rlCapacity = capacity
	h.rlRefill = refillPerSec
}

func (h *ScoreEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/score", h.Score)
	g.GET("/score/latest", h.Latest)
	g.GET("/bias", h.BiasSnapshot)
	g.POST("/bias/reset", h.BiasReset)
	if h.feed != nil {
		g.GET("/feed", h.feed.Handle)
	}
	e.GET("/healthz", h.Health)
}

// Score runs one scoring cycle for the posted candle bundle and streams
// the resulting packet to feed subscribers.
func (h *ScoreEchoHandler) Score(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.ScoringLatency.WithLabelValues("score").Observe(time.Since(start).Seconds())
	}()

	req := &models.ScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.rl != nil && !h.rl.Allow(req.Symbol, h.rlCapacity, h.rlRefill) {
		h.logger.Warn("score rate_limited", xlogger.String("symbol", req.Symbol))
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	if n := len(req.Execution); n > 0 && !req.Execution[n-1].Time.IsZero() {
		tf := string(repository.NormalizeTimeframe(req.ExecutionTF))
		barOpen := util.AlignToBar(start.UTC(), tf)
		if lag := barOpen.Sub(req.Execution[n-1].Time); lag > 2*util.TimeframeDuration(tf) {
			h.logger.Warn("stale execution window",
				xlogger.String("symbol", req.Symbol),
				xlogger.String("lag", lag.String()),
			)
		}
	}

	packet, err := h.scoring.Score(c.Request().Context(), req)
	if err != nil {
		metrics.ScoringErrors.WithLabelValues("score").Inc()
		h.logger.Error("score usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	h.logger.Info("cycle scored",
		xlogger.String("symbol", packet.Symbol),
		xlogger.Float64("alpha", packet.Alpha.FinalAlpha),
		xlogger.String("status", string(packet.Alpha.Status)),
		xlogger.Float64("risk_pct", packet.Risk.RiskPct),
		xlogger.String("bias", string(packet.Session.LockedBias)),
	)

	if h.feed != nil {
		h.feed.Broadcast(packet)
	}
	return xhttp.SuccessResponse(c, packet)
}

// Latest returns the most recent packet scored for a symbol.
func (h *ScoreEchoHandler) Latest(c echo.Context) error {
	req := &models.LatestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	packet, ok := h.scoring.Latest(req.Symbol)
	if !ok {
		return xhttp.NotFoundResponse(c, "no packet for symbol")
	}
	return xhttp.SuccessResponse(c, packet)
}

// BiasSnapshot returns the current session bias state.
func (h *ScoreEchoHandler) BiasSnapshot(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.scoring.Bias().Snapshot())
}

// BiasReset clears the locked bias and key levels. Safe at any time;
// the machine applies it atomically against in-flight cycles.
func (h *ScoreEchoHandler) BiasReset(c echo.Context) error {
	h.scoring.Bias().Reset()
	metrics.BiasResets.Inc()
	h.logger.Info("session bias reset")
	return xhttp.SuccessResponse(c, h.scoring.Bias().Snapshot())
}

// Health is a liveness probe.
func (h *ScoreEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
