package usecase

import (
	"context"
	"strings"
	"time"

	"AlphaForge/internal/domain/models"
	domrepo "AlphaForge/internal/domain/repository"
	domsvc "AlphaForge/internal/domain/service"
	icache "AlphaForge/internal/service/cache"
	"AlphaForge/internal/services/forensics"
	"AlphaForge/internal/services/indicators"
	"AlphaForge/internal/services/risk"
)

const (
	// GatekeeperThreshold is the alpha floor below which the packet is
	// flagged non-actionable so the caller can skip the expensive
	// decision step.
	GatekeeperThreshold = 0.45

	// Spread gates in pips per symbol class (metal-style quotes tolerate
	// a wider spread).
	SpreadLimitMetalPips = 4.5
	SpreadLimitFXPips    = 2.5
)

// ScoringUseCase runs one full synchronous cycle per symbol: session
// tick, feature scoring, forensics, risk scaling, and bias fusion,
// merged into a single immutable MarketPacket. It performs no network
// or disk I/O; the caller materializes all candle data.
type ScoringUseCase struct {
	stack   *AlphaStack
	scaler  *risk.Scaler
	bias    domsvc.BiasController
	metrics domrepo.Metrics
	cache   *icache.TTLCache

	forensicsEnabled bool
	cacheTTL         time.Duration
	now              func() time.Time
}

// NewScoringUseCase wires the engine components together. cache may be
// nil when latest-packet lookups are not needed.
func NewScoringUseCase(
	stack *AlphaStack,
	scaler *risk.Scaler,
	bias domsvc.BiasController,
	metrics domrepo.Metrics,
	cache *icache.TTLCache,
	forensicsEnabled bool,
	cacheTTL time.Duration,
) *ScoringUseCase {
	return &ScoringUseCase{
		stack:            stack,
		scaler:           scaler,
		bias:             bias,
		metrics:          metrics,
		cache:            cache,
		forensicsEnabled: forensicsEnabled,
		cacheTTL:         cacheTTL,
		now:              time.Now,
	}
}

// Score runs one scoring cycle for one symbol. Data insufficiency and
// numeric degeneracy degrade to neutral scores inside the extractors;
// the cycle itself never fails once the request validated.
func (uc *ScoringUseCase) Score(ctx context.Context, req *models.ScoreRequest) (*models.MarketPacket, error) {
	start := uc.now()
	defer func() {
		if uc.metrics != nil {
			uc.metrics.RecordLatency("score_cycle", time.Since(start).Seconds())
		}
	}()

	uc.bias.Tick(start)

	execTF := domrepo.NormalizeTimeframe(req.ExecutionTF)
	ctxTF := domrepo.TFH1
	if req.ContextTF != "" {
		ctxTF = domrepo.NormalizeTimeframe(req.ContextTF)
	}

	execution := models.Series(req.Execution)
	contextTF := models.Series(req.Context)

	alpha := uc.stack.BuildPacket(req.Symbol, execution, contextTF, start)
	riskAlloc := uc.scaler.Scale(req.Symbol, alpha.Execution.ATR)

	uc.fuseBias(models.Series(req.Daily), models.Series(req.H4))
	snapshot := uc.bias.Snapshot()

	packet := &models.MarketPacket{
		Symbol:    req.Symbol,
		Timestamp: start,
		Alpha:     alpha,
		Risk:      riskAlloc,
		Session:   snapshot,
		Degraded:  execution.Len() < domrepo.MinBars(execTF) || contextTF.Len() < domrepo.MinBars(ctxTF),
	}

	if uc.forensicsEnabled {
		packet.Forensics = &models.TimeframeForensics{
			Execution: analyzeTimeframe(execution, alpha.Execution.ATR),
			Context:   analyzeTimeframe(contextTF, alpha.Context.ATR),
		}
	}

	packet.Actionable = snapshot.SessionStatus == models.SessionOpen &&
		alpha.FinalAlpha >= GatekeeperThreshold &&
		spreadAcceptable(req.Symbol, req.SpreadPips)

	uc.record(packet, execTF, ctxTF)
	if uc.cache != nil {
		uc.cache.Set(req.Symbol, packet, uc.cacheTTL)
	}

	return packet, nil
}

// Latest returns the most recent packet scored for symbol, if the cache
// still holds one.
func (uc *ScoringUseCase) Latest(symbol string) (*models.MarketPacket, bool) {
	if uc.cache == nil {
		return nil, false
	}
	v, ok := uc.cache.Get(symbol)
	if !ok {
		return nil, false
	}
	packet, ok := v.(*models.MarketPacket)
	return packet, ok
}

// Bias exposes the bias controller for the control surface.
func (uc *ScoringUseCase) Bias() domsvc.BiasController { return uc.bias }

// fuseBias derives daily/H4 trend tags and key levels and feeds them to
// the bias machine. Missing higher-timeframe data leaves the locked
// bias untouched.
func (uc *ScoringUseCase) fuseBias(daily, h4 models.Series) {
	if daily.Len() == 0 || h4.Len() == 0 {
		return
	}
	dailyCtx := forensics.ClassifyRegime(daily)
	h4Ctx := forensics.ClassifyRegime(h4)

	var levels models.KeyLevels
	if hi, lo, ok := indicators.Donchian(daily, forensics.DonchianWindow); ok {
		levels = models.KeyLevels{Support: lo, Resistance: hi}
	}
	uc.bias.ApplyTrendView(dailyCtx.Trend, h4Ctx.Trend, levels)
}

func analyzeTimeframe(s models.Series, atr float64) models.ForensicsReport {
	return models.ForensicsReport{
		Evidence: forensics.Analyze(s, atr),
		Regime:   forensics.ClassifyRegime(s),
	}
}

func (uc *ScoringUseCase) record(p *models.MarketPacket, execTF, ctxTF domrepo.Timeframe) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordCycleScored(p.Symbol, string(p.Alpha.Status))
	uc.metrics.RecordAlpha(p.Symbol, string(execTF), p.Alpha.Execution.Alpha)
	uc.metrics.RecordAlpha(p.Symbol, string(ctxTF), p.Alpha.Context.Alpha)
	uc.metrics.RecordRiskPct(p.Symbol, p.Risk.RiskPct)
	if p.Degraded {
		uc.metrics.RecordCycleDegraded(p.Symbol, "short_history")
	}
}

// SpreadLimit returns the maximum tolerable spread in pips for the
// symbol's class.
func SpreadLimit(symbol string) float64 {
	if strings.Contains(strings.ToUpper(symbol), "XAU") {
		return SpreadLimitMetalPips
	}
	return SpreadLimitFXPips
}

// spreadAcceptable treats a zero spread as "not supplied" and lets the
// packet through; live-metric gating belongs to the caller.
func spreadAcceptable(symbol string, spreadPips float64) bool {
	if spreadPips <= 0 {
		return true
	}
	return spreadPips <= SpreadLimit(symbol)
}
