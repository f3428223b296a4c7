package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"AlphaForge/internal/handler/api"
	"AlphaForge/pkg/config"
	xhttp "AlphaForge/pkg/http"
	applogger "AlphaForge/pkg/logger"
)

// App encapsulates the entire application lifecycle: the scoring HTTP
// surface, the packet feed, and graceful shutdown. The engine has no
// scheduling loop of its own; callers drive cycles over HTTP.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    *api.ScoreEchoHandler
	feed       *api.Feed
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler *api.ScoreEchoHandler, feed *api.Feed) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
		feed:    feed,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("scoring engine listening",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Strings("symbols", a.cfg.Engine.Symbols),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	if a.feed != nil {
		a.feed.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
