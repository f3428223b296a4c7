//go:build wireinject
// +build wireinject

package di

import (
	"AlphaForge/pkg/config"
	"AlphaForge/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Engine components
		ProvideBiasMachine,
		ProvideAlphaStack,
		ProvideRiskScaler,
		ProvidePacketCache,

		// Use cases
		ProvideScoringUseCase,

		// HTTP surface
		ProvideFeed,
		ProvideScoreHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
