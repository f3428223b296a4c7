package main

import (
	"flag"
	"log"
	"os"

	"AlphaForge/internal/di"
	"AlphaForge/pkg/config"
	"AlphaForge/pkg/util"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config; an invalid weight set or session window fails here,
	// before anything starts.
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if p := util.ParseIntDefault(os.Getenv("PORT"), 0); p > 0 {
		cfg.Server.Port = p
	}

	log.Printf("env=%s symbols=%v port=%d", cfg.Environment, cfg.Engine.Symbols, cfg.Server.Port)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
