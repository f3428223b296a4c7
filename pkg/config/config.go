package config

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// weightTolerance absorbs float addition noise in the sum-to-one check.
const weightTolerance = 1e-9

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Engine struct {
		Symbols          []string      `yaml:"symbols"`
		ForensicsEnabled bool          `yaml:"forensics_enabled"`
		BaseRiskPct      float64       `yaml:"base_risk_pct"`
		PacketTTL        time.Duration `yaml:"packet_ttl"`
		Weights          struct {
			Structure  float64 `yaml:"structure"`
			Reversion  float64 `yaml:"reversion"`
			Volatility float64 `yaml:"volatility"`
			Momentum   float64 `yaml:"momentum"`
		} `yaml:"weights"`
	} `yaml:"engine"`
	Session struct {
		OpenHourUTC  int `yaml:"open_hour_utc"`
		CloseHourUTC int `yaml:"close_hour_utc"`
	} `yaml:"session"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"ratelimit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Engine.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// applyDefaults fills zero values with the reference configuration.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Engine.BaseRiskPct == 0 {
		c.Engine.BaseRiskPct = 0.50
	}
	if c.Engine.PacketTTL == 0 {
		c.Engine.PacketTTL = 30 * time.Minute
	}
	w := &c.Engine.Weights
	if w.Structure == 0 && w.Reversion == 0 && w.Volatility == 0 && w.Momentum == 0 {
		w.Structure, w.Reversion, w.Volatility, w.Momentum = 0.35, 0.30, 0.20, 0.15
	}
	if c.Session.OpenHourUTC == 0 && c.Session.CloseHourUTC == 0 {
		c.Session.OpenHourUTC, c.Session.CloseHourUTC = 7, 21
	}
}

// Validate checks if the configuration is valid. A weight set that does
// not sum to 1.0 is a startup error, never tolerated per-cycle.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Engine.Symbols) == 0 {
		return fmt.Errorf("engine.symbols cannot be empty")
	}
	w := c.Engine.Weights
	sum := w.Structure + w.Reversion + w.Volatility + w.Momentum
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("engine.weights must sum to 1.0, got %v", sum)
	}
	if w.Structure < 0 || w.Reversion < 0 || w.Volatility < 0 || w.Momentum < 0 {
		return fmt.Errorf("engine.weights must be non-negative")
	}
	if c.Engine.BaseRiskPct <= 0 || c.Engine.BaseRiskPct > 5 {
		return fmt.Errorf("engine.base_risk_pct must be in (0, 5], got %v", c.Engine.BaseRiskPct)
	}
	if c.Session.OpenHourUTC < 0 || c.Session.OpenHourUTC > 23 {
		return fmt.Errorf("session.open_hour_utc must be in [0,23]")
	}
	if c.Session.CloseHourUTC <= c.Session.OpenHourUTC || c.Session.CloseHourUTC > 24 {
		return fmt.Errorf("session.close_hour_utc must be after open and at most 24")
	}
	return nil
}
