package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validConfig = `
environment: test
engine:
  symbols: [XAUUSD, GBPUSD]
  weights:
    structure: 0.35
    reversion: 0.30
    volatility: 0.20
    momentum: 0.15
`

func TestLoadAppliesDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 0.50, c.Engine.BaseRiskPct)
	assert.Equal(t, 30*time.Minute, c.Engine.PacketTTL)
	assert.Equal(t, 7, c.Session.OpenHourUTC)
	assert.Equal(t, 21, c.Session.CloseHourUTC)
}

func TestLoadRejectsBadWeights(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
engine:
  symbols: [XAUUSD]
  weights:
    structure: 0.40
    reversion: 0.30
    volatility: 0.20
    momentum: 0.15
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights")
}

func TestLoadRejectsEmptySymbols(t *testing.T) {
	_, err := Load(writeConfig(t, `
environment: test
engine:
  symbols: []
`))
	require.Error(t, err)
}

func TestLoadRejectsInvertedSessionWindow(t *testing.T) {
	_, err := Load(writeConfig(t, validConfig+`
session:
  open_hour_utc: 21
  close_hour_utc: 7
`))
	require.Error(t, err)
}

func TestLoadWithEnvOverridesSymbols(t *testing.T) {
	t.Setenv("SYMBOLS", "EURUSD,USDJPY")

	c, err := LoadWithEnv(writeConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, []string{"EURUSD", "USDJPY"}, c.Engine.Symbols)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
