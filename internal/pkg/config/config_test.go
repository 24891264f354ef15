package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TREND_SHORT_WINDOW", "")
	t.Setenv("TREND_LONG_WINDOW", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8099", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Lookup.ShortWindow)
	assert.Equal(t, 200, cfg.Lookup.LongWindow)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TREND_SHORT_WINDOW", "20")
	t.Setenv("TREND_LONG_WINDOW", "60")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("TICKERS_FILE", "/etc/stocklens/tickers.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 20, cfg.Lookup.ShortWindow)
	assert.Equal(t, 60, cfg.Lookup.LongWindow)
	assert.True(t, cfg.Logging.FileEnabled)
	assert.Equal(t, "/etc/stocklens/tickers.yaml", cfg.Lookup.TickersFile)
}

func TestLoad_InvalidWindows(t *testing.T) {
	t.Run("short not shorter than long", func(t *testing.T) {
		t.Setenv("TREND_SHORT_WINDOW", "200")
		t.Setenv("TREND_LONG_WINDOW", "50")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive window", func(t *testing.T) {
		t.Setenv("TREND_SHORT_WINDOW", "0")
		t.Setenv("TREND_LONG_WINDOW", "50")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGetEnvInt_IgnoresGarbage(t *testing.T) {
	t.Setenv("STOCKLENS_TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("STOCKLENS_TEST_INT", 7))
}
