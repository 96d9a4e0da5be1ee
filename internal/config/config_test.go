package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.adsb.one", cfg.API.BaseURL)
	assert.Equal(t, 1, cfg.API.PollInterval)
	assert.Equal(t, 30, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Reference.CSVPath)
	assert.False(t, cfg.Report.ShowUnmatched)
	assert.True(t, cfg.Geo.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VIPWATCH_API_POLL_INTERVAL", "5")
	t.Setenv("VIPWATCH_REFERENCE_CSV_PATH", "/data/plane-alert-db.csv")
	t.Setenv("VIPWATCH_REPORT_SHOW_UNMATCHED", "true")
	t.Setenv("VIPWATCH_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.API.PollInterval)
	assert.Equal(t, "/data/plane-alert-db.csv", cfg.Reference.CSVPath)
	assert.True(t, cfg.Report.ShowUnmatched)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PollIntervalTooFast(t *testing.T) {
	t.Setenv("VIPWATCH_API_POLL_INTERVAL", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll_interval")
}

func TestValidate(t *testing.T) {
	valid := &Config{
		API: APIConfig{BaseURL: "https://api.adsb.one", PollInterval: 1, RequestTimeout: 30},
		Log: LogConfig{Level: "info", Format: "text"},
	}
	assert.NoError(t, validate(valid))

	noURL := *valid
	noURL.API.BaseURL = ""
	assert.Error(t, validate(&noURL))

	badLevel := *valid
	badLevel.Log.Level = "verbose"
	assert.Error(t, validate(&badLevel))

	badFormat := *valid
	badFormat.Log.Format = "xml"
	assert.Error(t, validate(&badFormat))
}
