package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data/lex.csv", cfg.Paths.LifeExpectancyCSV)
	assert.Equal(t, "data/gdp_pcap.csv", cfg.Paths.GDPPerCapitaCSV)
	assert.Equal(t, "results", cfg.Paths.ResultsDir)
	assert.Equal(t, 2020, cfg.Analysis.TargetYear)
	assert.Equal(t, "Czech Republic", cfg.Analysis.TrendCountry)
	assert.Equal(t, 2000, cfg.Analysis.TrendStartYear)
	assert.Equal(t, 2020, cfg.Analysis.TrendEndYear)
	assert.Equal(t, 10.0, cfg.Analysis.MinLifeExpectancy)
	assert.Equal(t, 1e6, cfg.Analysis.MaxGDPPerCapita)
	assert.Equal(t, time.Minute, cfg.Analysis.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2020, cfg.Analysis.TargetYear)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
analysis:
  target_year: 2019
  trend_country: Norway
plots:
  highlight_countries:
    Norway: blue
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2019, cfg.Analysis.TargetYear)
		assert.Equal(t, "Norway", cfg.Analysis.TrendCountry)
		assert.Equal(t, "blue", cfg.Plots.HighlightCountries["Norway"])
		// untouched fields keep defaults
		assert.Equal(t, "data/lex.csv", cfg.Paths.LifeExpectancyCSV)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("analysis:\n  target_year: 2019\n"), 0644))

		t.Setenv("GAPSTAT_ANALYSIS_TARGET_YEAR", "2018")
		t.Setenv("GAPSTAT_PATHS_RESULTS_DIR", "out")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2018, cfg.Analysis.TargetYear)
		assert.Equal(t, "out", cfg.Paths.ResultsDir)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("analysis: ["), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"missing life expectancy path", func(c *Config) { c.Paths.LifeExpectancyCSV = "" }, true},
		{"zero target year", func(c *Config) { c.Analysis.TargetYear = 0 }, true},
		{"empty trend country", func(c *Config) { c.Analysis.TrendCountry = "" }, true},
		{"trend end before start", func(c *Config) { c.Analysis.TrendEndYear = 1999 }, true},
		{"negative min life expectancy", func(c *Config) { c.Analysis.MinLifeExpectancy = -1 }, true},
		{"zero max gdp", func(c *Config) { c.Analysis.MaxGDPPerCapita = 0 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"file output without path", func(c *Config) { c.Logging.Output = "file"; c.Logging.FilePath = "" }, true},
		{"file output with path", func(c *Config) { c.Logging.Output = "file" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsureResultsDir(t *testing.T) {
	cfg := Default()
	cfg.Paths.ResultsDir = filepath.Join(t.TempDir(), "results")

	require.NoError(t, cfg.EnsureResultsDir())
	info, err := os.Stat(cfg.Paths.ResultsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
