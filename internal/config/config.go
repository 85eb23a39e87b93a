package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// GAPSTAT_ANALYSIS_TARGET_YEAR=2019.
const envPrefix = "GAPSTAT"

// Config represents the complete application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Plots    PlotsConfig    `yaml:"plots" envconfig:"PLOTS"`
}

// PathsConfig contains input and output locations.
type PathsConfig struct {
	LifeExpectancyCSV string `yaml:"life_expectancy_csv" envconfig:"LIFE_EXPECTANCY_CSV" validate:"required"`
	GDPPerCapitaCSV   string `yaml:"gdp_per_capita_csv" envconfig:"GDP_PER_CAPITA_CSV" validate:"required"`
	ResultsDir        string `yaml:"results_dir" envconfig:"RESULTS_DIR" validate:"required"`
}

// AnalysisConfig contains the statistical pipeline parameters.
type AnalysisConfig struct {
	TargetYear        int           `yaml:"target_year" envconfig:"TARGET_YEAR" validate:"gt=0"`
	TrendCountry      string        `yaml:"trend_country" envconfig:"TREND_COUNTRY" validate:"required"`
	TrendStartYear    int           `yaml:"trend_start_year" envconfig:"TREND_START_YEAR" validate:"gt=0"`
	TrendEndYear      int           `yaml:"trend_end_year" envconfig:"TREND_END_YEAR" validate:"gtefield=TrendStartYear"`
	MinLifeExpectancy float64       `yaml:"min_life_expectancy" envconfig:"MIN_LIFE_EXPECTANCY" validate:"gte=0"`
	MaxGDPPerCapita   float64       `yaml:"max_gdp_per_capita" envconfig:"MAX_GDP_PER_CAPITA" validate:"gt=0"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PlotsConfig contains plot rendering configuration. HighlightCountries maps
// country names to palette color names; highlighted countries are drawn in
// color over the gray base layer.
type PlotsConfig struct {
	HighlightCountries map[string]string `yaml:"highlight_countries" envconfig:"HIGHLIGHT_COUNTRIES"`
}

// Default returns the canonical configuration: the Gapminder file layout,
// the 2020 cross-section and the Czech Republic 2000-2020 trend.
func Default() Config {
	return Config{
		Paths: PathsConfig{
			LifeExpectancyCSV: "data/lex.csv",
			GDPPerCapitaCSV:   "data/gdp_pcap.csv",
			ResultsDir:        "results",
		},
		Analysis: AnalysisConfig{
			TargetYear:        2020,
			TrendCountry:      "Czech Republic",
			TrendStartYear:    2000,
			TrendEndYear:      2020,
			MinLifeExpectancy: 10,
			MaxGDPPerCapita:   1e6,
			Timeout:           time.Minute,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stdout",
			FilePath: "logs/analyzer.log",
		},
		Plots: PlotsConfig{},
	}
}

// Load builds the configuration in three layers: built-in defaults, then the
// optional YAML file, then environment variables with the GAPSTAT prefix.
// Later layers win.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays YAML file values onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if (c.Logging.Output == "file" || c.Logging.Output == "both") && c.Logging.FilePath == "" {
		return fmt.Errorf("logging output %q requires a file path", c.Logging.Output)
	}
	return nil
}

// EnsureResultsDir creates the results directory if it is missing.
func (c *Config) EnsureResultsDir() error {
	if err := os.MkdirAll(c.Paths.ResultsDir, 0755); err != nil {
		return fmt.Errorf("create results directory %s: %w", c.Paths.ResultsDir, err)
	}
	return nil
}
