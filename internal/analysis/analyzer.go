package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gapstat/internal/dataset"
)

// DefaultTimeout bounds a single pipeline run.
const DefaultTimeout = time.Minute

// Options configure an Analyzer run.
type Options struct {
	TargetYear     int
	TrendCountry   string
	TrendStartYear int
	TrendEndYear   int
	Bounds         Bounds
	Timeout        time.Duration
}

// DefaultOptions returns the canonical pipeline configuration: the 2020
// cross-section and the Czech Republic 2000-2020 trend.
func DefaultOptions() Options {
	return Options{
		TargetYear:     2020,
		TrendCountry:   "Czech Republic",
		TrendStartYear: 2000,
		TrendEndYear:   2020,
		Bounds:         DefaultBounds(),
		Timeout:        DefaultTimeout,
	}
}

// Validate checks the options for internal consistency.
func (o Options) Validate() error {
	if o.TargetYear <= 0 {
		return fmt.Errorf("target year must be positive, got %d", o.TargetYear)
	}
	if o.TrendCountry == "" {
		return fmt.Errorf("trend country must not be empty")
	}
	if o.TrendStartYear > o.TrendEndYear {
		return fmt.Errorf("trend range inverted: %d..%d", o.TrendStartYear, o.TrendEndYear)
	}
	if !o.Bounds.IsValid() {
		return fmt.Errorf("invalid bounds: min_life=%.1f, max_gdp=%.1f",
			o.Bounds.MinLifeExpectancy, o.Bounds.MaxGDPPerCapita)
	}
	return nil
}

// Analyzer orchestrates the fixed statistical pipeline over merged records.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(opts Options, logger *slog.Logger) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{opts: opts, logger: logger}, nil
}

// Run executes the whole pipeline: cross-section filter, Pearson
// correlation, log-GDP regression, single-country trend fit and the
// year-over-year t-test.
func (a *Analyzer) Run(ctx context.Context, records []dataset.Record) (*Report, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	if len(records) == 0 {
		return nil, fmt.Errorf("no merged records to analyze")
	}

	a.logger.InfoContext(ctx, "starting analysis",
		slog.Int("records", len(records)),
		slog.Int("target_year", a.opts.TargetYear),
		slog.String("trend_country", a.opts.TrendCountry))

	report := &Report{
		Year:         a.opts.TargetYear,
		TrendCountry: a.opts.TrendCountry,
		TrendStart:   a.opts.TrendStartYear,
		TrendEnd:     a.opts.TrendEndYear,
	}

	// Cross-sectional statistics for the target year.
	report.CrossSection = CrossSection(records, a.opts.TargetYear, a.opts.Bounds)
	a.logger.DebugContext(ctx, "filtered cross-section",
		slog.Int("year", a.opts.TargetYear),
		slog.Int("countries", len(report.CrossSection)))
	if len(report.CrossSection) < 3 {
		return nil, fmt.Errorf("cross-section for %d has only %d valid countries",
			a.opts.TargetYear, len(report.CrossSection))
	}

	gdp := make([]float64, len(report.CrossSection))
	logGDP := make([]float64, len(report.CrossSection))
	life := make([]float64, len(report.CrossSection))
	for i, r := range report.CrossSection {
		gdp[i] = r.GDPPerCapita
		logGDP[i] = math.Log10(r.GDPPerCapita)
		life[i] = r.LifeExpectancy
	}

	corr, err := Pearson(gdp, life)
	if err != nil {
		return nil, fmt.Errorf("pearson correlation: %w", err)
	}
	report.Correlation = corr

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	fit, err := FitOLS(logGDP, life)
	if err != nil {
		return nil, fmt.Errorf("log-GDP regression: %w", err)
	}
	report.LogGDPFit = fit

	// Single-country trend over the configured year range.
	report.TrendSeries = TrendSeries(records, a.opts.TrendCountry, a.opts.TrendStartYear, a.opts.TrendEndYear)
	if len(report.TrendSeries) < 3 {
		return nil, fmt.Errorf("trend series for %q %d-%d has only %d observations",
			a.opts.TrendCountry, a.opts.TrendStartYear, a.opts.TrendEndYear, len(report.TrendSeries))
	}

	years := make([]float64, len(report.TrendSeries))
	trendLife := make([]float64, len(report.TrendSeries))
	for i, r := range report.TrendSeries {
		years[i] = float64(r.Year)
		trendLife[i] = r.LifeExpectancy
	}

	trendFit, err := FitOLS(years, trendLife)
	if err != nil {
		return nil, fmt.Errorf("trend regression: %w", err)
	}
	report.TrendFit = trendFit

	diffs := make([]float64, len(trendLife)-1)
	for i := 1; i < len(trendLife); i++ {
		diffs[i-1] = trendLife[i] - trendLife[i-1]
	}
	ttest, err := OneSampleTTest(diffs, 0)
	if err != nil {
		return nil, fmt.Errorf("year-over-year t-test: %w", err)
	}
	report.YearOverYear = ttest

	a.logger.InfoContext(ctx, "analysis complete",
		slog.Int("cross_section", len(report.CrossSection)),
		slog.Float64("pearson_r", report.Correlation.R),
		slog.Float64("log_gdp_slope", report.LogGDPFit.Slope),
		slog.Float64("trend_slope", report.TrendFit.Slope),
		slog.Duration("elapsed", time.Since(start)))
	return report, nil
}
