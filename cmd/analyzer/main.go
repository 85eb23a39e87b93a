package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gapstat/internal/analysis"
	"gapstat/internal/config"
	"gapstat/internal/dataset"
	"gapstat/internal/exporter"
	"gapstat/internal/infrastructure"
	"gapstat/internal/plotting"
	"gapstat/internal/validation"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file (optional)")
	lexPath := flag.String("lex", "", "life expectancy CSV (overrides config)")
	gdpPath := flag.String("gdp", "", "GDP per capita CSV (overrides config)")
	outDir := flag.String("out", "", "results directory (overrides config)")
	year := flag.Int("year", 0, "cross-section year (overrides config)")
	country := flag.String("country", "", "trend country (overrides config)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flag overrides win over config file and environment.
	if *lexPath != "" {
		cfg.Paths.LifeExpectancyCSV = *lexPath
	}
	if *gdpPath != "" {
		cfg.Paths.GDPPerCapitaCSV = *gdpPath
	}
	if *outDir != "" {
		cfg.Paths.ResultsDir = *outDir
	}
	if *year != 0 {
		cfg.Analysis.TargetYear = *year
	}
	if *country != "" {
		cfg.Analysis.TrendCountry = *country
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Analysis failed", "error", err)
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
}

// run executes the full pipeline: validate, load, transform, analyze,
// export, plot.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputs(cfg.Paths.LifeExpectancyCSV, cfg.Paths.GDPPerCapitaCSV, cfg.Paths.ResultsDir); err != nil {
		return fmt.Errorf("validate inputs: %w", err)
	}

	loader := dataset.NewLoader(cfg.Paths.LifeExpectancyCSV, cfg.Paths.GDPPerCapitaCSV, logger)
	life, gdp, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}

	records := dataset.Merge(life.Melt(logger), gdp.Melt(logger))
	if len(records) == 0 {
		return fmt.Errorf("datasets share no (country, year) pairs")
	}
	logger.Info("merged datasets", slog.Int("records", len(records)))

	analyzer, err := analysis.NewAnalyzer(analysis.Options{
		TargetYear:     cfg.Analysis.TargetYear,
		TrendCountry:   cfg.Analysis.TrendCountry,
		TrendStartYear: cfg.Analysis.TrendStartYear,
		TrendEndYear:   cfg.Analysis.TrendEndYear,
		Bounds: analysis.Bounds{
			MinLifeExpectancy: cfg.Analysis.MinLifeExpectancy,
			MaxGDPPerCapita:   cfg.Analysis.MaxGDPPerCapita,
		},
		Timeout: cfg.Analysis.Timeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	report, err := analyzer.Run(ctx, records)
	if err != nil {
		return fmt.Errorf("run analysis: %w", err)
	}

	if err := writeOutputs(cfg, report, logger); err != nil {
		return err
	}

	fmt.Print(report.Summary())
	return nil
}

// writeOutputs saves the CSV reports, the text summary, the workbook and the
// three plots under the results directory.
func writeOutputs(cfg *config.Config, report *analysis.Report, logger *slog.Logger) error {
	slug := countrySlug(report.TrendCountry)

	writer := exporter.NewCSVWriter(cfg.Paths.ResultsDir, logger)
	if err := writer.ExportCrossSection(report, fmt.Sprintf("cross_section_%d.csv", report.Year)); err != nil {
		return fmt.Errorf("export cross-section: %w", err)
	}
	if err := writer.ExportTrendSeries(report, fmt.Sprintf("trend_%s.csv", slug)); err != nil {
		return fmt.Errorf("export trend series: %w", err)
	}

	summaryPath := filepath.Join(cfg.Paths.ResultsDir, "summary.txt")
	if err := exporter.SaveSummaryReport(report, summaryPath, logger); err != nil {
		return fmt.Errorf("save summary report: %w", err)
	}

	excel := exporter.NewExcelExporter(logger)
	workbookPath := filepath.Join(cfg.Paths.ResultsDir, "analysis.xlsx")
	if err := excel.Export(report, workbookPath); err != nil {
		return fmt.Errorf("export workbook: %w", err)
	}

	plotter, err := plotting.NewPlotter(cfg.Paths.ResultsDir, cfg.Plots.HighlightCountries, logger)
	if err != nil {
		return fmt.Errorf("create plotter: %w", err)
	}
	if err := plotter.ScatterLog(report, fmt.Sprintf("scatter_%d.png", report.Year)); err != nil {
		return fmt.Errorf("render scatter plot: %w", err)
	}
	if err := plotter.RegressionLog(report, fmt.Sprintf("regression_%d.png", report.Year)); err != nil {
		return fmt.Errorf("render regression plot: %w", err)
	}
	if err := plotter.Trend(report, fmt.Sprintf("trend_%s.png", slug)); err != nil {
		return fmt.Errorf("render trend plot: %w", err)
	}
	return nil
}

// countrySlug turns a country name into a filename-friendly token, e.g.
// "Czech Republic" becomes "czech_republic".
func countrySlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "_")
	return slug
}
