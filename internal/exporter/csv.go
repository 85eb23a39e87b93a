package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gapstat/internal/analysis"
)

// CSVWriter provides CSV export functionality rooted at a results directory.
type CSVWriter struct {
	baseDir string
	logger  *slog.Logger
}

// NewCSVWriter creates a CSV writer that resolves relative paths against
// baseDir.
func NewCSVWriter(baseDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{baseDir: baseDir, logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool // add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options.
func (w *CSVWriter) WriteCSV(path string, options WriteOptions) error {
	fullPath := w.resolvePath(path)

	w.logger.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("records", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if options.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(fullPath, flags, 0644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix && !options.Append {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if !options.Append && len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// ExportCrossSection writes the filtered cross-section as a long-format CSV
// with a derived log10(GDP) column.
func (w *CSVWriter) ExportCrossSection(report *analysis.Report, path string) error {
	headers := []string{"country", "year", "life_expectancy", "gdp_per_capita", "log10_gdp"}

	records := make([][]string, 0, len(report.CrossSection))
	for _, r := range report.CrossSection {
		records = append(records, []string{
			r.Country,
			strconv.Itoa(r.Year),
			formatFloat(r.LifeExpectancy),
			formatFloat(r.GDPPerCapita),
			formatFloat(math.Log10(r.GDPPerCapita)),
		})
	}

	return w.WriteCSV(path, WriteOptions{Headers: headers, Records: records, BOMPrefix: true})
}

// ExportTrendSeries writes the single-country trend series with the fitted
// values alongside the observations.
func (w *CSVWriter) ExportTrendSeries(report *analysis.Report, path string) error {
	headers := []string{"country", "year", "life_expectancy", "fitted"}

	records := make([][]string, 0, len(report.TrendSeries))
	for _, r := range report.TrendSeries {
		records = append(records, []string{
			r.Country,
			strconv.Itoa(r.Year),
			formatFloat(r.LifeExpectancy),
			formatFloat(report.TrendFit.Predict(float64(r.Year))),
		})
	}

	return w.WriteCSV(path, WriteOptions{Headers: headers, Records: records, BOMPrefix: true})
}

func (w *CSVWriter) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.baseDir, path)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
