package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gapstat/internal/analysis"
)

// SaveSummaryReport writes the plain-text analysis summary to path.
func SaveSummaryReport(report *analysis.Report, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(report.Summary()), 0644); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}

	logger.Info("saved summary report", slog.String("path", path))
	return nil
}
