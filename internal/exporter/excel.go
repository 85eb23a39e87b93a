package exporter

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gapstat/internal/analysis"
)

const (
	summarySheet      = "Summary"
	crossSectionSheet = "CrossSection"
	trendSheet        = "Trend"
)

// ExcelExporter writes the full analysis report as a styled workbook.
type ExcelExporter struct {
	logger *slog.Logger
}

// NewExcelExporter creates an Excel exporter.
func NewExcelExporter(logger *slog.Logger) *ExcelExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelExporter{logger: logger}
}

// Export writes the workbook to path. Sheets: Summary (headline statistics),
// CrossSection (per-country data for the target year), Trend (the
// single-country series with fitted values).
func (e *ExcelExporter) Export(report *analysis.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if err := e.writeSummarySheet(f, report); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}
	if err := e.writeCrossSectionSheet(f, report); err != nil {
		return fmt.Errorf("write cross-section sheet: %w", err)
	}
	if err := e.writeTrendSheet(f, report); err != nil {
		return fmt.Errorf("write trend sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	e.logger.Info("saved analysis workbook",
		slog.String("path", path),
		slog.Int("cross_section_rows", len(report.CrossSection)),
		slog.Int("trend_rows", len(report.TrendSeries)))
	return nil
}

func (e *ExcelExporter) writeSummarySheet(f *excelize.File, report *analysis.Report) error {
	rows := [][]interface{}{
		{"Statistic", "Value"},
		{"Cross-section year", report.Year},
		{"Countries after filtering", len(report.CrossSection)},
		{"Pearson r (GDP vs life expectancy)", report.Correlation.R},
		{"Pearson p-value", report.Correlation.P},
		{"Regression intercept (life ~ log10 GDP)", report.LogGDPFit.Intercept},
		{"Regression slope (life ~ log10 GDP)", report.LogGDPFit.Slope},
		{"Regression R-squared", report.LogGDPFit.R2},
		{fmt.Sprintf("Trend country (%d-%d)", report.TrendStart, report.TrendEnd), report.TrendCountry},
		{"Trend slope (years of life per year)", report.TrendFit.Slope},
		{"Trend R-squared", report.TrendFit.R2},
		{"Paired t-test t-statistic", report.YearOverYear.T},
		{"Paired t-test p-value", report.YearOverYear.P},
	}

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 20); err != nil {
		return err
	}
	return e.styleHeader(f, summarySheet, "A1", "B1")
}

func (e *ExcelExporter) writeCrossSectionSheet(f *excelize.File, report *analysis.Report) error {
	if _, err := f.NewSheet(crossSectionSheet); err != nil {
		return err
	}

	headers := []string{"Country", "Year", "Life Expectancy", "GDP per Capita", "log10(GDP)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(crossSectionSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetColWidth(crossSectionSheet, cell[:1], cell[:1], 18); err != nil {
			return err
		}
	}

	for i, r := range report.CrossSection {
		row := i + 2
		values := []interface{}{r.Country, r.Year, r.LifeExpectancy, r.GDPPerCapita, math.Log10(r.GDPPerCapita)}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(crossSectionSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return e.styleHeader(f, crossSectionSheet, "A1", "E1")
}

func (e *ExcelExporter) writeTrendSheet(f *excelize.File, report *analysis.Report) error {
	if _, err := f.NewSheet(trendSheet); err != nil {
		return err
	}

	headers := []string{"Country", "Year", "Life Expectancy", "Fitted"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(trendSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetColWidth(trendSheet, cell[:1], cell[:1], 18); err != nil {
			return err
		}
	}

	for i, r := range report.TrendSeries {
		row := i + 2
		values := []interface{}{r.Country, r.Year, r.LifeExpectancy, report.TrendFit.Predict(float64(r.Year))}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(trendSheet, cell, v); err != nil {
				return err
			}
		}
	}

	return e.styleHeader(f, trendSheet, "A1", "D1")
}

func (e *ExcelExporter) styleHeader(f *excelize.File, sheet, from, to string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}
