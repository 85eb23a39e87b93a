// Package exporter writes the analysis results to disk.
//
// This package contains three main components:
//
// CSVWriter: core CSV writing with headers, optional append mode and a UTF-8
// BOM for Excel compatibility, plus report-specific exports for the
// cross-section and the trend series.
//
// SaveSummaryReport: plain-text summary file mirroring the console output.
//
// ExcelExporter: a styled xlsx workbook with Summary, CrossSection and
// Trend sheets.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter("results", logger)
//	if err := writer.ExportCrossSection(report, "cross_section_2020.csv"); err != nil {
//	    return err
//	}
//
//	excel := exporter.NewExcelExporter(logger)
//	if err := excel.Export(report, "results/analysis.xlsx"); err != nil {
//	    return err
//	}
package exporter
