package exporter

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gapstat/internal/analysis"
	"gapstat/internal/dataset"
)

func testReport() *analysis.Report {
	return &analysis.Report{
		Year: 2020,
		CrossSection: []dataset.Record{
			{Country: "Aland", Year: 2020, LifeExpectancy: 83.0, GDPPerCapita: 55000},
			{Country: "Borduria", Year: 2020, LifeExpectancy: 61.5, GDPPerCapita: 1800},
			{Country: "Syldavia", Year: 2020, LifeExpectancy: 72.0, GDPPerCapita: 12000},
		},
		Correlation: analysis.Correlation{R: 0.91, T: 5.2, P: 0.002, N: 3},
		LogGDPFit:   analysis.Regression{Intercept: 28.2, Slope: 10.9, R2: 0.67, N: 3},
		TrendCountry: "Bohemia",
		TrendStart:   2018,
		TrendEnd:     2020,
		TrendSeries: []dataset.Record{
			{Country: "Bohemia", Year: 2018, LifeExpectancy: 78.6, GDPPerCapita: 37000},
			{Country: "Bohemia", Year: 2019, LifeExpectancy: 79.1, GDPPerCapita: 38500},
			{Country: "Bohemia", Year: 2020, LifeExpectancy: 78.3, GDPPerCapita: 38000},
		},
		TrendFit:     analysis.Regression{Intercept: -370.0, Slope: 0.224, R2: 0.947, N: 3},
		YearOverYear: analysis.TTest{T: 2.996, P: 0.0074, N: 2, DF: 1},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV(t *testing.T) {
	t.Run("headers and records", func(t *testing.T) {
		dir := t.TempDir()
		writer := NewCSVWriter(dir, slog.Default())

		err := writer.WriteCSV("out.csv", WriteOptions{
			Headers: []string{"a", "b"},
			Records: [][]string{{"1", "2"}, {"3", "4"}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(dir, "out.csv"))
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"a", "b"}, rows[0])
		assert.Equal(t, []string{"3", "4"}, rows[2])
	})

	t.Run("BOM prefix", func(t *testing.T) {
		dir := t.TempDir()
		writer := NewCSVWriter(dir, slog.Default())

		err := writer.WriteCSV("bom.csv", WriteOptions{
			Headers:   []string{"a"},
			Records:   [][]string{{"1"}},
			BOMPrefix: true,
		})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "bom.csv"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	})

	t.Run("append mode skips headers", func(t *testing.T) {
		dir := t.TempDir()
		writer := NewCSVWriter(dir, slog.Default())

		require.NoError(t, writer.WriteCSV("app.csv", WriteOptions{
			Headers: []string{"a"},
			Records: [][]string{{"1"}},
		}))
		require.NoError(t, writer.WriteCSV("app.csv", WriteOptions{
			Headers: []string{"a"},
			Records: [][]string{{"2"}},
			Append:  true,
		}))

		rows := readCSV(t, filepath.Join(dir, "app.csv"))
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"2"}, rows[2])
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dir := t.TempDir()
		writer := NewCSVWriter(dir, slog.Default())

		err := writer.WriteCSV(filepath.Join("nested", "deep", "out.csv"), WriteOptions{
			Records: [][]string{{"1"}},
		})
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "nested", "deep", "out.csv"))
	})
}

func TestExportCrossSection(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, slog.Default())

	require.NoError(t, writer.ExportCrossSection(testReport(), "cross_section.csv"))

	rows := readCSV(t, filepath.Join(dir, "cross_section.csv"))
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"country", "year", "life_expectancy", "gdp_per_capita", "log10_gdp"}, rows[0])
	assert.Equal(t, "Aland", rows[1][0])
	assert.Equal(t, "2020", rows[1][1])
	assert.Equal(t, "83.0000", rows[1][2])
	// log10(55000) = 4.7404
	assert.True(t, strings.HasPrefix(rows[1][4], "4.740"))
}

func TestExportTrendSeries(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(dir, slog.Default())

	require.NoError(t, writer.ExportTrendSeries(testReport(), "trend.csv"))

	rows := readCSV(t, filepath.Join(dir, "trend.csv"))
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"country", "year", "life_expectancy", "fitted"}, rows[0])
	assert.Equal(t, "Bohemia", rows[1][0])
	assert.Equal(t, "2018", rows[1][1])
}

func TestSaveSummaryReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "summary.txt")

	require.NoError(t, SaveSummaryReport(testReport(), path, slog.Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "CROSS-SECTION (2020)")
	assert.Contains(t, text, "TREND: Bohemia (2018-2020)")
}
