package exporter

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.xlsx")

	exporter := NewExcelExporter(slog.Default())
	require.NoError(t, exporter.Export(testReport(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	t.Run("has all sheets", func(t *testing.T) {
		sheets := f.GetSheetList()
		assert.Contains(t, sheets, "Summary")
		assert.Contains(t, sheets, "CrossSection")
		assert.Contains(t, sheets, "Trend")
	})

	t.Run("summary headline values", func(t *testing.T) {
		year, err := f.GetCellValue("Summary", "B2")
		require.NoError(t, err)
		assert.Equal(t, "2020", year)

		country, err := f.GetCellValue("Summary", "B9")
		require.NoError(t, err)
		assert.Equal(t, "Bohemia", country)
	})

	t.Run("cross-section rows", func(t *testing.T) {
		rows, err := f.GetRows("CrossSection")
		require.NoError(t, err)
		require.Len(t, rows, 4) // header + 3 countries
		assert.Equal(t, "Country", rows[0][0])
		assert.Equal(t, "Aland", rows[1][0])
	})

	t.Run("trend rows", func(t *testing.T) {
		rows, err := f.GetRows("Trend")
		require.NoError(t, err)
		require.Len(t, rows, 4) // header + 3 years
		assert.Equal(t, "Bohemia", rows[1][0])
	})
}

func TestExcelExportCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "analysis.xlsx")

	exporter := NewExcelExporter(nil)
	require.NoError(t, exporter.Export(testReport(), path))
	assert.FileExists(t, path)
}
