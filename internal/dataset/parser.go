package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ParseWideCSV reads a wide-format CSV where the first column names the
// country and every remaining header is a four-digit year. Cell values are
// kept raw; numeric cleaning happens at melt time.
func ParseWideCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Gapminder rows occasionally drop trailing cells

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has %d columns, need a country column plus at least one year", len(header))
	}

	years := make([]int, 0, len(header)-1)
	for i, col := range header[1:] {
		year, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return nil, fmt.Errorf("header column %d (%q) is not a year: %w", i+1, col, err)
		}
		years = append(years, year)
	}

	table := &Table{Years: years}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(table.Rows)+2, err)
		}

		country := strings.TrimSpace(record[0])
		if country == "" {
			continue // skip blank lines
		}

		values := make([]string, len(years))
		for i := range years {
			if i+1 < len(record) {
				values[i] = record[i+1]
			}
		}
		table.Rows = append(table.Rows, Row{Country: country, Values: values})
	}

	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("no data rows found")
	}
	return table, nil
}

// ParseNumeric converts a raw Gapminder cell into a float. Values may carry
// thousands separators ("5,380") or a k-suffix shorthand ("27.7k" means
// 27700). An empty or unparseable cell returns an error so the caller can
// drop it.
func ParseNumeric(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}

	multiplier := 1.0
	if strings.HasSuffix(s, "k") || strings.HasSuffix(s, "K") {
		multiplier = 1000.0
		s = strings.TrimSpace(s[:len(s)-1])
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v * multiplier, nil
}
