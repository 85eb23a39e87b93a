package dataset

import (
	"log/slog"
	"sort"
)

// Melt converts the wide table to long format, cleaning each cell with
// ParseNumeric. Cells that fail to parse are dropped; the drop count is
// logged so silently thin datasets are visible.
func (t *Table) Melt(logger *slog.Logger) []Observation {
	if logger == nil {
		logger = slog.Default()
	}

	obs := make([]Observation, 0, len(t.Rows)*len(t.Years))
	dropped := 0
	for _, row := range t.Rows {
		for i, year := range t.Years {
			v, err := ParseNumeric(row.Values[i])
			if err != nil {
				dropped++
				continue
			}
			obs = append(obs, Observation{Country: row.Country, Year: year, Value: v})
		}
	}

	logger.Debug("melted wide table",
		slog.Int("countries", len(t.Rows)),
		slog.Int("years", len(t.Years)),
		slog.Int("observations", len(obs)),
		slog.Int("dropped_cells", dropped))
	return obs
}

type countryYear struct {
	country string
	year    int
}

// Merge inner-joins the two long-format datasets on (country, year). The
// result is sorted by country then year so downstream output is stable.
func Merge(life, gdp []Observation) []Record {
	gdpByKey := make(map[countryYear]float64, len(gdp))
	for _, o := range gdp {
		gdpByKey[countryYear{o.Country, o.Year}] = o.Value
	}

	records := make([]Record, 0, len(life))
	for _, o := range life {
		g, ok := gdpByKey[countryYear{o.Country, o.Year}]
		if !ok {
			continue
		}
		records = append(records, Record{
			Country:        o.Country,
			Year:           o.Year,
			LifeExpectancy: o.Value,
			GDPPerCapita:   g,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Country != records[j].Country {
			return records[i].Country < records[j].Country
		}
		return records[i].Year < records[j].Year
	})
	return records
}
