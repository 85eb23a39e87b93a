package analysis

import (
	"sort"

	"gapstat/internal/dataset"
)

// CrossSection extracts the records for a single year, dropping rows that
// fail the validity bounds.
func CrossSection(records []dataset.Record, year int, bounds Bounds) []dataset.Record {
	var out []dataset.Record
	for _, r := range records {
		if r.Year != year || !r.IsValid() {
			continue
		}
		if r.LifeExpectancy <= bounds.MinLifeExpectancy {
			continue
		}
		if r.GDPPerCapita >= bounds.MaxGDPPerCapita {
			continue
		}
		out = append(out, r)
	}
	return out
}

// TrendSeries extracts one country's records for the inclusive year range,
// sorted by year.
func TrendSeries(records []dataset.Record, country string, startYear, endYear int) []dataset.Record {
	var out []dataset.Record
	for _, r := range records {
		if r.Country != country || r.Year < startYear || r.Year > endYear {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
