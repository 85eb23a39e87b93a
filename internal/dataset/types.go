package dataset

// Table holds a wide-format dataset as shipped by Gapminder: one row per
// country, one column per year, cell values still in their raw string form
// (e.g. "24.5k", "71.2", "").
type Table struct {
	Years []int
	Rows  []Row
}

// Row is a single country's row of raw cell values, parallel to Table.Years.
type Row struct {
	Country string
	Values  []string
}

// Observation is one long-format data point for a single metric.
type Observation struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
}

// Record is the merged view of both datasets for one (country, year) pair.
type Record struct {
	Country        string  `json:"country"`
	Year           int     `json:"year"`
	LifeExpectancy float64 `json:"life_expectancy"`
	GDPPerCapita   float64 `json:"gdp_per_capita"`
}

// IsValid checks that the record carries usable values for analysis.
func (r Record) IsValid() bool {
	return r.Country != "" && r.Year > 0 &&
		r.LifeExpectancy > 0 && r.GDPPerCapita > 0
}
