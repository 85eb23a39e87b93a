package analysis

import (
	"gapstat/internal/dataset"
)

// Bounds define the validity filter applied to a cross-section before any
// statistic is computed. Rows outside the bounds are artifacts of the raw
// data (projection placeholders, unit errors) rather than real economies.
type Bounds struct {
	MinLifeExpectancy float64 `json:"min_life_expectancy"`
	MaxGDPPerCapita   float64 `json:"max_gdp_per_capita"`
}

// DefaultBounds returns the standard filter: life expectancy above 10 years
// and GDP per capita below one million USD.
func DefaultBounds() Bounds {
	return Bounds{MinLifeExpectancy: 10, MaxGDPPerCapita: 1e6}
}

// IsValid checks that the bounds describe a non-empty interval.
func (b Bounds) IsValid() bool {
	return b.MinLifeExpectancy >= 0 && b.MaxGDPPerCapita > 0
}

// Correlation holds a Pearson correlation with its two-sided significance.
type Correlation struct {
	R float64 `json:"r"`
	T float64 `json:"t"`
	P float64 `json:"p"`
	N int     `json:"n"`
}

// Regression holds an ordinary least squares fit y = Intercept + Slope*x
// with the usual inference statistics.
type Regression struct {
	Intercept       float64 `json:"intercept"`
	Slope           float64 `json:"slope"`
	InterceptStdErr float64 `json:"intercept_std_err"`
	SlopeStdErr     float64 `json:"slope_std_err"`
	InterceptT      float64 `json:"intercept_t"`
	SlopeT          float64 `json:"slope_t"`
	InterceptP      float64 `json:"intercept_p"`
	SlopeP          float64 `json:"slope_p"`
	R2              float64 `json:"r2"`
	N               int     `json:"n"`
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Intercept + r.Slope*x
}

// TTest holds a one-sample Student's t-test result.
type TTest struct {
	T        float64 `json:"t"`
	P        float64 `json:"p"`
	MeanDiff float64 `json:"mean_diff"`
	StdDev   float64 `json:"std_dev"`
	N        int     `json:"n"`
	DF       int     `json:"df"`
}

// Report collects every statistic produced by a single pipeline run.
type Report struct {
	Year         int              `json:"year"`
	CrossSection []dataset.Record `json:"cross_section"`
	Correlation  Correlation      `json:"correlation"`
	LogGDPFit    Regression       `json:"log_gdp_fit"`

	TrendCountry string           `json:"trend_country"`
	TrendStart   int              `json:"trend_start"`
	TrendEnd     int              `json:"trend_end"`
	TrendSeries  []dataset.Record `json:"trend_series"`
	TrendFit     Regression       `json:"trend_fit"`
	YearOverYear TTest            `json:"year_over_year"`
}
