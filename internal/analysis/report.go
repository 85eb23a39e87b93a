package analysis

import (
	"fmt"
	"sort"
	"strings"

	"gapstat/internal/dataset"
)

// Summary renders the report as plain text for the console and the text
// report file.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== CROSS-SECTION (%d) ===\n", r.Year)
	fmt.Fprintf(&b, "Countries after filtering: %d\n\n", len(r.CrossSection))

	fmt.Fprintf(&b, "Pearson correlation (GDP per capita vs life expectancy):\n")
	fmt.Fprintf(&b, "  r = %.3f, t = %.3f, p-value = %.4g, n = %d\n\n",
		r.Correlation.R, r.Correlation.T, r.Correlation.P, r.Correlation.N)

	fmt.Fprintf(&b, "OLS: life_expectancy ~ log10(gdp_per_capita)\n")
	writeFitTable(&b, "log10(gdp)", r.LogGDPFit)

	fmt.Fprintf(&b, "\n=== TREND: %s (%d-%d) ===\n", r.TrendCountry, r.TrendStart, r.TrendEnd)
	fmt.Fprintf(&b, "Observations: %d\n\n", len(r.TrendSeries))
	fmt.Fprintf(&b, "OLS: life_expectancy ~ year\n")
	writeFitTable(&b, "year", r.TrendFit)

	fmt.Fprintf(&b, "\nPaired t-test on year-over-year differences (H0: mean diff = 0):\n")
	fmt.Fprintf(&b, "  t = %.3f, p-value = %.4f, mean diff = %.4f, sd = %.4f, df = %d\n",
		r.YearOverYear.T, r.YearOverYear.P, r.YearOverYear.MeanDiff,
		r.YearOverYear.StdDev, r.YearOverYear.DF)

	top, bottom := r.extremes(5)
	if len(top) > 0 {
		fmt.Fprintf(&b, "\n=== LIFE EXPECTANCY EXTREMES (%d) ===\n", r.Year)
		fmt.Fprintf(&b, "%-24s | %9s | %12s\n", "Country", "Life Exp", "GDP/capita")
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 51))
		for _, rec := range top {
			fmt.Fprintf(&b, "%-24s | %9.1f | %12.0f\n", rec.Country, rec.LifeExpectancy, rec.GDPPerCapita)
		}
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 51))
		for _, rec := range bottom {
			fmt.Fprintf(&b, "%-24s | %9.1f | %12.0f\n", rec.Country, rec.LifeExpectancy, rec.GDPPerCapita)
		}
	}

	return b.String()
}

func writeFitTable(b *strings.Builder, xName string, fit Regression) {
	fmt.Fprintf(b, "  %-12s %12s %12s %10s %10s\n", "", "coef", "std err", "t", "P>|t|")
	fmt.Fprintf(b, "  %-12s %12.4f %12.4f %10.3f %10.4g\n",
		"const", fit.Intercept, fit.InterceptStdErr, fit.InterceptT, fit.InterceptP)
	fmt.Fprintf(b, "  %-12s %12.4f %12.4f %10.3f %10.4g\n",
		xName, fit.Slope, fit.SlopeStdErr, fit.SlopeT, fit.SlopeP)
	fmt.Fprintf(b, "  R-squared: %.3f, observations: %d\n", fit.R2, fit.N)
}

// extremes returns the k highest and k lowest life-expectancy records of
// the cross-section.
func (r *Report) extremes(k int) (top, bottom []dataset.Record) {
	if len(r.CrossSection) == 0 {
		return nil, nil
	}
	sorted := make([]dataset.Record, len(r.CrossSection))
	copy(sorted, r.CrossSection)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LifeExpectancy > sorted[j].LifeExpectancy
	})

	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k], sorted[len(sorted)-k:]
}
