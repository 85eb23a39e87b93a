// Package analysis implements the fixed statistical pipeline over the merged
// life expectancy / GDP per capita records.
//
// The pipeline produces four results from one pass over the data:
//
//  1. Pearson correlation between GDP per capita and life expectancy on a
//     filtered single-year cross-section (un-logged values)
//  2. OLS regression of life expectancy on log10(GDP per capita) for the
//     same cross-section
//  3. OLS time trend of life expectancy for one country over a year range
//  4. One-sample t-test of the country's year-over-year life expectancy
//     differences against a zero mean
//
// # Architecture
//
//   - types.go: result structures and validity bounds
//   - stats.go: the statistical primitives (gonum stat / distuv)
//   - filter.go: cross-section and trend-series extraction
//   - analyzer.go: orchestrator tying the steps together
//   - report.go: plain-text rendering of a finished Report
//
// # Usage Example
//
//	analyzer, err := analysis.NewAnalyzer(analysis.DefaultOptions(), logger)
//	if err != nil {
//	    return err
//	}
//	report, err := analyzer.Run(ctx, records)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(report.Summary())
package analysis
