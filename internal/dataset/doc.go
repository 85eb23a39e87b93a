// Package dataset loads and reshapes the Gapminder life expectancy and GDP
// per capita tables.
//
// Both inputs are wide-format CSVs: one row per country, one column per
// year, with GDP cells using the Gapminder shorthand for thousands
// ("27.7k" means 27700). The package covers the full path from raw file to
// analysis-ready records:
//
// 1. Loader: reads both CSVs from disk (concurrently) into wide Tables
// 2. Melt: wide to long conversion with per-cell numeric cleaning
// 3. Merge: inner join of the two long datasets on (country, year)
//
// Example:
//
//	loader := dataset.NewLoader("data/lex.csv", "data/gdp_pcap.csv", logger)
//	life, gdp, err := loader.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	records := dataset.Merge(life.Melt(logger), gdp.Melt(logger))
package dataset
