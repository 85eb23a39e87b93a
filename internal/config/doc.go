// Package config provides centralized configuration management for the
// analysis pipeline. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. An optional YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern GAPSTAT_* for namespacing:
//
//	GAPSTAT_ANALYSIS_TARGET_YEAR=2019
//	GAPSTAT_ANALYSIS_TREND_COUNTRY="Czech Republic"
//	GAPSTAT_PATHS_RESULTS_DIR=results
//	GAPSTAT_LOGGING_LEVEL=debug
package config
