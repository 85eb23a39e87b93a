// Package plotting renders the three analysis plots as PNG files: the
// cross-section scatter on a log GDP axis, the same scatter with the fitted
// regression curve, and the single-country life expectancy trend.
package plotting
