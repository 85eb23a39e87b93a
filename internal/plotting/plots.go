package plotting

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gapstat/internal/analysis"
	"gapstat/internal/dataset"
)

// regressionLinePoints controls how densely the fitted curve is sampled
// across the GDP axis.
const regressionLinePoints = 200

var (
	colorOther     = color.RGBA{R: 211, G: 211, B: 211, A: 255} // light gray
	colorFit       = color.RGBA{R: 220, G: 20, B: 60, A: 255}   // crimson
	colorTrend     = color.RGBA{R: 34, G: 139, B: 34, A: 255}   // forest green
	colorTrendDots = color.RGBA{R: 65, G: 105, B: 225, A: 255}  // royal blue
)

// palette maps configurable highlight color names to RGBA values.
var palette = map[string]color.RGBA{
	"red":    {R: 220, G: 20, B: 60, A: 255},
	"green":  {R: 34, G: 139, B: 34, A: 255},
	"blue":   {R: 65, G: 105, B: 225, A: 255},
	"orange": {R: 255, G: 165, B: 0, A: 255},
	"purple": {R: 128, G: 0, B: 128, A: 255},
	"black":  {R: 0, G: 0, B: 0, A: 255},
}

// Plotter renders the analysis plots as PNG files under a results directory.
type Plotter struct {
	resultsDir string
	width      vg.Length
	height     vg.Length
	highlights map[string]color.RGBA
	logger     *slog.Logger
}

// NewPlotter creates a plotter. highlights maps country names to palette
// color names; highlighted countries are drawn over the gray base layer.
func NewPlotter(resultsDir string, highlights map[string]string, logger *slog.Logger) (*Plotter, error) {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := make(map[string]color.RGBA, len(highlights))
	for country, name := range highlights {
		c, ok := palette[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown highlight color %q for country %q", name, country)
		}
		resolved[country] = c
	}

	return &Plotter{
		resultsDir: resultsDir,
		width:      8 * vg.Inch,
		height:     6 * vg.Inch,
		highlights: resolved,
		logger:     logger,
	}, nil
}

// ScatterLog renders life expectancy against GDP per capita for the
// cross-section year with a log-scaled X axis.
func (pl *Plotter) ScatterLog(report *analysis.Report, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("GDP per Capita vs. Life Expectancy (%d)", report.Year)
	p.X.Label.Text = fmt.Sprintf("GDP per Capita (USD, %d, log scale)", report.Year)
	p.Y.Label.Text = fmt.Sprintf("Life Expectancy (years, %d)", report.Year)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := pl.addCountryLayers(p, report); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	return pl.save(p, filename)
}

// RegressionLog renders the cross-section scatter plus the fitted
// life_expectancy ~ log10(gdp) regression curve.
func (pl *Plotter) RegressionLog(report *analysis.Report, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Regression: Life Expectancy vs. log10(GDP) (%d)", report.Year)
	p.X.Label.Text = fmt.Sprintf("GDP per Capita (USD, %d, log scale)", report.Year)
	p.Y.Label.Text = fmt.Sprintf("Life Expectancy (years, %d)", report.Year)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := pl.addCountryLayers(p, report); err != nil {
		return err
	}

	minGDP, maxGDP := gdpRange(report.CrossSection)
	if minGDP <= 0 || maxGDP <= minGDP {
		return fmt.Errorf("cannot draw regression line: GDP range [%g, %g]", minGDP, maxGDP)
	}

	// Sample the fitted curve evenly in log space so it renders as a
	// straight line on the log-scaled axis.
	linePts := make(plotter.XYs, regressionLinePoints)
	logMin, logMax := math.Log10(minGDP), math.Log10(maxGDP)
	step := (logMax - logMin) / float64(regressionLinePoints-1)
	for i := range linePts {
		lg := logMin + float64(i)*step
		linePts[i].X = math.Pow(10, lg)
		linePts[i].Y = report.LogGDPFit.Predict(lg)
	}

	line, err := plotter.NewLine(linePts)
	if err != nil {
		return fmt.Errorf("create regression line: %w", err)
	}
	line.Color = colorFit
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("fit: life ~ log10(GDP)", line)

	p.Add(plotter.NewGrid())
	return pl.save(p, filename)
}

// Trend renders the single-country life expectancy series with its fitted
// trend line.
func (pl *Plotter) Trend(report *analysis.Report, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Life Expectancy Trend (%d-%d) for %s",
		report.TrendStart, report.TrendEnd, report.TrendCountry)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = fmt.Sprintf("Life Expectancy (%s)", report.TrendCountry)

	pts := make(plotter.XYs, len(report.TrendSeries))
	for i, r := range report.TrendSeries {
		pts[i].X = float64(r.Year)
		pts[i].Y = r.LifeExpectancy
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("create trend scatter: %w", err)
	}
	scatter.GlyphStyle.Color = colorTrendDots
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add(report.TrendCountry, scatter)

	linePts := plotter.XYs{
		{X: float64(report.TrendStart), Y: report.TrendFit.Predict(float64(report.TrendStart))},
		{X: float64(report.TrendEnd), Y: report.TrendFit.Predict(float64(report.TrendEnd))},
	}
	line, err := plotter.NewLine(linePts)
	if err != nil {
		return fmt.Errorf("create trend line: %w", err)
	}
	line.Color = colorTrend
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("trend line", line)

	p.Add(plotter.NewGrid())
	return pl.save(p, filename)
}

// addCountryLayers draws the cross-section points: non-highlighted countries
// as a gray base layer, highlighted ones on top in their configured colors.
func (pl *Plotter) addCountryLayers(p *plot.Plot, report *analysis.Report) error {
	var others plotter.XYs
	for _, r := range report.CrossSection {
		if _, ok := pl.highlights[r.Country]; ok {
			continue
		}
		others = append(others, plotter.XY{X: r.GDPPerCapita, Y: r.LifeExpectancy})
	}

	if len(others) > 0 {
		scatter, err := plotter.NewScatter(others)
		if err != nil {
			return fmt.Errorf("create scatter: %w", err)
		}
		scatter.GlyphStyle.Color = colorOther
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("Countries (%d)", report.Year), scatter)
	}

	for _, r := range report.CrossSection {
		c, ok := pl.highlights[r.Country]
		if !ok {
			continue
		}
		scatter, err := plotter.NewScatter(plotter.XYs{{X: r.GDPPerCapita, Y: r.LifeExpectancy}})
		if err != nil {
			return fmt.Errorf("create highlight scatter: %w", err)
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(r.Country, scatter)
	}
	return nil
}

func (pl *Plotter) save(p *plot.Plot, filename string) error {
	path := filepath.Join(pl.resultsDir, filename)
	if err := os.MkdirAll(pl.resultsDir, 0755); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}
	if err := p.Save(pl.width, pl.height, path); err != nil {
		return fmt.Errorf("save plot %s: %w", filename, err)
	}
	pl.logger.Info("saved plot", slog.String("path", path))
	return nil
}

func gdpRange(records []dataset.Record) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, r := range records {
		if r.GDPPerCapita < min {
			min = r.GDPPerCapita
		}
		if r.GDPPerCapita > max {
			max = r.GDPPerCapita
		}
	}
	return min, max
}
