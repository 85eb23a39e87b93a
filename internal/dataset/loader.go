package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
)

// Loader reads the two raw CSV files from disk.
type Loader struct {
	lifePath string
	gdpPath  string
	logger   *slog.Logger
}

// NewLoader creates a loader for the life expectancy and GDP per capita CSVs.
func NewLoader(lifePath, gdpPath string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{lifePath: lifePath, gdpPath: gdpPath, logger: logger}
}

// Load parses both wide-format files. The two reads are independent so they
// run concurrently; either failure aborts the load.
func (l *Loader) Load(ctx context.Context) (life, gdp *Table, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		life, err = l.loadTable(ctx, l.lifePath, "life_expectancy")
		return err
	})
	g.Go(func() error {
		var err error
		gdp, err = l.loadTable(ctx, l.gdpPath, "gdp_per_capita")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return life, gdp, nil
}

func (l *Loader) loadTable(ctx context.Context, path, metric string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s dataset: %w", metric, err)
	}
	defer f.Close()

	table, err := ParseWideCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s dataset %s: %w", metric, path, err)
	}

	l.logger.InfoContext(ctx, "loaded dataset",
		slog.String("metric", metric),
		slog.String("path", path),
		slog.Int("countries", len(table.Rows)),
		slog.Int("years", len(table.Years)))
	return table, nil
}
