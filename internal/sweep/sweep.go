// Package sweep evaluates the growth engine across an effort × resources grid.
// Cells are independent, so they run concurrently on a shared Engine.
package sweep

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talgya/delta-tetrahedron/internal/growth"
)

// Cell is one grid point's result.
type Cell struct {
	Effort    int     `json:"effort"`
	Resources int     `json:"resources"`
	Delta     float64 `json:"delta"`
	G         float64 `json:"g"`
}

// Grid describes which effort and resource levels to evaluate.
type Grid struct {
	Min     int // Inclusive lower bound for both axes
	Max     int // Inclusive upper bound for both axes
	Step    int // Distance between levels (must be > 0)
	Workers int // Concurrent evaluations (0 = GOMAXPROCS)
}

// DefaultGrid covers the full slider range in steps of 10.
func DefaultGrid() Grid {
	return Grid{Min: growth.MinLevel, Max: growth.MaxLevel, Step: 10}
}

// Levels returns the axis values Min, Min+Step, ... up to Max.
func (g Grid) Levels() ([]int, error) {
	if g.Step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", g.Step)
	}
	if g.Max < g.Min {
		return nil, fmt.Errorf("max %d below min %d", g.Max, g.Min)
	}
	levels := make([]int, 0, (g.Max-g.Min)/g.Step+1)
	for v := g.Min; v <= g.Max; v += g.Step {
		levels = append(levels, v)
	}
	return levels, nil
}

// Run evaluates every (effort, resources) pair with the remaining fields of
// base. Results are row-major by effort then resources regardless of the
// order goroutines finish in.
func Run(ctx context.Context, eng *growth.Engine, base growth.InputParameters, grid Grid) ([]Cell, error) {
	levels, err := grid.Levels()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	workers := grid.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	cells := make([]Cell, len(levels)*len(levels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, effort := range levels {
		for j, resources := range levels {
			idx := i*len(levels) + j
			effort, resources := effort, resources
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				p := base
				p.Effort = effort
				p.Resources = resources
				m := eng.Compute(p)
				cells[idx] = Cell{Effort: effort, Resources: resources, Delta: m.Delta, G: m.G}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	slog.Debug("sweep complete",
		"cells", len(cells),
		"workers", workers,
		"elapsed", time.Since(start),
	)
	return cells, nil
}

// WriteCSV writes cells as effort,resources,delta,g rows. Δ and G are rounded
// to 2 decimals as the dashboard displays them.
func WriteCSV(w io.Writer, cells []Cell) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"effort", "resources", "delta", "g"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range cells {
		err := cw.Write([]string{
			strconv.Itoa(c.Effort),
			strconv.Itoa(c.Resources),
			strconv.FormatFloat(growth.Round2(c.Delta), 'f', 2, 64),
			strconv.FormatFloat(growth.Round2(c.G), 'f', 2, 64),
		})
		if err != nil {
			return fmt.Errorf("write cell %d/%d: %w", c.Effort, c.Resources, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
