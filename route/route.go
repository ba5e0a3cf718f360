// Package route answers the two questions asked of a maze: the minimum
// turn-weighted cost from S to E, and how many cells lie on some route of
// that cost. Both answers share a single forward solve.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/turnpath/dijkstra"
	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/pathset"
	"github.com/katalvlaran/turnpath/turncost"
)

// ErrNilMaze indicates that a nil *gridgraph.Maze was passed to Analyze.
var ErrNilMaze = errors.New("route: maze is nil")

// Report is the outcome of Analyze.
type Report struct {
	MinCost   int64 // dijkstra.Unreached when Reachable is false
	Reachable bool
	Tiles     int   // distinct cells on some optimal route; 0 when skipped or unreachable
	Cells     []int // those cells in ascending index order; nil when skipped
}

// Options configures Analyze.
type Options struct {
	CostModel turncost.Model
	Heading   gridgraph.Direction
	Cells     bool // run the optimal-cell reconstruction
}

// Option represents a functional option for configuring Analyze.
type Option func(*Options)

// WithCostModel replaces the default turn/step weights.
func WithCostModel(m turncost.Model) Option {
	return func(o *Options) { o.CostModel = m }
}

// WithHeading sets the heading at the source before the first move.
func WithHeading(d gridgraph.Direction) Option {
	return func(o *Options) { o.Heading = d }
}

// WithCells toggles the optimal-cell reconstruction (default on).
func WithCells(on bool) Option {
	return func(o *Options) { o.Cells = on }
}

// DefaultOptions returns the canonical settings: default cost model,
// heading East, reconstruction on.
func DefaultOptions() Options {
	return Options{
		CostModel: turncost.Default(),
		Heading:   gridgraph.East,
		Cells:     true,
	}
}

// Analyze solves m once and derives the minimum cost and, unless
// disabled, the optimal cell set from the same table.
//
// When S and E lie in different open regions the report is unreachable
// without running the solver. An unreachable target is never an error.
func Analyze(m *gridgraph.Maze, opts ...Option) (*Report, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if m == nil {
		return nil, ErrNilMaze
	}
	if err := cfg.CostModel.Validate(); err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	unreachable := &Report{MinCost: dijkstra.Unreached}
	if !m.Connected(m.Source(), m.Target()) {
		return unreachable, nil
	}

	table, err := dijkstra.Solve(m,
		dijkstra.WithCostModel(cfg.CostModel),
		dijkstra.WithHeading(cfg.Heading),
	)
	if err != nil {
		return nil, fmt.Errorf("route: solve: %w", err)
	}
	best := table.MinCost(m.Target())
	if best == dijkstra.Unreached {
		return unreachable, nil
	}

	rep := &Report{MinCost: best, Reachable: true}
	if !cfg.Cells {
		return rep, nil
	}
	set, err := pathset.Collect(table, m.Target())
	if err != nil {
		return nil, fmt.Errorf("route: collect: %w", err)
	}
	rep.Tiles = set.Len()
	rep.Cells = set.Cells()

	return rep, nil
}

// MinCost returns only the minimum cost (dijkstra.Unreached if none).
func MinCost(m *gridgraph.Maze, opts ...Option) (int64, error) {
	rep, err := Analyze(m, append(opts, WithCells(false))...)
	if err != nil {
		return 0, err
	}

	return rep.MinCost, nil
}

// OptimalTiles returns the number of cells on some minimum-cost route.
func OptimalTiles(m *gridgraph.Maze, opts ...Option) (int, error) {
	rep, err := Analyze(m, append(opts, WithCells(true))...)
	if err != nil {
		return 0, err
	}

	return rep.Tiles, nil
}
