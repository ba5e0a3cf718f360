// Package dijkstra defines core types and configuration options
// for the heading-aware Dijkstra search over maze cells.
//
// The search space is the set of states (cell, heading). Entering a
// neighbour costs turncost.Model.Edge(current heading, direction of the
// neighbour), so the cheapest way into a cell depends on how the path is
// facing when it arrives.
//
// Complexity:
//
//	– Time:  O(S log S)   where S = 4·W·H states
//	   • Each state is finalized at most once (S extracts).
//	   • Each finalized state relaxes four neighbour states (4S pushes at most).
//	– Space: O(S)
//	   • One int64 cost and one finalized flag per state.
//	   • O(S) heap entries in the worst case (lazy decrease-key).
//
// Options:
//
//	– CostModel:   turn/step weights (default turncost.Default()).
//	– Heading:     heading at the source before the first move (default East).
//	– Source:      starting cell; defaults to the maze's 'S' marker.
//	– MaxDistance: optional cap; states costlier than this are not explored.
//
// Errors (sentinel):
//
//	– ErrNilMaze          if the provided maze pointer is nil.
//	– ErrSourceOutOfRange if an explicit source index is outside the grid.
//	– ErrSourceBlocked    if the source cell is a wall.
//	– ErrBadMaxDistance   if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrBadHeading       if the heading ordinal is invalid (panic from WithHeading).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/turncost"
)

// Unreached is the sentinel cost of a state no path reaches.
const Unreached int64 = math.MaxInt64

// Sentinel errors returned by Solve.
var (
	// ErrNilMaze indicates that a nil *gridgraph.Maze was passed to Solve.
	ErrNilMaze = errors.New("dijkstra: maze is nil")

	// ErrSourceOutOfRange indicates an explicit source index outside the grid.
	ErrSourceOutOfRange = errors.New("dijkstra: source cell out of range")

	// ErrSourceBlocked indicates that the source cell is a wall.
	ErrSourceBlocked = errors.New("dijkstra: source cell is a wall")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadHeading indicates an initial heading outside North..West.
	ErrBadHeading = errors.New("dijkstra: initial heading must be a valid direction")
)

// noSource marks "use the maze's own source marker".
const noSource = -1

// Options configures the behavior of Solve.
//
// CostModel   – weights for straight steps and quarter turns.
// Heading     – heading of the initial state (source, Heading).
// Source      – starting cell index, or noSource for the maze's 'S'.
// MaxDistance – optional cap on explored costs. Must be ≥ 0.
//
//	Default is math.MaxInt64 (no cap).
type Options struct {
	CostModel   turncost.Model
	Heading     gridgraph.Direction
	Source      int
	MaxDistance int64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithCostModel replaces the default turn/step weights.
func WithCostModel(m turncost.Model) Option {
	return func(o *Options) {
		o.CostModel = m
	}
}

// WithHeading sets the heading of the initial state.
// Panics with ErrBadHeading if d is not a valid direction.
func WithHeading(d gridgraph.Direction) Option {
	return func(o *Options) {
		if !d.Valid() {
			panic(ErrBadHeading.Error())
		}
		o.Heading = d
	}
}

// WithSource starts the search at cell idx instead of the maze's 'S'.
// The index is validated by Solve.
func WithSource(idx int) Option {
	return func(o *Options) {
		o.Source = idx
	}
}

// WithMaxDistance sets a maximum cost threshold.
// States whose cost would exceed this value are not explored and keep
// the Unreached sentinel.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with the
// canonical settings.
//
// Defaults:
//   - CostModel:   turncost.Default() (TurnPenalty=1000, StepCost=1).
//   - Heading:     gridgraph.East.
//   - Source:      the maze's 'S' marker.
//   - MaxDistance: math.MaxInt64 (explore all reachable states).
func DefaultOptions() Options {
	return Options{
		CostModel:   turncost.Default(),
		Heading:     gridgraph.East,
		Source:      noSource,
		MaxDistance: math.MaxInt64,
	}
}
