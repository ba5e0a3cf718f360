// Package dijkstra_test contains unit tests for the heading-aware solver.
// These tests validate option handling, the straight / turn / reversal
// cost rules, unreachable targets, distance caps, ties and determinism.
package dijkstra_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/dijkstra"
	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/turncost"
)

// mustMaze parses rows or fails the test.
func mustMaze(t testing.TB, rows ...string) *gridgraph.Maze {
	t.Helper()
	m, err := gridgraph.NewMaze(rows)
	require.NoError(t, err)

	return m
}

// tieMaze has two mirror-image optimal routes around the wall at (2,1);
// the target is reached heading South from above or North from below.
var tieMaze = []string{
	".....",
	"S.#.E",
	".....",
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSolve_NilMaze(t *testing.T) {
	_, err := dijkstra.Solve(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilMaze)
}

func TestSolve_SourceOutOfRange(t *testing.T) {
	m := mustMaze(t, "S.E")
	_, err := dijkstra.Solve(m, dijkstra.WithSource(3))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.Solve(m, dijkstra.WithSource(-7))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestSolve_SourceBlocked(t *testing.T) {
	m := mustMaze(t, "S#E")
	_, err := dijkstra.Solve(m, dijkstra.WithSource(1))
	assert.ErrorIs(t, err, dijkstra.ErrSourceBlocked)
}

func TestSolve_NegativeCostModel(t *testing.T) {
	m := mustMaze(t, "S.E")
	_, err := dijkstra.Solve(m, dijkstra.WithCostModel(turncost.Model{TurnPenalty: -1, StepCost: 1}))
	assert.ErrorIs(t, err, turncost.ErrNegativePenalty)
	_, err = dijkstra.Solve(m, dijkstra.WithCostModel(turncost.Model{TurnPenalty: 1, StepCost: -1}))
	assert.ErrorIs(t, err, turncost.ErrNegativeStep)
}

func TestSolve_OverflowingCostModel(t *testing.T) {
	m := mustMaze(t, "E.S")
	huge := turncost.Model{TurnPenalty: math.MaxInt64/2 + 1, StepCost: 1}
	_, err := dijkstra.Solve(m, dijkstra.WithCostModel(huge))
	assert.ErrorIs(t, err, turncost.ErrCostOverflow)
}

func TestSolve_LargestCostModel(t *testing.T) {
	m := mustMaze(t, "E.S")
	p := int64(math.MaxInt64-2) / 2
	table, err := dijkstra.Solve(m, dijkstra.WithCostModel(turncost.Model{TurnPenalty: p, StepCost: 1}))
	require.NoError(t, err)

	// one reversal then two steps, just below the sentinel
	assert.Equal(t, 2*p+1, table.CostAt(1, 0, gridgraph.West))
	assert.Equal(t, 2*p+2, table.MinCost(m.Target()))
	assert.True(t, table.Reachable(m.Target()))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithHeading(gridgraph.Direction(4))(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Cost rules: straight lines, single turns, reversals.
// ------------------------------------------------------------------------

func TestSolve_StraightCorridor(t *testing.T) {
	for _, length := range []int{1, 2, 5, 17} {
		row := "S" + strings.Repeat(".", length-1) + "E"
		m := mustMaze(t, row)
		table, err := dijkstra.Solve(m)
		require.NoError(t, err)
		assert.Equal(t, int64(length), table.MinCost(m.Target()), "corridor length %d", length)
		assert.Equal(t, int64(length), table.Cost(m.Target(), gridgraph.East))
	}
}

func TestSolve_FiveByFiveCorridor(t *testing.T) {
	m := mustMaze(t,
		"S...E",
		".....",
		".....",
		".....",
		".....",
	)
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, int64(4), table.MinCost(m.Target()))
	assert.Equal(t, []gridgraph.Direction{gridgraph.East}, table.Headings(m.Target(), 4))
}

func TestSolve_SingleTurn(t *testing.T) {
	m := mustMaze(t,
		"S.",
		"#E",
	)
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)

	// two steps plus one quarter turn
	assert.Equal(t, int64(2*1+1000), table.MinCost(m.Target()))
	assert.Equal(t, int64(1002), table.Cost(m.Target(), gridgraph.South))
	assert.Equal(t, dijkstra.Unreached, table.Cost(m.Target(), gridgraph.East))
}

func TestSolve_Reversal(t *testing.T) {
	m := mustMaze(t, "E.S")
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)

	// facing East at the source, the target lies two cells West
	assert.Equal(t, int64(2*1000+2), table.MinCost(m.Target()))
	assert.Equal(t, int64(2001), table.CostAt(1, 0, gridgraph.West))
}

func TestSolve_InitialHeading(t *testing.T) {
	m := mustMaze(t, "S..E")
	table, err := dijkstra.Solve(m, dijkstra.WithHeading(gridgraph.North))
	require.NoError(t, err)
	assert.Equal(t, int64(1003), table.MinCost(m.Target()))
	assert.Equal(t, gridgraph.North, table.Heading())
	assert.Equal(t, int64(0), table.Cost(m.Source(), gridgraph.North))
	assert.Equal(t, dijkstra.Unreached, table.Cost(m.Source(), gridgraph.East))
}

func TestSolve_CustomModel(t *testing.T) {
	m := mustMaze(t,
		"S.",
		"#E",
	)
	model := turncost.New(turncost.WithTurnPenalty(10), turncost.WithStepCost(3))
	table, err := dijkstra.Solve(m, dijkstra.WithCostModel(model))
	require.NoError(t, err)
	assert.Equal(t, int64(3+13), table.MinCost(m.Target()))
	assert.Equal(t, model, table.Model())
}

// ------------------------------------------------------------------------
// 3. Reachability and caps.
// ------------------------------------------------------------------------

func TestSolve_UnreachableTarget(t *testing.T) {
	m := mustMaze(t,
		"S.#E",
		"..#.",
	)
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)
	for _, d := range gridgraph.Directions {
		assert.Equal(t, dijkstra.Unreached, table.Cost(m.Target(), d), d.String())
	}
	assert.False(t, table.Reachable(m.Target()))
	assert.Equal(t, dijkstra.Unreached, table.MinCost(m.Target()))
}

func TestSolve_MaxDistance(t *testing.T) {
	m := mustMaze(t, "S....E")
	table, err := dijkstra.Solve(m, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), table.CostAt(3, 0, gridgraph.East))
	assert.Equal(t, dijkstra.Unreached, table.CostAt(4, 0, gridgraph.East))
	assert.False(t, table.Reachable(m.Target()))
}

func TestSolve_MaxDistanceZero(t *testing.T) {
	m := mustMaze(t, "S.E")
	table, err := dijkstra.Solve(m, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), table.MinCost(m.Source()))
	assert.False(t, table.Reachable(m.Index(1, 0)))
}

func TestSolve_ZeroWeights(t *testing.T) {
	m := mustMaze(t,
		"S..",
		".#.",
		"..E",
	)
	table, err := dijkstra.Solve(m, dijkstra.WithCostModel(turncost.Model{}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), table.MinCost(m.Target()))
}

// ------------------------------------------------------------------------
// 4. Table invariants: ties, non-negativity, determinism, accessors.
// ------------------------------------------------------------------------

func TestSolve_TiedTargetHeadings(t *testing.T) {
	m := mustMaze(t, tieMaze...)
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)

	best := table.MinCost(m.Target())
	assert.Equal(t, int64(3006), best)
	assert.Equal(t,
		[]gridgraph.Direction{gridgraph.North, gridgraph.South},
		table.Headings(m.Target(), best))
}

func TestSolve_NonNegative(t *testing.T) {
	m := mustMaze(t,
		"#######",
		"#S..#.#",
		"#.#...#",
		"#...#E#",
		"#######",
	)
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)
	for cell := 0; cell < table.Cells(); cell++ {
		for _, d := range gridgraph.Directions {
			c := table.Cost(cell, d)
			assert.GreaterOrEqual(t, c, int64(0))
			if !m.Open(cell) {
				assert.Equal(t, dijkstra.Unreached, c, "wall cell %d reached", cell)
			}
		}
	}
	assert.True(t, table.Reachable(m.Target()))
}

func TestSolve_Idempotent(t *testing.T) {
	m := mustMaze(t, tieMaze...)
	a, err := dijkstra.Solve(m)
	require.NoError(t, err)
	b, err := dijkstra.Solve(m)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := dijkstra.Solve(m, dijkstra.WithCostModel(turncost.New(turncost.WithTurnPenalty(5))))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestTable_Accessors(t *testing.T) {
	m := mustMaze(t, "S.", "#E")
	table, err := dijkstra.Solve(m)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Width())
	assert.Equal(t, 2, table.Height())
	assert.Equal(t, 4, table.Cells())
	assert.Equal(t, m.Source(), table.Source())

	next, ok := table.Step(m.Source(), gridgraph.East)
	assert.True(t, ok)
	assert.Equal(t, 1, next)
	_, ok = table.Step(m.Source(), gridgraph.West)
	assert.False(t, ok)

	assert.Panics(t, func() { table.Cost(4, gridgraph.North) })
	assert.Panics(t, func() { table.Cost(0, gridgraph.Direction(4)) })
	assert.Panics(t, func() { table.CostAt(2, 0, gridgraph.North) })
}
