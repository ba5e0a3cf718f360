package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/turnpath/gridgraph"
	"github.com/katalvlaran/turnpath/turncost"
)

// Table is the finished cost table of one Solve run: the minimum cost of
// every (cell, heading) state, or Unreached. It is read-only once Solve
// returns.
type Table struct {
	width, height int
	source        int
	heading       gridgraph.Direction
	model         turncost.Model
	cost          []int64 // cell*NumDirections + heading
}

func newTable(width, height, source int, heading gridgraph.Direction, model turncost.Model) *Table {
	cost := make([]int64, width*height*gridgraph.NumDirections)
	for i := range cost {
		cost[i] = Unreached
	}

	return &Table{
		width:   width,
		height:  height,
		source:  source,
		heading: heading,
		model:   model,
		cost:    cost,
	}
}

// Width returns the grid width the table was built for.
func (t *Table) Width() int { return t.width }

// Height returns the grid height the table was built for.
func (t *Table) Height() int { return t.height }

// Cells returns Width×Height.
func (t *Table) Cells() int { return t.width * t.height }

// Source returns the starting cell of the search.
func (t *Table) Source() int { return t.source }

// Heading returns the heading of the initial state.
func (t *Table) Heading() gridgraph.Direction { return t.heading }

// Model returns the cost model the table was computed with.
func (t *Table) Model() turncost.Model { return t.model }

// Cost returns the minimum cost of state (cell, d), or Unreached.
// It panics if cell or d is out of range.
func (t *Table) Cost(cell int, d gridgraph.Direction) int64 {
	return t.cost[t.slot(cell, d)]
}

// CostAt is Cost addressed by coordinates.
func (t *Table) CostAt(x, y int, d gridgraph.Direction) int64 {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		panic(fmt.Sprintf("dijkstra: cell (%d,%d) outside %dx%d table", x, y, t.width, t.height))
	}

	return t.Cost(y*t.width+x, d)
}

// MinCost returns the cheapest cost over the four headings of cell, or
// Unreached if none was reached.
func (t *Table) MinCost(cell int) int64 {
	best := Unreached
	for _, d := range gridgraph.Directions {
		if c := t.Cost(cell, d); c < best {
			best = c
		}
	}

	return best
}

// Reachable reports whether any heading of cell was reached.
func (t *Table) Reachable(cell int) bool {
	return t.MinCost(cell) != Unreached
}

// Headings returns every heading of cell whose cost equals cost, in
// ordinal order. Ties at the target are distinct optimal arrivals.
func (t *Table) Headings(cell int, cost int64) []gridgraph.Direction {
	var out []gridgraph.Direction
	for _, d := range gridgraph.Directions {
		if t.Cost(cell, d) == cost {
			out = append(out, d)
		}
	}

	return out
}

// Step returns the neighbour of cell along d inside the table bounds.
func (t *Table) Step(cell int, d gridgraph.Direction) (int, bool) {
	t.mustCell(cell)
	dx, dy := d.Offset()
	x, y := cell%t.width+dx, cell/t.width+dy
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return -1, false
	}

	return y*t.width + x, true
}

// Equal reports whether two tables hold identical dimensions, origin,
// model and costs.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}

	return t.width == o.width &&
		t.height == o.height &&
		t.source == o.source &&
		t.heading == o.heading &&
		t.model == o.model &&
		slices.Equal(t.cost, o.cost)
}

func (t *Table) slot(cell int, d gridgraph.Direction) int {
	t.mustCell(cell)
	if !d.Valid() {
		panic(fmt.Sprintf("dijkstra: invalid direction ordinal %d", int(d)))
	}

	return cell*gridgraph.NumDirections + int(d)
}

func (t *Table) mustCell(cell int) {
	if cell < 0 || cell >= t.Cells() {
		panic(fmt.Sprintf("dijkstra: cell index %d outside [0,%d)", cell, t.Cells()))
	}
}
