// Package pathset recovers every maze cell that lies on at least one
// minimum-cost route, given a finished dijkstra.Table.
//
// The walk runs backwards from the target. A state (v, h') precedes
// (u, h) on an optimal route iff v is the cell one step behind u along h
// and Cost(v, h') + Edge(h', h) == Cost(u, h). States are expanded in
// descending cost order from a max-heap.
//
// Seeding:
//
//   - All target headings tied at the minimum seed the walk. Picking only
//     one of them silently drops every route arriving with another heading.
//
// Termination:
//
//   - Each (cell, heading) state is expanded at most once, so the walk ends
//     even with a zero StepCost where equal-cost cycles exist.
//   - Branches stop at the source cell.
package pathset

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/turnpath/dijkstra"
	"github.com/katalvlaran/turnpath/gridgraph"
)

// Sentinel errors returned by Collect.
var (
	// ErrNilTable indicates that a nil *dijkstra.Table was passed to Collect.
	ErrNilTable = errors.New("pathset: table is nil")

	// ErrTargetOutOfRange indicates a target index outside the table.
	ErrTargetOutOfRange = errors.New("pathset: target cell out of range")
)

// Set is the optimal cell set of one target. It is immutable once
// Collect returns.
type Set struct {
	member  []bool
	size    int
	minCost int64
}

// Len returns the number of distinct cells on some optimal route.
func (s *Set) Len() int { return s.size }

// Has reports whether cell lies on some optimal route.
func (s *Set) Has(cell int) bool {
	return cell >= 0 && cell < len(s.member) && s.member[cell]
}

// Cells returns the member cells in ascending index order.
func (s *Set) Cells() []int {
	out := make([]int, 0, s.size)
	for cell, ok := range s.member {
		if ok {
			out = append(out, cell)
		}
	}

	return out
}

// MinCost returns the optimal route cost, or dijkstra.Unreached.
func (s *Set) MinCost() int64 { return s.minCost }

// Reachable reports whether the target was reachable at all.
func (s *Set) Reachable() bool { return s.minCost != dijkstra.Unreached }

func (s *Set) add(cell int) {
	if !s.member[cell] {
		s.member[cell] = true
		s.size++
	}
}

// Collect returns the set of cells lying on at least one route from the
// table's initial state to target whose total cost equals the minimum
// over the target's four headings.
//
// Every target heading holding that minimum seeds the walk; each is a
// distinct family of optimal routes. An unreachable target yields an
// empty Set whose MinCost is dijkstra.Unreached and a nil error.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H
//   - Space: O(S)
func Collect(t *dijkstra.Table, target int) (*Set, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if target < 0 || target >= t.Cells() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrTargetOutOfRange, target, t.Cells())
	}

	set := &Set{
		member:  make([]bool, t.Cells()),
		minCost: t.MinCost(target),
	}
	if !set.Reachable() {
		return set, nil
	}

	w := newWalker(t)
	for _, h := range t.Headings(target, set.minCost) {
		w.push(target, h, set.minCost)
	}
	w.run(set)

	return set, nil
}

// walker owns the backward frontier and the per-state expanded flags.
type walker struct {
	table *dijkstra.Table
	seen  []bool
	pq    maxPQ
}

func newWalker(t *dijkstra.Table) *walker {
	w := &walker{
		table: t,
		seen:  make([]bool, t.Cells()*gridgraph.NumDirections),
	}
	heap.Init(&w.pq)

	return w
}

func (w *walker) push(cell int, h gridgraph.Direction, cost int64) {
	heap.Push(&w.pq, backItem{cell: cell, heading: h, cost: cost})
}

// run drains the frontier, adding each popped cell to set and pushing
// every predecessor state that can continue an optimal route.
func (w *walker) run(set *Set) {
	model := w.table.Model()
	source := w.table.Source()
	for w.pq.Len() > 0 {
		it := heap.Pop(&w.pq).(backItem)
		slot := it.cell*gridgraph.NumDirections + int(it.heading)
		if w.seen[slot] {
			continue
		}
		w.seen[slot] = true
		set.add(it.cell)
		if it.cell == source {
			continue
		}

		// The move into (cell, heading) was a step along heading, so the
		// only predecessor cell is one step against it.
		prev, ok := w.table.Step(it.cell, it.heading.Opposite())
		if !ok {
			continue
		}
		for _, h := range gridgraph.Directions {
			edge := model.Edge(h, it.heading)
			if it.cost < edge {
				continue
			}
			want := it.cost - edge
			if w.table.Cost(prev, h) == want {
				w.push(prev, h, want)
			}
		}
	}
}

// backItem is a backward frontier entry.
type backItem struct {
	cell    int
	heading gridgraph.Direction
	cost    int64
}

// maxPQ is a max-heap of backItem ordered by cost descending, the reverse
// of the forward frontier.
type maxPQ []backItem

func (pq maxPQ) Len() int            { return len(pq) }
func (pq maxPQ) Less(i, j int) bool  { return pq[i].cost > pq[j].cost }
func (pq maxPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *maxPQ) Push(x interface{}) { *pq = append(*pq, x.(backItem)) }
func (pq *maxPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
