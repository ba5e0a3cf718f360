// Package dijkstra implements a heading-aware Dijkstra search over a maze.
//
// Every (cell, heading) pair is a distinct state. A move from state
// (u, h) to the neighbour v lying in direction d costs
// CostModel.Edge(h, d) and lands in state (v, d). The solver fills a
// Table with the minimum cost of every state reachable from
// (source, initial heading).
//
// Notes on implementation choices:
//
//   - Turning and stepping are folded into one edge per neighbour, so no
//     zero-distance "rotate" transitions exist.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - A state is relaxed only on strict improvement, so equal-cost duplicates never reach the heap.
//   - We stop expanding a branch once its cost would exceed MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/turnpath/gridgraph"
)

// Solve computes the cost table of maze m from the initial state
// (source, heading). It accepts functional options to customize the cost
// model, initial heading, source cell and distance cap.
//
// Returns:
//
//   - table: the finished cost table; unreached states hold Unreached.
//   - err:   ErrNilMaze, ErrSourceOutOfRange, ErrSourceBlocked, or the
//     cost model's validation error.
//
// An unreachable target is not an error: the caller checks
// table.Reachable(target) or compares table.MinCost(target) to Unreached.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H
//   - Space: O(S)
func Solve(m *gridgraph.Maze, opts ...Option) (*Table, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate maze is non-nil
	if m == nil {
		return nil, ErrNilMaze
	}

	// 3) Validate the cost model (a hand-built Model may carry negatives or overflow)
	if err := cfg.CostModel.Validate(); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 4) Resolve and validate the source cell
	src := cfg.Source
	if src == noSource {
		src = m.Source()
	}
	if src < 0 || src >= m.Cells() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, m.Cells())
	}
	if !m.Open(src) {
		x, y := m.Coordinate(src)
		return nil, fmt.Errorf("%w: (%d,%d)", ErrSourceBlocked, x, y)
	}

	// 5) Run the search on a fresh state and hand the table out read-only.
	s := newSearchState(m, src, cfg)
	s.run()

	return s.table, nil
}

// state is one (cell, heading) pair of the search space.
type state struct {
	cell    int
	heading gridgraph.Direction
}

// searchState owns the mutable data of a single Solve run: the cost
// table, the finalized flags and the frontier.
type searchState struct {
	maze      *gridgraph.Maze
	options   Options
	table     *Table
	finalized []bool
	pq        statePQ
}

// newSearchState allocates the table and seeds the frontier with
// (src, Heading) at cost 0.
func newSearchState(m *gridgraph.Maze, src int, cfg Options) *searchState {
	s := &searchState{
		maze:      m,
		options:   cfg,
		table:     newTable(m.Width, m.Height, src, cfg.Heading, cfg.CostModel),
		finalized: make([]bool, m.Cells()*gridgraph.NumDirections),
		pq:        make(statePQ, 0, m.Cells()),
	}
	heap.Init(&s.pq)
	s.relax(state{cell: src, heading: cfg.Heading}, 0)

	return s
}

// run is the core loop: extract the cheapest unfinalized state and relax
// the four states it can move into, until the frontier is empty.
func (s *searchState) run() {
	model := s.options.CostModel
	for {
		u, ok := s.extractMin()
		if !ok {
			return
		}
		cur := s.table.Cost(u.cell, u.heading)
		for _, d := range gridgraph.Directions {
			v, ok := s.maze.Step(u.cell, d)
			if !ok || !s.maze.Open(v) {
				continue
			}
			w := model.Edge(u.heading, d)
			// Also guards cur+w against overflow.
			if w > s.options.MaxDistance-cur {
				continue
			}
			s.relax(state{cell: v, heading: d}, cur+w)
		}
	}
}

// relax lowers the table entry of st to candidate if that is a strict
// improvement and queues st again. Reports whether the entry changed.
func (s *searchState) relax(st state, candidate int64) bool {
	slot := s.table.slot(st.cell, st.heading)
	if s.finalized[slot] || candidate >= s.table.cost[slot] {
		return false
	}
	s.table.cost[slot] = candidate
	heap.Push(&s.pq, &stateItem{state: st, cost: candidate})

	return true
}

// extractMin pops the cheapest state not yet finalized, skipping stale
// heap entries, and marks it final. Reports false when the frontier is empty.
func (s *searchState) extractMin() (state, bool) {
	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*stateItem)
		slot := s.table.slot(item.cell, item.heading)
		if s.finalized[slot] || item.cost != s.table.cost[slot] {
			continue
		}
		s.finalized[slot] = true

		return item.state, true
	}

	return state{}, false
}

// stateItem is a frontier entry: a state and the cost it was queued with.
type stateItem struct {
	state
	cost int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
