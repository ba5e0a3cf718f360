// Package dijkstra provides the forward solver of turnpath: a Dijkstra
// search over (cell, heading) states of a gridgraph.Maze with
// turn-dependent edge weights from turncost.
//
// Overview:
//
//   - Solve returns a Table holding, for every state, the minimum cost
//     from (source, initial heading), or the Unreached sentinel.
//   - The minimum cost to a cell is the minimum over its four headings
//     (Table.MinCost); several headings may tie.
//   - The Table is the input of pathset.Collect, which recovers every cell
//     lying on some minimum-cost route.
//
// Key features:
//
//   - Functional options: WithCostModel, WithHeading, WithSource, WithMaxDistance.
//   - Bounds-checked accessors (Cost, CostAt, MinCost, Headings, Step): no raw
//     index arithmetic leaks to callers.
//   - Deterministic: solving the same maze twice yields Equal tables.
//
// Error handling:
//
//   - ErrNilMaze, ErrSourceOutOfRange, ErrSourceBlocked are returned by Solve.
//   - turncost.ErrNegativePenalty / ErrNegativeStep are returned (wrapped) for a
//     hand-built negative cost model.
//   - ErrBadMaxDistance / ErrBadHeading panic from their option constructors.
//   - An unreachable target is a normal result, never an error.
//
// Thread safety:
//
//   - Solve owns all mutable state for its duration; the returned Table is
//     read-only and safe to share between goroutines.
package dijkstra
