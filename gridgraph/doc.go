// Package gridgraph treats a rectangular text maze as a 4-connected grid
// graph with a distinguished source and target cell.
//
// What:
//
//   - Maze wraps a validated obstacle map: '#' wall, '.' open, 'S' source, 'E' target.
//   - Direction models the four compass headings in cyclic order N, E, S, W.
//   - Components / Connected label open regions with a plain BFS flood fill.
//
// Why:
//
//   - The turn-weighted solvers (dijkstra, pathset) index their tables by
//     row-major cell and heading; Maze owns the index arithmetic so callers
//     never compute raw offsets.
//   - Parsing is the only place input is validated. Downstream packages
//     assume a well-formed Maze.
//
// Complexity:
//
//   - NewMaze / Parse:       O(W×H), Memory: O(W×H).
//   - Components:            O(W×H×4), Memory: O(W×H).
//   - Connected:             O(W×H×4) worst case.
//   - Index, Coordinate, Step, Open: O(1).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile: malformed text.
//   - ErrMissingSource, ErrDuplicateSource, ErrMissingTarget, ErrDuplicateTarget: marker count.
//   - ErrBadDirection: ParseDirection could not recognise a heading name.
//
// Out-of-range indices and invalid Direction ordinals are caller defects
// and panic.
package gridgraph
