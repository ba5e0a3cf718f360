// Package turnpath finds the cheapest way through a grid maze when turning
// costs more than stepping, and reports every tile that lies on at least one
// cheapest route.
//
// 🚀 What is turnpath?
//
//	A small, zero-cgo library plus CLI that brings together:
//		• Grid model: parse '#', '.', 'S', 'E' text mazes into a bounds-checked Maze
//		• Cost model: a 90° turn and a forward step, each with its own weight
//		• Shortest paths: Dijkstra over (cell, heading) states
//		• Tie-aware reconstruction: every cell on any minimum-cost route
//		• Settings: HCL or YAML files, overridable from the command line
//
// ✨ Why choose turnpath?
//
//   - One solve, two answers: the cost table feeds both the minimum cost and
//     the optimal tile set.
//   - Ties are honoured: routes arriving at the target with different
//     headings at equal cost are all kept.
//   - Deterministic: the same maze and settings always yield the same table.
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/  Maze, Direction, parsing, connectivity
//	turncost/   Model{TurnPenalty, StepCost} and edge weights
//	dijkstra/   forward solver producing a cost Table
//	pathset/    backward walk collecting optimal cells
//	route/      one-call facade: MinCost, OptimalTiles, Analyze
//	cmd/        the turnpath command line tool
//
// Quick ASCII example:
//
//	    ###############
//	    #S....#......E#
//	    ###############
//
//	a wall blocks the corridor, so the target is unreachable;
//	remove it and the cost is 12 steps, 13 tiles.
//
//	go get github.com/katalvlaran/turnpath
package turnpath
