// Package gridgraph defines the maze model, tiles and compass headings
// used by the turnpath solvers.
package gridgraph

import (
	"fmt"
	"strings"
)

// Tile runes recognised by Parse and NewMaze.
const (
	TileWall   = '#'
	TileOpen   = '.'
	TileSource = 'S'
	TileTarget = 'E'
)

// Direction is one of the four compass headings. Ordinals follow the
// cyclic order North, East, South, West, so the distance between two
// ordinals modulo 4 counts quarter turns.
type Direction int

const (
	// North points towards decreasing y.
	North Direction = iota
	// East points towards increasing x.
	East
	// South points towards increasing y.
	South
	// West points towards decreasing x.
	West
)

// NumDirections is the size of the heading space per cell.
const NumDirections = 4

// Directions lists every heading in ordinal order.
var Directions = [NumDirections]Direction{North, East, South, West}

// offsets holds the (dx, dy) step for each heading, indexed by ordinal.
var offsets = [NumDirections][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// String returns the lower-case heading name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Offset returns the (dx, dy) of one step along d.
// It panics if d is not a valid heading.
func (d Direction) Offset() (dx, dy int) {
	d.mustValid()
	o := offsets[d]

	return o[0], o[1]
}

// Opposite returns the heading rotated by 180°.
func (d Direction) Opposite() Direction {
	d.mustValid()

	return (d + 2) % NumDirections
}

// Turns returns the minimum number of 90° rotations between a and b:
// 0, 1 or 2. Three ordinal steps one way are one step the other way.
// It panics if either heading is invalid.
func Turns(a, b Direction) int {
	a.mustValid()
	b.mustValid()
	diff := int(a) - int(b)
	if diff < 0 {
		diff = -diff
	}
	if diff == 3 {
		return 1
	}

	return diff
}

// ParseDirection accepts a heading name ("north", "e", "West", ...).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up":
		return North, nil
	case "e", "east", "right":
		return East, nil
	case "s", "south", "down":
		return South, nil
	case "w", "west", "left":
		return West, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

func (d Direction) mustValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("gridgraph: invalid direction ordinal %d", int(d)))
	}
}

// Maze is an immutable rectangular obstacle map with one source and one
// target cell. Cells are addressed by row-major index y*Width + x.
type Maze struct {
	Width, Height int
	open          []bool
	source        int
	target        int
}
