package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NewMaze builds a Maze from text rows. Every row must have the same
// number of runes; exactly one 'S' and one 'E' are required.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile,
// ErrMissingSource, ErrDuplicateSource, ErrMissingTarget or
// ErrDuplicateTarget, wrapped with the offending position where one exists.
// Complexity: O(W×H) time and memory.
func NewMaze(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	m := &Maze{
		Width:  w,
		Height: h,
		open:   make([]bool, w*h),
		source: -1,
		target: -1,
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		for x, c := range runes {
			idx := m.Index(x, y)
			switch c {
			case TileWall:
				continue
			case TileOpen:
			case TileSource:
				if m.source >= 0 {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateSource, x, y)
				}
				m.source = idx
			case TileTarget:
				if m.target >= 0 {
					return nil, fmt.Errorf("%w: at (%d,%d)", ErrDuplicateTarget, x, y)
				}
				m.target = idx
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownTile, c, x, y)
			}
			m.open[idx] = true
		}
	}
	if m.source < 0 {
		return nil, ErrMissingSource
	}
	if m.target < 0 {
		return nil, ErrMissingTarget
	}

	return m, nil
}

// Parse reads a maze from r, one row per line. Carriage returns and
// trailing blank lines are ignored.
func Parse(r io.Reader) (*Maze, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading maze: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return NewMaze(rows)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// It panics if (x,y) is outside the grid.
func (m *Maze) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("gridgraph: cell (%d,%d) outside %dx%d grid", x, y, m.Width, m.Height))
	}

	return y*m.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (m *Maze) Coordinate(idx int) (x, y int) {
	m.mustCell(idx)

	return idx % m.Width, idx / m.Width
}

// Cells returns Width×Height.
func (m *Maze) Cells() int { return m.Width * m.Height }

// Open reports whether the cell can be entered. Source and target are open.
func (m *Maze) Open(idx int) bool {
	m.mustCell(idx)

	return m.open[idx]
}

// Source returns the index of the 'S' cell.
func (m *Maze) Source() int { return m.source }

// Target returns the index of the 'E' cell.
func (m *Maze) Target() int { return m.target }

// Step returns the neighbour of idx one cell along d and whether it lies
// inside the grid. Walls are not filtered; use Open for that.
func (m *Maze) Step(idx int, d Direction) (int, bool) {
	x, y := m.Coordinate(idx)
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	if !m.InBounds(nx, ny) {
		return -1, false
	}

	return ny*m.Width + nx, true
}

// String renders the maze back into its text form.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for idx := 0; idx < m.Cells(); idx++ {
		switch {
		case idx == m.source:
			b.WriteByte(TileSource)
		case idx == m.target:
			b.WriteByte(TileTarget)
		case m.open[idx]:
			b.WriteByte(TileOpen)
		default:
			b.WriteByte(TileWall)
		}
		if (idx+1)%m.Width == 0 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (m *Maze) mustCell(idx int) {
	if idx < 0 || idx >= len(m.open) {
		panic(fmt.Sprintf("gridgraph: cell index %d outside [0,%d)", idx, len(m.open)))
	}
}
