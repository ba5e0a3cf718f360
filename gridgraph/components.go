package gridgraph

// Components finds all 4-connected regions of open cells.
// Returns a slice of components; each component is a slice of cell
// indices (row-major) in BFS order from its lowest index.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) Components() [][]int {
	seen := make([]bool, m.Cells())
	var comps [][]int
	for i0 := 0; i0 < m.Cells(); i0++ {
		if !m.open[i0] || seen[i0] {
			continue
		}
		comps = append(comps, m.flood(i0, -1, seen))
	}

	return comps
}

// Connected reports whether an open path (ignoring headings and costs)
// joins cells a and b. Either cell being a wall yields false.
// Time: O(W·H) worst case, stops as soon as b is reached.
func (m *Maze) Connected(a, b int) bool {
	m.mustCell(a)
	m.mustCell(b)
	if !m.open[a] || !m.open[b] {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, m.Cells())
	comp := m.flood(a, b, seen)

	return comp[len(comp)-1] == b
}

// flood runs a BFS from start over open cells, marking seen. If stop is
// a valid index the search ends as soon as stop is dequeued.
func (m *Maze) flood(start, stop int, seen []bool) []int {
	queue := []int{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == stop {
			return queue[:qi+1]
		}
		for _, d := range Directions {
			v, ok := m.Step(u, d)
			if !ok || !m.open[v] || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}
