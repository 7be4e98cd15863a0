package life

// neighbours lists the eight offsets around a cell.
var neighbours = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// countSpan adds a tally unit to every neighbour of every live cell in the
// columns of s. Neighbours may sit in a column owned by another worker; the
// increments are atomic and commutative, so no ordering is needed. Grid edges
// clip rather than wrap.
func (e *Engine) countSpan(s Span) {
	g := e.grid
	for x := s.Start; x < s.End; x++ {
		for y := 0; y < g.height; y++ {
			if !g.Get(x, y) {
				continue
			}
			for _, d := range neighbours {
				g.AddNeighbor(x+d[0], y+d[1])
			}
		}
	}
}

// generateSpan decides the next state of every cell in the columns of s and
// stages it. It reads only the front buffer and writes only its own columns
// of the back buffer.
func (e *Engine) generateSpan(s Span) {
	g := e.grid
	for x := s.Start; x < s.End; x++ {
		for y := 0; y < g.height; y++ {
			g.stage(x, y, e.rule.NextAlive(g.Counter(x, y)))
		}
	}
}
