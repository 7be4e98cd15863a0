// Package life implements a concurrent Game of Life engine on a grid that grows
// on demand.
//
// The grid is an arena of packed cell counters (see package cell) laid out column
// by column, with zero-filled headroom on every side. Logical coordinates cover
// [0, Width()) × [0, Height()); growth toward positive coordinates extends the
// logical window into the headroom, growth toward negative coordinates moves the
// logical origin into the headroom. The arena is only re-laid out when headroom
// runs out, so neither direction shifts cells on every growth event.
//
// A generation is computed by Engine.Step in two fork/join phases over column
// ranges: a counting pass that atomically adds a tally unit to every neighbour
// of every live cell, and a generation pass that asks the Rule for each cell's
// next state. All structural changes to the grid happen single-threaded between
// phases.
package life

import (
	"image"
	"strings"
	"sync/atomic"

	"github.com/hans1song/lifegrid/internal/cell"
)

// Grid size constants.
const (
	// DefaultSize is the width and height of a new or cleared grid.
	DefaultSize = 100

	// DefaultMaxExtent caps growth in both dimensions.
	DefaultMaxExtent = 3000

	// edgeMargin is how close to the positive edge a live write may land
	// before the grid grows.
	edgeMargin = 2

	// minHeadroom is the smallest zero-filled border kept around the logical
	// window when the arena is laid out.
	minHeadroom = 16
)

// Grid is the cell store. It is not safe for concurrent mutation by callers;
// only the workers spawned by Engine.Step touch it concurrently, and only
// through the atomic counter primitives.
type Grid struct {
	width, height int // logical extent
	initW, initH  int // extent restored by Clear
	maxExtent     int

	// Arena geometry: cell (x, y) lives at (offX+x)*stride + offY+y.
	stride     int
	capW       int
	offX, offY int

	// front holds the current generation (plus tallies during a step);
	// back receives the next generation and is swapped in after the barrier.
	front []uint32
	back  []uint32

	// originX/originY count columns/rows prepended by negative growth.
	originX, originY int

	// Positive growth requested while the generation pass was running.
	wantW, wantH atomic.Int64
}

// New returns a width×height grid of dead cells capped at DefaultMaxExtent.
func New(width, height int) *Grid {
	return NewWithLimit(width, height, DefaultMaxExtent)
}

// NewWithLimit returns a width×height grid capped at maxExtent in both dimensions.
// Sizes are clamped to [1, maxExtent].
func NewWithLimit(width, height, maxExtent int) *Grid {
	if maxExtent < 1 {
		maxExtent = 1
	}
	g := &Grid{
		initW:     clamp(width, 1, maxExtent),
		initH:     clamp(height, 1, maxExtent),
		maxExtent: maxExtent,
	}
	g.reset()
	return g
}

func (g *Grid) reset() {
	g.width, g.height = g.initW, g.initH
	g.originX, g.originY = 0, 0
	g.front, g.back = nil, nil
	g.offX, g.offY, g.capW, g.stride = 0, 0, 0, 0
	g.wantW.Store(0)
	g.wantH.Store(0)
	g.relayout(0, 0, 0, 0)
}

// Width returns the logical number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the logical number of rows.
func (g *Grid) Height() int { return g.height }

// MaxExtent returns the growth cap.
func (g *Grid) MaxExtent() int { return g.maxExtent }

// Origin returns how many columns and rows have been prepended by negative
// growth since the grid was created or last cleared. A logical coordinate
// (x, y) corresponds to the stable world coordinate (x-ox, y-oy).
func (g *Grid) Origin() (ox, oy int) { return g.originX, g.originY }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	return (g.offX+x)*g.stride + g.offY + y
}

// Get reports whether the cell at (x, y) is alive. Out-of-range coordinates
// read as dead.
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return cell.Counter(atomic.LoadUint32(&g.front[g.index(x, y)])).Alive()
}

// Set stores a fresh flag-only counter at (x, y).
//
// A live write within edgeMargin of the positive edge grows the grid first, up
// to MaxExtent. Writes that still land outside the grid, including any negative
// coordinate, are dropped without error.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || y < 0 || x >= g.maxExtent || y >= g.maxExtent {
		return
	}
	if alive && (x > g.width-edgeMargin || y > g.height-edgeMargin) {
		g.growTo(x+edgeMargin, y+edgeMargin)
	}
	if !g.inBounds(x, y) {
		return
	}
	atomic.StoreUint32(&g.front[g.index(x, y)], uint32(cell.Of(alive)))
}

// Counter returns the raw packed counter at (x, y), or zero out of range.
func (g *Grid) Counter(x, y int) cell.Counter {
	if !g.inBounds(x, y) {
		return 0
	}
	return cell.Counter(atomic.LoadUint32(&g.front[g.index(x, y)]))
}

// AddNeighbor atomically adds one live neighbour to the tally at (x, y).
// Out-of-range coordinates are ignored, so the border behaves as dead cells.
func (g *Grid) AddNeighbor(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	atomic.AddUint32(&g.front[g.index(x, y)], uint32(cell.TallyUnit))
}

// stage writes the next state of (x, y) into the back buffer. It never changes
// the grid's shape: a live cell near the positive edge only records the growth
// it needs, and the engine applies it after the barrier.
func (g *Grid) stage(x, y int, alive bool) {
	atomic.StoreUint32(&g.back[g.index(x, y)], uint32(cell.Of(alive)))
	if !alive {
		return
	}
	if x > g.width-edgeMargin {
		raise(&g.wantW, int64(x+edgeMargin))
	}
	if y > g.height-edgeMargin {
		raise(&g.wantH, int64(y+edgeMargin))
	}
}

// raise sets v to max(v, n).
func raise(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if cur >= n || v.CompareAndSwap(cur, n) {
			return
		}
	}
}

// swap publishes the staged generation.
func (g *Grid) swap() {
	g.front, g.back = g.back, g.front
}

// discard drops tallies and staged state, leaving the current generation as it
// was before the step started.
func (g *Grid) discard() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			i := g.index(x, y)
			g.front[i] = uint32(cell.Counter(g.front[i]).Reset())
		}
	}
	g.wantW.Store(0)
	g.wantH.Store(0)
}

// Clear kills every cell and restores the initial extent and origin.
func (g *Grid) Clear() {
	g.reset()
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// LiveCells returns the logical coordinates of every live cell, column by column.
func (g *Grid) LiveCells() []image.Point {
	cells := make([]image.Point, 0)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.Get(x, y) {
				cells = append(cells, image.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// String dumps the grid column by column as '0'/'1' characters with no separators.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width * g.height)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.Get(x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// Place writes a pattern matrix (rows indexed [y][x]) centred in the grid and
// shifted by (dx, dy). The grid first grows, up to MaxExtent, so the pattern
// fits with edgeMargin to spare. Dead entries overwrite what was underneath.
func (g *Grid) Place(m [][]bool, dx, dy int) {
	ph, pw := len(m), 0
	for _, row := range m {
		pw = max(pw, len(row))
	}
	if pw == 0 {
		return
	}

	g.growTo(pw+2*edgeMargin, ph+2*edgeMargin)

	x0 := (g.width-pw)/2 + dx
	y0 := (g.height-ph)/2 + dy
	for y, row := range m {
		for x, alive := range row {
			g.Set(x0+x, y0+y, alive)
		}
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
