package life

import "github.com/hans1song/lifegrid/internal/cell"

// growTo extends the logical window toward positive coordinates so it is at
// least w×h, clamped to MaxExtent. Dimensions never shrink. New cells come out
// of the zero-filled headroom.
func (g *Grid) growTo(w, h int) {
	w = clamp(max(w, g.width), 1, g.maxExtent)
	h = clamp(max(h, g.height), 1, g.maxExtent)
	if w == g.width && h == g.height {
		return
	}
	g.reserve(0, 0, w-g.width, h-g.height)
	g.width, g.height = w, h
}

// prepend grows toward negative coordinates by moving the logical origin into
// the headroom. Every logical coordinate shifts by (cols, rows); Origin records
// the shift. An axis that would exceed MaxExtent does not grow.
func (g *Grid) prepend(cols, rows int) {
	if g.width+cols > g.maxExtent {
		cols = 0
	}
	if g.height+rows > g.maxExtent {
		rows = 0
	}
	if cols <= 0 && rows <= 0 {
		return
	}
	cols, rows = max(cols, 0), max(rows, 0)

	g.reserve(cols, rows, 0, 0)
	g.offX -= cols
	g.offY -= rows
	g.width += cols
	g.height += rows
	g.originX += cols
	g.originY += rows
}

// growNegative prepends a column when any cell in column 0 is alive and a row
// when any cell in row 0 is alive.
func (g *Grid) growNegative() {
	cols, rows := 0, 0
	for y := 0; y < g.height; y++ {
		if g.Get(0, y) {
			cols = 1
			break
		}
	}
	for x := 0; x < g.width; x++ {
		if g.Get(x, 0) {
			rows = 1
			break
		}
	}
	g.prepend(cols, rows)
}

// applyPending performs the positive growth recorded by stage.
func (g *Grid) applyPending() {
	w, h := int(g.wantW.Swap(0)), int(g.wantH.Swap(0))
	if w == 0 && h == 0 {
		return
	}
	g.growTo(w, h)
}

// reserve makes sure the arena has at least the given headroom on each side
// of the logical window, re-laying it out if not.
func (g *Grid) reserve(left, top, right, bottom int) {
	if g.offX >= left && g.offY >= top &&
		g.capW-g.offX-g.width >= right && g.stride-g.offY-g.height >= bottom {
		return
	}
	g.relayout(left, top, right, bottom)
}

// relayout allocates a new arena with the required headroom plus slack that
// scales with the grid, copies the current generation flag-only, and starts
// with an empty back buffer.
func (g *Grid) relayout(left, top, right, bottom int) {
	w, h := g.width, g.height
	padX := g.headroom(w + left + right)
	padY := g.headroom(h + top + bottom)

	offX, offY := left+padX, top+padY
	capW := offX + w + right + padX
	stride := offY + h + bottom + padY

	front := make([]uint32, capW*stride)
	if g.front != nil {
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				front[(offX+x)*stride+offY+y] = uint32(cell.Counter(g.front[g.index(x, y)]).Reset())
			}
		}
	}

	g.front = front
	g.back = make([]uint32, capW*stride)
	g.offX, g.offY = offX, offY
	g.capW, g.stride = capW, stride
}

// headroom is the slack kept on each side of an axis of length n: half its
// length, at least minHeadroom, and never more than the grid could still grow.
func (g *Grid) headroom(n int) int {
	return clamp(max(n/2, minHeadroom), 0, max(g.maxExtent-n, 0))
}
