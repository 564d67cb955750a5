package game

import (
	"math"
	"slices"

	"github.com/kamstrup/intmap"
)

// gridCell holds the projectile indices overlapping one cell
type gridCell struct {
	items []int
}

// Grid is a uniform broad-phase partition of the play field. Cells are
// allocated sparsely on first use and reused across frames. Anything
// outside the field is clamped into the border cells.
type Grid struct {
	cellSize   float64
	cols, rows int
	cells      *intmap.Map[int32, *gridCell]
	used       []*gridCell

	// seen de-duplicates items that span several cells
	seen  []uint32
	stamp uint32
}

// NewGrid creates a grid covering width×height
func NewGrid(width, height, cellSize float64) *Grid {
	cols := max(1, int(math.Ceil(width/cellSize)))
	rows := max(1, int(math.Ceil(height/cellSize)))
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    intmap.New[int32, *gridCell](cols * rows),
	}
}

// Reset empties every cell but keeps their storage
func (g *Grid) Reset() {
	for _, c := range g.used {
		c.items = c.items[:0]
	}
	g.used = g.used[:0]
}

// cellRange converts a box to clamped cell coordinates
func (g *Grid) cellRange(x0, y0, x1, y1 float64) (int, int, int, int) {
	clampCol := func(v float64) int {
		return max(0, min(g.cols-1, int(math.Floor(v/g.cellSize))))
	}
	clampRow := func(v float64) int {
		return max(0, min(g.rows-1, int(math.Floor(v/g.cellSize))))
	}
	return clampCol(x0), clampRow(y0), clampCol(x1), clampRow(y1)
}

// Insert registers item idx in every cell its box overlaps
func (g *Grid) Insert(idx int, x0, y0, x1, y1 float64) {
	c0, r0, c1, r1 := g.cellRange(x0, y0, x1, y1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			key := int32(r*g.cols + c)
			cell, ok := g.cells.Get(key)
			if !ok {
				cell = &gridCell{items: make([]int, 0, 16)}
				g.cells.Put(key, cell)
			}
			if len(cell.items) == 0 {
				g.used = append(g.used, cell)
			}
			cell.items = append(cell.items, idx)
		}
	}
	if idx >= len(g.seen) {
		g.seen = append(g.seen, make([]uint32, idx+1-len(g.seen))...)
	}
}

// Query appends the distinct items overlapping the box to out, in
// ascending index order so callers see them in insertion order.
func (g *Grid) Query(x0, y0, x1, y1 float64, out []int) []int {
	g.stamp++
	if g.stamp == 0 {
		clear(g.seen)
		g.stamp = 1
	}

	start := len(out)
	c0, r0, c1, r1 := g.cellRange(x0, y0, x1, y1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cell, ok := g.cells.Get(int32(r*g.cols + c))
			if !ok {
				continue
			}
			for _, idx := range cell.items {
				if g.seen[idx] == g.stamp {
					continue
				}
				g.seen[idx] = g.stamp
				out = append(out, idx)
			}
		}
	}
	slices.Sort(out[start:])
	return out
}
