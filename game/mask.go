package game

import (
	"image"
	"math"
)

// alphaThreshold matches the usual 50% cutoff for sprite collision masks
const alphaThreshold = 127

// Mask is a per-pixel collision mask. Bits are stored row-major,
// one uint64 word per 64 columns.
type Mask struct {
	W, H  int
	words int
	bits  []uint64
}

// NewMask creates an empty mask of the given size
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w + 63) / 64
	return &Mask{
		W:     w,
		H:     h,
		words: words,
		bits:  make([]uint64, words*h),
	}
}

// MaskFromImage sets every pixel whose alpha exceeds the threshold
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > alphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// CircleMask returns a filled circle mask of diameter 2*radius
func CircleMask(radius float64) *Mask {
	size := int(math.Ceil(radius * 2))
	m := NewMask(size, size)
	r2 := radius * radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			if dx*dx+dy*dy <= r2 {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Set marks a pixel as solid. Out of range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.words+x/64] |= 1 << uint(x%64)
}

// Get reports whether a pixel is solid
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.words+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of solid pixels
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		for w != 0 {
			w &= w - 1
			n++
		}
	}
	return n
}

// Overlap reports whether other, placed at offset (dx, dy) relative to
// this mask's origin, shares any solid pixel with this mask.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}

	// Intersection in this mask's coordinates
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.W, dx+other.W)
	y1 := min(m.H, dy+other.H)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// circleMasks caches circle masks by radius; projectile radii come from a
// small fixed set so the cache stays tiny.
var circleMasks = map[float64]*Mask{}

func cachedCircleMask(radius float64) *Mask {
	if m, ok := circleMasks[radius]; ok {
		return m
	}
	m := CircleMask(radius)
	circleMasks[radius] = m
	return m
}
