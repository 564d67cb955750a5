package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridQueryDeduplicatesAndSorts(t *testing.T) {
	g := NewGrid(1280, 660, 128)

	// spans four cells
	g.Insert(3, 120, 120, 140, 140)
	g.Insert(1, 10, 10, 20, 20)
	g.Insert(2, 600, 300, 610, 310)

	got := g.Query(0, 0, 200, 200, nil)
	assert.Equal(t, []int{1, 3}, got)

	got = g.Query(590, 290, 620, 320, nil)
	assert.Equal(t, []int{2}, got)
}

func TestGridClampsOutsideField(t *testing.T) {
	g := NewGrid(1280, 660, 128)
	g.Insert(0, -500, -500, -490, -490)
	g.Insert(1, 5000, 5000, 5010, 5010)

	assert.Equal(t, []int{0}, g.Query(-10, -10, 0, 0, nil))
	assert.Equal(t, []int{1}, g.Query(1279, 659, 1300, 700, nil))
}

func TestGridReset(t *testing.T) {
	g := NewGrid(256, 256, 128)
	g.Insert(0, 10, 10, 20, 20)
	g.Reset()
	assert.Empty(t, g.Query(0, 0, 256, 256, nil))

	g.Insert(5, 10, 10, 20, 20)
	assert.Equal(t, []int{5}, g.Query(0, 0, 50, 50, nil))
}

func TestGridQueryAppends(t *testing.T) {
	g := NewGrid(256, 256, 128)
	g.Insert(0, 10, 10, 20, 20)

	out := g.Query(0, 0, 50, 50, []int{42})
	assert.Equal(t, []int{42, 0}, out)
}
