package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStarfield(t *testing.T) {
	f := NewStarfield(DefaultConfig(), rand.New(rand.NewSource(7)))

	require.Len(t, f.Stars, 300)
	for _, st := range f.Stars {
		assert.GreaterOrEqual(t, st.Speed, 1.0)
		assert.LessOrEqual(t, st.Speed, 7.0)
		assert.Equal(t, 1+st.Speed/4, st.Size)
		assert.Less(t, st.X, 1280.0)
		assert.Less(t, st.Y, 660.0)
		assert.LessOrEqual(t, st.Color.R, uint8(255*st.Speed/10))
	}

	require.Len(t, f.Planets, 18)
	for _, p := range f.Planets {
		assert.GreaterOrEqual(t, p.X, 1280.0)
		assert.LessOrEqual(t, p.VX, -10.0)
		assert.GreaterOrEqual(t, p.VX, -16.0)
		assert.Greater(t, p.W, 0.0)
	}
}

func TestStarfieldScrolls(t *testing.T) {
	f := NewStarfield(DefaultConfig(), rand.New(rand.NewSource(7)))
	f.Stars = f.Stars[:1]
	f.Stars[0].X = 600
	f.Stars[0].Speed = 4
	f.Stars[0].Size = 2

	f.Move(2, 0.5)
	assert.Equal(t, 596.0, f.Stars[0].X)

	f.Stars[0].X = -13
	f.Move(1, 1)
	assert.GreaterOrEqual(t, f.Stars[0].X, 1280.0)
}

func TestPlanetsRespawnFarRight(t *testing.T) {
	f := NewStarfield(DefaultConfig(), rand.New(rand.NewSource(7)))
	f.Planets = f.Planets[:1]
	f.Planets[0].X = -1279
	f.Planets[0].VX = -10

	f.Move(1, 1)
	assert.GreaterOrEqual(t, f.Planets[0].X, 1280.0)
	assert.GreaterOrEqual(t, f.Planets[0].Y, -20.0)
	assert.LessOrEqual(t, f.Planets[0].Y, 600.0)
}

func TestStarStreak(t *testing.T) {
	st := Star{Speed: 3}
	_, ok := st.Streak(1)
	assert.False(t, ok)

	tail, ok := st.Streak(5)
	assert.True(t, ok)
	assert.Equal(t, 30.0, tail)
}
