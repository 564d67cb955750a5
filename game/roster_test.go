package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spacehunt/sprites"
)

func TestBossForLevel(t *testing.T) {
	cases := []struct {
		level int
		name  string
	}{
		{1, "Morpha"},
		{2, "DVD Dreadnaught"},
		{8, "Flying Spaghetti Monster"},
		{10, "Roy Carnassus"},
		{11, "Morpha Mk II"},
		{20, "Roy Carnassus Mk II"},
		{21, "Morpha Mk III"},
		{49, "Zone Eater Mk V"},
	}
	for _, c := range cases {
		_, name := BossForLevel(c.level)
		assert.Equal(t, c.name, name, "level %d", c.level)
	}

	entry, _ := BossForLevel(2)
	assert.Equal(t, sprites.BossDVD, entry.Sprite)
	assert.False(t, entry.Flip)
}

func TestRomanNumeral(t *testing.T) {
	assert.Equal(t, "II", RomanNumeral(2))
	assert.Equal(t, "IV", RomanNumeral(4))
	assert.Equal(t, "IX", RomanNumeral(9))
	assert.Equal(t, "XLII", RomanNumeral(42))
	assert.Equal(t, "MCMXCIV", RomanNumeral(1994))
	assert.Equal(t, "", RomanNumeral(0))
}

func TestIsDVD(t *testing.T) {
	assert.True(t, IsDVD("DVD Dreadnaught Mk II"))
	assert.False(t, IsDVD("Odin"))
}
