package game

import (
	"strings"

	"spacehunt/sprites"
)

// BossEntry is one slot of the ten-boss rotation
type BossEntry struct {
	Name   string
	Sprite sprites.ID
	Flip   bool
}

// bossRoster is indexed by level % 10
var bossRoster = [10]BossEntry{
	{Name: "Roy Carnassus", Sprite: sprites.BossRoy, Flip: true},
	{Name: "Morpha", Sprite: sprites.BossMorpha, Flip: true},
	{Name: "DVD Dreadnaught", Sprite: sprites.BossDVD},
	{Name: "Odin", Sprite: sprites.BossOdin, Flip: true},
	{Name: "Alexander", Sprite: sprites.BossAlexander, Flip: true},
	{Name: "Rathtar Overlord", Sprite: sprites.BossRathtar, Flip: true},
	{Name: "Doom Train", Sprite: sprites.BossTrain},
	{Name: "The Great Cthulhu", Sprite: sprites.BossCthulhu},
	{Name: "Flying Spaghetti Monster", Sprite: sprites.BossSpaghetti},
	{Name: "Zone Eater", Sprite: sprites.BossZoneEater, Flip: true},
}

const spaghettiSlot = 8

// BossForLevel returns the roster entry and display name for a level.
// Every full pass through the roster adds a "Mk" suffix.
func BossForLevel(level int) (BossEntry, string) {
	entry := bossRoster[((level%10)+10)%10]

	mark := 0
	for l := level; l > 0; l -= 10 {
		mark++
	}

	name := entry.Name
	if mark > 1 {
		name += " Mk " + RomanNumeral(mark)
	}
	return entry, name
}

// IsDVD reports whether the boss is the corner-seeking DVD Dreadnaught
func IsDVD(name string) bool {
	return strings.Contains(name, "DVD")
}

var romanValues = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
var romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

// RomanNumeral formats a positive integer; zero and negatives give ""
func RomanNumeral(n int) string {
	var sb strings.Builder
	for i, v := range romanValues {
		for n >= v {
			sb.WriteString(romanSymbols[i])
			n -= v
		}
	}
	return sb.String()
}
