package sprites

import (
	"fmt"
	"image/color"
	"math"
)

// ID names a sprite in the catalog. IDs double as override file names.
type ID string

const (
	Player   ID = "player"
	Trash1   ID = "trash1"
	Trash2   ID = "trash2"
	Meatball ID = "meatball"
	Noodle   ID = "noodle"
	Controls ID = "controls"

	BossRoy       ID = "boss-roy-carnassus"
	BossMorpha    ID = "boss-morpha"
	BossDVD       ID = "boss-dvd"
	BossOdin      ID = "boss-odin"
	BossAlexander ID = "boss-alexander"
	BossRathtar   ID = "boss-rathtar"
	BossTrain     ID = "boss-doom-train"
	BossCthulhu   ID = "boss-cthulhu"
	BossSpaghetti ID = "boss-spaghetti"
	BossZoneEater ID = "boss-zone-eater"
)

// Shape selects the procedural painter for a sprite
type Shape int

const (
	ShapeArrow Shape = iota
	ShapeSaucer
	ShapeSkull
	ShapeDisc
	ShapeSlab
	ShapeBeast
	ShapeTentacles
	ShapeTrain
	ShapeBall
	ShapeNoodle
	ShapePlanet
	ShapeKeys
)

// Spec describes a sprite's native size, draw scale and procedural look
type Spec struct {
	ID     ID
	W, H   int
	Scale  float64
	Shape  Shape
	Body   color.RGBA
	Accent color.RGBA
}

// Size returns the on-screen pixel size after scaling
func (s Spec) Size() (int, int) {
	w := int(math.Round(float64(s.W) * s.Scale))
	h := int(math.Round(float64(s.H) * s.Scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

var catalog = map[ID]Spec{
	Player:   {ID: Player, W: 32, H: 16, Scale: 2, Shape: ShapeArrow, Body: color.RGBA{100, 150, 255, 255}, Accent: color.RGBA{230, 240, 255, 255}},
	Trash1:   {ID: Trash1, W: 64, H: 48, Scale: 0.5, Shape: ShapeSaucer, Body: color.RGBA{170, 60, 200, 255}, Accent: color.RGBA{255, 220, 90, 255}},
	Trash2:   {ID: Trash2, W: 48, H: 40, Scale: 1.25, Shape: ShapeBeast, Body: color.RGBA{80, 180, 90, 255}, Accent: color.RGBA{240, 80, 60, 255}},
	Meatball: {ID: Meatball, W: 24, H: 24, Scale: 1, Shape: ShapeBall, Body: color.RGBA{139, 69, 19, 255}, Accent: color.RGBA{90, 40, 10, 255}},
	Noodle:   {ID: Noodle, W: 1000, H: 1000, Scale: 0.03, Shape: ShapeNoodle, Body: color.RGBA{250, 220, 120, 255}, Accent: color.RGBA{220, 180, 80, 255}},
	Controls: {ID: Controls, W: 360, H: 120, Scale: 1, Shape: ShapeKeys, Body: color.RGBA{210, 210, 210, 255}, Accent: color.RGBA{40, 40, 40, 255}},

	BossRoy:       {ID: BossRoy, W: 304, H: 256, Scale: 1, Shape: ShapeTentacles, Body: color.RGBA{120, 30, 140, 255}, Accent: color.RGBA{255, 60, 60, 255}},
	BossMorpha:    {ID: BossMorpha, W: 128, H: 128, Scale: 2, Shape: ShapeSkull, Body: color.RGBA{220, 220, 200, 255}, Accent: color.RGBA{40, 200, 120, 255}},
	BossDVD:       {ID: BossDVD, W: 1600, H: 740, Scale: 0.2, Shape: ShapeDisc, Body: color.RGBA{60, 90, 255, 255}, Accent: color.RGBA{255, 255, 255, 255}},
	BossOdin:      {ID: BossOdin, W: 256, H: 256, Scale: 1, Shape: ShapeBeast, Body: color.RGBA{200, 170, 60, 255}, Accent: color.RGBA{120, 40, 20, 255}},
	BossAlexander: {ID: BossAlexander, W: 190, H: 96, Scale: 1, Shape: ShapeSlab, Body: color.RGBA{180, 180, 200, 255}, Accent: color.RGBA{255, 200, 80, 255}},
	BossRathtar:   {ID: BossRathtar, W: 126, H: 94, Scale: 1, Shape: ShapeTentacles, Body: color.RGBA{200, 90, 60, 255}, Accent: color.RGBA{255, 240, 120, 255}},
	BossTrain:     {ID: BossTrain, W: 240, H: 208, Scale: 1, Shape: ShapeTrain, Body: color.RGBA{90, 90, 100, 255}, Accent: color.RGBA{255, 120, 0, 255}},
	BossCthulhu:   {ID: BossCthulhu, W: 722, H: 608, Scale: 0.3, Shape: ShapeTentacles, Body: color.RGBA{40, 140, 110, 255}, Accent: color.RGBA{250, 250, 120, 255}},
	BossSpaghetti: {ID: BossSpaghetti, W: 1280, H: 1027, Scale: 0.25, Shape: ShapeNoodle, Body: color.RGBA{250, 220, 120, 255}, Accent: color.RGBA{139, 69, 19, 255}},
	BossZoneEater: {ID: BossZoneEater, W: 190, H: 144, Scale: 1, Shape: ShapeSaucer, Body: color.RGBA{200, 60, 120, 255}, Accent: color.RGBA{255, 255, 255, 255}},
}

// planetIDs lists the parallax planets in spawn order
var planetIDs = []ID{
	"planet1", "planet2", "planet3", "planet4", "planet5", "planet6",
	"planet7", "planet10", "planet11", "planet12", "planet13", "planet14",
	"planet15", "planet16", "planet17", "planet18_0", "planet19", "planet20",
}

func init() {
	palette := []color.RGBA{
		{200, 120, 80, 255}, {80, 140, 220, 255}, {220, 200, 120, 255},
		{120, 200, 140, 255}, {180, 90, 200, 255}, {230, 230, 240, 255},
	}
	for i, id := range planetIDs {
		size := 60 + (i*37)%140
		catalog[id] = Spec{
			ID:     id,
			W:      size,
			H:      size,
			Scale:  1,
			Shape:  ShapePlanet,
			Body:   palette[i%len(palette)],
			Accent: palette[(i+2)%len(palette)],
		}
	}
}

// Lookup returns the spec for an id
func Lookup(id ID) (Spec, error) {
	spec, ok := catalog[id]
	if !ok {
		return Spec{}, fmt.Errorf("unknown sprite %q", id)
	}
	return spec, nil
}

// MustLookup returns the spec for a catalog id and panics on unknown ids.
// Only compile-time constants from this package are passed here.
func MustLookup(id ID) Spec {
	spec, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return spec
}

// Planets returns the planet ids in spawn order
func Planets() []ID {
	out := make([]ID, len(planetIDs))
	copy(out, planetIDs)
	return out
}

// All returns every catalog id
func All() []ID {
	out := make([]ID, 0, len(catalog))
	for id := range catalog {
		out = append(out, id)
	}
	return out
}
