package game

import (
	"math"

	"spacehunt/sprites"
)

// ShipKind identifies how a ship moves
type ShipKind int

const (
	ShipKindBoss ShipKind = iota - 1
	ShipKindPlayer
	ShipKindBasic
)

// Ship is a player, boss or trash mob. X and Y are the top-left corner.
type Ship struct {
	X, Y   float64
	VX, VY float64

	// Native sprite size; on-screen size is W*Scale by H*Scale
	W, H  float64
	Scale float64

	HP, MaxHP    float64
	Level        int
	WeaponLevel  int
	DefenseLevel int
	Name         string
	Kind         ShipKind

	// Basic mobs ride a sine wave around BaseY, latched on first move
	BaseY             float64
	baseYSet          bool
	SinusoidAmplitude float64

	FrameLastHit int

	Sprite  sprites.ID
	Flipped bool
	Mask    *Mask
}

// newShip sizes a ship from its sprite spec and builds its collision mask
func newShip(lib *sprites.Library, id sprites.ID, kind ShipKind, flip bool) *Ship {
	s := &Ship{
		Kind:              kind,
		HP:                300,
		MaxHP:             300,
		Level:             1,
		WeaponLevel:       1,
		SinusoidAmplitude: 200,
		FrameLastHit:      math.MinInt32,
	}
	s.SetSprite(lib, id, flip)
	return s
}

// SetSprite swaps the ship's art and rebuilds the mask from the final image
func (s *Ship) SetSprite(lib *sprites.Library, id sprites.ID, flip bool) {
	spec := sprites.MustLookup(id)
	s.Sprite = id
	s.Flipped = flip
	s.W = float64(spec.W)
	s.H = float64(spec.H)
	s.Scale = spec.Scale

	img := lib.MustImage(id)
	if flip {
		img = sprites.FlipH(img)
	}
	s.Mask = MaskFromImage(img)
}

// Width is the on-screen width
func (s *Ship) Width() float64 { return s.W * s.Scale }

// Height is the on-screen height
func (s *Ship) Height() float64 { return s.H * s.Scale }

// Center returns the centre of the ship's box
func (s *Ship) Center() (float64, float64) {
	return s.X + s.Width()/2, s.Y + s.Height()/2
}

// Box returns the ship's bounding box corners
func (s *Ship) Box() (x0, y0, x1, y1 float64) {
	return s.X, s.Y, s.X + s.Width(), s.Y + s.Height()
}

// Move advances the ship by one frame. With edgeBound the ship is held
// inside the play field and the return value reports an edge contact.
func (s *Ship) Move(fpsDivisor, width, height float64, edgeBound bool) bool {
	s.X += s.VX * fpsDivisor

	switch s.Kind {
	case ShipKindBoss, ShipKindPlayer:
		s.Y += s.VY * fpsDivisor
	case ShipKindBasic:
		if !s.baseYSet {
			s.BaseY = s.Y
			s.baseYSet = true
		}
		s.Y = s.BaseY + math.Sin(s.X/100)*s.SinusoidAmplitude
	}

	if !edgeBound {
		return false
	}

	edgeHit := false
	if s.X < 0 {
		s.X = 0
		edgeHit = true
	}
	if s.X+s.Width() > width {
		s.X = width - s.Width()
		edgeHit = true
	}
	if s.Y < 0 {
		s.Y = 0
		edgeHit = true
	}
	if s.Y+s.Height() > height {
		s.Y = height - s.Height()
		edgeHit = true
	}
	return edgeHit
}

// Flashing reports whether the ship was hit within the last frame
func (s *Ship) Flashing(frame int) bool {
	return frame-s.FrameLastHit <= 1
}

// HealthFraction is the bar fill, clamped to [0, 1]
func (s *Ship) HealthFraction() float64 {
	if s.MaxHP <= 0 {
		return 0
	}
	return constrain(s.HP, 0, s.MaxHP) / s.MaxHP
}

// Shield is the HP held above max, drawn as a separate bar
func (s *Ship) Shield() float64 {
	return math.Max(0, s.HP-s.MaxHP)
}

// constrain clamps value into [low, high]
func constrain(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
