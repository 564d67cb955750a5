package game

import (
	"image/color"
	"math"

	"spacehunt/sprites"
)

// ProjectileKind is the visual type tag of a projectile
type ProjectileKind int

const (
	ProjectileCircle ProjectileKind = iota + 1
	ProjectileMeatball
	ProjectileNoodle
	ProjectileFootball
	ProjectileBaseball
	ProjectileBasketball
	ProjectileVolleyball
	ProjectileSoccerBall
	ProjectileBomb
	ProjectileJar
	ProjectileMIRV
	ProjectileTorpedo
)

// Sprite returns the art for sprite projectiles; circles return false
func (k ProjectileKind) Sprite() (sprites.ID, bool) {
	switch k {
	case ProjectileMeatball:
		return sprites.Meatball, true
	case ProjectileNoodle:
		return sprites.Noodle, true
	}
	return "", false
}

// FireMode selects how a shot's velocity is derived from source and target
type FireMode int

const (
	// FireStraight shoots horizontally toward the target's side
	FireStraight FireMode = iota + 1
	// FireSpray shoots into the quadrant facing the target at a random angle
	FireSpray
	// FireAimed shoots directly at the target's centre
	FireAimed
)

// Palette used by the weapon tables
var (
	ColorYellow = color.RGBA{255, 255, 0, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorBlue   = color.RGBA{0, 0, 255, 255}
	ColorPurple = color.RGBA{255, 0, 255, 255}
	ColorGreen  = color.RGBA{0, 255, 0, 255}
	ColorOrange = color.RGBA{255, 165, 0, 255}
	ColorCyan   = color.RGBA{0, 255, 255, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorWhite2 = color.RGBA{238, 238, 238, 255}
)

// Projectile is a moving damage or heal effect. X and Y are the centre.
type Projectile struct {
	X, Y         float64
	VX, VY       float64
	Damage       float64
	Color        color.RGBA
	Radius       float64
	Acceleration float64
	Hit          bool
	Kind         ProjectileKind

	// Mask is the sprite mask for sprite projectiles, nil for circles
	Mask *Mask

	seq int
}

// IsHeal reports whether the projectile restores health
func (p *Projectile) IsHeal() bool {
	return p.Damage < 0
}

// Move advances the projectile one frame and reports whether it should be removed
func (p *Projectile) Move(frame int, fpsDivisor, width, height float64) bool {
	if p.Hit {
		p.VX *= 0.95
		p.VY *= 0.95
		if math.Abs(p.VX) < 2 && math.Abs(p.VY) < 2 {
			p.VX = 0
			p.VY = 0
			return true
		}
	}

	if p.Acceleration != 1.0 && frame%2 == 0 {
		p.VX *= p.Acceleration
		p.VY *= p.Acceleration
	}

	p.X += p.VX * fpsDivisor
	p.Y += p.VY * fpsDivisor

	return p.X < -p.Radius || p.X > width+p.Radius ||
		p.Y < -p.Radius || p.Y > height+p.Radius
}

// collisionMask returns the mask used against ship masks, positioned so its
// origin sits at (X-Radius, Y-Radius) for circles or centred for sprites.
func (p *Projectile) collisionMask() (*Mask, float64, float64) {
	if p.Kind == ProjectileCircle || p.IsHeal() || p.Mask == nil {
		return cachedCircleMask(p.Radius), p.X - p.Radius, p.Y - p.Radius
	}
	return p.Mask, p.X - float64(p.Mask.W)/2, p.Y - float64(p.Mask.H)/2
}

// Shot describes one projectile of a volley
type Shot struct {
	Mode         FireMode
	Damage       float64
	Color        color.RGBA
	Radius       float64
	Speed        float64
	Acceleration float64
	CanHeal      bool
	Kind         ProjectileKind
	OffsetX      float64
	OffsetY      float64
}

// fire builds a projectile from source toward target
func (s *Session) fire(source, target *Ship, shot Shot) *Projectile {
	sx, sy := source.Center()
	tx, ty := target.Center()

	var vx, vy float64
	speed := shot.Speed

	switch shot.Mode {
	case FireStraight:
		if sx > tx {
			vx = -speed
		} else {
			vx = speed
		}

	case FireSpray:
		if sx > tx {
			vx = s.rng.Float64() * -speed
		} else {
			vx = s.rng.Float64() * speed
		}
		if sy > ty {
			vy = math.Abs(vx) - speed
		} else {
			vy = speed - math.Abs(vx)
		}
		// |vx| + |vy| == speed

	case FireAimed:
		dx := tx - sx
		dy := ty - sy
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist != 0 {
			vx = dx / dist * speed
			vy = dy / dist * speed
		} else {
			vx = speed
		}
	}

	damage := shot.Damage
	if shot.CanHeal && s.rollHeal() {
		damage = -damage
	}

	accel := shot.Acceleration
	if accel == 0 {
		accel = 1.0
	}
	kind := shot.Kind
	if kind == 0 {
		kind = ProjectileCircle
	}

	p := &Projectile{
		X:            sx + shot.OffsetX,
		Y:            sy + shot.OffsetY,
		VX:           vx,
		VY:           vy,
		Damage:       damage,
		Color:        shot.Color,
		Radius:       shot.Radius,
		Acceleration: accel,
		Kind:         kind,
		seq:          s.nextSeq(),
	}
	if id, ok := kind.Sprite(); ok {
		p.Mask = s.spriteMask(id)
	}
	return p
}

// rollHeal applies the heal chance: randint(0, 100) < HealChance
func (s *Session) rollHeal() bool {
	return s.randInt(0, 100) < s.cfg.HealChance
}
