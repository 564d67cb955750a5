package game

import (
	"image/color"
	"math/rand"

	"spacehunt/sprites"
)

// Star is one point of the scrolling background
type Star struct {
	X, Y  float64
	Speed float64
	Size  float64
	Color color.RGBA
}

// Planet is a large background body drifting past faster than the stars
type Planet struct {
	Sprite sprites.ID
	X, Y   float64
	VX     float64
	W, H   float64
}

// Starfield scrolls stars and planets leftward at a speed set by the
// session's background speed.
type Starfield struct {
	Stars   []Star
	Planets []Planet

	width, height float64
	rng           *rand.Rand
}

// NewStarfield seeds cfg.StarfieldSize stars and one of each planet
func NewStarfield(cfg Config, rng *rand.Rand) *Starfield {
	f := &Starfield{
		Stars:  make([]Star, cfg.StarfieldSize),
		width:  cfg.Width(),
		height: cfg.Height(),
		rng:    rng,
	}

	for i := range f.Stars {
		st := &f.Stars[i]
		st.X = float64(rng.Intn(int(f.width)))
		st.Y = float64(rng.Intn(int(f.height)))
		st.Speed = float64(1 + rng.Intn(7))
		st.Size = 1 + st.Speed/4
		st.Color = f.starColor(st.Speed)
	}

	for _, id := range sprites.Planets() {
		p := Planet{Sprite: id}
		f.resize(&p)
		f.respawn(&p)
		f.Planets = append(f.Planets, p)
	}
	return f
}

// starColor dims a star by its speed; half are white, half tinted
func (f *Starfield) starColor(speed float64) color.RGBA {
	shade := func(v int) uint8 {
		return uint8(float64(v) * speed / 10)
	}
	if f.rng.Intn(101) < 50 {
		return color.RGBA{shade(255), shade(255), shade(255), 255}
	}
	return color.RGBA{
		shade(80 + f.rng.Intn(175)),
		shade(80 + f.rng.Intn(175)),
		shade(80 + f.rng.Intn(175)),
		255,
	}
}

// resize picks a new drift speed; faster planets are drawn larger
func (f *Starfield) resize(p *Planet) {
	speed := float64(10 + f.rng.Intn(7))
	w, h := sprites.MustLookup(p.Sprite).Size()
	p.W = float64(w) * speed / 40
	p.H = float64(h) * speed / 40
	p.VX = -speed
}

// respawn parks a planet somewhere far beyond the right edge
func (f *Starfield) respawn(p *Planet) {
	p.X = f.width + f.width*f.rng.Float64()*40
	p.Y = float64(-20 + f.rng.Intn(621))
}

// Move scrolls everything by one frame
func (f *Starfield) Move(backgroundSpeed, fpsDivisor float64) {
	for i := range f.Planets {
		p := &f.Planets[i]
		p.X += p.VX * backgroundSpeed * fpsDivisor
		if p.X < -f.width {
			f.resize(p)
			f.respawn(p)
		}
	}

	for i := range f.Stars {
		st := &f.Stars[i]
		st.X -= st.Speed * backgroundSpeed * fpsDivisor
		if st.X < -((st.Size + st.Speed) * backgroundSpeed) {
			st.X = f.width + st.Speed + float64(f.rng.Intn(int(st.Size+st.Speed)))
			st.Y = float64(f.rng.Intn(int(f.height) + 1))
		}
	}
}

// Streak returns how far a star's warp trail reaches to the right.
// Trails only show above cruising speed.
func (st Star) Streak(backgroundSpeed float64) (float64, bool) {
	if backgroundSpeed <= 1.1 {
		return 0, false
	}
	return backgroundSpeed * 2 * st.Speed, true
}
