package client

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"spacehunt/game"
	"spacehunt/sprites"
)

// Text sizes as multiples of the 7x13 bitmap font
const (
	fontLarge  = 3.5
	fontNormal = 1.8
	fontSmall  = 1.25
	fontTiny   = 1.0
)

var (
	colorBarBack = color.RGBA{255, 255, 0, 255}
	colorBoss    = color.RGBA{255, 100, 100, 255}
	colorShield  = color.RGBA{100, 100, 255, 255}
	colorStatus  = color.RGBA{180, 180, 180, 255}
	colorGrid    = color.RGBA{0, 80, 0, 255}
)

// Renderer draws a session onto the screen
type Renderer struct {
	images *Images
	face   *text.GoXFace
	white  *ebiten.Image

	// Debug overlays the broad-phase grid and ship boxes
	Debug bool
}

// NewRenderer creates a renderer drawing sprites from images
func NewRenderer(images *Images) *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		images: images,
		face:   text.NewGoXFace(basicfont.Face7x13),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw renders the current state of s
func (r *Renderer) Draw(screen *ebiten.Image, s *game.Session, actualFPS float64) {
	screen.Fill(color.Black)

	switch s.State {
	case game.StateTitle:
		r.drawTitle(screen, s)
	case game.StateStartLevel:
		r.drawStartLevel(screen, s)
		r.drawScoreLine(screen, s, actualFPS)
	case game.StateGame:
		r.drawPlay(screen, s)
		r.drawScoreLine(screen, s, actualFPS)
		r.drawBossLine(screen, s)
	case game.StateVictory:
		r.drawVictory(screen, s)
		r.drawScoreLine(screen, s, actualFPS)
	case game.StateLevelUp:
		r.drawStarfield(screen, s)
		w, h := s.Config().Width(), s.Config().Height()
		r.drawCentered(screen, game.LevelUpText, fontNormal, w/2, h/2-100, game.ColorCyan)
		r.drawCentered(screen, game.LevelWeapon, fontNormal, w/2, h/2, game.ColorCyan)
		r.drawCentered(screen, game.LevelArmor, fontNormal, w/2, h/2+100, game.ColorGreen)
		r.drawScoreLine(screen, s, actualFPS)
	case game.StateGameOver:
		r.drawGameOver(screen, s)
		r.drawScoreLine(screen, s, actualFPS)
	}

	if r.Debug {
		r.drawDebug(screen, s)
	}
}

func (r *Renderer) drawTitle(screen *ebiten.Image, s *game.Session) {
	r.drawStarfield(screen, s)
	w, h := s.Config().Width(), s.Config().Height()

	r.drawCentered(screen, game.TitleStart, fontLarge, w/2, h/2, game.ColorCyan)

	controls := r.images.Get(sprites.Controls, false, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w/2-float64(controls.Bounds().Dx())/2, 400)
	screen.DrawImage(controls, op)

	r.drawHeading(screen, s)
}

func (r *Renderer) drawHeading(screen *ebiten.Image, s *game.Session) {
	_, th := r.measure(game.TitleHeading, fontLarge)
	r.drawCentered(screen, game.TitleHeading, fontLarge, s.Config().Width()/2, 50+th/2, game.ColorWhite)
}

func (r *Renderer) drawStartLevel(screen *ebiten.Image, s *game.Session) {
	r.drawStarfield(screen, s)
	r.drawShip(screen, s, s.Player)
	r.drawShip(screen, s, s.Boss)

	w := s.Config().Width()
	_, th := r.measure(game.ThreatDetected, fontLarge)
	r.drawCentered(screen, game.ThreatDetected, fontLarge, w/2, 100+th/2, game.ColorRed)

	if s.ShowBossName() {
		intro := s.BossIntro()
		_, ih := r.measure(intro, fontNormal)
		r.drawCentered(screen, intro, fontNormal, w/2, 150+ih/2, game.ColorRed)
	}
}

func (r *Renderer) drawPlay(screen *ebiten.Image, s *game.Session) {
	r.drawStarfield(screen, s)

	r.drawShip(screen, s, s.Player)
	r.drawShip(screen, s, s.Boss)
	for _, mob := range s.Mobs {
		r.drawShip(screen, s, mob)
	}
	r.drawProjectiles(screen, s)

	r.drawHPBar(screen, s.Boss, game.ColorRed)
	r.drawHPBar(screen, s.Player, game.ColorGreen)
	for _, mob := range s.Mobs {
		r.drawHPBar(screen, mob, game.ColorBlue)
	}

	p := s.Player
	if frac, ok := s.DodgeCooldown(); ok {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y+p.Height()+11),
			float32(p.Width()*frac), 2, game.ColorPurple, false)
	}
	if shield := p.Shield(); shield > 0 {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y+p.Height()+11),
			float32(p.Width()*shield/p.MaxHP), 10, game.ColorBlue, false)
	}
}

func (r *Renderer) drawVictory(screen *ebiten.Image, s *game.Session) {
	r.drawStarfield(screen, s)
	r.drawProjectiles(screen, s)

	if s.BossVisible() {
		r.drawShip(screen, s, s.Boss)
	}
	if f, ok := s.VictoryFlame(); ok {
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), float32(f.Radius), f.Color, true)
	}
	if y, h, ok := s.VictoryBeam(); ok {
		vector.DrawFilledRect(screen, 0, float32(y), float32(s.Config().Width()), float32(h), game.ColorWhite, false)
	}
	r.drawShip(screen, s, s.Player)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, s *game.Session) {
	r.drawStarfield(screen, s)
	r.drawShip(screen, s, s.Boss)
	r.drawProjectiles(screen, s)

	w, h := s.Config().Width(), s.Config().Height()
	r.drawCentered(screen, game.ShipDestroyed, fontLarge, w/2, h/2-125, game.ColorRed)
	r.drawCentered(screen, game.JourneyAgain, fontNormal, w/2, h/2, game.ColorCyan)
	r.drawCentered(screen, game.QuitKey, fontLarge, w/2, h/2+50, game.ColorWhite)

	r.drawBossLine(screen, s)
	r.drawHeading(screen, s)
}

func (r *Renderer) drawStarfield(screen *ebiten.Image, s *game.Session) {
	bg := s.BackgroundSpeed
	for _, st := range s.Stars.Stars {
		x, y, size := float32(st.X), float32(st.Y), float32(st.Size)
		vector.DrawFilledCircle(screen, x, y, size, st.Color, true)

		if streak, ok := st.Streak(bg); ok {
			r.fillTriangle(screen, st.Color,
				x, y+size+1,
				x+float32(streak), y,
				x, y-size)
		}
	}

	for _, p := range s.Stars.Planets {
		if p.X > s.Config().Width() {
			continue
		}
		img := r.images.Get(p.Sprite, false, false)
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.W/float64(b.Dx()), p.H/float64(b.Dy()))
		op.GeoM.Translate(p.X, p.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

// fillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2) with a solid colour
func (r *Renderer) fillTriangle(dst *ebiten.Image, clr color.RGBA, x0, y0, x1, y1, x2, y2 float32) {
	cr, cg, cb := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, r.white, &ebiten.DrawTrianglesOptions{})
}

func (r *Renderer) drawShip(screen *ebiten.Image, s *game.Session, ship *game.Ship) {
	img := r.images.Get(ship.Sprite, ship.Flipped, ship.Flashing(s.Frame()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ship.X, ship.Y)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawHPBar(screen *ebiten.Image, ship *game.Ship, clr color.RGBA) {
	x, y, w := float32(ship.X), float32(ship.Y+ship.Height()), float32(ship.Width())
	vector.DrawFilledRect(screen, x, y, w, 10, colorBarBack, false)
	vector.DrawFilledRect(screen, x, y, w*float32(ship.HealthFraction()), 10, clr, false)
}

func (r *Renderer) drawProjectiles(screen *ebiten.Image, s *game.Session) {
	for _, p := range s.PlayerShots {
		r.drawProjectile(screen, s, p)
	}
	for _, p := range s.EnemyShots {
		r.drawProjectile(screen, s, p)
	}
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, s *game.Session, p *game.Projectile) {
	if p.Hit {
		clr := p.Color
		if p.IsHeal() {
			clr = game.ColorGreen
		}
		r.drawCentered(screen, game.DamageLabel(p), fontSmall, p.X, p.Y, clr)
		return
	}

	if p.IsHeal() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), game.ColorGreen, true)
		return
	}

	id, ok := p.Kind.Sprite()
	if !ok {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
		return
	}

	img := r.images.Get(id, false, false)
	b := img.Bounds()
	angle := float64(s.Frame() % 360)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(-angle * math.Pi / 180)
	op.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(img, op)
}

func (r *Renderer) drawScoreLine(screen *ebiten.Image, s *game.Session, actualFPS float64) {
	y := s.Config().Height() + 20

	score := s.ScoreLine()
	r.drawText(screen, score, fontSmall, 0, y, game.ColorWhite)

	sw, sh := r.measure(score, fontSmall)
	if shield := s.ShieldText(); shield != "" {
		r.drawText(screen, shield, fontSmall, sw+10, y, colorShield)
	}
	r.drawText(screen, s.StatusLine(actualFPS), fontTiny, 0, y+sh, colorStatus)
}

func (r *Renderer) drawBossLine(screen *ebiten.Image, s *game.Session) {
	line := s.BossLine()
	w, _ := r.measure(line, fontNormal)
	r.drawText(screen, line, fontNormal, s.Config().Width()-w, s.Config().Height()+20, colorBoss)
}

func (r *Renderer) drawDebug(screen *ebiten.Image, s *game.Session) {
	cfg := s.Config()
	for x := 0.0; x < cfg.Width(); x += cfg.GridCellSize {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(cfg.Height()), 1, colorGrid, false)
	}
	for y := 0.0; y < cfg.Height(); y += cfg.GridCellSize {
		vector.StrokeLine(screen, 0, float32(y), float32(cfg.Width()), float32(y), 1, colorGrid, false)
	}

	box := func(ship *game.Ship) {
		vector.StrokeRect(screen, float32(ship.X), float32(ship.Y),
			float32(ship.Width()), float32(ship.Height()), 1, game.ColorCyan, false)
	}
	box(s.Player)
	box(s.Boss)
	for _, mob := range s.Mobs {
		box(mob)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("session %s\nstate %s (%d)\nmobs %d  shots %d/%d",
		s.ID, s.State, s.StateFrame(), len(s.Mobs), len(s.PlayerShots), len(s.EnemyShots)), 4, 4)
}

// measure returns the on-screen size of str at the given font scale
func (r *Renderer) measure(str string, scale float64) (float64, float64) {
	w, h := text.Measure(str, r.face, 0)
	return w * scale, h * scale
}

func (r *Renderer) drawText(dst *ebiten.Image, str string, scale, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, r.face, op)
}

// drawCentered draws str centred on (cx, cy)
func (r *Renderer) drawCentered(dst *ebiten.Image, str string, scale, cx, cy float64, clr color.Color) {
	w, h := r.measure(str, scale)
	r.drawText(dst, str, scale, cx-w/2, cy-h/2, clr)
}
