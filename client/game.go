// Package client runs a game session inside an Ebitengine window: it polls
// input, plays the session's sound cues and draws every frame.
package client

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacehunt/game"
	"spacehunt/sfx"
)

// Options tunes the client around a session
type Options struct {
	// Audio enables sound; without it the mixer is never created
	Audio bool

	// ProfileDir enables the frame-drop profiler when non-empty
	ProfileDir string

	// Seed drives jukebox track picks
	Seed int64
}

// Game implements ebiten.Game
type Game struct {
	session  *game.Session
	input    *Poller
	renderer *Renderer
	mixer    *Mixer
	profiler *Profiler

	tps int
}

// NewGame wires a session to the screen, the speakers and the input devices
func NewGame(session *game.Session, opts Options) (*Game, error) {
	g := &Game{
		session:  session,
		input:    NewPoller(),
		renderer: NewRenderer(NewImages(session.Library())),
	}

	if opts.Audio {
		ctx := audio.NewContext(int(sfx.SampleRate))
		g.mixer = NewMixer(ctx, rand.New(rand.NewSource(opts.Seed)))
		g.mixer.SetVolume(session.Volume())
	}

	if opts.ProfileDir != "" {
		p, err := NewProfiler(opts.ProfileDir)
		if err != nil {
			return nil, fmt.Errorf("profiler: %w", err)
		}
		g.profiler = p
	}

	g.applyTPS()
	return g, nil
}

// Update advances the game by one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderer.Debug = !g.renderer.Debug
	}

	s := g.session
	s.Update(g.input.Poll())
	if s.Done() {
		log.Printf("session %s: quitting at level %d", s.ID, s.Player.Level)
		return ebiten.Termination
	}

	g.applyTPS()
	g.playSounds()

	actual := ebiten.ActualTPS()
	s.LogFrameRate(actual)
	if g.profiler != nil {
		reason := fmt.Sprintf("%s-mobs%d-shots%d", s.State, len(s.Mobs), len(s.PlayerShots)+len(s.EnemyShots))
		g.profiler.Observe(actual, s.FPS(), time.Now(), reason)
	}
	return nil
}

// applyTPS follows the session's 60/120 target
func (g *Game) applyTPS() {
	if fps := g.session.FPS(); fps != g.tps {
		g.tps = fps
		ebiten.SetTPS(fps)
	}
}

func (g *Game) playSounds() {
	cues := g.session.DrainEvents()
	if g.mixer == nil {
		return
	}
	g.mixer.SetVolume(g.session.Volume())
	for _, cue := range cues {
		g.mixer.Play(cue)
	}
	g.mixer.Tick()
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session, ebiten.ActualTPS())
}

// Layout keeps a fixed logical screen of play field plus HUD strip
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.WindowHeight()
}
