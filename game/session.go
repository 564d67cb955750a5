package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"spacehunt/sprites"
)

// State is a phase of the game flow
type State string

const (
	StateTitle      State = "title"
	StateStartLevel State = "start_level"
	StateGame       State = "game"
	StateVictory    State = "victory"
	StateLevelUp    State = "level_up"
	StateGameOver   State = "game_over"
	StateQuit       State = "quit"
)

const (
	backgroundSpeedNormal = 1.0
	backgroundSpeedWarp   = 10.0

	// dodgeReady is a last-dodge frame far enough back that the cooldown has elapsed
	dodgeReady = -1 << 30
)

// Session owns the whole simulation: ships, projectiles, the starfield and
// the flow state machine. It never touches the screen or the speakers;
// the client reads its fields to draw and drains its cues to play sounds.
type Session struct {
	ID string

	cfg Config
	lib *sprites.Library
	rng *rand.Rand

	State      State
	frame      int
	stateStart int

	fps             int
	volume          int
	BackgroundSpeed float64

	Player      *Ship
	Boss        *Ship
	Mobs        []*Ship
	PlayerShots []*Projectile
	EnemyShots  []*Projectile
	Stars       *Starfield

	frameLastShot  int
	frameLastDodge int

	events  []Cue
	grid    *Grid
	scratch []int
	seq     int
	masks   map[sprites.ID]*Mask

	// Verbose enables the once-a-second frame rate log line
	Verbose bool
}

// NewSession validates cfg and builds a session on the title screen.
// A nil rng seeds one from the clock.
func NewSession(cfg Config, lib *sprites.Library, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if lib == nil {
		lib = sprites.NewLibrary(cfg.AssetDir)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &Session{
		ID:              uuid.NewString(),
		cfg:             cfg,
		lib:             lib,
		rng:             rng,
		State:           StateTitle,
		fps:             cfg.FPS,
		volume:          cfg.Volume,
		BackgroundSpeed: backgroundSpeedNormal,
		frameLastDodge:  -int(cfg.DodgeCooldown),
		grid:            NewGrid(cfg.Width(), cfg.Height(), cfg.GridCellSize),
		masks:           make(map[sprites.ID]*Mask),
	}

	s.Stars = NewStarfield(cfg, rng)

	s.Player = newShip(lib, sprites.Player, ShipKindPlayer, false)
	s.Player.MaxHP = cfg.PlayerMaxHP
	s.Player.HP = s.Player.MaxHP
	s.Player.X = 100
	s.Player.Y = cfg.Height()/2 - s.Player.Height()/2

	s.Boss = newShip(lib, sprites.BossRoy, ShipKindBoss, true)
	s.Boss.MaxHP = cfg.BossBaseHealth
	s.Boss.HP = s.Boss.MaxHP
	s.loadBoss()
	s.Boss.X = s.bossStartX()
	s.Boss.Y = cfg.Height() / 2

	log.Printf("session %s started (fps %d, volume %d%%)", s.ID, s.fps, s.volume)
	return s, nil
}

// Config returns the configuration the session was built with
func (s *Session) Config() Config { return s.cfg }

// Library returns the sprite library shared with the client
func (s *Session) Library() *sprites.Library { return s.lib }

// Frame is the global frame counter
func (s *Session) Frame() int { return s.frame }

// StateFrame is the number of frames spent in the current state
func (s *Session) StateFrame() int { return s.frame - s.stateStart }

// FPS is the target update rate, 60 or 120
func (s *Session) FPS() int { return s.fps }

// Volume is the master volume in percent
func (s *Session) Volume() int { return s.volume }

// Done reports whether the player asked to quit
func (s *Session) Done() bool { return s.State == StateQuit }

// FPSDivisor scales per-frame movement so speeds hold at any frame rate
func (s *Session) FPSDivisor() float64 {
	return float64(s.cfg.BaseFPS) / float64(s.fps)
}

// FPSScaler scales frame counts so timings hold at any frame rate
func (s *Session) FPSScaler() float64 {
	return float64(s.fps) / float64(s.cfg.BaseFPS)
}

// Update advances the simulation by one frame
func (s *Session) Update(in Controls) {
	s.handleGlobalInput(in)

	switch s.State {
	case StateTitle:
		s.updateTitle(in)
	case StateStartLevel:
		s.updateStartLevel()
	case StateGame:
		s.updateGame(in)
	case StateVictory:
		s.updateVictory()
	case StateLevelUp:
		s.updateLevelUp(in)
	case StateGameOver:
		s.updateGameOver(in)
	}

	s.frame++
}

// setState switches the flow state; the state frame restarts on the next frame
func (s *Session) setState(next State) {
	if next == s.State {
		return
	}
	log.Printf("session %s: %s -> %s (level %d)", s.ID, s.State, next, s.Player.Level)
	s.State = next
	s.stateStart = s.frame + 1
}

// LogFrameRate prints the periodic status line when Verbose is set
func (s *Session) LogFrameRate(actualFPS float64) {
	if s.Verbose && s.frame%60 == 0 {
		log.Printf("Frame rate: %d, Game State: %s", int(math.Round(actualFPS)), s.State)
	}
}

func (s *Session) handleGlobalInput(in Controls) {
	if in.Quit {
		s.setState(StateQuit)
	}
	if in.CycleVolume {
		s.volume += 10
		if s.volume > 100 {
			s.volume = 0
		}
	}
	if in.ToggleFPS {
		if s.fps == 60 {
			s.fps = 120
		} else {
			s.fps = 60
		}
	}
}

// randInt returns a uniform integer in [lo, hi]
func (s *Session) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Session) nextSeq() int {
	s.seq++
	return s.seq
}

// spriteMask returns the cached collision mask of a sprite projectile
func (s *Session) spriteMask(id sprites.ID) *Mask {
	if m, ok := s.masks[id]; ok {
		return m
	}
	m := MaskFromImage(s.lib.MustImage(id))
	s.masks[id] = m
	return m
}

// bossStartX is where the boss parks at the start of a level
func (s *Session) bossStartX() float64 {
	return s.cfg.Width() - s.Boss.Width() - 100
}

// centerY vertically centres ship in the play field
func (s *Session) centerY(ship *Ship) float64 {
	return s.cfg.Height()/2 - ship.Height()/2
}

// DodgeCooldown returns the remaining share of the dodge cooldown
// and whether the cooldown is still running.
func (s *Session) DodgeCooldown() (float64, bool) {
	total := s.cfg.DodgeCooldown * s.FPSScaler()
	elapsed := float64(s.frame - s.frameLastDodge)
	if elapsed >= total {
		return 0, false
	}
	return (total - elapsed) / total, true
}
