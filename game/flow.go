package game

import (
	"image/color"
	"math"
)

// Victory animation timeline in base frames
const (
	victoryBlinkEnd  = 100
	victoryFlyIn     = 150
	victoryWarpOut   = 270
	victoryLevelUp   = 300
	victoryParkX     = 400
	victoryDriftBack = -3
)

// scaled converts a base-frame count to frames at the current rate
func (s *Session) scaled(frames float64) float64 {
	return frames * s.FPSScaler()
}

func (s *Session) updateTitle(in Controls) {
	s.BackgroundSpeed = constrain(s.BackgroundSpeed*1.01, backgroundSpeedNormal, backgroundSpeedWarp)
	s.Stars.Move(s.BackgroundSpeed, s.FPSDivisor())

	s.Player.X = s.cfg.Width() * 1.5
	s.Boss.X = s.cfg.Width() * 2

	if in.Start {
		s.setState(StateStartLevel)
	}
}

func (s *Session) updateStartLevel() {
	s.BackgroundSpeed = math.Max(s.BackgroundSpeed*0.97, backgroundSpeedNormal)
	s.Player.X = math.Max(s.Player.X-(10+5*s.BackgroundSpeed), 100)
	s.Boss.X = math.Max(s.Boss.X-(10+4*s.BackgroundSpeed), s.bossStartX())
	s.Stars.Move(s.BackgroundSpeed, s.FPSDivisor())

	if s.StateFrame() == 0 {
		s.emit(commCue(s.Boss.Level))
	}

	if s.BackgroundSpeed == backgroundSpeedNormal && s.Player.X == 100 && s.Boss.X == s.bossStartX() {
		s.setState(StateGame)
	}
}

// ShowBossName reports whether the start-level screen names the boss yet
func (s *Session) ShowBossName() bool {
	return s.State == StateStartLevel && float64(s.StateFrame()) > s.scaled(20)
}

func (s *Session) updateGame(in Controls) {
	s.Stars.Move(s.BackgroundSpeed, s.FPSDivisor())

	s.handlePlayerInput(in)
	s.updateBoss()

	s.Player.Move(s.FPSDivisor(), s.cfg.Width(), s.cfg.Height(), true)
	s.moveBoss()
	s.updateMobs()

	s.moveProjectiles()
	s.collide()

	if s.Player.HP <= 0 {
		s.emit(CuePlayerDeath)
		s.frameLastDodge = dodgeReady
		s.Player.HP = 0
		s.PlayerShots = nil
		s.Mobs = nil
		s.setState(StateGameOver)
	}

	if s.Boss.HP <= 0 {
		s.emit(CueLevelUp)
		s.Mobs = nil
		s.EnemyShots = nil

		s.Boss.Level++
		s.Player.Level++
		s.Boss.MaxHP *= s.cfg.BossHealthGrowth
		s.Boss.HP = s.Boss.MaxHP
		s.Player.HP = constrain(s.Player.HP+10, 0, s.Player.MaxHP)
		s.setState(StateVictory)
	}
}

// moveProjectiles advances every shot and drops the finished ones
func (s *Session) moveProjectiles() {
	s.PlayerShots = s.advance(s.PlayerShots)
	s.EnemyShots = s.advance(s.EnemyShots)
}

func (s *Session) advance(shots []*Projectile) []*Projectile {
	kept := shots[:0]
	for _, p := range shots {
		if !p.Move(s.frame, s.FPSDivisor(), s.cfg.Width(), s.cfg.Height()) {
			kept = append(kept, p)
		}
	}
	clear(shots[len(kept):])
	return kept
}

func (s *Session) updateVictory() {
	s.Stars.Move(s.BackgroundSpeed, s.FPSDivisor())
	s.moveProjectiles()

	sf := float64(s.StateFrame())
	p := s.Player

	if sf == 0 {
		p.VX = (victoryParkX - p.X) / s.scaled(victoryFlyIn)
		p.VY = (s.cfg.Height()/2 - p.Y) / s.scaled(victoryFlyIn)
	}
	if sf >= s.scaled(victoryFlyIn) {
		p.VX = victoryDriftBack
		p.VY = 0
	}
	if sf > s.scaled(victoryFlyIn) {
		s.BackgroundSpeed = constrain(s.BackgroundSpeed*0.99, 0.1, backgroundSpeedWarp)
		s.PlayerShots = nil
	}
	if sf < s.scaled(victoryWarpOut) {
		p.Move(s.FPSDivisor(), s.cfg.Width(), s.cfg.Height(), true)
	}
	if sf > s.scaled(victoryWarpOut) {
		p.X = s.cfg.Width() * 3
		s.BackgroundSpeed = backgroundSpeedWarp
	}

	if sf >= s.scaled(victoryLevelUp) {
		s.setState(StateLevelUp)
		s.loadBoss()
	}
}

// BossVisible reports whether the boss should be drawn this frame. On the
// victory screen the defeated boss blinks for a moment and then vanishes.
func (s *Session) BossVisible() bool {
	switch s.State {
	case StateVictory:
		sf := s.StateFrame()
		return (sf/10)%2 == 1 && float64(sf) < s.scaled(victoryBlinkEnd)
	case StateLevelUp, StateQuit:
		return false
	}
	return true
}

// Flame is the engine flare drawn behind the player while it charges up
type Flame struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// VictoryFlame returns the engine flare once the player starts drifting back
func (s *Session) VictoryFlame() (Flame, bool) {
	sf := float64(s.StateFrame())
	if s.State != StateVictory || sf <= s.scaled(victoryFlyIn) {
		return Flame{}, false
	}

	heat := uint8(constrain(80+(sf*s.FPSDivisor()-victoryFlyIn), 0, 255))
	return Flame{
		X:      s.Player.X,
		Y:      s.Player.Y + s.Player.Height()/2,
		Radius: 3 + (sf-victoryFlyIn)/8,
		Color:  color.RGBA{255, heat, heat, 255},
	}, true
}

// VictoryBeam returns the vertical span of the white warp trail the
// player leaves across the screen as it jumps away.
func (s *Session) VictoryBeam() (y, h float64, ok bool) {
	if s.State != StateVictory || float64(s.StateFrame()) <= s.scaled(victoryWarpOut) {
		return 0, 0, false
	}
	return s.Player.Y, s.Player.Height(), true
}

func (s *Session) updateLevelUp(in Controls) {
	s.Stars.Move(s.BackgroundSpeed, s.FPSDivisor())

	if in.Weapon {
		s.upgradeWeapon()
	}
	if in.Defense {
		s.upgradeDefense()
	}
	if in.Both {
		s.upgradeWeapon()
		s.upgradeDefense()
	}

	if in.Weapon || in.Defense || in.Both {
		p, b := s.Player, s.Boss
		p.X = s.cfg.Width() * 1.5
		p.Y = s.centerY(p)
		b.X = s.cfg.Width() * 2
		b.Y = s.centerY(b)
		b.VX = 0
		b.VY = 0
		s.setState(StateStartLevel)
	}
}

func (s *Session) updateGameOver(in Controls) {
	s.Stars.Move(s.BackgroundSpeed, s.FPSDivisor())
	s.BackgroundSpeed = math.Max(s.BackgroundSpeed*0.99, 0.5)

	b := s.Boss
	b.VX = 1
	b.VY = 0
	b.Move(s.FPSDivisor(), s.cfg.Width(), s.cfg.Height(), true)

	s.moveProjectiles()

	// The weapon button doubles as "journey again"
	if in.Weapon {
		p := s.Player
		s.BackgroundSpeed = backgroundSpeedNormal
		p.HP = p.MaxHP
		b.HP = b.MaxHP
		p.X = 100
		p.Y = s.centerY(p)
		b.X = s.bossStartX()
		b.Y = s.centerY(b)
		s.EnemyShots = nil
		s.setState(StateGame)
	}
}
