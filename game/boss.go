package game

import (
	"log"

	"spacehunt/sprites"
)

const (
	// summonInterval is the number of state frames between mob waves
	summonInterval = 60 * 15
	mobsPerWave    = 4
)

// loadBoss dresses the boss for its current level
func (s *Session) loadBoss() {
	entry, name := BossForLevel(s.Boss.Level)
	s.Boss.SetSprite(s.lib, entry.Sprite, entry.Flip)
	s.Boss.Name = name
}

// bossSlot is the boss's position in the ten-boss rotation
func (s *Session) bossSlot() int {
	return ((s.Boss.Level % 10) + 10) % 10
}

// updateBoss runs the boss's random walk, shooting and summoning
func (s *Session) updateBoss() {
	boss := s.Boss

	if s.frame%60 == 0 {
		boss.VX += float64(s.randInt(-2, 2))
		boss.VY += float64(s.randInt(-2, 2))

		maxVelocity := float64(5 + boss.Level/4)
		boss.VX = constrain(boss.VX, -maxVelocity, maxVelocity)
		boss.VY = constrain(boss.VY, -maxVelocity, maxVelocity)
	}

	if s.frame%s.bossShotInterval() == 0 {
		if s.randInt(0, 100) < 50+boss.Level/4 {
			s.bossShoot()
		}
	}

	if boss.Level >= 2 && s.StateFrame()%summonInterval == 0 {
		s.summon(s.randInt(1, 2))
	}
}

// bossShotInterval shortens from 13 to 8 frames as the boss levels up
func (s *Session) bossShotInterval() int {
	sc := s.FPSScaler()
	interval := constrain(float64(13-s.Boss.Level)*sc, 8*sc, 13*sc)
	return max(1, int(interval))
}

// bossShoot fires the boss's full volley at the player
func (s *Session) bossShoot() {
	kind := ProjectileCircle
	if s.bossSlot() == spaghettiSlot {
		if s.randInt(0, 100) < 50 {
			kind = ProjectileMeatball
		} else {
			kind = ProjectileNoodle
		}
	}

	for _, shot := range BossVolley(s.Boss.Level, kind) {
		s.EnemyShots = append(s.EnemyShots, s.fire(s.Boss, s.Player, shot))
	}
}

// moveBoss moves the boss, bouncing it off the field edges. A DVD boss
// landing exactly in a corner destroys the player.
func (s *Session) moveBoss() {
	boss := s.Boss
	if !boss.Move(s.FPSDivisor(), s.cfg.Width(), s.cfg.Height(), true) {
		return
	}

	var xBounce, yBounce bool
	if boss.Y == 0 || boss.Y == s.cfg.Height()-boss.Height() {
		boss.VY = -boss.VY
		yBounce = true
	}
	if boss.X == 0 || boss.X == s.cfg.Width()-boss.Width() {
		boss.VX = -boss.VX
		xBounce = true
	}

	if xBounce && yBounce && IsDVD(boss.Name) {
		s.Player.HP = 0
		log.Printf("session %s: perfect corner hit, %s destroys the player", s.ID, boss.Name)
	}
}

// mobWave describes one of the two summonable trash formations
type mobWave struct {
	sprite    sprites.ID
	hpPerLvl  float64
	spacing   float64
	amplitude float64
	fixedY    bool
	y         float64
}

var mobWaves = map[int]mobWave{
	1: {sprite: sprites.Trash1, hpPerLvl: 10, spacing: 1.2, amplitude: 200},
	2: {sprite: sprites.Trash2, hpPerLvl: 20, spacing: 1.4, amplitude: 30, fixedY: true, y: -25},
}

// summon lines up a wave of trash mobs just past the right edge
func (s *Session) summon(waveType int) {
	wave, ok := mobWaves[waveType]
	if !ok {
		return
	}

	y := wave.y
	if !wave.fixedY {
		y = float64(s.randInt(100, 500))
	}

	spacing := 0.0
	for range mobsPerWave {
		mob := newShip(s.lib, wave.sprite, ShipKindBasic, true)
		mob.MaxHP = float64(s.Boss.Level) * wave.hpPerLvl
		mob.HP = mob.MaxHP
		mob.X = s.cfg.Width() + mob.Width() + spacing
		spacing += float64(int(mob.Width() * wave.spacing))
		mob.Y = y
		mob.VX = -3
		mob.SinusoidAmplitude = wave.amplitude
		s.Mobs = append(s.Mobs, mob)
	}
}

// updateMobs moves the trash, drops mobs that left the field and fires
// their once-a-second spray.
func (s *Session) updateMobs() {
	kept := s.Mobs[:0]
	for _, mob := range s.Mobs {
		mob.Move(s.FPSDivisor(), s.cfg.Width(), s.cfg.Height(), false)
		if mob.X >= -mob.Width() {
			kept = append(kept, mob)
		}
	}
	clear(s.Mobs[len(kept):])
	s.Mobs = kept

	if s.StateFrame()%60 == 0 {
		for _, mob := range s.Mobs {
			s.EnemyShots = append(s.EnemyShots, s.fire(mob, s.Player, MobShot(s.Boss.Level)))
		}
	}
}
