package game

import (
	"math"
)

// ProjectileHitsShip runs the cheap distance-to-box test and, when the
// projectile is close enough, the exact mask overlap.
func ProjectileHitsShip(p *Projectile, ship *Ship) bool {
	x0, y0, x1, y1 := ship.Box()

	dx := math.Max(math.Max(x0-p.X, 0), p.X-x1)
	dy := math.Max(math.Max(y0-p.Y, 0), p.Y-y1)
	reach := p.Radius
	if p.Mask != nil && !p.IsHeal() && p.Kind != ProjectileCircle {
		reach = math.Max(float64(p.Mask.W), float64(p.Mask.H)) / 2
	}
	if math.Sqrt(dx*dx+dy*dy) > reach {
		return false
	}

	mask, mx, my := p.collisionMask()
	return ship.Mask.Overlap(mask, int(mx-ship.X), int(my-ship.Y))
}

// projectileBox is the broad-phase footprint of a projectile
func projectileBox(p *Projectile) (float64, float64, float64, float64) {
	r := p.Radius
	if p.Mask != nil {
		r = math.Max(r, math.Max(float64(p.Mask.W), float64(p.Mask.H))/2)
	}
	return p.X - r, p.Y - r, p.X + r, p.Y + r
}

// candidates returns the indexed projectiles whose cells overlap ship
func (s *Session) candidates(ship *Ship) []int {
	x0, y0, x1, y1 := ship.Box()
	s.scratch = s.grid.Query(x0, y0, x1, y1, s.scratch[:0])
	return s.scratch
}

// indexProjectiles rebuilds the grid from the projectiles that can still hit
func (s *Session) indexProjectiles(projectiles []*Projectile) {
	s.grid.Reset()
	for i, p := range projectiles {
		if p.Hit {
			continue
		}
		x0, y0, x1, y1 := projectileBox(p)
		s.grid.Insert(i, x0, y0, x1, y1)
	}
}

// collide resolves player shots against the boss and mobs, then enemy
// shots against the player, and finally caps the player's health.
func (s *Session) collide() {
	boss, player := s.Boss, s.Player

	s.indexProjectiles(s.PlayerShots)

	for _, i := range s.candidates(boss) {
		p := s.PlayerShots[i]
		if !p.Hit && ProjectileHitsShip(p, boss) {
			s.emit(CuePlayerHit)
			boss.HP -= p.Damage
			p.Hit = true
			boss.FrameLastHit = s.frame
		}
	}

	survivors := s.Mobs[:0]
	for _, mob := range s.Mobs {
		for _, i := range s.candidates(mob) {
			p := s.PlayerShots[i]
			if p.Hit || !ProjectileHitsShip(p, mob) {
				continue
			}
			s.emit(CuePlayerHit)
			mob.HP -= p.Damage
			mob.FrameLastHit = s.frame
			p.Hit = true
			if mob.HP <= 0 {
				break
			}
		}
		if mob.HP > 0 {
			survivors = append(survivors, mob)
		}
	}
	clear(s.Mobs[len(survivors):])
	s.Mobs = survivors

	s.indexProjectiles(s.EnemyShots)
	for _, i := range s.candidates(player) {
		p := s.EnemyShots[i]
		if p.Hit || !ProjectileHitsShip(p, player) {
			continue
		}
		if p.IsHeal() {
			s.emit(CuePlayerHeal)
		} else {
			s.emit(CueBossHit)
			p.Damage = math.Max(p.Damage-float64(player.DefenseLevel), 1)
			player.FrameLastHit = s.frame
		}
		player.HP -= p.Damage
		p.Hit = true
	}

	player.HP = constrain(player.HP, -player.MaxHP, player.MaxHP*2)
}
