package game

// handlePlayerInput turns held controls into velocity, dodges and shots
func (s *Session) handlePlayerInput(in Controls) {
	p := s.Player
	p.VX = 0
	p.VY = 0

	speed := s.cfg.ShipSpeed
	if in.Left {
		p.VX -= speed
	}
	if in.Right {
		p.VX += speed
	}
	if in.Up {
		p.VY -= speed
	}
	if in.Down {
		p.VY += speed
	}

	if in.Dodge && float64(s.frame-s.frameLastDodge) > s.cfg.DodgeCooldown*s.FPSScaler() {
		s.frameLastDodge = s.frame
		// A standing dodge darts forward
		if p.VX == 0 && p.VY == 0 {
			p.VX += speed
		}
		p.VX *= 25 * s.FPSScaler()
		p.VY *= 25 * s.FPSScaler()
	}

	if in.Shoot && float64(s.frame-s.frameLastShot) > float64(s.cfg.ShotCooldown)*s.FPSScaler() {
		s.playerShoot()
		s.frameLastShot = s.frame
	}
}

// playerShoot fires every barrel the weapon level has unlocked
func (s *Session) playerShoot() {
	for _, shot := range PlayerVolley(s.Player.WeaponLevel) {
		s.PlayerShots = append(s.PlayerShots, s.fire(s.Player, s.Boss, shot))
	}
}

// upgradeWeapon adds a weapon tier
func (s *Session) upgradeWeapon() {
	s.Player.WeaponLevel++
}

// upgradeDefense adds armour, raises max HP by 5 and heals fully
func (s *Session) upgradeDefense() {
	p := s.Player
	p.DefenseLevel++
	p.MaxHP += 5
	p.HP = p.MaxHP
}
