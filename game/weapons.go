package game

// PlayerVolley returns the shots fired for a player weapon level.
// Each tier adds one barrel on top of the previous tiers.
func PlayerVolley(weaponLevel int) []Shot {
	w := float64(weaponLevel)
	tiers := []Shot{
		// 1: basic forward shot
		{Mode: FireStraight, Damage: w * 3, Color: ColorWhite, Radius: 6, Speed: 20},
		// 2: quadrant spray
		{Mode: FireSpray, Damage: w * 2, Color: ColorCyan, Radius: 6, Speed: 20},
		// 3: targeted shot
		{Mode: FireAimed, Damage: w, Color: ColorBlue, Radius: 6, Speed: 20},
		// 4: upper forward barrel
		{Mode: FireStraight, Damage: w * 2, Color: ColorWhite2, Radius: 6, Speed: 20, OffsetX: -5, OffsetY: -15},
		// 5: lower forward barrel
		{Mode: FireStraight, Damage: w * 2, Color: ColorWhite2, Radius: 6, Speed: 20, OffsetX: -5, OffsetY: 15},
		// 6: upper spray barrel
		{Mode: FireSpray, Damage: w, Color: ColorCyan, Radius: 6, Speed: 20, OffsetX: -5, OffsetY: -15},
		// 7: lower spray barrel
		{Mode: FireSpray, Damage: w, Color: ColorCyan, Radius: 6, Speed: 20, OffsetX: -5, OffsetY: 15},
	}

	n := weaponLevel
	if n > len(tiers) {
		n = len(tiers)
	}
	if n < 1 {
		n = 1
	}
	return tiers[:n]
}

// BossVolley returns the shots a boss of the given level fires at once
func BossVolley(level int, kind ProjectileKind) []Shot {
	l := float64(level)
	shots := []Shot{
		{Mode: FireStraight, Damage: 5 + l, Color: ColorYellow, Radius: 15, Speed: 10, CanHeal: true, Kind: kind},
	}
	if level >= 2 {
		shots = append(shots, Shot{Mode: FireSpray, Damage: 2 + l, Color: ColorOrange, Radius: 10, Speed: 6, CanHeal: true, Kind: kind})
	}
	if level >= 3 {
		shots = append(shots, Shot{Mode: FireAimed, Damage: l, Color: ColorRed, Radius: 10, Speed: 7, CanHeal: true, Kind: kind})
	}
	if level >= 4 {
		shots = append(shots, Shot{Mode: FireAimed, Damage: l, Color: ColorPurple, Radius: 10, Speed: 5, Acceleration: 1.05, CanHeal: true, Kind: kind})
	}
	return shots
}

// MobShot is the spray each trash mob fires once a second
func MobShot(bossLevel int) Shot {
	return Shot{
		Mode:    FireSpray,
		Damage:  float64(bossLevel),
		Color:   ColorOrange,
		Radius:  8,
		Speed:   8,
		OffsetX: -10,
		OffsetY: 20,
	}
}
