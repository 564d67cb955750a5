package game

import (
	"fmt"
	"math"
	"strconv"
)

// Fixed screen text
const (
	TitleHeading   = "The Hunt for Roy Carnassus"
	TitleStart     = "[space] TO SHOOT"
	ThreatDetected = "THREAT DETECTED !!"
	ShipDestroyed  = "SHIP DESTROYED!"
	JourneyAgain   = "[enter] TO JOURNEY AGAIN"
	QuitKey        = "[escape] TO QUIT"
	LevelUpText    = "LEVEL UP!"
	LevelWeapon    = "[enter] WEAPON RESEARCH"
	LevelArmor     = "[tab] DEFENSE RESEARCH"
)

// formatHP prints whole values without a trailing ".0"
func formatHP(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ScoreLine is the player summary shown in the HUD strip
func (s *Session) ScoreLine() string {
	p := s.Player
	return fmt.Sprintf("Level: %d  Weapon: %d  Defense: %d  HP: %s/%s",
		p.Level, p.WeaponLevel, p.DefenseLevel,
		formatHP(math.Min(p.HP, p.MaxHP)), formatHP(p.MaxHP))
}

// ShieldText shows HP held above max, or "" when there is none
func (s *Session) ShieldText() string {
	shield := s.Player.Shield()
	if shield <= 0 {
		return ""
	}
	return "+ " + formatHP(shield)
}

// StatusLine reports the volume and the measured and target frame rates
func (s *Session) StatusLine(actualFPS float64) string {
	return fmt.Sprintf("Volume: %d%%  FPS (Target): %d (%d)",
		s.volume, int(math.Round(actualFPS)), s.fps)
}

// BossLine names the boss and its remaining health
func (s *Session) BossLine() string {
	return fmt.Sprintf("%s HP: %.0f", s.Boss.Name, s.Boss.HP)
}

// BossIntro is the start-level callout
func (s *Session) BossIntro() string {
	return "It's " + s.Boss.Name
}

// DamageLabel is the number shown where a projectile landed
func DamageLabel(p *Projectile) string {
	if p.IsHeal() {
		return "+" + formatHP(math.Abs(p.Damage))
	}
	return formatHP(p.Damage)
}
