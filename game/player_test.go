package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerMovesPerAxis(t *testing.T) {
	s := newTestSession(t)
	s.frame = 10
	s.handlePlayerInput(Controls{Left: true, Down: true})
	assert.Equal(t, -9.0, s.Player.VX)
	assert.Equal(t, 9.0, s.Player.VY)

	s.handlePlayerInput(Controls{Left: true, Right: true})
	assert.Equal(t, 0.0, s.Player.VX)
	assert.Equal(t, 0.0, s.Player.VY)
}

func TestPlayerShotCooldown(t *testing.T) {
	s := newTestSession(t)

	s.frame = 100
	s.handlePlayerInput(Controls{Shoot: true})
	assert.Len(t, s.PlayerShots, 1)

	s.frame = 105
	s.handlePlayerInput(Controls{Shoot: true})
	assert.Len(t, s.PlayerShots, 1)

	s.frame = 106
	s.handlePlayerInput(Controls{Shoot: true})
	assert.Len(t, s.PlayerShots, 2)

	s.Player.WeaponLevel = 4
	s.frame = 200
	s.handlePlayerInput(Controls{Shoot: true})
	assert.Len(t, s.PlayerShots, 6)
}

func TestPlayerDodge(t *testing.T) {
	s := newTestSession(t)
	s.frame = 1000

	// a standing dodge darts forward
	s.handlePlayerInput(Controls{Dodge: true})
	assert.Equal(t, 225.0, s.Player.VX)
	assert.Equal(t, 0.0, s.Player.VY)

	s.frame = 1075
	s.handlePlayerInput(Controls{Dodge: true, Up: true})
	assert.Equal(t, -9.0, s.Player.VY, "still cooling down")

	remaining, cooling := s.DodgeCooldown()
	assert.True(t, cooling)
	assert.Equal(t, 0.5, remaining)

	s.frame = 1151
	s.handlePlayerInput(Controls{Dodge: true, Up: true})
	assert.Equal(t, -225.0, s.Player.VY)
	assert.Equal(t, 0.0, s.Player.VX)
}

func TestDodgeScalesWithFrameRate(t *testing.T) {
	s := newTestSession(t)
	s.fps = 120
	s.frame = 1000
	s.handlePlayerInput(Controls{Dodge: true, Right: true})
	assert.Equal(t, 9.0*50, s.Player.VX)

	s.frame = 1200
	s.handlePlayerInput(Controls{Dodge: true, Right: true})
	assert.Equal(t, 9.0, s.Player.VX, "cooldown doubles at 120 fps")
}
