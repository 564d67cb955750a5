package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileHitsShip(t *testing.T) {
	ship := solidShip(ShipKindBoss, 100, 100, 10, 10)

	inside := &Projectile{X: 105, Y: 105, Radius: 3, Damage: 1, Kind: ProjectileCircle}
	assert.True(t, ProjectileHitsShip(inside, ship))

	far := &Projectile{X: 120, Y: 105, Radius: 3, Damage: 1, Kind: ProjectileCircle}
	assert.False(t, ProjectileHitsShip(far, ship))

	grazing := &Projectile{X: 111, Y: 105, Radius: 2, Damage: 1, Kind: ProjectileCircle}
	assert.True(t, ProjectileHitsShip(grazing, ship))
}

func TestProjectileMissesTransparentPixels(t *testing.T) {
	ship := solidShip(ShipKindBoss, 100, 100, 20, 20)
	ship.Mask = NewMask(20, 20)
	ship.Mask.Set(19, 19)

	p := &Projectile{X: 103, Y: 103, Radius: 2, Damage: 1, Kind: ProjectileCircle}
	assert.False(t, ProjectileHitsShip(p, ship), "inside the box but over empty pixels")

	p = &Projectile{X: 119, Y: 119, Radius: 2, Damage: 1, Kind: ProjectileCircle}
	assert.True(t, ProjectileHitsShip(p, ship))
}

func TestSpriteProjectileUsesItsMask(t *testing.T) {
	ship := solidShip(ShipKindPlayer, 100, 100, 10, 10)

	// the sprite reaches further than its nominal radius
	p := &Projectile{X: 118, Y: 105, Radius: 2, Damage: 1, Kind: ProjectileMeatball, Mask: filledMask(20, 20)}
	assert.True(t, ProjectileHitsShip(p, ship))

	// heals are always treated as circles
	p.Damage = -1
	assert.False(t, ProjectileHitsShip(p, ship))
}

func TestCollidePlayerShotHitsBoss(t *testing.T) {
	s := newTestSession(t)
	s.Boss = solidShip(ShipKindBoss, 800, 300, 50, 50)
	s.Player = solidShip(ShipKindPlayer, 100, 300, 20, 20)
	s.frame = 77

	shot := &Projectile{X: 820, Y: 320, Radius: 6, Damage: 9, Kind: ProjectileCircle, Acceleration: 1}
	s.PlayerShots = []*Projectile{shot}
	s.collide()

	assert.True(t, shot.Hit)
	assert.Equal(t, 91.0, s.Boss.HP)
	assert.Equal(t, 77, s.Boss.FrameLastHit)
	assert.True(t, s.Boss.Flashing(78))
	assert.False(t, s.Boss.Flashing(79))
	assert.Equal(t, []Cue{CuePlayerHit}, s.DrainEvents())

	// a spent shot does not hit twice
	s.collide()
	assert.Equal(t, 91.0, s.Boss.HP)
}

func TestCollideShotHitsOnlyOneShip(t *testing.T) {
	s := newTestSession(t)
	s.Boss = solidShip(ShipKindBoss, 800, 300, 50, 50)
	s.Player = solidShip(ShipKindPlayer, 100, 300, 20, 20)
	mob := solidShip(ShipKindBasic, 800, 300, 50, 50)
	mob.HP, mob.MaxHP = 10, 10
	s.Mobs = []*Ship{mob}

	s.PlayerShots = []*Projectile{{X: 820, Y: 320, Radius: 6, Damage: 3, Kind: ProjectileCircle}}
	s.collide()

	assert.Equal(t, 97.0, s.Boss.HP)
	assert.Equal(t, 10.0, mob.HP)
}

func TestCollideKillsMobs(t *testing.T) {
	s := newTestSession(t)
	s.Boss = solidShip(ShipKindBoss, 1000, 50, 50, 50)
	s.Player = solidShip(ShipKindPlayer, 100, 300, 20, 20)
	weak := solidShip(ShipKindBasic, 500, 300, 30, 30)
	weak.HP, weak.MaxHP = 5, 5
	tough := solidShip(ShipKindBasic, 700, 300, 30, 30)
	tough.HP, tough.MaxHP = 50, 50
	s.Mobs = []*Ship{weak, tough}

	s.PlayerShots = []*Projectile{
		{X: 510, Y: 310, Radius: 6, Damage: 6, Kind: ProjectileCircle},
		{X: 515, Y: 315, Radius: 6, Damage: 6, Kind: ProjectileCircle},
		{X: 710, Y: 310, Radius: 6, Damage: 6, Kind: ProjectileCircle},
	}
	s.collide()

	require.Len(t, s.Mobs, 1)
	assert.Same(t, tough, s.Mobs[0])
	assert.Equal(t, 44.0, tough.HP)
	assert.True(t, s.PlayerShots[0].Hit)
	assert.False(t, s.PlayerShots[1].Hit, "second shot passes through the dead mob")
}

func TestCollideEnemyShotRespectsDefense(t *testing.T) {
	s := newTestSession(t)
	s.Boss = solidShip(ShipKindBoss, 1000, 50, 50, 50)
	s.Player = solidShip(ShipKindPlayer, 100, 300, 20, 20)
	s.Player.HP, s.Player.MaxHP = 15, 15
	s.Player.DefenseLevel = 3

	s.EnemyShots = []*Projectile{
		{X: 110, Y: 310, Radius: 10, Damage: 7, Kind: ProjectileCircle},
		{X: 110, Y: 310, Radius: 10, Damage: 2, Kind: ProjectileCircle},
	}
	s.collide()

	// 7-3 and then the floor of 1
	assert.Equal(t, 10.0, s.Player.HP)
	assert.Equal(t, 1.0, s.EnemyShots[1].Damage)
	assert.Equal(t, []Cue{CueBossHit, CueBossHit}, s.DrainEvents())
}

func TestCollideHealsAndCapsShield(t *testing.T) {
	s := newTestSession(t)
	s.Boss = solidShip(ShipKindBoss, 1000, 50, 50, 50)
	s.Player = solidShip(ShipKindPlayer, 100, 300, 20, 20)
	s.Player.HP, s.Player.MaxHP = 28, 15
	s.Player.DefenseLevel = 5

	s.EnemyShots = []*Projectile{{X: 110, Y: 310, Radius: 10, Damage: -6, Kind: ProjectileCircle}}
	s.collide()

	assert.Equal(t, 30.0, s.Player.HP)
	assert.Equal(t, []Cue{CuePlayerHeal}, s.DrainEvents())
	assert.Equal(t, 15.0, s.Player.Shield())
}
