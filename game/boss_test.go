package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacehunt/sprites"
)

func TestBossShotInterval(t *testing.T) {
	s := newTestSession(t)

	s.Boss.Level = 1
	assert.Equal(t, 12, s.bossShotInterval())
	s.Boss.Level = 5
	assert.Equal(t, 8, s.bossShotInterval())
	s.Boss.Level = 30
	assert.Equal(t, 8, s.bossShotInterval())

	s.fps = 120
	s.Boss.Level = 1
	assert.Equal(t, 24, s.bossShotInterval())
}

func TestBossRandomWalkIsBounded(t *testing.T) {
	s := newTestSession(t)
	s.Boss.Level = 4
	for i := range 6000 {
		s.frame = i
		s.updateBoss()
		require.LessOrEqual(t, s.Boss.VX, 6.0)
		require.GreaterOrEqual(t, s.Boss.VX, -6.0)
		require.LessOrEqual(t, s.Boss.VY, 6.0)
		require.GreaterOrEqual(t, s.Boss.VY, -6.0)
	}
	assert.NotEmpty(t, s.EnemyShots)
}

func TestBossSummonsWaves(t *testing.T) {
	s := newTestSession(t)
	s.Boss.Level = 3

	s.summon(1)
	require.Len(t, s.Mobs, 4)
	for i, mob := range s.Mobs {
		assert.Equal(t, sprites.Trash1, mob.Sprite)
		assert.True(t, mob.Flipped)
		assert.Equal(t, ShipKindBasic, mob.Kind)
		assert.Equal(t, 30.0, mob.HP)
		assert.Equal(t, -3.0, mob.VX)
		assert.Greater(t, mob.X, s.cfg.Width())
		assert.GreaterOrEqual(t, mob.Y, 100.0)
		assert.LessOrEqual(t, mob.Y, 500.0)
		if i > 0 {
			assert.Greater(t, mob.X, s.Mobs[i-1].X)
			assert.Equal(t, s.Mobs[0].Y, mob.Y)
		}
	}

	s.Mobs = nil
	s.summon(2)
	require.Len(t, s.Mobs, 4)
	for _, mob := range s.Mobs {
		assert.Equal(t, sprites.Trash2, mob.Sprite)
		assert.Equal(t, 60.0, mob.HP)
		assert.Equal(t, -25.0, mob.Y)
		assert.Equal(t, 30.0, mob.SinusoidAmplitude)
	}

	s.summon(7)
	assert.Len(t, s.Mobs, 4)
}

func TestBossSummonsOnlyFromLevelTwo(t *testing.T) {
	s := newTestSession(t)
	s.State = StateGame
	s.stateStart = 0
	s.frame = summonInterval

	s.Boss.Level = 1
	s.updateBoss()
	assert.Empty(t, s.Mobs)

	s.Boss.Level = 2
	s.updateBoss()
	assert.Len(t, s.Mobs, 4)
}

func TestBossBouncesOffEdges(t *testing.T) {
	s := newTestSession(t)
	s.Boss.X = 5
	s.Boss.Y = 200
	s.Boss.VX = -8
	s.Boss.VY = 2

	s.moveBoss()
	assert.Equal(t, 0.0, s.Boss.X)
	assert.Equal(t, 8.0, s.Boss.VX)
	assert.Equal(t, 2.0, s.Boss.VY)
	assert.Equal(t, 15.0, s.Player.HP)
}

func TestDVDCornerHitKillsPlayer(t *testing.T) {
	s := newTestSession(t)
	s.Boss.Level = 2
	s.loadBoss()
	require.True(t, IsDVD(s.Boss.Name))

	s.Boss.X = 3
	s.Boss.Y = 3
	s.Boss.VX = -5
	s.Boss.VY = -5
	s.moveBoss()

	assert.Equal(t, 5.0, s.Boss.VX)
	assert.Equal(t, 5.0, s.Boss.VY)
	assert.Equal(t, 0.0, s.Player.HP)
}

func TestCornerHitSparesPlayerForOtherBosses(t *testing.T) {
	s := newTestSession(t)
	s.Boss.X = 3
	s.Boss.Y = 3
	s.Boss.VX = -5
	s.Boss.VY = -5
	s.moveBoss()

	assert.Equal(t, 15.0, s.Player.HP)
}

func TestSpaghettiMonsterThrowsFood(t *testing.T) {
	s := newTestSession(t)
	s.Boss.Level = 18
	s.loadBoss()

	for range 20 {
		s.bossShoot()
	}
	require.NotEmpty(t, s.EnemyShots)
	for _, p := range s.EnemyShots {
		assert.Contains(t, []ProjectileKind{ProjectileMeatball, ProjectileNoodle}, p.Kind)
		assert.NotNil(t, p.Mask)
	}
}

func TestMobsLeaveAndShoot(t *testing.T) {
	s := newTestSession(t)
	gone := solidShip(ShipKindBasic, -100, 300, 30, 30)
	stays := solidShip(ShipKindBasic, 600, 300, 30, 30)
	s.Mobs = []*Ship{gone, stays}
	s.stateStart = 0
	s.frame = 120

	s.updateMobs()
	require.Len(t, s.Mobs, 1)
	assert.Same(t, stays, s.Mobs[0])
	require.Len(t, s.EnemyShots, 1)
	assert.Equal(t, float64(s.Boss.Level), s.EnemyShots[0].Damage)

	s.frame = 121
	s.updateMobs()
	assert.Len(t, s.EnemyShots, 1)
}
