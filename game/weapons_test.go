package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerVolleyTiers(t *testing.T) {
	for level := 1; level <= 7; level++ {
		assert.Len(t, PlayerVolley(level), level)
	}
	assert.Len(t, PlayerVolley(0), 1)
	assert.Len(t, PlayerVolley(12), 7)

	v := PlayerVolley(3)
	assert.Equal(t, FireStraight, v[0].Mode)
	assert.Equal(t, 9.0, v[0].Damage)
	assert.Equal(t, FireSpray, v[1].Mode)
	assert.Equal(t, 6.0, v[1].Damage)
	assert.Equal(t, FireAimed, v[2].Mode)
	assert.Equal(t, 3.0, v[2].Damage)

	for _, shot := range PlayerVolley(7) {
		assert.Equal(t, 20.0, shot.Speed)
		assert.Equal(t, 6.0, shot.Radius)
		assert.False(t, shot.CanHeal)
	}
}

func TestBossVolleyGrowsWithLevel(t *testing.T) {
	assert.Len(t, BossVolley(1, ProjectileCircle), 1)
	assert.Len(t, BossVolley(2, ProjectileCircle), 2)
	assert.Len(t, BossVolley(3, ProjectileCircle), 3)
	assert.Len(t, BossVolley(9, ProjectileCircle), 4)

	v := BossVolley(4, ProjectileNoodle)
	assert.Equal(t, 9.0, v[0].Damage)
	assert.Equal(t, 15.0, v[0].Radius)
	assert.Equal(t, 1.05, v[3].Acceleration)
	for _, shot := range v {
		assert.True(t, shot.CanHeal)
		assert.Equal(t, ProjectileNoodle, shot.Kind)
	}
}

func TestMobShot(t *testing.T) {
	shot := MobShot(4)
	assert.Equal(t, FireSpray, shot.Mode)
	assert.Equal(t, 4.0, shot.Damage)
	assert.False(t, shot.CanHeal)
	assert.Equal(t, -10.0, shot.OffsetX)
	assert.Equal(t, 20.0, shot.OffsetY)
}
