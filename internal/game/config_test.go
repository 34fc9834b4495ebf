package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesValid(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())
	x, y := DefaultRules().PlayerStart()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 540.0, y)
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"tiny bounds", func(r *Rules) { r.BoundsWidth = 10 }},
		{"zero bullet speed", func(r *Rules) { r.BulletSpeed = 0 }},
		{"spawn chance", func(r *Rules) { r.EnemySpawnChance = 1.5 }},
		{"enemy speed range", func(r *Rules) { r.EnemyMaxSpeed = 1 }},
		{"negative cooldown", func(r *Rules) { r.ShootCooldown = -1 }},
		{"particle life", func(r *Rules) { r.ParticleLife = 0 }},
		{"max health", func(r *Rules) { r.MaxHealth = 0 }},
		{"negative damage", func(r *Rules) { r.EnemyDamage = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidRules)
			assert.Panics(t, func() { MustRules(r) })
		})
	}
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var got []int
	bus.Subscribe(EventScoreChanged, func(e Event) { got = append(got, e.Data) })
	bus.Subscribe(EventScoreChanged, func(e Event) { got = append(got, -e.Data) })
	bus.Emit(Event{Type: EventScoreChanged, Data: 10})
	bus.Emit(Event{Type: EventShot})
	assert.Equal(t, []int{10, -10}, got)
	assert.Equal(t, "gameover", EventGameOver.String())
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for range 100 {
		v := a.Float64()
		require.Equal(t, v, b.Float64())
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
	assert.NotEqual(t, NewRand(1).NextU64(), NewRand(2).NextU64())
}
