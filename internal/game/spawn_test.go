package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnUsesRolls(t *testing.T) {
	src := &scriptRand{
		vals: []float64{
			0.01, 0.5, 0.5, // enemy: spawn, x, speed
			0.001, 0.25, 0.7, // power-up: spawn, x, kind
		},
		rest: 0.99,
	}
	g, _ := newTestGame(t, WithRand(src))
	g.spawn()

	require.Len(t, g.Enemies(), 1)
	e := g.Enemies()[0]
	assert.Equal(t, 385.0, e.X)
	assert.Equal(t, -30.0, e.Y)
	assert.Equal(t, 3.5, e.Speed)

	require.Len(t, g.PowerUps(), 1)
	p := g.PowerUps()[0]
	assert.Equal(t, 195.0, p.X)
	assert.Equal(t, -20.0, p.Y)
	assert.Equal(t, PowerUpRapidFire, p.Kind)
	assert.Equal(t, Palette.RapidFire, p.Color)
}

func TestSpawnHealthKind(t *testing.T) {
	src := &scriptRand{vals: []float64{0.5, 0.0, 0.0, 0.49}, rest: 0.99}
	g, _ := newTestGame(t, WithRand(src))
	g.spawn()
	assert.Empty(t, g.Enemies())
	require.Len(t, g.PowerUps(), 1)
	assert.Equal(t, PowerUpHealth, g.PowerUps()[0].Kind)
	assert.Equal(t, 0.0, g.PowerUps()[0].X)
}

func TestSpawnStaysInsideBounds(t *testing.T) {
	g, _ := newTestGame(t, WithRand(NewRand(5)))
	for range 20000 {
		g.spawn()
	}
	require.NotEmpty(t, g.Enemies())
	require.NotEmpty(t, g.PowerUps())
	for _, e := range g.Enemies() {
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X+e.W, 800.0)
		assert.GreaterOrEqual(t, e.Speed, 2.0)
		assert.Less(t, e.Speed, 5.0)
	}
	for _, p := range g.PowerUps() {
		assert.LessOrEqual(t, p.X+p.W, 800.0)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() *Game {
		g, _ := newTestGame(t, WithSeed(42))
		g.KeyDown(KeySpace)
		for range 2000 {
			g.Tick()
		}
		return g
	}
	a, b := run(), run()
	assert.Equal(t, a.Enemies(), b.Enemies())
	assert.Equal(t, a.PowerUps(), b.PowerUps())
	assert.Equal(t, a.Particles(), b.Particles())
	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.HealthPoints(), b.HealthPoints())
	assert.Equal(t, a.State(), b.State())
}
