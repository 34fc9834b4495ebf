package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickupOnPlayer drops a stationary power-up onto the player.
func pickupOnPlayer(g *Game, kind PowerUpKind) {
	p := g.Player()
	g.addPowerUp(NewPowerUp(p.X+5, p.Y+5, 0, kind))
}

func TestHealthPickup(t *testing.T) {
	tests := []struct {
		start, want int
	}{
		{40, 70},
		{90, 100},
		{100, 100},
	}
	for _, tt := range tests {
		g, _ := newTestGame(t)
		g.setHealthPoints(tt.start)
		pickupOnPlayer(g, PowerUpHealth)

		g.Tick()

		assert.Equal(t, tt.want, g.HealthPoints(), "from %d", tt.start)
		assert.Equal(t, 25, g.Score())
		assert.Empty(t, g.PowerUps())
	}
}

func TestHealthNeverExceedsMax(t *testing.T) {
	g, _ := newTestGame(t)
	for range 20 {
		pickupOnPlayer(g, PowerUpHealth)
		g.Tick()
		require.LessOrEqual(t, g.HealthPoints(), 100)
	}
	assert.Equal(t, 20*25, g.Score())
}

func TestRapidFireWindow(t *testing.T) {
	g, clk := newTestGame(t)
	evs := recordEvents(g)
	pickupOnPlayer(g, PowerUpRapidFire)
	g.Tick()

	assert.Equal(t, 25, g.Score())
	assert.Equal(t, epoch.Add(5*time.Second), g.Session().RapidFireUntil)
	assert.InDelta(t, 0.1, g.shootCooldownNow(), 1e-9)
	assert.Equal(t, 1, countType(*evs, EventPowerUp))

	clk.Advance(4999 * time.Millisecond)
	assert.InDelta(t, 0.1, g.shootCooldownNow(), 1e-9)
	clk.Advance(time.Millisecond)
	assert.InDelta(t, 0.2, g.shootCooldownNow(), 1e-9, "expires after 5s")
}

func TestRapidFireRepickupExtends(t *testing.T) {
	g, clk := newTestGame(t)
	pickupOnPlayer(g, PowerUpRapidFire)
	g.Tick()

	clk.Advance(4 * time.Second)
	pickupOnPlayer(g, PowerUpRapidFire)
	g.Tick()
	assert.Equal(t, epoch.Add(9*time.Second), g.Session().RapidFireUntil)

	clk.Advance(4500 * time.Millisecond)
	assert.InDelta(t, 0.1, g.shootCooldownNow(), 1e-9, "first window would have ended")
	clk.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.2, g.shootCooldownNow(), 1e-9)
}

func TestRapidFireShortensCooldown(t *testing.T) {
	g, clk := newTestGame(t)
	pickupOnPlayer(g, PowerUpRapidFire)
	g.Tick()

	require.True(t, g.Shoot())
	clk.Advance(100 * time.Millisecond)
	assert.True(t, g.Shoot())
	clk.Advance(50 * time.Millisecond)
	assert.False(t, g.Shoot())
}

func TestPowerUpKindColor(t *testing.T) {
	assert.Equal(t, Palette.Health, NewPowerUp(0, 0, 2, PowerUpHealth).Color)
	assert.Equal(t, Palette.RapidFire, NewPowerUp(0, 0, 2, PowerUpRapidFire).Color)
	assert.Equal(t, "rapidFire", PowerUpRapidFire.String())
}

func TestPowerUpFallsOut(t *testing.T) {
	g, _ := newTestGame(t)
	g.addPowerUp(NewPowerUp(10, 618, 2, PowerUpHealth))
	g.Tick()
	assert.Empty(t, g.PowerUps())
}

func TestHealth(t *testing.T) {
	h := NewHealth(100)
	h.Damage(30)
	assert.Equal(t, 70, h.Current)
	h.Heal(50)
	assert.Equal(t, 100, h.Current)
	h.Damage(250)
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.IsDead())
	assert.Equal(t, 0.0, h.Fraction())
}

func TestHealthBarColor(t *testing.T) {
	assert.NotEqual(t, HealthBarColor(1), HealthBarColor(0.5))
	assert.NotEqual(t, HealthBarColor(0.5), HealthBarColor(0.1))
	assert.Equal(t, HealthBarColor(0.1), HealthBarColor(0))
}
