package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsPlaying(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 100, g.HealthPoints())
	assert.Equal(t, 400.0, g.Player().X)
	assert.Equal(t, 540.0, g.Player().Y)
	assert.Empty(t, g.Bullets())
	assert.Empty(t, g.Enemies())
	assert.Empty(t, g.PowerUps())
	assert.Empty(t, g.Particles())
}

func TestNewPanicsOnInvalidRules(t *testing.T) {
	r := DefaultRules()
	r.MaxHealth = 0
	assert.Panics(t, func() { New(WithRules(r)) })
}

func TestEnemyDescendsAndLeaves(t *testing.T) {
	g, _ := newTestGame(t)
	g.addEnemy(NewEnemy(100, -30, 3))

	for range 10 {
		g.integrate()
	}
	require.Len(t, g.Enemies(), 1)
	assert.Equal(t, 0.0, g.Enemies()[0].Y)

	g.Enemies()[0].Y = 627
	g.integrate()
	assert.Equal(t, 0, g.enemies.Alive(), "removed at y >= H + 30")
	g.compact()
	assert.Empty(t, g.Enemies())
}

func TestEnemyJustAboveExitSurvives(t *testing.T) {
	g, _ := newTestGame(t)
	g.addEnemy(NewEnemy(100, 626, 3))
	g.integrate()
	assert.Equal(t, 1, g.enemies.Alive())
}

func TestBulletLeavesTop(t *testing.T) {
	g, _ := newTestGame(t)
	g.addBullet(NewBullet(100, -1, 8))
	g.integrate()
	assert.Equal(t, 1, g.bullets.Alive(), "y=-9 is still > -10")
	g.integrate()
	assert.Equal(t, 0, g.bullets.Alive())
}

func TestBulletKillsEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	evs := recordEvents(g)
	g.addEnemy(NewEnemy(100, 100, 0))
	g.addBullet(NewBullet(110, 120, 8)) // y 112 after integration

	g.Tick()

	assert.Empty(t, g.Bullets())
	assert.Empty(t, g.Enemies())
	assert.Equal(t, 10, g.Score())
	require.Len(t, g.Particles(), 8)
	for _, p := range g.Particles() {
		assert.Equal(t, 30, p.Life)
		assert.Equal(t, 115.0, p.X)
		assert.Equal(t, 115.0, p.Y)
	}
	assert.Equal(t, []EventType{EventScoreChanged, EventExplosion}, eventTypes(*evs))
}

func TestBulletKillsFirstEnemyInPoolOrder(t *testing.T) {
	g, _ := newTestGame(t)
	g.addEnemy(NewEnemy(100, 100, 0))
	g.addEnemy(NewEnemy(105, 100, 0))
	g.addBullet(NewBullet(110, 120, 8))

	g.Tick()

	require.Len(t, g.Enemies(), 1)
	assert.Equal(t, 105.0, g.Enemies()[0].X)
	assert.Equal(t, 10, g.Score())
}

func TestEnemyAbsorbsOnlyOneBullet(t *testing.T) {
	g, _ := newTestGame(t)
	g.addEnemy(NewEnemy(100, 100, 0))
	g.addBullet(NewBullet(110, 120, 8))
	g.addBullet(NewBullet(112, 120, 8))

	g.Tick()

	assert.Empty(t, g.Enemies())
	assert.Len(t, g.Bullets(), 1)
	assert.Equal(t, 10, g.Score())
}

func TestEnemyHitsPlayer(t *testing.T) {
	g, _ := newTestGame(t)
	evs := recordEvents(g)
	g.addEnemy(NewEnemy(405, 545, 0))
	g.addEnemy(NewEnemy(410, 550, 0))

	g.Tick()

	assert.Empty(t, g.Enemies())
	assert.Equal(t, 60, g.HealthPoints())
	assert.Equal(t, 0, g.Score())
	assert.Len(t, g.Particles(), 16)
	assert.Contains(t, eventTypes(*evs), EventHealthChanged)
	assert.Equal(t, StatePlaying, g.State())
}

func TestHealthFloorsAtZero(t *testing.T) {
	g, _ := newTestGame(t)
	g.setHealthPoints(10)
	g.addEnemy(NewEnemy(405, 545, 0))
	g.Tick()
	assert.Equal(t, 0, g.HealthPoints())
}

func TestGameOverIsTerminal(t *testing.T) {
	g, _ := newTestGame(t)
	evs := recordEvents(g)
	g.session.Score = 70
	g.setHealthPoints(20)
	g.addEnemy(NewEnemy(405, 545, 0))

	g.Tick()

	require.Equal(t, StateGameOver, g.State())
	assert.Equal(t, 70, g.Session().FinalScore)
	assert.True(t, g.Overlay().Visible)
	assert.Equal(t, 1, countType(*evs, EventGameOver))

	// Nothing moves or scores afterwards.
	g.addEnemy(NewEnemy(100, 100, 3))
	g.addBullet(NewBullet(110, 120, 8))
	ticks := g.Ticks()
	for range 50 {
		g.Tick()
	}
	assert.Equal(t, ticks, g.Ticks())
	assert.Equal(t, 70, g.Score())
	assert.Equal(t, 100.0, g.Enemies()[0].Y)
	assert.Equal(t, 120.0, g.Bullets()[0].Y)
	assert.Equal(t, 1, countType(*evs, EventGameOver))
}

func TestGameOverIgnoresShooting(t *testing.T) {
	g, _ := newTestGame(t)
	g.setHealthPoints(0)
	g.Tick()
	require.Equal(t, StateGameOver, g.State())

	g.Click()
	g.KeyDown(KeySpace)
	g.Tick()
	assert.Empty(t, g.Bullets())
}

func TestRestartResetsEverything(t *testing.T) {
	g, clk := newTestGame(t)
	g.session.Score = 120
	g.session.RapidFireUntil = clk.Now().Add(time.Hour)
	g.Shoot()
	g.addEnemy(NewEnemy(100, 100, 2))
	g.addPowerUp(NewPowerUp(50, 50, 2, PowerUpHealth))
	g.addParticle(Particle{Life: 10})
	g.movePlayer(10, 10)
	g.KeyDown(KeyLeft)
	g.setHealthPoints(0)
	g.Tick()
	require.Equal(t, StateGameOver, g.State())

	evs := recordEvents(g)
	g.Restart()

	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 100, g.HealthPoints())
	assert.Empty(t, g.Bullets())
	assert.Empty(t, g.Enemies())
	assert.Empty(t, g.PowerUps())
	assert.Empty(t, g.Particles())
	assert.Equal(t, 400.0, g.Player().X)
	assert.Equal(t, 540.0, g.Player().Y)
	assert.False(t, g.Input().Pressed(KeyLeft))
	assert.False(t, g.Overlay().Visible)
	assert.InDelta(t, 0.2, g.shootCooldownNow(), 1e-9)
	assert.True(t, g.Session().LastShot.IsZero())
	assert.Equal(t, []EventType{EventRestart, EventScoreChanged, EventHealthChanged}, eventTypes(*evs))

	// The first shot after restart is not throttled by the old cooldown.
	assert.True(t, g.Shoot())
}

func TestRestartKeyOnlyAtGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	g.session.Score = 30
	g.KeyDown(KeyRestart)
	assert.Equal(t, 30, g.Score(), "ignored while playing")

	g.setHealthPoints(0)
	g.Tick()
	g.KeyDown(KeyRestart)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.Score())
}

func TestShootCooldown(t *testing.T) {
	g, clk := newTestGame(t)
	evs := recordEvents(g)

	assert.True(t, g.Shoot())
	clk.Advance(50 * time.Millisecond)
	assert.False(t, g.Shoot())
	assert.Len(t, g.Bullets(), 1)

	clk.Advance(150 * time.Millisecond)
	assert.True(t, g.Shoot(), "exactly one cooldown later")
	assert.Len(t, g.Bullets(), 2)
	assert.Equal(t, 2, countType(*evs, EventShot))

	b := g.Bullets()[0]
	assert.Equal(t, 420.0, b.X, "left edge at the player's centre line")
	assert.Equal(t, 540.0, b.Y)
	assert.Equal(t, 8.0, b.Speed)
}

func TestHeldSpaceFiresOnTicks(t *testing.T) {
	g, clk := newTestGame(t)
	g.KeyDown(KeySpace)
	for range 14 { // 13 frames of 1/60s puts the last tick past 200ms
		g.Tick()
		clk.Advance(time.Second / 60)
	}
	assert.Len(t, g.Bullets(), 2)
}

func TestKeysMoveAndClamp(t *testing.T) {
	g, _ := newTestGame(t)
	g.KeyDown(KeyLeft)
	g.Tick()
	assert.Equal(t, 395.0, g.Player().X)
	g.KeyUp(KeyLeft)

	g.KeyDown(KeyDown)
	for range 10 {
		g.Tick()
	}
	assert.Equal(t, 560.0, g.Player().Y, "clamped to H - 40")
	g.KeyUp(KeyDown)

	g.KeyDown(KeyUp)
	g.Tick()
	assert.Equal(t, 555.0, g.Player().Y)
}

func TestPointerClampsOnNextTick(t *testing.T) {
	g, _ := newTestGame(t)

	g.PointerMove(-100)
	assert.Equal(t, -120.0, g.Player().X, "unclamped until the tick")
	g.Tick()
	assert.Equal(t, 0.0, g.Player().X)

	g.PointerMove(10000)
	g.Tick()
	assert.Equal(t, 760.0, g.Player().X)

	g.PointerMove(300)
	g.Tick()
	assert.Equal(t, 280.0, g.Player().X)
}

func TestClickShootsWhilePlaying(t *testing.T) {
	g, _ := newTestGame(t)
	g.Click()
	assert.Len(t, g.Bullets(), 1)
}

func TestHUD(t *testing.T) {
	g, clk := newTestGame(t)
	g.session.Score = 40
	g.setHealthPoints(30)
	g.session.RapidFireUntil = clk.Now().Add(time.Second)

	h := g.HUD()
	assert.Equal(t, 40, h.Score)
	assert.Equal(t, 30, h.Health)
	assert.Equal(t, 100, h.MaxHealth)
	assert.InDelta(t, 0.3, h.HealthFraction, 1e-9)
	assert.True(t, h.LowHealth)
	assert.True(t, h.RapidFire)
	assert.False(t, h.GameOverVisible)

	g.setHealthPoints(31)
	assert.False(t, g.HUD().LowHealth)
	clk.Advance(time.Second)
	assert.False(t, g.HUD().RapidFire)
}

func countType(evs []Event, t EventType) int {
	n := 0
	for _, e := range evs {
		if e.Type == t {
			n++
		}
	}
	return n
}
