package game

import (
	"testing"
	"time"
)

// scriptRand returns vals in order, then rest forever.
type scriptRand struct {
	vals []float64
	rest float64
}

func (s *scriptRand) Float64() float64 {
	if len(s.vals) == 0 {
		return s.rest
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

// quiet never triggers a spawn.
func quiet() *scriptRand { return &scriptRand{rest: 0.99} }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, opts ...Option) (*Game, *ManualClock) {
	t.Helper()
	clk := NewManualClock(epoch)
	base := []Option{WithClock(clk), WithRand(quiet())}
	return New(append(base, opts...)...), clk
}

func recordEvents(g *Game) *[]Event {
	var got []Event
	g.Events().SubscribeAll(func(e Event) { got = append(got, e) })
	return &got
}

func eventTypes(evs []Event) []EventType {
	out := make([]EventType, len(evs))
	for i, e := range evs {
		out[i] = e.Type
	}
	return out
}

func (g *Game) addEnemy(e Enemy) {
	g.enemies.Add(e)
}

func (g *Game) addBullet(b Bullet) {
	g.bullets.Add(b)
}

func (g *Game) addPowerUp(p PowerUp) {
	g.powerUps.Add(p)
}

func (g *Game) addParticle(p Particle) {
	g.particles.Add(p)
}

func (g *Game) setHealthPoints(hp int) {
	g.session.Health.Current = min(max(hp, 0), g.rules.MaxHealth)
}

func (g *Game) movePlayer(x, y float64) {
	g.player.X, g.player.Y = x, y
}

func (g *Game) shootCooldownNow() float64 {
	return g.session.ShootCooldown(g.rules, g.clock.Now()).Seconds()
}
