package game

// RectStride is the number of floats per rectangle in a render buffer:
// x, y, w, h, r, g, b, a.
const RectStride = 8

// HUD is the text-level state the presentation layer shows.
type HUD struct {
	Score           int
	Health          int
	MaxHealth       int
	HealthFraction  float64
	LowHealth       bool
	RapidFire       bool
	GameOverVisible bool
	FinalScore      int
	OverlayAlpha    float64
}

func (g *Game) HUD() HUD {
	s := g.session
	return HUD{
		Score:           s.Score,
		Health:          s.Health.Current,
		MaxHealth:       s.Health.Max,
		HealthFraction:  s.Health.Fraction(),
		LowHealth:       s.LowHealth(g.rules),
		RapidFire:       g.clock.Now().Before(s.RapidFireUntil),
		GameOverVisible: g.overlay.Visible,
		FinalScore:      s.FinalScore,
		OverlayAlpha:    g.overlay.Alpha,
	}
}

func appendRect(buf []float32, r RectF, c RGB, a float32) []float32 {
	cr, cg, cb := c.Floats()
	return append(buf,
		float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		cr, cg, cb, a,
	)
}

// RenderData appends every drawable rectangle in draw order: player, bullets,
// enemies, power-ups, particles. Particles fade with their remaining life.
func (g *Game) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	buf = appendRect(buf, g.player.Rect(), g.player.Color, 1)

	g.bullets.Each(func(_ int, b *Bullet) {
		buf = appendRect(buf, b.Rect(), Palette.Bullet, 1)
	})
	g.enemies.Each(func(_ int, e *Enemy) {
		buf = appendRect(buf, e.Rect(), Palette.Enemy, 1)
	})
	g.powerUps.Each(func(_ int, p *PowerUp) {
		buf = appendRect(buf, p.Rect(), p.Color, 1)
	})

	life := float32(g.rules.ParticleLife)
	for _, p := range g.particles.P {
		a := float32(p.Life) / life
		if a > 1 {
			a = 1
		}
		buf = appendRect(buf, RectF{X: p.X, Y: p.Y, W: ParticleSize, H: ParticleSize}, p.Col, a)
	}
	return buf
}
