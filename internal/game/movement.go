package game

// updatePlayer applies held direction keys and clamps the player inside the
// bounds. A held space bar fires.
func (g *Game) updatePlayer() {
	p := &g.player
	if g.input.Pressed(KeyLeft) {
		p.X -= p.Speed
	}
	if g.input.Pressed(KeyRight) {
		p.X += p.Speed
	}
	if g.input.Pressed(KeyUp) {
		p.Y -= p.Speed
	}
	if g.input.Pressed(KeyDown) {
		p.Y += p.Speed
	}
	// Pointer moves land unclamped between ticks, so clamp unconditionally.
	p.X = clampF(p.X, 0, g.rules.BoundsWidth-p.W)
	p.Y = clampF(p.Y, 0, g.rules.BoundsHeight-p.H)

	if g.input.Pressed(KeySpace) {
		g.Shoot()
	}
}

// integrate moves every pooled entity by its velocity and kills those that
// left the visible area. Particles expire by life only.
func (g *Game) integrate() {
	h := g.rules.BoundsHeight

	g.bullets.Retain(func(b *Bullet) bool {
		b.Y -= b.Speed
		return b.Y > -b.H
	})
	g.enemies.Retain(func(e *Enemy) bool {
		e.Y += e.Speed
		return e.Y < h+e.H
	})
	g.powerUps.Retain(func(p *PowerUp) bool {
		p.Y += p.Speed
		return p.Y < h+p.H
	})
	g.particles.Update()
}
