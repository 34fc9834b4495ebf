package game

// Shoot appends a bullet at the player's top centre unless the cooldown in
// effect has not elapsed since the last shot. It reports whether a bullet was
// fired.
func (g *Game) Shoot() bool {
	now := g.clock.Now()
	s := g.session
	if !s.LastShot.IsZero() && now.Sub(s.LastShot) < s.ShootCooldown(g.rules, now) {
		return false
	}

	p := &g.player
	b := NewBullet(p.X+p.W/2, p.Y, g.rules.BulletSpeed)
	g.bullets.Add(b)
	s.LastShot = now
	g.bus.Emit(Event{Type: EventShot, X: b.X, Y: b.Y})
	return true
}
