package game

import (
	"math"
	"slices"
)

// resolveCollisions runs the fixed-order passes. Removal only marks slots, so
// indices stay valid until compact.
func (g *Game) resolveCollisions() {
	g.bulletsVsEnemies()
	g.playerVsEnemies()
	g.playerVsPowerUps()
	g.session.CheckGameOver(g.bus)
}

// bulletsVsEnemies pairs every live bullet with the first live enemy (in pool
// order) it overlaps.
func (g *Game) bulletsVsEnemies() {
	if g.bullets.Alive() == 0 {
		return
	}
	tree := g.enemyTree()
	if tree == nil {
		return
	}

	for bi := range g.bullets.Items {
		b := g.bullets.At(bi)
		if !b.Alive {
			continue
		}
		br := b.Rect()
		g.hits = g.hits[:0]
		tree.Query(br, &g.hits)
		if len(g.hits) == 0 {
			continue
		}
		slices.Sort(g.hits)
		for _, ei := range g.hits {
			e := g.enemies.At(ei)
			if !e.Alive || !Collides(br, e.Rect()) {
				continue
			}
			g.bullets.Kill(bi)
			g.enemies.Kill(ei)
			g.session.AddScore(g.rules.KillScore, g.bus)
			g.explode(e.Rect())
			break
		}
	}
}

// enemyTree indexes live enemies by their rectangles. The root covers the
// union of all of them, so anything it misses cannot collide.
func (g *Game) enemyTree() *QuadNode {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	live := 0
	g.enemies.Each(func(_ int, e *Enemy) {
		live++
		minX = math.Min(minX, e.X)
		minY = math.Min(minY, e.Y)
		maxX = math.Max(maxX, e.X+e.W)
		maxY = math.Max(maxY, e.Y+e.H)
	})
	if live == 0 {
		return nil
	}
	root := NewQuadNode(RectF{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, 0)
	g.enemies.Each(func(i int, e *Enemy) {
		root.Insert(i, e.Rect())
	})
	return root
}

func (g *Game) playerVsEnemies() {
	pr := g.player.Rect()
	g.enemies.Each(func(i int, e *Enemy) {
		if !Collides(pr, e.Rect()) {
			return
		}
		g.enemies.Kill(i)
		g.session.Health.Damage(g.rules.EnemyDamage)
		g.explode(e.Rect())
		g.bus.Emit(Event{Type: EventHealthChanged, X: e.X, Y: e.Y, Data: g.session.Health.Current})
	})
}

func (g *Game) playerVsPowerUps() {
	pr := g.player.Rect()
	now := g.clock.Now()
	g.powerUps.Each(func(i int, p *PowerUp) {
		if !Collides(pr, p.Rect()) {
			return
		}
		g.powerUps.Kill(i)
		applyPowerUp(g.session, g.rules, p.Kind, now, g.bus)
	})
}

// explode emits a particle burst centred on r.
func (g *Game) explode(r RectF) {
	cx, cy := r.Center()
	g.particles.SpawnExplosion(g.rng, cx, cy, g.rules.ParticleBurst, g.rules.ParticleLife, g.rules.ParticleSpread)
	g.bus.Emit(Event{Type: EventExplosion, X: cx, Y: cy})
}
