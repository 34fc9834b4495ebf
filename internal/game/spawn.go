package game

// spawn rolls once for an enemy and once for a power-up. Both appear fully
// above the top edge.
func (g *Game) spawn() {
	r := g.rules

	if g.rng.Float64() < r.EnemySpawnChance {
		x := g.rng.Float64() * (r.BoundsWidth - EnemySize)
		speed := rangeF(g.rng, r.EnemyMinSpeed, r.EnemyMaxSpeed)
		g.enemies.Add(NewEnemy(x, -EnemySize, speed))
		g.log.Debug().Float64("x", x).Float64("speed", speed).Msg("enemy spawned")
	}

	if g.rng.Float64() < r.PowerUpSpawnChance {
		x := g.rng.Float64() * (r.BoundsWidth - PowerUpSize)
		kind := PowerUpHealth
		if g.rng.Float64() >= 0.5 {
			kind = PowerUpRapidFire
		}
		g.powerUps.Add(NewPowerUp(x, -PowerUpSize, r.PowerUpSpeed, kind))
		g.log.Debug().Float64("x", x).Stringer("kind", kind).Msg("power-up spawned")
	}
}
