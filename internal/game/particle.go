package game

// Particle is one fragment of an explosion burst. Velocity is in px/tick and
// Life counts remaining ticks.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Col    RGB
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, 64),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Len() int { return len(ps.P) }

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnExplosion emits count particles at (x, y) with velocities uniform in
// [-spread, spread) on each axis.
func (ps *ParticleSystem) SpawnExplosion(src RandSource, x, y float64, count, life int, spread float64) {
	for range count {
		ps.Add(Particle{
			X: x, Y: y,
			VX:   rangeF(src, -spread, spread),
			VY:   rangeF(src, -spread, spread),
			Life: life,
			Col:  ExplosionColor(src),
		})
	}
}

// Update advances every particle one tick and drops expired ones. Survivors
// keep their relative order.
func (ps *ParticleSystem) Update() {
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	ps.P = kept
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}
