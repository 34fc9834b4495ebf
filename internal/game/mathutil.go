package game

// RandSource is the random stream consumed by the spawner and particle bursts.
// Float64 returns a value in [0, 1).
type RandSource interface {
	Float64() float64
}

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

// NewRand seeds the generator. The seed is mixed so nearby seeds diverge.
func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 1
	}
	return &Rand{s: s}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// rangeF draws from src in [min, max).
func rangeF(src RandSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*src.Float64()
}
