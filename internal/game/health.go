package game

// Health tracks the session's hit points.
type Health struct {
	Current int
	Max     int
}

func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts amount, flooring at zero.
func (h *Health) Damage(amount int) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal adds amount, capped at Max.
func (h *Health) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return clampF(float64(h.Current)/float64(h.Max), 0, 1)
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

// HealthBarColor returns green/yellow/red based on fraction.
func HealthBarColor(frac float64) RGB {
	if frac > 0.6 {
		return RGB{R: 60, G: 220, B: 60}
	}
	if frac > 0.3 {
		return RGB{R: 220, G: 220, B: 60}
	}
	return RGB{R: 220, G: 60, B: 60}
}
