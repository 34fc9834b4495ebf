package game

import "time"

type PowerUpKind int

const (
	PowerUpHealth    PowerUpKind = iota // restores HealAmount HP
	PowerUpRapidFire                    // shortens the shoot cooldown for a while
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpRapidFire:
		return "rapidFire"
	}
	return "unknown"
}

// Color is the pickup's draw colour; each kind has its own.
func (k PowerUpKind) Color() RGB {
	if k == PowerUpRapidFire {
		return Palette.RapidFire
	}
	return Palette.Health
}

// PowerUp is a falling pickup box.
type PowerUp struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Kind  PowerUpKind
	Color RGB
	Alive bool
}

func (p *PowerUp) Rect() RectF {
	return RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func (p *PowerUp) IsAlive() bool { return p.Alive }

func (p *PowerUp) Kill() { p.Alive = false }

func NewPowerUp(x, y, speed float64, kind PowerUpKind) PowerUp {
	return PowerUp{
		X: x, Y: y,
		W: PowerUpSize, H: PowerUpSize,
		Speed: speed,
		Kind:  kind,
		Color: kind.Color(),
		Alive: true,
	}
}

// applyPowerUp awards the pickup score and applies the kind's effect.
func applyPowerUp(s *Session, r Rules, kind PowerUpKind, now time.Time, bus *EventBus) {
	switch kind {
	case PowerUpHealth:
		s.Health.Heal(r.HealAmount)
		bus.Emit(Event{Type: EventHealthChanged, Data: s.Health.Current})
	case PowerUpRapidFire:
		// A second pickup restarts the window instead of stacking.
		s.RapidFireUntil = now.Add(r.RapidFireDuration)
	}
	s.AddScore(r.PowerUpScore, bus)
	bus.Emit(Event{Type: EventPowerUp, Kind: kind, Data: s.Score})
}
