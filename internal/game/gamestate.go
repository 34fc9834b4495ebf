package game

import "time"

type GameState int

const (
	StatePlaying  GameState = iota // main gameplay
	StateGameOver                  // health ran out; waits for restart
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Session is the mutable per-run state threaded through every update step.
type Session struct {
	State  GameState
	Score  int
	Health Health

	FinalScore int

	LastShot       time.Time // zero until the first shot
	RapidFireUntil time.Time // rapid fire is active while now is before this
}

func NewSession(r Rules) *Session {
	return &Session{
		State:  StatePlaying,
		Health: NewHealth(r.MaxHealth),
	}
}

// Reset restores the starting values.
func (s *Session) Reset(r Rules) {
	*s = Session{
		State:  StatePlaying,
		Health: NewHealth(r.MaxHealth),
	}
}

func (s *Session) Playing() bool { return s.State == StatePlaying }

func (s *Session) AddScore(points int, bus *EventBus) {
	if points == 0 {
		return
	}
	s.Score += points
	bus.Emit(Event{Type: EventScoreChanged, Data: s.Score})
}

// ShootCooldown returns the cooldown in effect at now.
func (s *Session) ShootCooldown(r Rules, now time.Time) time.Duration {
	if now.Before(s.RapidFireUntil) {
		return r.RapidFireCooldown
	}
	return r.ShootCooldown
}

// LowHealth reports whether the health display should warn.
func (s *Session) LowHealth(r Rules) bool {
	return s.Health.Current <= r.LowHealthLimit
}

// CheckGameOver moves a playing session with no health left to StateGameOver.
// It reports whether the transition fired.
func (s *Session) CheckGameOver(bus *EventBus) bool {
	if s.State != StatePlaying || !s.Health.IsDead() {
		return false
	}
	s.State = StateGameOver
	s.FinalScore = s.Score
	bus.Emit(Event{Type: EventGameOver, Data: s.FinalScore})
	return true
}
