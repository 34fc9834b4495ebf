package game

import (
	"context"
	"time"
)

// MaxFrameDelta caps the measured frame time fed to time-based effects.
const MaxFrameDelta = 0.1

// Display is a presentation surface driven by the scheduler.
type Display interface {
	// PollEvents delivers pending input to the game. It reports false once
	// the surface has been closed.
	PollEvents(g *Game) bool
	// Render draws the current frame.
	Render(g *Game)
	// WaitRefresh blocks until the next refresh opportunity.
	WaitRefresh()
}

// Scheduler runs one tick and one render per display refresh. Simulation
// speed follows the refresh rate; dt only drives presentation effects.
type Scheduler struct {
	game  *Game
	clock Clock
	last  time.Time
}

func NewScheduler(g *Game, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{game: g, clock: clock}
}

// Step runs one iteration with an explicit frame delta in seconds.
func (s *Scheduler) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	if s.game.session.Playing() {
		s.game.Tick()
	}
	s.game.overlay.Update(dt)
}

// Run loops until ctx is done or the display closes.
func (s *Scheduler) Run(ctx context.Context, d Display) error {
	s.last = s.clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.PollEvents(s.game) {
			return nil
		}

		now := s.clock.Now()
		dt := now.Sub(s.last).Seconds()
		s.last = now

		s.Step(dt)
		d.Render(s.game)
		d.WaitRefresh()
	}
}
