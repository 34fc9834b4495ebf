package game

import (
	"github.com/rs/zerolog"
)

// Game owns the session, the player and the four entity pools. All methods
// must be called from the loop goroutine.
type Game struct {
	rules   Rules
	session *Session
	player  Player
	input   *Input
	bus     *EventBus
	clock   Clock
	rng     RandSource
	log     zerolog.Logger

	bullets   Pool[Bullet, *Bullet]
	enemies   Pool[Enemy, *Enemy]
	powerUps  Pool[PowerUp, *PowerUp]
	particles *ParticleSystem

	overlay *Overlay

	ticks uint64

	// scratch for the broadphase
	hits []int
}

type Option func(*Game)

// WithRules overrides DefaultRules. Invalid rules panic in New.
func WithRules(r Rules) Option { return func(g *Game) { g.rules = r } }

func WithClock(c Clock) Option { return func(g *Game) { g.clock = c } }

// WithRand injects the random source used for spawns and bursts.
func WithRand(src RandSource) Option { return func(g *Game) { g.rng = src } }

// WithSeed is shorthand for WithRand(NewRand(seed)).
func WithSeed(seed uint64) Option { return func(g *Game) { g.rng = NewRand(seed) } }

func WithLogger(l zerolog.Logger) Option { return func(g *Game) { g.log = l } }

// New builds a playing session with the player at its start position.
func New(opts ...Option) *Game {
	g := &Game{
		rules: DefaultRules(),
		input: NewInput(),
		bus:   NewEventBus(),
		clock: SystemClock{},
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(g)
	}
	MustRules(g.rules)
	if g.rng == nil {
		g.rng = NewRand(uint64(g.clock.Now().UnixNano()))
	}
	g.session = NewSession(g.rules)
	g.particles = NewParticleSystem(MaxParticles)
	g.overlay = NewOverlay()
	g.player = Player{
		W: PlayerSize, H: PlayerSize,
		Speed: g.rules.PlayerSpeed,
		Color: Palette.Player,
	}
	g.player.X, g.player.Y = g.rules.PlayerStart()
	g.wireEvents()
	return g
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Player() *Player {
	return &g.player
}

func (g *Game) Input() *Input {
	return g.input
}

func (g *Game) Events() *EventBus {
	return g.bus
}

func (g *Game) Bullets() []Bullet {
	return g.bullets.Items
}

func (g *Game) Enemies() []Enemy {
	return g.enemies.Items
}

func (g *Game) PowerUps() []PowerUp {
	return g.powerUps.Items
}

func (g *Game) Particles() []Particle {
	return g.particles.P
}

func (g *Game) Overlay() *Overlay {
	return g.overlay
}

func (g *Game) Ticks() uint64 {
	return g.ticks
}

func (g *Game) State() GameState {
	return g.session.State
}

func (g *Game) Score() int {
	return g.session.Score
}

func (g *Game) HealthPoints() int {
	return g.session.Health.Current
}

// Tick runs one simulation step: spawn, integrate, resolve, compact. It does
// nothing once the session is over.
func (g *Game) Tick() {
	if !g.session.Playing() {
		return
	}
	g.ticks++

	g.updatePlayer()
	g.spawn()
	g.integrate()
	g.resolveCollisions()
	g.compact()
}

// Restart resets the session, clears every pool and returns the player to
// its start position. The scheduler keeps running.
func (g *Game) Restart() {
	g.session.Reset(g.rules)
	g.bullets.Clear()
	g.enemies.Clear()
	g.powerUps.Clear()
	g.particles.Clear()
	g.player.X, g.player.Y = g.rules.PlayerStart()
	g.input.ReleaseAll()
	g.overlay.Hide()
	g.bus.Emit(Event{Type: EventRestart})
	g.bus.Emit(Event{Type: EventScoreChanged, Data: g.session.Score})
	g.bus.Emit(Event{Type: EventHealthChanged, Data: g.session.Health.Current})
}

func (g *Game) compact() {
	g.bullets.Compact()
	g.enemies.Compact()
	g.powerUps.Compact()
}

// wireEvents hooks the overlay and logging onto the bus.
func (g *Game) wireEvents() {
	g.bus.Subscribe(EventGameOver, func(e Event) {
		g.overlay.Show()
		g.log.Info().Int("final_score", e.Data).Uint64("ticks", g.ticks).Msg("game over")
	})
	g.bus.Subscribe(EventRestart, func(Event) {
		g.log.Info().Msg("restart")
	})
	g.bus.Subscribe(EventPowerUp, func(e Event) {
		g.log.Debug().Stringer("kind", e.Kind).Int("score", e.Data).Msg("power-up collected")
	})
	g.bus.Subscribe(EventHealthChanged, func(e Event) {
		g.log.Debug().Int("health", e.Data).Msg("health changed")
	})
}
