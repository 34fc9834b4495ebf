package game

// Key identifies the inputs the core reacts to. Frontends translate their
// native key codes.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyRestart
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySpace:
		return "space"
	case KeyRestart:
		return "restart"
	}
	return "none"
}

// Input is the live pressed-key set. It is written by event callbacks and read
// once per tick.
type Input struct {
	pressed map[Key]bool
}

func NewInput() *Input {
	return &Input{pressed: make(map[Key]bool)}
}

func (in *Input) SetKey(k Key, down bool) {
	in.pressed[k] = down
}

func (in *Input) Pressed(k Key) bool {
	return in.pressed[k]
}

// ReleaseAll clears every key, e.g. when the window loses focus.
func (in *Input) ReleaseAll() {
	clear(in.pressed)
}

// KeyDown records a key press.
func (g *Game) KeyDown(k Key) {
	g.input.SetKey(k, true)
	if k == KeyRestart && !g.session.Playing() {
		g.Restart()
	}
}

// KeyUp records a key release.
func (g *Game) KeyUp(k Key) {
	g.input.SetKey(k, false)
}

// PointerMove centres the player horizontally on the pointer. The position is
// not clamped here; the next tick's integration pass does that.
func (g *Game) PointerMove(x float64) {
	g.player.X = x - g.player.W/2
}

// Click fires once, subject to the cooldown, while playing.
func (g *Game) Click() {
	if g.session.Playing() {
		g.Shoot()
	}
}
