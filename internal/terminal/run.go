// Package terminal is a tcell frontend that draws the canvas as coloured
// character cells.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"spaceaction/internal/config"
	"spaceaction/internal/game"
)

// display implements game.Display on a tcell screen.
type display struct {
	screen tcell.Screen
	events chan tcell.Event
	grid   *Grid
	keys   *keyHold
	bounds game.RectF
	log    zerolog.Logger

	ticker  *time.Ticker
	closed  bool
	buttons tcell.ButtonMask
	buf     []float32
}

// Run takes over the terminal and plays until quit or ctx is cancelled.
func Run(ctx context.Context, s config.Settings, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	rules := game.DefaultRules()
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.New(game.WithRules(rules), game.WithSeed(seed), game.WithLogger(log))
	log.Info().Uint64("seed", seed).Msg("session started")

	cols, rows := screen.Size()
	d := &display{
		screen: screen,
		events: make(chan tcell.Event, 64),
		grid:   NewGrid(cols, rows, rules.BoundsWidth, rules.BoundsHeight),
		keys:   newKeyHold(time.Duration(s.Terminal.KeyHoldMS) * time.Millisecond),
		bounds: rules.Bounds(),
		log:    log,
		ticker: time.NewTicker(time.Second / time.Duration(s.Terminal.FPS)),
	}
	defer d.ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go forwardEvents(ctx, screen, d.events)

	return game.NewScheduler(g, nil).Run(ctx, d)
}

// forwardEvents copies screen events onto ch until the screen stops or ctx
// is done. ch is closed only when the screen stops.
func forwardEvents(ctx context.Context, screen tcell.Screen, ch chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(ch)
			return
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// PollEvents drains pending terminal events without blocking.
func (d *display) PollEvents(g *game.Game) bool {
drain:
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				d.closed = true
				break drain
			}
			d.handle(g, ev)
		default:
			break drain
		}
	}
	for _, k := range d.keys.Expire(time.Now()) {
		g.KeyUp(k)
	}
	return !d.closed
}

func (d *display) handle(g *game.Game, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			d.closed = true
			return
		}
		k := translateKey(ev)
		if k == game.KeyNone {
			return
		}
		if d.keys.Press(k, ev.When()) || k == game.KeyRestart {
			g.KeyDown(k)
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0 && d.buttons&tcell.Button1 == 0
		d.buttons = ev.Buttons()
		if pressed && g.Overlay().Visible {
			_, btn := panelLayout(d.grid.Cols, d.grid.Rows)
			if btn.has(col, row) {
				g.Restart()
			}
			return
		}
		x, _ := d.grid.CellToCanvas(col, row)
		if d.bounds.HasPoint(x, d.bounds.H/2) {
			g.PointerMove(x)
		}
		if pressed {
			g.Click()
		}
	case *tcell.EventResize:
		d.screen.Sync()
		cols, rows := d.screen.Size()
		d.grid.Resize(cols, rows)
		d.log.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
	case *tcell.EventFocus:
		if !ev.Focused {
			d.keys.Clear()
			g.Input().ReleaseAll()
		}
	}
}

func (d *display) Render(g *game.Game) {
	d.grid.Fade(Persistence)
	d.buf = g.RenderData(d.buf)
	d.grid.Paint(d.buf)

	d.screen.Clear()
	for row := 0; row < d.grid.Rows; row++ {
		for col := 0; col < d.grid.Cols; col++ {
			c := d.grid.At(col, row)
			if !c.Lit() {
				continue
			}
			d.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(cellColor(c)))
		}
	}
	drawHUD(d.screen, g.HUD(), d.grid.Cols, d.grid.Rows)
	d.screen.Show()
}

func (d *display) WaitRefresh() {
	<-d.ticker.C
}

func cellColor(c Cell) tcell.Color {
	to8 := func(v float32) int32 {
		if v >= 1 {
			return 255
		}
		if v <= 0 {
			return 0
		}
		return int32(v * 255)
	}
	return tcell.NewRGBColor(to8(c.R), to8(c.G), to8(c.B))
}
