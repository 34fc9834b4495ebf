// Package desktop is the glfw/OpenGL frontend.
package desktop

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"spaceaction/internal/config"
	"spaceaction/internal/game"
)

// Refresh pacing when vsync is off.
const fallbackFrame = time.Second / 60

// Screen shake on taking damage.
const (
	hitShakeIntensity = 6.0
	hitShakeDuration  = 0.25
)

// display implements game.Display on a glfw window.
type display struct {
	window *glfw.Window
	rend   *Renderer
	cam    Camera
	game   *game.Game
	bounds game.RectF
	log    zerolog.Logger

	vsync     bool
	lastSwap  time.Time
	lastFrame float64
	seed      uint64
	lastHP    int
	buf       []float32
}

// Run opens the window and plays until it closes or ctx is cancelled.
func Run(ctx context.Context, s config.Settings, log zerolog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rules := game.DefaultRules()
	window, err := initWindow(s, rules.BoundsWidth, rules.BoundsHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).Msg("opengl ready")

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer(int(rules.BoundsWidth), int(rules.BoundsHeight))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.New(game.WithRules(rules), game.WithSeed(seed), game.WithLogger(log))
	log.Info().Uint64("seed", seed).Msg("session started")

	d := &display{
		window:   window,
		rend:     rend,
		game:     g,
		bounds:   rules.Bounds(),
		log:      log,
		vsync:    s.Window.VSync,
		seed:     seed,
		lastHP:   g.HealthPoints(),
		lastSwap: time.Now(),
	}
	d.bindInput()
	g.Events().Subscribe(game.EventHealthChanged, func(e game.Event) {
		if e.Data < d.lastHP {
			d.cam.AddShake(hitShakeIntensity, hitShakeDuration)
		}
		d.lastHP = e.Data
	})

	return game.NewScheduler(g, nil).Run(ctx, d)
}

func (d *display) PollEvents(_ *game.Game) bool {
	glfw.PollEvents()
	return !d.window.ShouldClose()
}

func (d *display) Render(g *game.Game) {
	fbW, fbH := d.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}

	now := glfw.GetTime()
	dt := now - d.lastFrame
	if d.lastFrame == 0 || dt > game.MaxFrameDelta {
		dt = game.MaxFrameDelta
	}
	d.lastFrame = now

	d.cam.Fit(d.bounds.W, d.bounds.H, fbW, fbH)
	d.cam.UpdateShake(dt, d.seed^g.Ticks())

	d.rend.BeginCanvas()
	d.buf = g.RenderData(d.buf)
	d.rend.DrawCanvasRects(d.buf)
	d.rend.Present(d.cam, fbW, fbH)

	RenderHUD(d.rend, &d.cam, g.HUD(), d.bounds, fbW, fbH)
}

func (d *display) WaitRefresh() {
	d.window.SwapBuffers()
	if !d.vsync {
		if wait := fallbackFrame - time.Since(d.lastSwap); wait > 0 {
			time.Sleep(wait)
		}
	}
	d.lastSwap = time.Now()
}
