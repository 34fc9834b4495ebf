package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"spaceaction/internal/game"
)

// keyMap translates glfw keys to game keys.
var keyMap = map[glfw.Key]game.Key{
	glfw.KeyLeft:  game.KeyLeft,
	glfw.KeyA:     game.KeyLeft,
	glfw.KeyRight: game.KeyRight,
	glfw.KeyD:     game.KeyRight,
	glfw.KeyUp:    game.KeyUp,
	glfw.KeyW:     game.KeyUp,
	glfw.KeyDown:  game.KeyDown,
	glfw.KeyS:     game.KeyDown,
	glfw.KeySpace: game.KeySpace,
	glfw.KeyR:     game.KeyRestart,
	glfw.KeyEnter: game.KeyRestart,
}

// cursorCanvasPos converts the cursor position to canvas pixels.
func cursorCanvasPos(window *glfw.Window, cam *Camera, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cam.X, cam.Y
	}
	fx := cx * float64(fbW) / float64(winW)
	fy := cy * float64(fbH) / float64(winH)
	return cam.ScreenToCanvas(fx, fy, fbW, fbH)
}

// bindInput installs glfw callbacks that feed g. Callbacks fire from
// glfw.PollEvents on the render thread.
func (d *display) bindInput() {
	d.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		k, ok := keyMap[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			d.game.KeyDown(k)
		case glfw.Release:
			d.game.KeyUp(k)
		}
	})

	d.window.SetCursorPosCallback(func(w *glfw.Window, _, _ float64) {
		fbW, fbH := w.GetFramebufferSize()
		x, y := cursorCanvasPos(w, &d.cam, fbW, fbH)
		if d.bounds.HasPoint(x, y) {
			d.game.PointerMove(x)
		}
	})

	d.window.SetMouseButtonCallback(func(w *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if btn != glfw.MouseButtonLeft || action != glfw.Press {
			return
		}
		fbW, fbH := w.GetFramebufferSize()
		x, y := cursorCanvasPos(w, &d.cam, fbW, fbH)
		if d.game.Overlay().Visible {
			if RestartButton(d.bounds).HasPoint(x, y) {
				d.game.Restart()
			}
			return
		}
		if d.bounds.HasPoint(x, y) {
			d.game.Click()
		}
	})

	d.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			d.game.Input().ReleaseAll()
		}
	})
}
