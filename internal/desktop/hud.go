package desktop

import (
	"fmt"

	"spaceaction/internal/game"
)

// Game-over panel layout in canvas pixels, centred on the canvas.
const (
	panelW  = 360
	panelH  = 200
	buttonW = 160
	buttonH = 44
)

// RestartButton returns the restart button's rectangle in canvas pixels.
func RestartButton(bounds game.RectF) game.RectF {
	cx, cy := bounds.Center()
	return game.RectF{X: cx - buttonW/2, Y: cy + 30, W: buttonW, H: buttonH}
}

func panelRect(bounds game.RectF) game.RectF {
	cx, cy := bounds.Center()
	return game.RectF{X: cx - panelW/2, Y: cy - panelH/2, W: panelW, H: panelH}
}

// screenRect maps a canvas rectangle into framebuffer pixels.
func screenRect(cam *Camera, r game.RectF, fbW, fbH int) game.RectF {
	x, y := cam.CanvasToScreen(r.X, r.Y, fbW, fbH)
	return game.RectF{X: x, Y: y, W: r.W * cam.Zoom, H: r.H * cam.Zoom}
}

// RenderHUD draws the score and health readouts and the game-over panel.
func RenderHUD(r *Renderer, cam *Camera, hud game.HUD, bounds game.RectF, fbW, fbH int) {
	s := float32(cam.Zoom) * 1.5
	if s < 1 {
		s = 1
	}
	left, top := cam.CanvasToScreen(0, 0, fbW, fbH)
	pad := int(10 * cam.Zoom)
	lineH := int(float32(FontCellH)*s) + pad/2

	scoreStr := fmt.Sprintf("Score: %d", hud.Score)
	r.DrawString(scoreStr, int(left)+pad, int(top)+pad, s, game.Palette.Text, 1)

	hpCol := game.Palette.Text
	if hud.LowHealth {
		hpCol = game.Palette.Warning
	}
	hpStr := fmt.Sprintf("Health: %d", hud.Health)
	r.DrawString(hpStr, int(left)+pad, int(top)+pad+lineH, s, hpCol, 1)

	if hud.MaxHealth > 0 {
		frac := hud.HealthFraction
		barX := left + float64(pad) + float64(TextWidth("Health: 100 ", s))
		barY := top + float64(pad+lineH) + 2*cam.Zoom
		barW, barH := 100*cam.Zoom, float64(FontCellH)*float64(s)-4*cam.Zoom
		bg := game.Palette.Panel
		fg := game.HealthBarColor(frac)
		br, bgc, bb := bg.Floats()
		fr, fgc, fb := fg.Floats()
		r.DrawScreenRects([]float32{
			float32(barX), float32(barY), float32(barW), float32(barH), br, bgc, bb, 1,
			float32(barX), float32(barY), float32(barW * frac), float32(barH), fr, fgc, fb, 1,
		}, fbW, fbH)
	}
	if hud.RapidFire {
		r.DrawString("RAPID FIRE", int(left)+pad, int(top)+pad+2*lineH, s, game.Palette.RapidFire, 1)
	}

	if hud.GameOverVisible {
		a := float32(hud.OverlayAlpha)
		panel := screenRect(cam, panelRect(bounds), fbW, fbH)
		btn := screenRect(cam, RestartButton(bounds), fbW, fbH)

		var rects []float32
		pr, pg, pb := game.Palette.Panel.Floats()
		br, bg, bb := game.Palette.Button.Floats()
		rects = append(rects,
			float32(panel.X), float32(panel.Y), float32(panel.W), float32(panel.H), pr, pg, pb, 0.9*a,
			float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), br, bg, bb, a,
		)
		r.DrawScreenRects(rects, fbW, fbH)

		title := "GAME OVER"
		ts := s * 1.6
		pcx := int(panel.X + panel.W/2)
		r.DrawString(title, pcx-TextWidth(title, ts)/2, int(panel.Y)+pad*2, ts, game.Palette.Warning, a)

		final := fmt.Sprintf("Final Score: %d", hud.FinalScore)
		r.DrawString(final, pcx-TextWidth(final, s)/2, int(panel.Y)+pad*3+int(float32(FontCellH)*ts), s, game.Palette.Text, a)

		label := "Restart"
		r.DrawString(label, pcx-TextWidth(label, s)/2,
			int(btn.Y+btn.H/2)-int(float32(FontCellH)*s)/2, s, game.Palette.Text, a)
	}

	r.FlushText(fbW, fbH)
}
