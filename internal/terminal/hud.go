package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"spaceaction/internal/game"
)

// cellRect is a rectangle in character cells.
type cellRect struct {
	Col, Row, W, H int
}

func (r cellRect) has(col, row int) bool {
	return col >= r.Col && col < r.Col+r.W && row >= r.Row && row < r.Row+r.H
}

// panelLayout centres the game-over panel and its restart button.
func panelLayout(cols, rows int) (panel, button cellRect) {
	pw, ph := min(36, cols), min(9, rows)
	panel = cellRect{Col: (cols - pw) / 2, Row: (rows - ph) / 2, W: pw, H: ph}
	bw := min(13, pw)
	button = cellRect{Col: panel.Col + (pw-bw)/2, Row: panel.Row + ph - 3, W: bw, H: 1}
	return panel, button
}

func rgbColor(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(col+i, row, ch, nil, style)
	}
}

func fillRect(s tcell.Screen, r cellRect, style tcell.Style) {
	for row := r.Row; row < r.Row+r.H; row++ {
		for col := r.Col; col < r.Col+r.W; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

func drawHUD(s tcell.Screen, hud game.HUD, cols, rows int) {
	text := tcell.StyleDefault.Foreground(rgbColor(game.Palette.Text))
	drawText(s, 1, 0, fmt.Sprintf("Score: %d", hud.Score), text)

	hp := text
	if hud.LowHealth {
		hp = hp.Foreground(rgbColor(game.Palette.Warning))
	}
	drawText(s, 1, 1, fmt.Sprintf("Health: %d", hud.Health), hp)
	if hud.RapidFire {
		drawText(s, 1, 2, "RAPID FIRE", text.Foreground(rgbColor(game.Palette.RapidFire)))
	}

	// Cells have no alpha; the panel appears once the fade is mostly in.
	if !hud.GameOverVisible || hud.OverlayAlpha < 0.5 {
		return
	}
	panel, btn := panelLayout(cols, rows)
	bg := tcell.StyleDefault.Background(rgbColor(game.Palette.Panel))
	fillRect(s, panel, bg)

	center := func(row int, str string, st tcell.Style) {
		drawText(s, panel.Col+(panel.W-len(str))/2, row, str, st)
	}
	center(panel.Row+1, "GAME OVER", bg.Foreground(rgbColor(game.Palette.Warning)).Bold(true))
	center(panel.Row+3, fmt.Sprintf("Final Score: %d", hud.FinalScore), bg.Foreground(rgbColor(game.Palette.Text)))

	button := tcell.StyleDefault.Background(rgbColor(game.Palette.Button)).Foreground(rgbColor(game.Palette.Text))
	fillRect(s, btn, button)
	drawText(s, btn.Col+(btn.W-len("Restart"))/2, btn.Row, "Restart", button)
}
