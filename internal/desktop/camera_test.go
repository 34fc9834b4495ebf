package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spaceaction/internal/game"
)

func TestFitLetterboxes(t *testing.T) {
	var c Camera
	c.Fit(800, 600, 1600, 900)
	assert.InDelta(t, 1.5, c.Zoom, 1e-9, "height-limited")
	assert.Equal(t, 400.0, c.X)
	assert.Equal(t, 300.0, c.Y)
}

func TestScreenCanvasRoundTrip(t *testing.T) {
	var c Camera
	c.Fit(800, 600, 1600, 1200)

	x, y := c.ScreenToCanvas(0, 0, 1600, 1200)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	sx, sy := c.CanvasToScreen(123, 456, 1600, 1200)
	x, y = c.ScreenToCanvas(sx, sy, 1600, 1200)
	assert.InDelta(t, 123, x, 1e-9)
	assert.InDelta(t, 456, y, 1e-9)
}

func TestShakeDecaysToZero(t *testing.T) {
	var c Camera
	c.AddShake(6, 0.25)
	c.UpdateShake(0.1, 1)
	assert.LessOrEqual(t, c.ShakeX, 6.0)
	assert.GreaterOrEqual(t, c.ShakeX, -6.0)

	for i := 0; i < 10; i++ {
		c.UpdateShake(0.1, uint64(i))
	}
	x, y := c.EffectivePos()
	assert.Equal(t, c.X, x)
	assert.Equal(t, c.Y, y)
	assert.Zero(t, c.ShakeIntensity)
}

func TestRestartButtonInsidePanel(t *testing.T) {
	b := game.RectF{W: 800, H: 600}
	assert.True(t, panelRect(b).Contains(RestartButton(b)))
	assert.True(t, b.Contains(panelRect(b)))
}

func TestKeyMapCoversGameKeys(t *testing.T) {
	seen := map[game.Key]bool{}
	for _, k := range keyMap {
		seen[k] = true
	}
	for _, k := range []game.Key{game.KeyLeft, game.KeyRight, game.KeyUp, game.KeyDown, game.KeySpace, game.KeyRestart} {
		assert.True(t, seen[k], k.String())
	}
}
