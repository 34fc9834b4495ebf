package desktop

import (
	"math"

	"spaceaction/internal/game"
)

// Camera places the fixed-size canvas inside the framebuffer.
type Camera struct {
	X, Y float64 // canvas-pixel space, camera centre
	Zoom float64 // screen pixels per canvas pixel

	// Screen shake.
	ShakeX, ShakeY float64 // current offset in canvas pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	t := c.ShakeTimer
	rr := game.NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// EffectivePos returns camera position with shake applied.
func (c *Camera) EffectivePos() (float64, float64) {
	return c.X + c.ShakeX, c.Y + c.ShakeY
}

// Fit letterboxes a w x h canvas into the framebuffer.
func (c *Camera) Fit(w, h float64, fbW, fbH int) {
	c.Zoom = math.Min(float64(fbW)/w, float64(fbH)/h)
	c.X = w / 2
	c.Y = h / 2
}

// ScreenToCanvas converts framebuffer pixels to canvas pixels.
func (c *Camera) ScreenToCanvas(sx, sy float64, fbW, fbH int) (float64, float64) {
	if c.Zoom <= 0 {
		return c.X, c.Y
	}
	return c.X + (sx-float64(fbW)*0.5)/c.Zoom, c.Y + (sy-float64(fbH)*0.5)/c.Zoom
}

// CanvasToScreen converts canvas pixels to framebuffer pixels, ignoring shake.
func (c *Camera) CanvasToScreen(x, y float64, fbW, fbH int) (float64, float64) {
	return (x-c.X)*c.Zoom + float64(fbW)*0.5, (y-c.Y)*c.Zoom + float64(fbH)*0.5
}
