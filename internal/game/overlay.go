package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// OverlayFadeSeconds is how long the game-over panel takes to fade in.
const OverlayFadeSeconds = 0.6

// Overlay tracks the game-over panel visibility and its fade-in alpha.
type Overlay struct {
	Visible bool
	Alpha   float64
	tween   *gween.Tween
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Show starts the fade-in. Calling it while visible does nothing.
func (o *Overlay) Show() {
	if o.Visible {
		return
	}
	o.Visible = true
	o.Alpha = 0
	o.tween = gween.New(0, 1, OverlayFadeSeconds, ease.OutCubic)
}

func (o *Overlay) Hide() {
	o.Visible = false
	o.Alpha = 0
	o.tween = nil
}

// Update advances the fade by dt seconds.
func (o *Overlay) Update(dt float64) {
	if o.tween == nil {
		return
	}
	val, done := o.tween.Update(float32(dt))
	o.Alpha = clampF(float64(val), 0, 1)
	if done {
		o.Alpha = 1
		o.tween = nil
	}
}
