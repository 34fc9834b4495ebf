package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// HSL converts hue in degrees and saturation/lightness in [0,1] to RGB.
func HSL(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float64) uint8 {
		return uint8(math.Round(clampF(v+m, 0, 1) * 255))
	}
	return RGB{R: to8(r), G: to8(g), B: to8(b)}
}

var Palette = struct {
	Player    RGB
	Bullet    RGB
	Enemy     RGB
	Health    RGB
	RapidFire RGB
	Text      RGB
	Warning   RGB
	Panel     RGB
	Button    RGB
}{
	Player:    RGB{R: 0, G: 255, B: 0},
	Bullet:    RGB{R: 255, G: 255, B: 0},
	Enemy:     RGB{R: 255, G: 68, B: 68},
	Health:    RGB{R: 0, G: 255, B: 0},
	RapidFire: RGB{R: 255, G: 0, B: 255},
	Text:      RGB{R: 255, G: 255, B: 255},
	Warning:   RGB{R: 255, G: 80, B: 80},
	Panel:     RGB{R: 20, G: 20, B: 30},
	Button:    RGB{R: 0, G: 170, B: 255},
}

// ExplosionColor picks a warm particle colour, hue 10..70.
func ExplosionColor(src RandSource) RGB {
	return HSL(rangeF(src, 10, 70), 1.0, 0.5)
}
