package core

import "fmt"

// RGBA is a truecolor value with an alpha channel. Alpha is not blended by
// the terminal; the renderer premultiplies it against the (black) background
// so fading entities dim toward invisibility.
type RGBA struct {
	R, G, B, A uint8
}

// NewRGB creates a fully opaque color.
func NewRGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns the color with its alpha channel replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Hex returns the color as a "#rrggbb" string with alpha premultiplied,
// suitable for lipgloss.Color.
func (c RGBA) Hex() string {
	f := float64(c.A) / 255
	r := uint8(float64(c.R) * f)
	g := uint8(float64(c.G) * f)
	b := uint8(float64(c.B) * f)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lerp linearly interpolates between two colors. t is clamped to [0, 1].
func Lerp(a, b RGBA, t float64) RGBA {
	t = ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// Common colors used by the HUD and overlays.
var (
	ColorWhite  = NewRGB(0xf0, 0xf0, 0xf0)
	ColorGray   = NewRGB(0x80, 0x80, 0x80)
	ColorRed    = NewRGB(0xe0, 0x40, 0x40)
	ColorGreen  = NewRGB(0x40, 0xc0, 0x60)
	ColorYellow = NewRGB(0xe0, 0xc0, 0x40)
	ColorCyan   = NewRGB(0x40, 0xc0, 0xc0)
)
