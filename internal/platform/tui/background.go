package tui

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vdmtrv/brickout/internal/core"
)

// ErrBadTheme indicates an unusable background theme. Themes are loaded
// once at startup; an unparsable theme is fatal there, not mid-game.
var ErrBadTheme = errors.New("tui: invalid background theme")

//go:embed themes/aurora.yaml
var defaultThemeYAML []byte

// themeFile is the on-disk shape of a background theme.
type themeFile struct {
	Name    string   `yaml:"name"`
	Palette []string `yaml:"palette"`
	Density int      `yaml:"density"` // Draw every Nth cell; higher is sparser
}

// Theme is a parsed background color theme.
type Theme struct {
	Name    string
	Palette []core.RGBA
	Density int
}

// LoadTheme loads a background theme from the given path, or the embedded
// default when the path is empty. Any parse or validation failure wraps
// ErrBadTheme.
func LoadTheme(path string) (Theme, error) {
	data := defaultThemeYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %v", ErrBadTheme, err)
		}
		data = b
	}

	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrBadTheme, err)
	}
	if len(tf.Palette) == 0 {
		return Theme{}, fmt.Errorf("%w: empty palette", ErrBadTheme)
	}
	if tf.Density <= 0 {
		tf.Density = 3
	}

	theme := Theme{Name: tf.Name, Density: tf.Density}
	for _, hex := range tf.Palette {
		c, err := parseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %v", ErrBadTheme, err)
		}
		theme.Palette = append(theme.Palette, c)
	}
	return theme, nil
}

// parseHex parses a "#rrggbb" color string.
func parseHex(s string) (core.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return core.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return core.RGBA{}, fmt.Errorf("bad color %q: %v", s, err)
	}
	return core.NewRGB(r, g, b), nil
}

// Background is the animated plasma effect drawn behind the playfield.
// Purely cosmetic: it reads nothing from the world and the simulation
// never depends on it.
type Background struct {
	theme Theme
	t     float64
}

// NewBackground creates a background using the given theme.
func NewBackground(theme Theme) *Background {
	return &Background{theme: theme}
}

// Advance moves the animation forward by dt seconds.
func (b *Background) Advance(dt float64) {
	b.t += dt
}

// Draw paints a sparse dot field into the screen. The palette index per
// cell follows overlapping sine waves, giving a slow plasma drift.
func (b *Background) Draw(s *core.Screen) {
	n := len(b.theme.Palette)
	if n == 0 {
		return
	}
	for y := 1; y < s.Height(); y++ {
		for x := y % b.theme.Density; x < s.Width(); x += b.theme.Density {
			v := math.Sin(float64(x)*0.13+b.t*0.7) +
				math.Sin(float64(y)*0.21-b.t*0.4) +
				math.Sin(float64(x+y)*0.08+b.t*0.2)
			// v is in [-3, 3]; normalize to a palette index.
			idx := int((v + 3) / 6 * float64(n))
			idx = core.Clamp(idx, 0, n-1)
			// Dimmed so entities stay readable on top.
			s.Set(x, y, '·', b.theme.Palette[idx].WithAlpha(90))
		}
	}
}
