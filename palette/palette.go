package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Page palette.
var (
	Neutral    = MustHex("#222222")
	AccentA    = MustHex("#1f7aff")
	AccentB    = MustHex("#ff4dd2")
	Ink        = MustHex("#1a1a1a")
	Muted      = color.RGBA{0, 0, 0, 153}
	Background = MustHex("#f4f1ec")
	Shadow     = color.RGBA{0, 0, 0, 255}
)

// Hex parses a "#rrggbb" color.
func Hex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// MustHex is like Hex but panics on malformed input. Meant for literals.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats c as "#rrggbb", ignoring alpha.
func ToHex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Lerp interpolates a and b component-wise in RGB space, rounding each
// channel to the nearest integer. t is expected in [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// WithAlpha returns c with its alpha channel scaled by a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = lerpChannel(0, c.A, a)
	return c
}
