// Package proximity maps pointer distance to per-glyph visual targets.
//
// Influence falls off with the square of the horizontal distance between
// the pointer and a glyph's center:
//
//	intensity = exp(-d² / falloff)
//
// Intensity is then mapped linearly onto weight, scale, lift and shadow,
// and through two color blends onto the glyph color.
package proximity

import (
	"image/color"
	"math"
	"time"

	"glyph-motion/anim"
	"glyph-motion/ease"
	"glyph-motion/glyph"
	"glyph-motion/palette"
)

// Intensity returns exp(-(d²)/falloff) for d = pointerX - centerX. It is 1
// at d = 0 and non-increasing in |d|. Far from the pointer exp underflows,
// so the result is floored at the smallest positive float64 and stays in
// (0,1]. A larger falloff widens the influence radius.
func Intensity(pointerX, centerX, falloff float64) float64 {
	if falloff <= 0 {
		if pointerX == centerX {
			return 1
		}
		return math.SmallestNonzeroFloat64
	}
	d := pointerX - centerX
	return math.Max(math.Exp(-(d*d)/falloff), math.SmallestNonzeroFloat64)
}

func MapWeight(intensity, min, max float64) float64 { return min + (max-min)*intensity }

func MapScale(intensity, maxScale float64) float64 { return 1 + (maxScale-1)*intensity }

// MapLift returns the vertical offset; negative maxLift lifts upward.
func MapLift(intensity, maxLift float64) float64 { return maxLift * intensity }

func MapShadow(intensity, maxShadow float64) float64 { return maxShadow * intensity }

// Motion is a duration and easing pair.
type Motion struct {
	Duration time.Duration
	Ease     ease.Func
}

// Params are the tunables of one kind of text block.
type Params struct {
	Falloff    float64
	MinWeight  float64
	MaxWeight  float64
	BaseWeight float64
	MaxScale   float64
	MaxLift    float64
	MaxShadow  float64

	Neutral color.RGBA
	AccentA color.RGBA
	AccentB color.RGBA
	// AccentBlend and NeutralBlend scale intensity for the accent-to-accent
	// and neutral-to-accent blends respectively.
	AccentBlend  float64
	NeutralBlend float64

	Hover         Motion
	Leave         Motion
	Lift          Motion // container lift on enter
	Drop          Motion // container back to rest on leave
	ContainerLift float64
	EnterStagger  time.Duration
	LeaveStagger  time.Duration
}

// HoverGroups are the property groups written by proximity tweens.
const HoverGroups = anim.GroupWeight | anim.GroupTransform | anim.GroupColor | anim.GroupShadow

// Color blends the accents at intensity*AccentBlend, then blends the neutral
// color toward that accent at intensity*NeutralBlend.
func (p Params) Color(intensity float64) color.RGBA {
	accent := palette.Lerp(p.AccentA, p.AccentB, clamp01(intensity*p.AccentBlend))
	return palette.Lerp(p.Neutral, accent, clamp01(intensity*p.NeutralBlend))
}

// Target returns the glyph props for intensity.
func (p Params) Target(intensity float64) anim.Props {
	return anim.Props{
		Weight:   MapWeight(intensity, p.MinWeight, p.MaxWeight),
		Scale:    MapScale(intensity, p.MaxScale),
		Y:        MapLift(intensity, p.MaxLift),
		Color:    p.Color(intensity),
		ColorSet: true,
		Shadow:   MapShadow(intensity, p.MaxShadow),
		Opacity:  1,
	}
}

// Rest returns the baseline props a glyph returns to when the pointer leaves.
func (p Params) Rest() anim.Props {
	return anim.Rest(p.BaseWeight)
}

// Field computes intensities for every glyph of one block. The buffer is
// reused across pointer-move events.
type Field struct {
	Params Params
	buf    []float64
}

func NewField(p Params) *Field { return &Field{Params: p} }

// Intensities evaluates every glyph of g against pointerX. Glyphs without
// layout get NaN. The returned slice is only valid until the next call.
func (f *Field) Intensities(pointerX float64, g glyph.Geometry) []float64 {
	n := g.Len()
	if cap(f.buf) < n {
		f.buf = make([]float64, n)
	}
	f.buf = f.buf[:n]
	for i := 0; i < n; i++ {
		r, ok := g.GlyphBounds(i)
		if !ok {
			f.buf[i] = math.NaN()
			continue
		}
		f.buf[i] = Intensity(pointerX, r.CenterX(), f.Params.Falloff)
	}
	return f.buf
}

// Update calls fn with every laid-out glyph's intensity for one pointer
// position.
func (f *Field) Update(pointerX float64, g glyph.Geometry, fn func(i int, intensity float64)) {
	for i, v := range f.Intensities(pointerX, g) {
		if math.IsNaN(v) {
			continue
		}
		fn(i, v)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
