package page

import (
	"glyph-motion/canvas"
	"glyph-motion/glyph"
)

// Measurer reports glyph advances. Layout is measured once at base weight
// so that weight changes never reflow the line.
type Measurer interface {
	Advance(r rune, style glyph.Style, weight float64) float64
	LineHeight(style glyph.Style) float64
}

// Fixed measures every rune as Ratio*size wide. It stands in for real font
// metrics in headless runs.
type Fixed struct {
	Ratio float64
}

func (f Fixed) Advance(_ rune, style glyph.Style, _ float64) float64 {
	return style.Size * f.Ratio
}

func (f Fixed) LineHeight(style glyph.Style) float64 { return style.Size * 1.2 }

// Layout is a block laid out in page coordinates.
type Layout struct {
	Container glyph.Rect
	Glyphs    []glyph.Rect
}

// Measure lays ds out on one line starting at (x, y).
func Measure(m Measurer, ds []glyph.Descriptor, x, y float64) *Layout {
	l := &Layout{Glyphs: make([]glyph.Rect, len(ds))}
	h := 0.0
	cx := x
	for i, d := range ds {
		adv := m.Advance(d.Rune, d.Style, d.BaseWeight)
		lh := m.LineHeight(d.Style)
		if lh > h {
			h = lh
		}
		l.Glyphs[i] = glyph.Rect{X: cx, Y: y, W: adv, H: lh}
		cx += adv
	}
	l.Container = glyph.Rect{X: x, Y: y, W: cx - x, H: h}
	return l
}

// geometry answers layout queries in screen coordinates through the camera.
type geometry struct {
	layout *Layout
	cam    *canvas.Camera
}

func (g *geometry) toScreen(r glyph.Rect) glyph.Rect {
	r.X, r.Y = g.cam.WorldToScreen(r.X, r.Y)
	return r
}

func (g *geometry) ContainerBounds() (glyph.Rect, bool) {
	if g == nil || g.layout == nil {
		return glyph.Rect{}, false
	}
	return g.toScreen(g.layout.Container), true
}

func (g *geometry) GlyphBounds(i int) (glyph.Rect, bool) {
	if g == nil || g.layout == nil || i < 0 || i >= len(g.layout.Glyphs) {
		return glyph.Rect{}, false
	}
	return g.toScreen(g.layout.Glyphs[i]), true
}

func (g *geometry) Len() int {
	if g == nil || g.layout == nil {
		return 0
	}
	return len(g.layout.Glyphs)
}
