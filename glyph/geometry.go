package glyph

// Rect is an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }

func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Geometry answers layout queries for one text block. Results must not be
// cached by callers: layout may shift between frames. A false second
// return means the node has not been laid out yet.
type Geometry interface {
	ContainerBounds() (Rect, bool)
	GlyphBounds(i int) (Rect, bool)
	Len() int
}

// Static is a fixed-layout Geometry, used for headless runs and tests.
type Static struct {
	Container Rect
	Glyphs    []Rect
}

func (s *Static) ContainerBounds() (Rect, bool) {
	if s == nil {
		return Rect{}, false
	}
	return s.Container, true
}

func (s *Static) GlyphBounds(i int) (Rect, bool) {
	if s == nil || i < 0 || i >= len(s.Glyphs) {
		return Rect{}, false
	}
	return s.Glyphs[i], true
}

func (s *Static) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Glyphs)
}

// Row lays out n glyphs of equal advance starting at (x, y) and returns the
// resulting Static geometry.
func Row(x, y float64, n int, advance, height float64) *Static {
	s := &Static{
		Container: Rect{X: x, Y: y, W: advance * float64(n), H: height},
		Glyphs:    make([]Rect, n),
	}
	for i := range s.Glyphs {
		s.Glyphs[i] = Rect{X: x + advance*float64(i), Y: y, W: advance, H: height}
	}
	return s
}
