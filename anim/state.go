package anim

import (
	"image/color"

	"glyph-motion/glyph"
	"glyph-motion/palette"
)

// Group is a bit set of animatable property groups. At most one tween may
// write a given group of a given State at any time.
type Group uint8

const (
	GroupWeight    Group = 1 << iota // font weight
	GroupTransform                   // scale, x, y
	GroupColor
	GroupShadow
	GroupOpacity

	numGroups = 5

	GroupAll = GroupWeight | GroupTransform | GroupColor | GroupShadow | GroupOpacity
)

func (g Group) Has(o Group) bool { return g&o != 0 }

// Props are the visual properties of a glyph.
type Props struct {
	Weight float64
	Scale  float64
	X, Y   float64
	// Color applies only when ColorSet; otherwise the glyph shows its inherited color.
	Color    color.RGBA
	ColorSet bool
	Shadow   float64
	Opacity  float64
}

// Rest returns neutral props at the given weight.
func Rest(weight float64) Props {
	return Props{Weight: weight, Scale: 1, Opacity: 1}
}

// State is the animatable state of one glyph (or of a container). It is
// written only by the Scheduler.
type State struct {
	props Props
	base  color.RGBA
	slots [numGroups]*tween
}

func newState(p Props, base color.RGBA) *State {
	return &State{props: p, base: base}
}

// Props returns a snapshot of the current values.
func (s *State) Props() Props { return s.props }

// Color returns the effective color, falling back to the inherited one.
func (s *State) Color() color.RGBA {
	if s.props.ColorSet {
		return s.props.Color
	}
	return s.base
}

// Busy reports whether any tween currently owns one of the groups.
func (s *State) Busy(g Group) bool {
	for i := 0; i < numGroups; i++ {
		if g.Has(1<<i) && s.slots[i] != nil {
			return true
		}
	}
	return false
}

func (s *State) apply(p Props, mask Group) {
	if mask.Has(GroupWeight) {
		s.props.Weight = p.Weight
	}
	if mask.Has(GroupTransform) {
		s.props.Scale = p.Scale
		s.props.X = p.X
		s.props.Y = p.Y
	}
	if mask.Has(GroupColor) {
		s.props.Color = p.Color
		s.props.ColorSet = p.ColorSet
	}
	if mask.Has(GroupShadow) {
		s.props.Shadow = p.Shadow
	}
	if mask.Has(GroupOpacity) {
		s.props.Opacity = p.Opacity
	}
}

// mix interpolates the masked groups of from toward to at progress p.
func (s *State) mix(from, to Props, p float64, mask Group) Props {
	lerp := func(a, b float64) float64 { return a + (b-a)*p }
	out := s.props
	if mask.Has(GroupWeight) {
		out.Weight = lerp(from.Weight, to.Weight)
	}
	if mask.Has(GroupTransform) {
		out.Scale = lerp(from.Scale, to.Scale)
		out.X = lerp(from.X, to.X)
		out.Y = lerp(from.Y, to.Y)
	}
	if mask.Has(GroupColor) {
		a, b := s.base, s.base
		if from.ColorSet {
			a = from.Color
		}
		if to.ColorSet {
			b = to.Color
		}
		out.Color = palette.Lerp(a, b, clamp01(p))
		out.ColorSet = true
	}
	if mask.Has(GroupShadow) {
		out.Shadow = lerp(from.Shadow, to.Shadow)
	}
	if mask.Has(GroupOpacity) {
		out.Opacity = lerp(from.Opacity, to.Opacity)
	}
	return out
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

// Block groups the states of one text block: one per glyph plus one for the
// container itself.
type Block struct {
	Container *State
	Glyphs    []*State
}

func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Glyphs)
}

// Select resolves glyph indices to states, skipping out-of-range indices.
func (b *Block) Select(indices []int) []*State {
	out := make([]*State, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(b.Glyphs) {
			out = append(out, b.Glyphs[i])
		}
	}
	return out
}

// Indices returns 0..n-1 for b.
func (b *Block) Indices() []int {
	out := make([]int, b.Len())
	for i := range out {
		out[i] = i
	}
	return out
}

// NewBlock allocates states for ds, each starting at rest at its base weight.
func NewBlock(ds []glyph.Descriptor, ink color.RGBA) *Block {
	b := &Block{
		Container: newState(Rest(0), ink),
		Glyphs:    make([]*State, len(ds)),
	}
	for i, d := range ds {
		b.Glyphs[i] = newState(Rest(d.BaseWeight), ink)
	}
	return b
}
