package glyph

import "github.com/samber/lo"

// NBSP replaces literal spaces so a block keeps its width while weights change.
const NBSP = '\u00a0'

// Group classifies a glyph for grouped sweeps.
type Group uint8

const (
	GroupNone Group = iota
	GroupLeft
	GroupRight
)

func (g Group) String() string {
	switch g {
	case GroupLeft:
		return "left"
	case GroupRight:
		return "right"
	default:
		return "none"
	}
}

// Style is the base visual style shared by every glyph of a block.
type Style struct {
	Class  string
	Size   float64
	Italic bool
}

// Descriptor is one rendered character of a text block.
type Descriptor struct {
	Rune       rune
	Index      int
	BaseWeight float64
	Group      Group
	Style      Style
}

// Split turns text into one descriptor per rune, in input order.
func Split(text string, style Style, baseWeight float64) []Descriptor {
	out := make([]Descriptor, 0, len(text))
	for _, r := range text {
		if r == ' ' {
			r = NBSP
		}
		out = append(out, Descriptor{
			Rune:       r,
			Index:      len(out),
			BaseWeight: baseWeight,
			Style:      style,
		})
	}
	return out
}

// TagParity returns a copy of ds with even indices in GroupLeft and odd in GroupRight.
func TagParity(ds []Descriptor) []Descriptor {
	out := make([]Descriptor, len(ds))
	for i, d := range ds {
		d.Group = GroupLeft
		if d.Index%2 == 1 {
			d.Group = GroupRight
		}
		out[i] = d
	}
	return out
}

// Partition returns the indices of the left and right groups, in index order.
// Untagged glyphs are placed by parity.
func Partition(ds []Descriptor) (left, right []int) {
	l, r := lo.FilterReject(ds, func(d Descriptor, _ int) bool {
		if d.Group == GroupNone {
			return d.Index%2 == 0
		}
		return d.Group == GroupLeft
	})
	index := func(d Descriptor, _ int) int { return d.Index }
	return lo.Map(l, index), lo.Map(r, index)
}

// Text reassembles the rendered string of ds.
func Text(ds []Descriptor) string {
	rs := make([]rune, len(ds))
	for i, d := range ds {
		rs[i] = d.Rune
	}
	return string(rs)
}
