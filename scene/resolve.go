package scene

import (
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"glyph-motion/ease"
	"glyph-motion/glyph"
	"glyph-motion/palette"
	"glyph-motion/proximity"
	"glyph-motion/timeline"
)

// Colors is the parsed palette.
type Colors struct {
	Neutral, AccentA, AccentB color.RGBA
	Ink, Muted, Background    color.RGBA
}

// Colors parses the palette. An empty entry falls back to the built-in color.
func (s *Scene) Colors() (Colors, error) {
	c := Colors{
		Neutral:    palette.Neutral,
		AccentA:    palette.AccentA,
		AccentB:    palette.AccentB,
		Ink:        palette.Ink,
		Muted:      palette.Muted,
		Background: palette.Background,
	}
	var err error
	parse := func(name, hex string, dst *color.RGBA) {
		if hex == "" {
			return
		}
		v, perr := palette.Hex(hex)
		if perr != nil {
			err = multierr.Append(err, errors.Wrapf(perr, "palette.%s", name))
			return
		}
		*dst = v
	}
	parse("neutral", s.Palette.Neutral, &c.Neutral)
	parse("accent_a", s.Palette.AccentA, &c.AccentA)
	parse("accent_b", s.Palette.AccentB, &c.AccentB)
	parse("ink", s.Palette.Ink, &c.Ink)
	parse("muted", s.Palette.Muted, &c.Muted)
	parse("background", s.Palette.Background, &c.Background)
	return c, err
}

// Registry returns the built-in curves plus the scene's scripted ones.
func (s *Scene) Registry() (*ease.Registry, error) {
	reg := ease.NewRegistry()
	var err error
	for _, name := range sortedKeys(s.Easings) {
		f, serr := ease.FromStarlark(name, s.Easings[name])
		if serr != nil {
			err = multierr.Append(err, errors.Wrapf(serr, "easings.%s", name))
			continue
		}
		reg.Register(name, f)
	}
	return reg, err
}

func lookup(reg *ease.Registry, field, name string) (ease.Func, error) {
	f, ok := reg.Lookup(name)
	if !ok {
		return nil, errors.Errorf("%s: unknown ease %q", field, name)
	}
	return f, nil
}

// Params resolves the tunables of kind: built-in defaults, the scene's
// palette and blend factors, then the scene's overrides.
func (s *Scene) Params(kind proximity.Kind, reg *ease.Registry) (proximity.Params, error) {
	p, ok := proximity.Defaults(kind)
	if !ok {
		return p, errors.Errorf("unknown kind %q", kind)
	}
	var err error
	// Palette problems are reported by Validate; bad entries keep the built-ins.
	colors, _ := s.Colors()
	p.Neutral, p.AccentA, p.AccentB = colors.Neutral, colors.AccentA, colors.AccentB
	p.AccentBlend, p.NeutralBlend = s.Blend.Accent, s.Blend.Neutral

	o, ok := s.Kinds[string(kind)]
	if !ok {
		return p, err
	}
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Falloff, o.Falloff)
	set(&p.MinWeight, o.MinWeight)
	set(&p.MaxWeight, o.MaxWeight)
	set(&p.BaseWeight, o.BaseWeight)
	set(&p.MaxScale, o.MaxScale)
	set(&p.MaxLift, o.MaxLift)
	set(&p.MaxShadow, o.MaxShadow)
	set(&p.ContainerLift, o.ContainerLift)
	if o.EnterStagger != nil {
		p.EnterStagger = *o.EnterStagger
	}
	if o.LeaveStagger != nil {
		p.LeaveStagger = *o.LeaveStagger
	}
	motion := func(field string, dst *proximity.Motion, m *Motion) {
		if m == nil {
			return
		}
		if m.Duration > 0 {
			dst.Duration = m.Duration
		}
		if m.Ease != "" {
			f, lerr := lookup(reg, field, m.Ease)
			if lerr != nil {
				err = multierr.Append(err, lerr)
				return
			}
			dst.Ease = f
		}
	}
	motion("kinds."+string(kind)+".hover", &p.Hover, o.Hover)
	motion("kinds."+string(kind)+".leave", &p.Leave, o.Leave)
	return p, err
}

// BlockParams resolves the tunables of b's kind with b's own base weight as
// the rest weight, so glyphs return to the weight they were laid out at.
func (s *Scene) BlockParams(b Block, reg *ease.Registry) (proximity.Params, error) {
	p, err := s.Params(proximity.Kind(b.Kind), reg)
	if b.BaseWeight > 0 {
		p.BaseWeight = b.BaseWeight
	}
	return p, err
}

// RevealParams resolves the reveal timing for a block at baseWeight.
func (s *Scene) RevealParams(baseWeight float64, reg *ease.Registry) (timeline.RevealParams, error) {
	p := timeline.DefaultReveal(baseWeight)
	r := s.Reveal
	p.FromX = r.FromX
	p.Drift = r.Drift
	p.RightOffset = r.RightOffset
	p.Hold = r.Hold
	p.In.Stagger = r.InStagger
	p.Out.Stagger = r.OutStagger
	if r.In.Duration > 0 {
		p.In.Duration = r.In.Duration
	}
	if r.Out.Duration > 0 {
		p.Out.Duration = r.Out.Duration
	}
	var err error
	if r.In.Ease != "" {
		f, lerr := lookup(reg, "reveal.in.ease", r.In.Ease)
		err = multierr.Append(err, lerr)
		if f != nil {
			p.In.Ease = f
		}
	}
	if r.Out.Ease != "" {
		f, lerr := lookup(reg, "reveal.out.ease", r.Out.Ease)
		err = multierr.Append(err, lerr)
		if f != nil {
			p.Out.Ease = f
		}
	}
	return p, err
}

// Style returns the glyph style of a block.
func (b Block) Style() glyph.Style {
	return glyph.Style{Class: b.Kind, Size: b.Size, Italic: b.Italic}
}

// Validate reports every problem in s at once.
func (s *Scene) Validate() error {
	var err error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		err = multierr.Append(err, errors.Errorf("window: size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Window.PageHeight < float64(s.Window.Height) {
		err = multierr.Append(err, errors.Errorf("window: page_height %v is shorter than the window", s.Window.PageHeight))
	}
	if _, cerr := s.Colors(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	if s.Blend.Accent < 0 || s.Blend.Neutral < 0 || s.Blend.Accent > 1 || s.Blend.Neutral > 1 {
		err = multierr.Append(err, errors.Errorf("blend: factors must be within [0,1], got accent=%v neutral=%v", s.Blend.Accent, s.Blend.Neutral))
	}

	reg, rerr := s.Registry()
	err = multierr.Append(err, rerr)

	for _, name := range sortedKeys(s.Kinds) {
		if _, ok := proximity.Defaults(proximity.Kind(name)); !ok {
			err = multierr.Append(err, errors.Errorf("kinds: unknown kind %q", name))
			continue
		}
		p, perr := s.Params(proximity.Kind(name), reg)
		err = multierr.Append(err, perr)
		if p.Falloff <= 0 {
			err = multierr.Append(err, errors.Errorf("kinds.%s: falloff must be positive", name))
		}
		if p.MinWeight > p.MaxWeight {
			err = multierr.Append(err, errors.Errorf("kinds.%s: min_weight %v above max_weight %v", name, p.MinWeight, p.MaxWeight))
		}
	}

	seen := map[string]bool{}
	for i, b := range s.Blocks {
		field := "blocks[" + strconv.Itoa(i) + "]"
		if b.ID == "" {
			err = multierr.Append(err, errors.Errorf("%s: missing id", field))
		} else if seen[b.ID] {
			err = multierr.Append(err, errors.Errorf("%s: duplicate id %q", field, b.ID))
		}
		seen[b.ID] = true
		if strings.TrimSpace(b.Text) == "" {
			err = multierr.Append(err, errors.Errorf("%s: empty text", field))
		}
		if b.Hover {
			if _, ok := proximity.Defaults(proximity.Kind(b.Kind)); !ok {
				err = multierr.Append(err, errors.Errorf("%s: unknown kind %q", field, b.Kind))
			}
		}
		if b.BaseWeight < 1 || b.BaseWeight > 1000 {
			err = multierr.Append(err, errors.Errorf("%s: base_weight %v outside 1..1000", field, b.BaseWeight))
		}
		if b.Size <= 0 {
			err = multierr.Append(err, errors.Errorf("%s: size must be positive", field))
		}
		if b.Hover && b.Reveal {
			err = multierr.Append(err, errors.Errorf("%s: a block is either hovered or revealed", field))
		}
	}

	if s.Reveal.Threshold <= 0 || s.Reveal.Threshold > 1 {
		err = multierr.Append(err, errors.Errorf("reveal: threshold %v outside (0,1]", s.Reveal.Threshold))
	}
	if s.Reveal.Hold < 0 || s.Reveal.InStagger < 0 || s.Reveal.OutStagger < 0 {
		err = multierr.Append(err, errors.New("reveal: hold and staggers must not be negative"))
	}
	if _, perr := s.RevealParams(400, reg); perr != nil {
		err = multierr.Append(err, perr)
	}
	if s.Clock.Interval <= 0 {
		err = multierr.Append(err, errors.Errorf("clock: interval %v must be positive", s.Clock.Interval))
	}
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
