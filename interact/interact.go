// Package interact binds pointer events on a text block to proximity
// animations.
package interact

import (
	"math"

	"github.com/charmbracelet/log"

	"glyph-motion/anim"
	"glyph-motion/glyph"
	"glyph-motion/input"
	"glyph-motion/proximity"
	"glyph-motion/timeline"
)

// Container is a hoverable text block.
type Container struct {
	ID        string
	Block     *anim.Block
	Geometry  glyph.Geometry
	Scheduler *anim.Scheduler
}

type Option func(*binding)

// WithLogger sets the logger. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(b *binding) { b.logger = l }
}

// WithParams replaces the tunables resolved from the kind.
func WithParams(p proximity.Params) Option {
	return func(b *binding) {
		b.params = p
		b.custom = true
	}
}

type binding struct {
	router *input.Router
	c      *Container
	kind   proximity.Kind
	params proximity.Params
	custom bool
	field  *proximity.Field
	logger *log.Logger

	handles []input.Handle
	enter   *timeline.Sequence
	leave   *timeline.Sequence
	lift    *anim.Handle
	unbound bool
}

// Bind registers c as a hover region on router and returns the function that
// undoes it. Unbind removes the three pointer handlers, cancels the sweeps
// and tweens the binding started, and may be called any number of times.
// A nil router, container or geometry, or an unknown kind, yields a no-op.
func Bind(router *input.Router, c *Container, kind proximity.Kind, opts ...Option) func() {
	b := &binding{router: router, c: c, kind: kind, logger: log.Default()}
	for _, opt := range opts {
		opt(b)
	}
	if router == nil || c == nil || c.Geometry == nil || c.Block == nil || c.Scheduler == nil {
		return func() {}
	}
	if !b.custom {
		p, ok := proximity.Defaults(kind)
		if !ok {
			b.logger.Warn("unknown text kind, not binding", "id", c.ID, "kind", kind)
			return func() {}
		}
		b.params = p
	}
	b.field = proximity.NewField(b.params)

	router.AddRegion(input.Region{ID: c.ID, Bounds: c.Geometry.ContainerBounds})
	b.handles = []input.Handle{
		router.OnPointerEnter(c.ID, b.onEnter),
		router.OnPointerMove(c.ID, b.onMove),
		router.OnPointerLeave(c.ID, b.onLeave),
	}
	b.logger.Debug("bound hover", "id", c.ID, "kind", kind, "glyphs", c.Block.Len())
	return b.unbind
}

func (b *binding) onEnter(ev input.PointerEvent) {
	b.leave.Cancel()
	b.leave = nil

	s := b.c.Scheduler
	b.lift = s.Animate(anim.Request{
		Targets:  []*anim.State{b.c.Block.Container},
		To:       anim.Props{Scale: 1, Y: b.params.ContainerLift},
		Set:      anim.GroupTransform,
		Duration: b.params.Lift.Duration,
		Ease:     b.params.Lift.Ease,
	})

	in := b.field.Intensities(ev.X, b.c.Geometry)
	targets := make([]anim.Props, len(in))
	for i, v := range in {
		if math.IsNaN(v) {
			targets[i] = b.params.Rest()
			continue
		}
		targets[i] = b.params.Target(v)
	}
	b.enter.Cancel()
	b.enter = timeline.EnterSweep(s, b.c.Block, proximity.HoverGroups, func(i int) anim.Props {
		if i < len(targets) {
			return targets[i]
		}
		return b.params.Rest()
	}, timeline.Sweep{
		Duration: b.params.Hover.Duration,
		Ease:     b.params.Hover.Ease,
		Stagger:  b.params.EnterStagger,
	})
}

func (b *binding) onMove(ev input.PointerEvent) {
	s := b.c.Scheduler
	b.field.Update(ev.X, b.c.Geometry, func(i int, v float64) {
		if i >= b.c.Block.Len() {
			return
		}
		s.Animate(anim.Request{
			Targets:  b.c.Block.Glyphs[i : i+1],
			To:       b.params.Target(v),
			Set:      proximity.HoverGroups,
			Duration: b.params.Hover.Duration,
			Ease:     b.params.Hover.Ease,
		})
	})
}

func (b *binding) onLeave(input.PointerEvent) {
	b.enter.Cancel()
	b.enter = nil

	s := b.c.Scheduler
	b.lift = s.Animate(anim.Request{
		Targets:  []*anim.State{b.c.Block.Container},
		To:       anim.Props{Scale: 1},
		Set:      anim.GroupTransform,
		Duration: b.params.Drop.Duration,
		Ease:     b.params.Drop.Ease,
	})
	b.leave.Cancel()
	b.leave = timeline.LeaveSweep(s, b.c.Block, proximity.HoverGroups, b.params.Rest(), timeline.Sweep{
		Duration: b.params.Leave.Duration,
		Ease:     b.params.Leave.Ease,
		Stagger:  b.params.LeaveStagger,
	})
}

func (b *binding) unbind() {
	if b.unbound {
		return
	}
	b.unbound = true
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
	b.router.RemoveRegion(b.c.ID)

	b.enter.Cancel()
	b.leave.Cancel()
	b.lift.Cancel()
	b.c.Scheduler.Kill(b.c.Block.Glyphs...)
	b.c.Scheduler.Kill(b.c.Block.Container)
	b.logger.Debug("unbound hover", "id", b.c.ID)
}
