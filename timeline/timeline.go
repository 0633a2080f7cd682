// Package timeline composes per-glyph animations into ordered, staggered
// and optionally overlapping sequences.
package timeline

import (
	"time"

	"glyph-motion/anim"
	"glyph-motion/ease"
)

// Placement positions a step relative to the end of the previous one.
type Placement struct {
	offset time.Duration
}

// Sequential starts a step when the previous step ends.
var Sequential = Placement{}

// Offset starts a step d after the previous step ends. A negative d overlaps
// the two steps.
func Offset(d time.Duration) Placement { return Placement{offset: d} }

// Step animates a group of glyphs, in the given index order.
type Step struct {
	Indices []int
	To      anim.Props
	// Target, when set, overrides To per glyph index.
	Target   func(i int) anim.Props
	Set      anim.Group
	Duration time.Duration
	Ease     ease.Func
	Stagger  time.Duration
	Place    Placement

	// From is written to FromSet of the step's glyphs when the sequence is
	// built, before anything plays.
	From    anim.Props
	FromSet anim.Group
}

// span is the time from a step's start to its last glyph's end.
func (st Step) span() time.Duration {
	n := len(st.Indices)
	if n == 0 {
		return st.Duration
	}
	return time.Duration(n-1)*st.Stagger + st.Duration
}

// Sequence is a built, running list of steps.
type Sequence struct {
	s      *anim.Scheduler
	timers []*anim.Handle
	tweens []*anim.Handle
	detach []func()
	starts []time.Duration
	total  time.Duration

	cancelled bool
	finished  bool
	onDone    []func()
}

// Build schedules steps against block. Step starts are computed up front;
// each step issues its tweens when its start time arrives.
func Build(s *anim.Scheduler, block *anim.Block, steps []Step) *Sequence {
	seq := &Sequence{s: s}
	if s == nil || block == nil {
		seq.finished = true
		return seq
	}

	var end time.Duration
	for k, st := range steps {
		start := end + st.Place.offset
		if k == 0 {
			start = st.Place.offset
		}
		if start < 0 {
			start = 0
		}
		seq.starts = append(seq.starts, start)
		end = start + st.span()
		if end > seq.total {
			seq.total = end
		}

		if st.FromSet != 0 {
			s.Set(block.Select(st.Indices), st.From, st.FromSet)
		}
		st := st
		seq.timers = append(seq.timers, s.After(start, func() { seq.play(block, st) }))
	}

	seq.timers = append(seq.timers, s.After(seq.total, seq.complete))
	return seq
}

func (seq *Sequence) play(block *anim.Block, st Step) {
	if st.Target == nil {
		seq.tweens = append(seq.tweens, seq.s.Animate(anim.Request{
			Targets:  block.Select(st.Indices),
			To:       st.To,
			Set:      st.Set,
			Duration: st.Duration,
			Ease:     st.Ease,
			Stagger:  st.Stagger,
		}))
		return
	}
	for k, i := range st.Indices {
		if i < 0 || i >= block.Len() {
			continue
		}
		seq.tweens = append(seq.tweens, seq.s.Animate(anim.Request{
			Targets:  []*anim.State{block.Glyphs[i]},
			To:       st.Target(i),
			Set:      st.Set,
			Duration: st.Duration,
			Ease:     st.Ease,
			Delay:    time.Duration(k) * st.Stagger,
		}))
	}
}

func (seq *Sequence) complete() {
	if seq.cancelled {
		return
	}
	seq.finished = true
	fns := seq.onDone
	seq.onDone = nil
	for _, fn := range fns {
		fn()
	}
}

// Cancel stops pending steps, cancels the tweens already issued and runs
// every attached detach function. Calling it again does nothing.
func (seq *Sequence) Cancel() {
	if seq == nil || seq.cancelled {
		return
	}
	seq.cancelled = true
	for _, h := range seq.timers {
		h.Cancel()
	}
	for _, h := range seq.tweens {
		h.Cancel()
	}
	seq.onDone = nil
	detach := seq.detach
	seq.detach = nil
	for _, fn := range detach {
		fn()
	}
}

// Attach ties fn to the sequence's lifetime: it runs on Cancel. On an
// already cancelled sequence fn runs immediately.
func (seq *Sequence) Attach(fn func()) {
	if seq.cancelled {
		fn()
		return
	}
	seq.detach = append(seq.detach, fn)
}

// OnComplete runs fn when the last step ends. It never runs for a cancelled
// sequence.
func (seq *Sequence) OnComplete(fn func()) {
	if seq.cancelled {
		return
	}
	if seq.finished {
		fn()
		return
	}
	seq.onDone = append(seq.onDone, fn)
}

func (seq *Sequence) Done() bool { return seq.finished && !seq.cancelled }

// Cancelled reports whether Cancel was called.
func (seq *Sequence) Cancelled() bool { return seq.cancelled }

// Duration is the end of the latest step.
func (seq *Sequence) Duration() time.Duration { return seq.total }

// StepStarts returns the computed start of every step, relative to Build.
func (seq *Sequence) StepStarts() []time.Duration {
	return append([]time.Duration(nil), seq.starts...)
}
