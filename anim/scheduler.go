package anim

import (
	"time"

	"glyph-motion/ease"
)

// Request describes one animation submitted to the Scheduler.
type Request struct {
	Targets  []*State
	To       Props
	Set      Group // groups written by this request
	Duration time.Duration
	Ease     ease.Func
	// Delay postpones the first target; Stagger adds a per-target delay in slice order.
	Delay   time.Duration
	Stagger time.Duration
}

type tween struct {
	state    *State
	mask     Group
	from, to Props
	start    time.Duration
	dur      time.Duration
	ease     ease.Func
	started  bool
	dead     bool
	handle   *Handle
}

type timer struct {
	at     time.Duration
	fn     func()
	dead   bool
	handle *Handle
}

// Scheduler owns every animatable State and advances its tweens once per
// frame. It is not safe for concurrent use: events, Update and reads all
// happen on the host's frame loop.
type Scheduler struct {
	clock  *Clock
	now    time.Duration
	tweens []*tween
	timers []*timer
}

func NewScheduler(c *Clock) *Scheduler {
	return &Scheduler{clock: c}
}

// Now is the scheduler time of the current frame.
func (s *Scheduler) Now() time.Duration { return s.now }

// Clock returns the frame clock driving s.
func (s *Scheduler) Clock() *Clock { return s.clock }

// Animate starts req and returns its handle. Any tween still pending or
// running on one of req's groups for one of its targets is overwritten
// immediately: it stops writing those groups and never reaches its target.
// An empty target list is a no-op.
func (s *Scheduler) Animate(req Request) *Handle {
	h := &Handle{s: s}
	if len(req.Targets) == 0 || req.Set == 0 {
		h.finished = true
		return h
	}
	f := req.Ease
	if f == nil {
		f = ease.Linear
	}
	for k, st := range req.Targets {
		if st == nil {
			continue
		}
		s.overwrite(st, req.Set)
		t := &tween{
			state:  st,
			mask:   req.Set,
			to:     req.To,
			start:  s.now + req.Delay + time.Duration(k)*req.Stagger,
			dur:    req.Duration,
			ease:   f,
			handle: h,
		}
		for i := 0; i < numGroups; i++ {
			if req.Set.Has(1 << i) {
				st.slots[i] = t
			}
		}
		h.tweens = append(h.tweens, t)
		h.pending++
		s.tweens = append(s.tweens, t)
	}
	if h.pending == 0 {
		h.finished = true
	}
	return h
}

// Set writes p to the masked groups of states immediately, overwriting any
// tween on those groups.
func (s *Scheduler) Set(states []*State, p Props, mask Group) {
	for _, st := range states {
		if st == nil {
			continue
		}
		s.overwrite(st, mask)
		st.apply(p, mask)
	}
}

// After calls fn once d has elapsed on the scheduler clock. Tweens created
// from fn are timed from the exact due time, not from the frame that ran it.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	h := &Handle{s: s, pending: 1}
	t := &timer{at: s.now + d, fn: fn, handle: h}
	h.timers = append(h.timers, t)
	s.timers = append(s.timers, t)
	return h
}

// Kill cancels every tween writing to any of states, leaving their values
// where they are.
func (s *Scheduler) Kill(states ...*State) {
	for _, st := range states {
		if st != nil {
			s.overwrite(st, GroupAll)
		}
	}
}

// Active counts live tweens and timers.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.tweens {
		if !t.dead {
			n++
		}
	}
	for _, t := range s.timers {
		if !t.dead {
			n++
		}
	}
	return n
}

// Update advances the scheduler to the clock's elapsed time: due timers fire
// in order, then every live tween renders its current frame.
func (s *Scheduler) Update() {
	target := s.now
	if s.clock != nil {
		target = s.clock.Elapsed()
	}
	if target < s.now {
		target = s.now
	}

	// Timers may schedule further timers that are already due.
	for {
		next := s.nextTimer(target)
		if next == nil {
			break
		}
		s.now = next.at
		next.dead = true
		next.fn()
		next.handle.settle()
	}
	s.now = target

	for i := 0; i < len(s.tweens); i++ {
		t := s.tweens[i]
		if t.dead || s.now < t.start {
			continue
		}
		if !t.started {
			t.started = true
			t.from = t.state.props
		}
		p := 1.0
		if t.dur > 0 {
			p = float64(s.now-t.start) / float64(t.dur)
		}
		if p >= 1 {
			t.state.apply(t.to, t.mask)
			s.release(t)
			t.handle.settle()
			continue
		}
		t.state.apply(t.state.mix(t.from, t.to, t.ease(p), t.mask), t.mask)
	}

	s.compact()
}

func (s *Scheduler) nextTimer(limit time.Duration) *timer {
	var next *timer
	for _, t := range s.timers {
		if t.dead || t.at > limit {
			continue
		}
		if next == nil || t.at < next.at {
			next = t
		}
	}
	return next
}

// overwrite strips mask from whichever tweens currently own it on st.
func (s *Scheduler) overwrite(st *State, mask Group) {
	for i := 0; i < numGroups; i++ {
		g := Group(1 << i)
		if !mask.Has(g) {
			continue
		}
		old := st.slots[i]
		if old == nil {
			continue
		}
		st.slots[i] = nil
		old.mask &^= g
		old.handle.dropped = true
		if old.mask == 0 && !old.dead {
			old.dead = true
			old.handle.drop()
		}
	}
}

func (s *Scheduler) release(t *tween) {
	t.dead = true
	for i := 0; i < numGroups; i++ {
		if t.state.slots[i] == t {
			t.state.slots[i] = nil
		}
	}
}

func (s *Scheduler) compact() {
	live := s.tweens[:0]
	for _, t := range s.tweens {
		if !t.dead {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live

	timers := s.timers[:0]
	for _, t := range s.timers {
		if !t.dead {
			timers = append(timers, t)
		}
	}
	for i := len(timers); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = timers
}

// Handle tracks the tweens or timer created by one call.
type Handle struct {
	s         *Scheduler
	tweens    []*tween
	timers    []*timer
	pending   int
	completed int
	finished  bool
	cancelled bool
	dropped   bool
	onDone    []func()
}

// Cancel stops every tween and timer of the handle. Values stay where they
// are. Cancelling twice, or after completion, is a no-op.
func (h *Handle) Cancel() {
	if h == nil || h.cancelled || h.finished {
		return
	}
	h.cancelled = true
	for _, t := range h.tweens {
		if !t.dead {
			h.s.release(t)
		}
	}
	for _, t := range h.timers {
		t.dead = true
	}
	h.onDone = nil
}

// Done reports whether every tween ran to completion.
func (h *Handle) Done() bool { return h != nil && h.finished && !h.dropped }

// Stopped reports whether the handle was cancelled or had a tween overwritten.
func (h *Handle) Stopped() bool { return h != nil && (h.cancelled || h.dropped) }

// live reports whether anything of the handle may still run.
func (h *Handle) live() bool { return h != nil && !h.finished && !h.cancelled }

// OnComplete registers fn to run once nothing of the handle is left running
// and at least part of it completed. fn runs immediately if that already
// happened. It never runs for cancelled or fully overwritten handles.
func (h *Handle) OnComplete(fn func()) {
	if h == nil || h.cancelled {
		return
	}
	if h.finished {
		if h.completed > 0 {
			fn()
		}
		return
	}
	h.onDone = append(h.onDone, fn)
}

func (h *Handle) settle() {
	h.completed++
	h.pending--
	h.check()
}

func (h *Handle) drop() {
	h.dropped = true
	h.pending--
	h.check()
}

func (h *Handle) check() {
	if h.pending > 0 || h.finished || h.cancelled {
		return
	}
	h.finished = true
	fns := h.onDone
	h.onDone = nil
	if h.completed == 0 {
		return
	}
	for _, fn := range fns {
		fn()
	}
}
