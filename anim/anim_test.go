package anim

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"glyph-motion/ease"
	"glyph-motion/glyph"
	"glyph-motion/palette"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

type rig struct {
	mock  *clock.Mock
	sched *Scheduler
	block *Block
}

func newRig(t *testing.T, text string) *rig {
	t.Helper()
	mock := clock.NewMock()
	c := NewClock(mock)
	c.Start()
	return &rig{
		mock:  mock,
		sched: NewScheduler(c),
		block: NewBlock(glyph.Split(text, glyph.Style{}, 400), palette.Ink),
	}
}

func (r *rig) step(d time.Duration) {
	r.mock.Add(d)
	r.sched.Update()
}

func TestClockStartStop(t *testing.T) {
	mock := clock.NewMock()
	c := NewClock(mock)
	if c.Elapsed() != 0 || c.Running() {
		t.Fatal("Expected fresh clock to be stopped at zero")
	}
	c.Start()
	mock.Add(100 * time.Millisecond)
	if c.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed = %v", c.Elapsed())
	}
	c.Stop()
	mock.Add(50 * time.Millisecond)
	if c.Elapsed() != 100*time.Millisecond {
		t.Errorf("stopped clock advanced to %v", c.Elapsed())
	}
	c.Start()
	c.Start()
	mock.Add(10 * time.Millisecond)
	if c.Elapsed() != 110*time.Millisecond {
		t.Errorf("Elapsed = %v, want 110ms", c.Elapsed())
	}
}

func TestAnimateReachesTarget(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	h := r.sched.Animate(Request{
		Targets:  []*State{st},
		To:       Props{Weight: 900},
		Set:      GroupWeight,
		Duration: 250 * time.Millisecond,
	})

	r.step(100 * time.Millisecond)
	if w := st.Props().Weight; !approx(w, 600) {
		t.Errorf("Expected weight 600 at 40%%, got %v", w)
	}
	if h.Done() {
		t.Error("handle finished early")
	}

	r.step(200 * time.Millisecond)
	if w := st.Props().Weight; w != 900 {
		t.Errorf("Expected exact target 900, got %v", w)
	}
	if !h.Done() || r.sched.Active() != 0 {
		t.Errorf("Expected completed handle and no active tweens, active=%d", r.sched.Active())
	}
}

func TestOverwriteSupersedes(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	a := r.sched.Animate(Request{Targets: []*State{st}, To: Props{Weight: 900}, Set: GroupWeight, Duration: time.Second})
	r.step(500 * time.Millisecond)
	if w := st.Props().Weight; !approx(w, 650) {
		t.Fatalf("Expected 650 halfway, got %v", w)
	}

	completedA := false
	a.OnComplete(func() { completedA = true })

	b := r.sched.Animate(Request{Targets: []*State{st}, To: Props{Weight: 100}, Set: GroupWeight, Duration: time.Second})
	if r.sched.Active() != 1 {
		t.Errorf("Expected exactly one active tween, got %d", r.sched.Active())
	}
	if !a.Stopped() || a.Done() {
		t.Error("Expected A to be overwritten")
	}
	// B starts from where A left the glyph, not from A's start value.
	r.step(250 * time.Millisecond)
	if w := st.Props().Weight; !approx(w, 650-550*0.25) {
		t.Errorf("Expected B to continue from 650, got %v", w)
	}
	for i := 0; i < 10; i++ {
		r.step(100 * time.Millisecond)
		if st.Props().Weight == 900 {
			t.Fatal("A's target was reached after overwrite")
		}
	}
	if st.Props().Weight != 100 || !b.Done() {
		t.Errorf("Expected B to land on 100, got %v", st.Props().Weight)
	}
	if completedA {
		t.Error("OnComplete ran for an overwritten handle")
	}
}

func TestPartialOverwriteKeepsOtherGroups(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	a := r.sched.Animate(Request{
		Targets:  []*State{st},
		To:       Props{Weight: 900, Color: palette.AccentA, ColorSet: true},
		Set:      GroupWeight | GroupColor,
		Duration: 200 * time.Millisecond,
	})
	r.step(100 * time.Millisecond)
	r.sched.Animate(Request{Targets: []*State{st}, To: Props{Weight: 100}, Set: GroupWeight, Duration: 100 * time.Millisecond})

	completed := false
	a.OnComplete(func() { completed = true })
	r.step(200 * time.Millisecond)

	if st.Color() != palette.AccentA {
		t.Errorf("Expected color tween to finish, got %v", st.Color())
	}
	if st.Props().Weight != 100 {
		t.Errorf("Expected weight from the newer tween, got %v", st.Props().Weight)
	}
	if !completed {
		t.Error("Expected OnComplete for the surviving color tween")
	}
	if a.Done() {
		t.Error("partially overwritten handle should not report Done")
	}
}

func TestEmptyRequestIsNoop(t *testing.T) {
	r := newRig(t, "abc")
	h := r.sched.Animate(Request{To: Props{Weight: 900}, Set: GroupWeight, Duration: time.Second})
	if h.live() || r.sched.Active() != 0 {
		t.Error("Expected empty request to be inert")
	}
	h.Cancel()
	h.Cancel()
}

func TestStaggerOrder(t *testing.T) {
	r := newRig(t, "abc")
	r.sched.Animate(Request{
		Targets:  r.block.Glyphs,
		To:       Props{Weight: 800},
		Set:      GroupWeight,
		Duration: 100 * time.Millisecond,
		Stagger:  100 * time.Millisecond,
	})
	r.step(150 * time.Millisecond)
	w := func(i int) float64 { return r.block.Glyphs[i].Props().Weight }
	if w(0) != 800 || !approx(w(1), 600) || w(2) != 400 {
		t.Errorf("unexpected stagger weights %v %v %v", w(0), w(1), w(2))
	}
}

func TestAfterTimesFromDueTime(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	var order []int
	r.sched.After(200*time.Millisecond, func() { order = append(order, 2) })
	r.sched.After(100*time.Millisecond, func() {
		order = append(order, 1)
		r.sched.Animate(Request{Targets: []*State{st}, To: Props{Opacity: 0}, Set: GroupOpacity, Duration: 100 * time.Millisecond})
	})
	cancelled := r.sched.After(120*time.Millisecond, func() { order = append(order, 99) })
	cancelled.Cancel()

	r.step(150 * time.Millisecond)
	if o := st.Props().Opacity; !approx(o, 0.5) {
		t.Errorf("Expected opacity 0.5, got %v", o)
	}
	r.step(100 * time.Millisecond)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("unexpected timer order %v", order)
	}
	if r.sched.Active() != 0 {
		t.Errorf("Expected nothing active, got %d", r.sched.Active())
	}
}

func TestCancelLeavesValues(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	h := r.sched.Animate(Request{Targets: []*State{st}, To: Props{Scale: 2}, Set: GroupTransform, Duration: time.Second, Ease: ease.Linear})
	r.step(500 * time.Millisecond)
	h.Cancel()
	h.Cancel()
	r.step(time.Second)
	if s := st.Props().Scale; !approx(s, 1.5) {
		t.Errorf("Expected scale to stay at 1.5, got %v", s)
	}
	if !h.Stopped() || h.Done() {
		t.Error("Expected cancelled handle")
	}
}

func TestColorClearsToInherited(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	r.sched.Set([]*State{st}, Props{Color: color.RGBA{255, 0, 0, 255}, ColorSet: true}, GroupColor)
	if st.Color() != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("Set did not apply, got %v", st.Color())
	}
	r.sched.Animate(Request{Targets: []*State{st}, To: Props{}, Set: GroupColor, Duration: 100 * time.Millisecond})
	r.step(50 * time.Millisecond)
	if !st.Props().ColorSet {
		t.Error("Expected explicit color mid-tween")
	}
	r.step(50 * time.Millisecond)
	if st.Props().ColorSet || st.Color() != palette.Ink {
		t.Errorf("Expected inherited color after clearing, got %v", st.Color())
	}
}

func TestStoppedClockFreezesAnimations(t *testing.T) {
	r := newRig(t, "a")
	st := r.block.Glyphs[0]
	r.sched.Animate(Request{Targets: []*State{st}, To: Props{Y: -6}, Set: GroupTransform, Duration: 100 * time.Millisecond})
	r.sched.Clock().Stop()
	r.step(time.Second)
	if y := st.Props().Y; y != 0 {
		t.Errorf("Expected no progress while stopped, got %v", y)
	}
	r.sched.Clock().Start()
	r.step(100 * time.Millisecond)
	if y := st.Props().Y; y != -6 {
		t.Errorf("Expected -6 after resume, got %v", y)
	}
}

func TestKill(t *testing.T) {
	r := newRig(t, "ab")
	r.sched.Animate(Request{Targets: r.block.Glyphs, To: Props{Opacity: 0}, Set: GroupOpacity, Duration: time.Second})
	r.sched.Kill(r.block.Glyphs...)
	if r.sched.Active() != 0 {
		t.Errorf("Expected Kill to clear tweens, got %d", r.sched.Active())
	}
	if r.block.Glyphs[0].Busy(GroupOpacity) {
		t.Error("Expected no owner after Kill")
	}
}
