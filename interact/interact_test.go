package interact

import (
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"glyph-motion/anim"
	"glyph-motion/glyph"
	"glyph-motion/input"
	"glyph-motion/palette"
	"glyph-motion/proximity"
)

type rig struct {
	mock   *clock.Mock
	sched  *anim.Scheduler
	router *input.Router
	c      *Container
}

// "portfolio" laid out so the first glyph is centered at x=31.25 and the
// last one 500px to its right.
func newRig() *rig {
	mock := clock.NewMock()
	clk := anim.NewClock(mock)
	clk.Start()
	sched := anim.NewScheduler(clk)
	ds := glyph.Split("portfolio", glyph.Style{Italic: true}, 400)
	return &rig{
		mock:   mock,
		sched:  sched,
		router: input.NewRouter(800, 800),
		c: &Container{
			ID:        "title",
			Block:     anim.NewBlock(ds, palette.Ink),
			Geometry:  glyph.Row(0, 100, len(ds), 62.5, 60),
			Scheduler: sched,
		},
	}
}

func (r *rig) step(d time.Duration) {
	for d > 0 {
		tick := 16 * time.Millisecond
		if d < tick {
			tick = d
		}
		r.mock.Add(tick)
		r.sched.Update()
		d -= tick
	}
}

func TestEnterNearFirstGlyph(t *testing.T) {
	r := newRig()
	unbind := Bind(r.router, r.c, proximity.KindTitle)
	defer unbind()

	r.router.Feed(31.25, 120)
	r.step(time.Second)

	first := r.c.Block.Glyphs[0].Props()
	if first.Weight != 900 || first.Scale != 1.25 || first.Y != -6 {
		t.Errorf("Expected first glyph at max, got %+v", first)
	}
	last := r.c.Block.Glyphs[8].Props()
	if math.Abs(last.Weight-400) > 1e-3 || math.Abs(last.Scale-1) > 1e-3 {
		t.Errorf("Expected last glyph near baseline, got %+v", last)
	}
	if y := r.c.Block.Container.Props().Y; y != -1 {
		t.Errorf("Expected container lift -1, got %v", y)
	}
}

func TestLeaveResetsInReverse(t *testing.T) {
	r := newRig()
	p, _ := proximity.Defaults(proximity.KindTitle)
	p.Falloff = 1e12 // every glyph at full intensity
	unbind := Bind(r.router, r.c, proximity.KindTitle, WithParams(p))
	defer unbind()

	r.router.Feed(280, 120)
	r.step(time.Second)
	for i, st := range r.c.Block.Glyphs {
		if math.Abs(st.Props().Weight-900) > 1e-3 {
			t.Fatalf("glyph %d not raised: %v", i, st.Props().Weight)
		}
	}

	r.router.Feed(1000, 1000)
	r.step(16 * time.Millisecond)
	if w := r.c.Block.Glyphs[8].Props().Weight; w >= 900-1e-3 {
		t.Errorf("Expected the last glyph to start resetting first, weight %v", w)
	}
	if w := r.c.Block.Glyphs[0].Props().Weight; math.Abs(w-900) > 1e-3 {
		t.Errorf("Expected the first glyph untouched so far, weight %v", w)
	}

	r.step(time.Second)
	for i, st := range r.c.Block.Glyphs {
		pr := st.Props()
		if pr.Weight != 400 || pr.Scale != 1 || pr.Y != 0 || pr.ColorSet || pr.Shadow != 0 {
			t.Errorf("glyph %d not at rest: %+v", i, pr)
		}
		if st.Color() != palette.Ink {
			t.Errorf("glyph %d color not cleared: %v", i, st.Color())
		}
	}
	if y := r.c.Block.Container.Props().Y; y != 0 {
		t.Errorf("Expected container back at 0, got %v", y)
	}
	if r.sched.Active() != 0 {
		t.Errorf("Expected nothing active, got %d", r.sched.Active())
	}
}

func TestEnterCancelsLeave(t *testing.T) {
	r := newRig()
	unbind := Bind(r.router, r.c, proximity.KindTitle)
	defer unbind()

	r.router.Feed(31.25, 120)
	r.step(time.Second)
	r.router.Feed(1000, 1000)
	r.step(50 * time.Millisecond)
	r.router.Feed(31.25, 120)
	r.step(time.Second)

	if pr := r.c.Block.Glyphs[0].Props(); pr.Weight != 900 {
		t.Errorf("Expected re-entry to win over the leave sweep, got %+v", pr)
	}
}

func TestUnbindIsIdempotent(t *testing.T) {
	r := newRig()
	unbind := Bind(r.router, r.c, proximity.KindSubtitle)
	if r.router.Listeners() != 3 {
		t.Fatalf("Listeners = %d, want 3", r.router.Listeners())
	}
	r.router.Feed(31.25, 120)
	r.step(100 * time.Millisecond)

	unbind()
	unbind()
	if r.router.Listeners() != 0 {
		t.Errorf("Listeners = %d after unbind", r.router.Listeners())
	}
	if r.sched.Active() != 0 {
		t.Errorf("Active = %d after unbind", r.sched.Active())
	}

	before := r.c.Block.Glyphs[0].Props()
	r.router.Feed(31.25, 130)
	r.step(time.Second)
	if r.c.Block.Glyphs[0].Props() != before {
		t.Error("events still reach an unbound block")
	}
}

func TestNilContainerIsInert(t *testing.T) {
	r := newRig()
	Bind(r.router, nil, proximity.KindTitle)()
	Bind(nil, r.c, proximity.KindTitle)()
	r.c.Geometry = nil
	unbind := Bind(r.router, r.c, proximity.KindTitle)
	unbind()
	unbind()
	if r.router.Listeners() != 0 {
		t.Errorf("Listeners = %d", r.router.Listeners())
	}
}

func TestUnknownKindIsInert(t *testing.T) {
	r := newRig()
	Bind(r.router, r.c, "banner")()
	if r.router.Listeners() != 0 {
		t.Errorf("Listeners = %d", r.router.Listeners())
	}
}
