// Package reveal fires a one-shot animation when a container scrolls into
// view.
package reveal

import (
	"github.com/charmbracelet/log"

	"glyph-motion/anim"
	"glyph-motion/glyph"
	"glyph-motion/input"
	"glyph-motion/timeline"
)

// State is the lifecycle of a Trigger. Done is terminal.
type State uint8

const (
	Idle State = iota
	Armed
	Playing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Playing:
		return "playing"
	case Done:
		return "done"
	}
	return "unknown"
}

// Viewport delivers scroll notifications. input.Router implements it.
type Viewport interface {
	OnScroll(fn func(input.ScrollEvent)) input.Handle
	Height() float64
}

// Trigger watches one container and calls onEnter the first time its top
// edge is at or above threshold*viewport height.
type Trigger struct {
	vp        Viewport
	geom      glyph.Geometry
	threshold float64
	onEnter   func()

	state    State
	sub      input.Handle
	watching bool
	disarmed bool

	seq *timeline.Sequence
}

// New returns an Idle trigger. A nil viewport or geometry yields a trigger
// that never fires.
func New(vp Viewport, geom glyph.Geometry, threshold float64, onEnter func()) *Trigger {
	return &Trigger{vp: vp, geom: geom, threshold: threshold, onEnter: onEnter}
}

func (t *Trigger) State() State { return t.state }

// Arm starts observing. It only acts on an Idle trigger that was never
// disarmed. The container is checked immediately, so a block that is
// already in view fires on arm.
func (t *Trigger) Arm() {
	if t.state != Idle || t.disarmed || t.vp == nil || t.geom == nil {
		return
	}
	t.state = Armed
	t.sub = t.vp.OnScroll(func(input.ScrollEvent) { t.check() })
	t.watching = true
	t.check()
}

func (t *Trigger) check() {
	if t.state != Armed {
		return
	}
	b, ok := t.geom.ContainerBounds()
	if !ok || b.Y > t.vp.Height()*t.threshold {
		return
	}
	t.state = Playing
	t.unwatch()
	if t.onEnter != nil {
		t.onEnter()
	}
}

// Finish marks a playing trigger as done.
func (t *Trigger) Finish() {
	if t.state == Playing {
		t.state = Done
	}
}

// Disarm removes the observation. The trigger never arms again.
func (t *Trigger) Disarm() {
	t.disarmed = true
	t.unwatch()
	if t.state == Armed {
		t.state = Idle
	}
}

func (t *Trigger) unwatch() {
	if t.watching {
		t.sub.Remove()
		t.watching = false
	}
}

// Config configures Reveal.
type Config struct {
	// Glyphs are the block's descriptors; their group tags split the sweep.
	Glyphs    []glyph.Descriptor
	Threshold float64
	Seed      uint64
	Params    timeline.RevealParams
	Logger    *log.Logger
}

// Reveal hides block, arms a trigger that plays the reveal sweep when the
// container enters the viewport, and returns the trigger with its teardown.
// Teardown cancels a running sweep and disarms; calling it twice is safe.
func Reveal(s *anim.Scheduler, block *anim.Block, vp Viewport, geom glyph.Geometry, cfg Config) (*Trigger, func()) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	var t *Trigger
	t = New(vp, geom, cfg.Threshold, func() {
		logger.Debug("reveal entered viewport", "glyphs", block.Len(), "seed", cfg.Seed)
		left, right := glyph.Partition(cfg.Glyphs)
		t.seq = timeline.RevealSweep(s, block, left, right, cfg.Seed, cfg.Params)
		t.seq.Attach(t.Disarm)
		t.seq.OnComplete(func() {
			t.Finish()
			logger.Debug("reveal finished")
		})
	})
	if s == nil || block == nil || vp == nil || geom == nil {
		return t, func() {}
	}

	s.Set(block.Glyphs, anim.Props{Scale: 1, X: cfg.Params.FromX, Opacity: 0}, anim.GroupTransform|anim.GroupOpacity)
	t.Arm()

	done := false
	return t, func() {
		if done {
			return
		}
		done = true
		if t.seq != nil {
			t.seq.Cancel()
		}
		t.Disarm()
	}
}
