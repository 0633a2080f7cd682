// Package page assembles a scene into a live page: laid-out text blocks,
// their animation states, hover bindings, reveal triggers and the header
// clock. It has no rendering of its own; hosts read block states each frame.
package page

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"glyph-motion/anim"
	"glyph-motion/canvas"
	"glyph-motion/clockface"
	"glyph-motion/glyph"
	"glyph-motion/input"
	"glyph-motion/interact"
	"glyph-motion/proximity"
	"glyph-motion/reveal"
	"glyph-motion/scene"
)

// Block is one text block on the page.
type Block struct {
	Spec     scene.Block
	Glyphs   []glyph.Descriptor
	Anim     *anim.Block
	Layout   *Layout
	Geometry glyph.Geometry
	Trigger  *reveal.Trigger
}

// Page is a running scene.
type Page struct {
	Scene  *scene.Scene
	Colors scene.Colors
	Clock  *anim.Clock
	Sched  *anim.Scheduler
	Router *input.Router
	Camera *canvas.Camera
	Blocks []*Block
	Face   *clockface.Face

	logger   *log.Logger
	teardown []func()
	closed   bool
}

// New validates sc and builds its page. clk drives both the animation clock
// and the header clock; nil means the wall clock.
func New(sc *scene.Scene, m Measurer, clk clock.Clock, logger *log.Logger) (*Page, error) {
	if logger == nil {
		logger = log.Default()
	}
	if clk == nil {
		clk = clock.New()
	}
	if err := sc.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scene")
	}
	colors, _ := sc.Colors()
	reg, _ := sc.Registry()

	p := &Page{
		Scene:  sc,
		Colors: colors,
		Clock:  anim.NewClock(clk),
		Router: input.NewRouter(float64(sc.Window.Height), sc.Window.PageHeight),
		Camera: &canvas.Camera{},
		Face:   clockface.New(clk, sc.Clock.Interval),
		logger: logger,
	}
	p.Sched = anim.NewScheduler(p.Clock)
	p.Face.SetLogger(logger)

	// The camera must follow the scroll before any reveal checks geometry.
	cam := p.Router.OnScroll(func(ev input.ScrollEvent) { p.Camera.ScrollY = ev.Offset })
	p.teardown = append(p.teardown, cam.Remove)

	for _, spec := range sc.Blocks {
		ds := glyph.Split(spec.Text, spec.Style(), spec.BaseWeight)
		if spec.Reveal {
			ds = glyph.TagParity(ds)
		}
		layout := Measure(m, ds, spec.X, spec.Y)
		b := &Block{
			Spec:     spec,
			Glyphs:   ds,
			Anim:     anim.NewBlock(ds, colors.Ink),
			Layout:   layout,
			Geometry: &geometry{layout: layout, cam: p.Camera},
		}
		p.Blocks = append(p.Blocks, b)
	}

	for _, b := range p.Blocks {
		switch {
		case b.Spec.Hover:
			params, err := sc.BlockParams(b.Spec, reg)
			if err != nil {
				return nil, errors.Wrapf(err, "block %s", b.Spec.ID)
			}
			unbind := interact.Bind(p.Router, &interact.Container{
				ID:        b.Spec.ID,
				Block:     b.Anim,
				Geometry:  b.Geometry,
				Scheduler: p.Sched,
			}, proximity.Kind(b.Spec.Kind), interact.WithParams(params), interact.WithLogger(logger))
			p.teardown = append(p.teardown, unbind)
		case b.Spec.Reveal:
			params, err := sc.RevealParams(b.Spec.BaseWeight, reg)
			if err != nil {
				return nil, errors.Wrapf(err, "block %s", b.Spec.ID)
			}
			tr, stop := reveal.Reveal(p.Sched, b.Anim, p.Router, b.Geometry, reveal.Config{
				Glyphs:    b.Glyphs,
				Threshold: sc.Reveal.Threshold,
				Seed:      sc.Reveal.Seed,
				Params:    params,
				Logger:    logger,
			})
			b.Trigger = tr
			p.teardown = append(p.teardown, stop)
		}
	}
	logger.Debug("page built", "blocks", len(p.Blocks), "listeners", p.Router.Listeners())
	return p, nil
}

// Start runs the animation clock and the header clock.
func (p *Page) Start(ctx context.Context) {
	p.Clock.Start()
	p.Face.Start(ctx)
}

// Update advances every animation by one frame.
func (p *Page) Update() {
	p.Sched.Update()
}

// Block returns the block with the given id, or nil.
func (p *Page) Block(id string) *Block {
	for _, b := range p.Blocks {
		if b.Spec.ID == id {
			return b
		}
	}
	return nil
}

// Sections returns the page y of every reveal block's section boundary.
func (p *Page) Sections() []float64 {
	var ys []float64
	for _, b := range p.Blocks {
		if b.Spec.Reveal {
			ys = append(ys, b.Layout.Container.Y-b.Layout.Container.H)
		}
	}
	return ys
}

// Close unbinds every block, cancels reveals and stops both clocks. It is
// safe to call more than once.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for i := len(p.teardown) - 1; i >= 0; i-- {
		p.teardown[i]()
	}
	p.teardown = nil
	p.Face.Stop()
	p.Clock.Stop()
	p.logger.Debug("page closed", "listeners", p.Router.Listeners(), "active", p.Sched.Active())
}
