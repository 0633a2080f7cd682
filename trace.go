package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"glyph-motion/anim"
	"glyph-motion/page"
)

// frame is one tick at ebiten's default 60 TPS.
const frame = time.Second / 60

// traceStep is one scripted input at a point in simulated time.
type traceStep struct {
	At   time.Duration
	Name string
	Do   func()
}

// tracer drives a page on a mock clock and prints block states.
type tracer struct {
	page  *page.Page
	mock  *clock.Mock
	out   io.Writer
	every time.Duration
	ids   []string
}

// script builds the default pointer and scroll scenario against the block
// with the given id: rest, enter on the first glyph, sweep to the last,
// leave, then scroll to the bottom of the page.
func (t *tracer) script(id string) ([]traceStep, error) {
	b := t.page.Block(id)
	if b == nil {
		return nil, errors.Errorf("no block %q", id)
	}
	first, ok := b.Geometry.GlyphBounds(0)
	if !ok {
		return nil, errors.Errorf("block %q has no glyphs", id)
	}
	last, _ := b.Geometry.GlyphBounds(b.Geometry.Len() - 1)
	r := t.page.Router

	return []traceStep{
		{0, "pointer outside", func() { r.Feed(5, 5) }},
		{200 * time.Millisecond, "enter " + id, func() { r.Feed(first.CenterX(), first.CenterY()) }},
		{600 * time.Millisecond, "move to last glyph", func() { r.Feed(last.CenterX(), last.CenterY()) }},
		{1200 * time.Millisecond, "leave " + id, func() { r.Feed(5, 5) }},
		{1800 * time.Millisecond, "scroll to end", func() { r.Scroll(t.page.Scene.Window.PageHeight) }},
	}, nil
}

// Run plays steps and advances the page frame by frame until total has
// elapsed, printing a state line every t.every.
func (t *tracer) Run(steps []traceStep, total time.Duration) {
	next := time.Duration(0)
	for now := time.Duration(0); now <= total; now += frame {
		for len(steps) > 0 && steps[0].At <= now {
			fmt.Fprintf(t.out, "%7.3fs # %s\n", now.Seconds(), steps[0].Name)
			steps[0].Do()
			steps = steps[1:]
		}
		if now >= next {
			t.print(now)
			next += t.every
		}
		t.mock.Add(frame)
		t.page.Update()
	}
}

func (t *tracer) print(now time.Duration) {
	for _, id := range t.ids {
		b := t.page.Block(id)
		if b == nil {
			continue
		}
		weights := lo.Map(b.Anim.Glyphs, func(st *anim.State, _ int) string {
			return strconv.Itoa(int(math.Round(st.Props().Weight)))
		})
		opacity := lo.SumBy(b.Anim.Glyphs, func(st *anim.State) float64 { return st.Props().Opacity })
		if n := len(b.Anim.Glyphs); n > 0 {
			opacity /= float64(n)
		}
		busy := lo.CountBy(b.Anim.Glyphs, func(st *anim.State) bool { return st.Busy(anim.GroupAll) })
		fmt.Fprintf(t.out, "%7.3fs %-10s lift=%5.1f opacity=%.2f busy=%d weight=[%s]\n",
			now.Seconds(), id, b.Anim.Container.Props().Y, opacity, busy, strings.Join(weights, " "))
	}
}
