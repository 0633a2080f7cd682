package input

import "glyph-motion/glyph"

// EventType identifies the kind of event a handler listens to.
type EventType uint8

const (
	EventPointerEnter EventType = iota
	EventPointerMove
	EventPointerLeave
	EventScroll
)

// PointerEvent is delivered to pointer handlers. X and Y are screen
// coordinates.
type PointerEvent struct {
	Region string
	X, Y   float64
}

// ScrollEvent reports the viewport after a scroll.
type ScrollEvent struct {
	Offset         float64
	ViewportHeight float64
}

// Region is a hit area. Bounds is queried on every event, never cached;
// a false return means the region is not laid out and cannot be hovered.
type Region struct {
	ID     string
	Bounds func() (glyph.Rect, bool)
}

type pointerHandler struct {
	id      uint32
	region  string
	fn      func(PointerEvent)
	removed bool
}

type scrollHandler struct {
	id      uint32
	fn      func(ScrollEvent)
	removed bool
}

// Router turns raw pointer positions and wheel deltas into per-region
// enter, move and leave events and viewport scroll notifications.
type Router struct {
	regions []Region
	hovered map[string]bool

	enter  []*pointerHandler
	move   []*pointerHandler
	leave  []*pointerHandler
	scroll []*scrollHandler
	nextID uint32

	px, py     float64
	hasPointer bool

	offset    float64
	maxOffset float64
	viewportH float64

	// WheelStep converts one wheel notch to pixels of scroll.
	WheelStep float64
}

// NewRouter returns a router for a viewport of the given height over a page
// of contentHeight.
func NewRouter(viewportHeight, contentHeight float64) *Router {
	max := contentHeight - viewportHeight
	if max < 0 {
		max = 0
	}
	return &Router{
		hovered:   map[string]bool{},
		viewportH: viewportHeight,
		maxOffset: max,
		WheelStep: 40,
	}
}

// AddRegion registers or replaces a hit area.
func (r *Router) AddRegion(reg Region) {
	for i := range r.regions {
		if r.regions[i].ID == reg.ID {
			r.regions[i] = reg
			return
		}
	}
	r.regions = append(r.regions, reg)
}

// RemoveRegion drops a hit area without dispatching a leave.
func (r *Router) RemoveRegion(id string) {
	for i := range r.regions {
		if r.regions[i].ID == id {
			r.regions = append(r.regions[:i], r.regions[i+1:]...)
			break
		}
	}
	delete(r.hovered, id)
}

// Handle allows removing a registered handler.
type Handle struct {
	r     *Router
	id    uint32
	event EventType
}

// Remove unregisters the handler. It is safe to call more than once and
// from inside a handler during dispatch.
func (h Handle) Remove() {
	if h.r == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.r.enter = removePointerHandler(h.r.enter, h.id)
	case EventPointerMove:
		h.r.move = removePointerHandler(h.r.move, h.id)
	case EventPointerLeave:
		h.r.leave = removePointerHandler(h.r.leave, h.id)
	case EventScroll:
		for i, e := range h.r.scroll {
			if e.id == h.id {
				e.removed = true
				h.r.scroll = append(h.r.scroll[:i:i], h.r.scroll[i+1:]...)
				return
			}
		}
	}
}

func removePointerHandler(s []*pointerHandler, id uint32) []*pointerHandler {
	for i, e := range s {
		if e.id == id {
			e.removed = true
			// Full slice expression so a snapshot taken for dispatch keeps its order.
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func (r *Router) on(event EventType, region string, fn func(PointerEvent)) Handle {
	r.nextID++
	e := &pointerHandler{id: r.nextID, region: region, fn: fn}
	switch event {
	case EventPointerEnter:
		r.enter = append(r.enter, e)
	case EventPointerMove:
		r.move = append(r.move, e)
	case EventPointerLeave:
		r.leave = append(r.leave, e)
	}
	return Handle{r: r, id: e.id, event: event}
}

func (r *Router) OnPointerEnter(region string, fn func(PointerEvent)) Handle {
	return r.on(EventPointerEnter, region, fn)
}

func (r *Router) OnPointerMove(region string, fn func(PointerEvent)) Handle {
	return r.on(EventPointerMove, region, fn)
}

func (r *Router) OnPointerLeave(region string, fn func(PointerEvent)) Handle {
	return r.on(EventPointerLeave, region, fn)
}

// OnScroll registers fn for viewport scroll notifications.
func (r *Router) OnScroll(fn func(ScrollEvent)) Handle {
	r.nextID++
	r.scroll = append(r.scroll, &scrollHandler{id: r.nextID, fn: fn})
	return Handle{r: r, id: r.nextID, event: EventScroll}
}

// Listeners counts registered handlers.
func (r *Router) Listeners() int {
	return len(r.enter) + len(r.move) + len(r.leave) + len(r.scroll)
}

// Height is the viewport height.
func (r *Router) Height() float64 { return r.viewportH }

// Offset is the current scroll offset in pixels from the top of the page.
func (r *Router) Offset() float64 { return r.offset }

// Feed moves the pointer to (x, y). Regions the pointer left get a leave,
// regions it entered get an enter followed by a move, regions it stays in
// get a move.
func (r *Router) Feed(x, y float64) {
	r.px, r.py, r.hasPointer = x, y, true
	ev := PointerEvent{X: x, Y: y}
	for _, reg := range append([]Region(nil), r.regions...) {
		ev.Region = reg.ID
		inside := false
		if reg.Bounds != nil {
			if b, ok := reg.Bounds(); ok {
				inside = b.Contains(x, y)
			}
		}
		was := r.hovered[reg.ID]
		switch {
		case inside && !was:
			r.hovered[reg.ID] = true
			dispatch(r.enter, ev)
			dispatch(r.move, ev)
		case inside:
			dispatch(r.move, ev)
		case was:
			delete(r.hovered, reg.ID)
			dispatch(r.leave, ev)
		}
	}
}

// Scroll moves the viewport by dy pixels, clamped to the page, notifies
// scroll observers and re-evaluates hover under the stationary pointer.
func (r *Router) Scroll(dy float64) {
	next := r.offset + dy
	if next < 0 {
		next = 0
	}
	if next > r.maxOffset {
		next = r.maxOffset
	}
	if next == r.offset {
		return
	}
	r.offset = next

	ev := ScrollEvent{Offset: r.offset, ViewportHeight: r.viewportH}
	for _, e := range append([]*scrollHandler(nil), r.scroll...) {
		if !e.removed {
			e.fn(ev)
		}
	}
	if r.hasPointer {
		r.Feed(r.px, r.py)
	}
}

// Wheel scrolls by a wheel delta in notches; positive notches scroll up.
func (r *Router) Wheel(notches float64) {
	if notches != 0 {
		r.Scroll(-notches * r.WheelStep)
	}
}

// Pointer returns the last fed pointer position. ok is false before the
// first Feed.
func (r *Router) Pointer() (x, y float64, ok bool) {
	return r.px, r.py, r.hasPointer
}

func dispatch(hs []*pointerHandler, ev PointerEvent) {
	for _, h := range append([]*pointerHandler(nil), hs...) {
		if !h.removed && h.region == ev.Region {
			h.fn(ev)
		}
	}
}
