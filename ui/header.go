package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Link is a navigation label in the header.
type Link struct {
	Label string
	X, Y  float32
	W, H  float32
}

func (l *Link) IsMouseOver(mx, my int) bool {
	return float32(mx) >= l.X && float32(mx) <= l.X+l.W &&
		float32(my) >= l.Y && float32(my) <= l.Y+l.H
}

// Header is the fixed navigation bar: title and links on the left, icons and
// the clock on the right. It is static apart from the clock text.
type Header struct {
	Title  string
	Links  []*Link
	Icons  []string
	Height float32

	// Clock returns the time and date lines.
	Clock func() (string, string)

	Background color.Color
	Ink        color.Color
	Muted      color.Color

	face  text.Face
	small text.Face
}

func NewHeader(title string, links, icons []string, face, small text.Face) *Header {
	h := &Header{
		Title:      title,
		Icons:      icons,
		Height:     48,
		Background: color.RGBA{255, 255, 255, 200},
		Ink:        color.Black,
		Muted:      color.RGBA{0, 0, 0, 153},
		face:       face,
		small:      small,
	}
	for _, l := range links {
		h.Links = append(h.Links, &Link{Label: l})
	}
	return h
}

func (h *Header) layoutLinks() {
	x := float32(24)
	if h.face != nil {
		x += float32(text.Advance(h.Title, h.face)) + 32
	}
	for _, l := range h.Links {
		w := float32(60)
		if h.small != nil {
			w = float32(text.Advance(l.Label, h.small))
		}
		l.X, l.Y, l.W, l.H = x, 0, w, h.Height
		x += w + 20
	}
}

// Draw renders the header. Links under (mx, my) are drawn in ink instead
// of muted.
func (h *Header) Draw(screen *ebiten.Image, mx, my int) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, h.Height, h.Background, false)
	vector.StrokeLine(screen, 0, h.Height, w, h.Height, 1, color.RGBA{0, 0, 0, 20}, false)
	h.layoutLinks()

	if h.face != nil {
		drawText(screen, h.face, h.Title, 24, float64(h.Height)/2, h.Ink)
	}
	if h.small == nil {
		return
	}
	for _, l := range h.Links {
		clr := h.Muted
		if l.IsMouseOver(mx, my) {
			clr = h.Ink
		}
		drawText(screen, h.small, l.Label, float64(l.X), float64(h.Height)/2, clr)
	}

	x := w - 24
	if h.Clock != nil {
		now, date := h.Clock()
		tw := float32(text.Advance(date, h.small))
		drawText(screen, h.small, date, float64(x-tw), float64(h.Height)*0.68, h.Muted)
		tw2 := float32(text.Advance(now, h.small))
		drawText(screen, h.small, now, float64(x-tw2), float64(h.Height)*0.3, h.Muted)
		if tw2 > tw {
			tw = tw2
		}
		x -= tw + 24
	}
	for i := len(h.Icons) - 1; i >= 0; i-- {
		cx := x - 9
		vector.DrawFilledCircle(screen, cx, h.Height/2, 9, color.RGBA{0, 0, 0, 25}, true)
		if label := h.Icons[i]; label != "" {
			initial := string([]rune(label)[:1])
			iw := text.Advance(initial, h.small)
			drawText(screen, h.small, initial, float64(cx)-iw/2, float64(h.Height)/2, h.Muted)
		}
		x -= 26
	}
}

// drawText draws s with its vertical center at y.
func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
