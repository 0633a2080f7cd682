package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugPanel shows a few lines of engine counters in the bottom-right
// corner. It is hidden while it has no lines.
type DebugPanel struct {
	Lines []string
}

func (d *DebugPanel) Set(lines ...string) {
	d.Lines = lines
}

func (d *DebugPanel) Clear() {
	d.Lines = nil
}

func (d *DebugPanel) Draw(screen *ebiten.Image, face text.Face) {
	if d == nil || len(d.Lines) == 0 || face == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	lineH := face.Metrics().HAscent + face.Metrics().HDescent
	pw := 0.0
	for _, l := range d.Lines {
		if a := text.Advance(l, face); a > pw {
			pw = a
		}
	}
	pw += 16
	ph := lineH*float64(len(d.Lines)) + 16
	x := float64(w) - pw - 10
	y := float64(h) - ph - 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+8, y+8)
	op.LineSpacing = lineH
	op.ColorScale.ScaleWithColor(color.RGBA{255, 200, 50, 255})
	text.Draw(screen, strings.Join(d.Lines, "\n"), face, op)
}
