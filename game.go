package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"glyph-motion/canvas"
	"glyph-motion/glyph"
	"glyph-motion/input"
	"glyph-motion/page"
	"glyph-motion/palette"
	"glyph-motion/ui"
)

// Game hosts a page in an ebiten window.
type Game struct {
	ctx    context.Context
	page   *page.Page
	fonts  *Fonts
	header *ui.Header
	debug  *ui.DebugPanel

	showDebug    bool
	screenWidth  int
	screenHeight int
}

func NewGame(ctx context.Context, p *page.Page, fonts *Fonts) *Game {
	sc := p.Scene
	links := make([]string, len(sc.Nav.Links))
	for i, l := range sc.Nav.Links {
		links[i] = l.Name
	}
	icons := make([]string, len(sc.Nav.Icons))
	for i, ic := range sc.Nav.Icons {
		icons[i] = ic.Img
	}

	h := ui.NewHeader(sc.Nav.Title, links, icons,
		fonts.Face(700, false, HeaderTitleSize),
		fonts.Face(400, false, HeaderSmallSize))
	h.Ink = p.Colors.Ink
	h.Muted = p.Colors.Muted
	bg := p.Colors.Background
	h.Background = color.NRGBA{bg.R, bg.G, bg.B, 217}
	h.Clock = func() (string, string) { return p.Face.Text(), p.Face.Date() }

	return &Game{
		ctx:          ctx,
		page:         p,
		fonts:        fonts,
		header:       h,
		debug:        &ui.DebugPanel{},
		screenWidth:  sc.Window.Width,
		screenHeight: sc.Window.Height,
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	_, wheel := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	pollInput(g.page.Router, wheel, mx, my)
	g.page.Update()

	if g.showDebug {
		g.debug.Set(
			fmt.Sprintf("tweens    %d", g.page.Sched.Active()),
			fmt.Sprintf("listeners %d", g.page.Router.Listeners()),
			fmt.Sprintf("scroll    %.0f / %.0f", g.page.Router.Offset(), g.page.Scene.Window.PageHeight),
			fmt.Sprintf("tps       %.0f", ebiten.ActualTPS()),
		)
	} else {
		g.debug.Clear()
	}
	return nil
}

// pollInput feeds one frame of wheel and cursor input to r. A pointer that
// has not moved is not fed again.
func pollInput(r *input.Router, wheel float64, mx, my int) {
	r.Wheel(wheel)
	x, y := float64(mx), float64(my)
	if px, py, ok := r.Pointer(); ok && px == x && py == y {
		return
	}
	r.Feed(x, y)
}

func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.page.Camera
	canvas.DrawBackground(cam, screen, g.screenWidth, g.screenHeight, RuleSize,
		g.page.Sections(), g.page.Colors.Background, ColorRule, ColorDivider)

	for _, b := range g.page.Blocks {
		c := b.Layout.Container
		if !cam.Visible(c.Y-RuleSize, c.Y+c.H+RuleSize, float64(g.screenHeight)) {
			continue
		}
		g.drawBlock(screen, b)
	}

	mx, my := ebiten.CursorPosition()
	g.header.Draw(screen, mx, my)
	g.debug.Draw(screen, g.fonts.Face(400, false, DebugFontSize))
}

// drawBlock draws every glyph of b at its current state: scaled about its
// own center, offset by its own and its container's lift, with an optional
// soft shadow underneath.
func (g *Game) drawBlock(screen *ebiten.Image, b *page.Block) {
	cp := b.Anim.Container.Props()
	for i, d := range b.Glyphs {
		if d.Rune == glyph.NBSP {
			continue
		}
		st := b.Anim.Glyphs[i]
		p := st.Props()
		alpha := p.Opacity * cp.Opacity
		if alpha <= 0 {
			continue
		}

		r := b.Layout.Glyphs[i]
		sx, sy := g.page.Camera.WorldToScreen(r.X, r.Y)
		face := g.fonts.Face(p.Weight, d.Style.Italic, d.Style.Size)
		s := string(d.Rune)
		adv := text.Advance(s, face)

		op := &text.DrawOptions{}
		op.GeoM.Translate(-adv/2, -r.H/2)
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Translate(sx+r.W/2+p.X, sy+r.H/2+p.Y+cp.Y)

		if p.Shadow > 0 {
			for _, dy := range []float64{ShadowOffset, ShadowOffset + ShadowSpread/2} {
				sop := &text.DrawOptions{}
				sop.GeoM = op.GeoM
				sop.GeoM.Translate(0, dy)
				sop.ColorScale.ScaleWithColor(palette.WithAlpha(palette.Shadow, p.Shadow*alpha/2))
				text.Draw(screen, s, face, sop)
			}
		}

		op.ColorScale.ScaleWithColor(st.Color())
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(screen, s, face, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
