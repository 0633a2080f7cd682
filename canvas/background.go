package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawBackground fills the page and draws the faint ruled lines every
// ruleSize page pixels plus a divider between the page sections at
// sectionYs. Lines scroll with the page.
func DrawBackground(cam *Camera, screen *ebiten.Image, screenWidth, screenHeight int, ruleSize float64, sectionYs []float64, bg, rule, divider color.Color) {
	screen.Fill(bg)

	_, top := cam.ScreenToWorld(0, 0)
	_, bottom := cam.ScreenToWorld(0, float64(screenHeight))

	if ruleSize > 0 {
		start := math.Floor(top/ruleSize) * ruleSize
		if start < 0 {
			start = 0
		}
		for wy := start; wy < bottom; wy += ruleSize {
			_, sy := cam.WorldToScreen(0, wy)
			vector.StrokeLine(screen, 0, float32(sy), float32(screenWidth), float32(sy), 1, rule, false)
		}
	}

	for _, wy := range sectionYs {
		if wy < top-2 || wy > bottom+2 {
			continue
		}
		_, sy := cam.WorldToScreen(0, wy)
		margin := float32(screenWidth) * 0.1
		vector.StrokeLine(screen, margin, float32(sy), float32(screenWidth)-margin, float32(sy), 2, divider, false)
	}
}
