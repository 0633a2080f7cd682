package canvas

// Camera maps page coordinates to the screen. The page only scrolls
// vertically.
type Camera struct {
	ScrollY float64
}

func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx, wy - c.ScrollY
}

func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx, sy + c.ScrollY
}

// Visible reports whether the page span [top, bottom] intersects a screen of
// height screenH.
func (c *Camera) Visible(top, bottom, screenH float64) bool {
	_, st := c.WorldToScreen(0, top)
	_, sb := c.WorldToScreen(0, bottom)
	return sb >= 0 && st <= screenH
}
