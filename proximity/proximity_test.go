package proximity

import (
	"math"
	"testing"

	"glyph-motion/glyph"
	"glyph-motion/palette"
)

func TestIntensityBounds(t *testing.T) {
	for _, falloff := range []float64{12000, 18000, 1} {
		if v := Intensity(40, 40, falloff); v != 1 {
			t.Errorf("Intensity at d=0 = %v, want 1", v)
		}
		prev := 1.0
		for d := 1.0; d < 2000; d *= 1.5 {
			v := Intensity(d, 0, falloff)
			mirror := Intensity(-d, 0, falloff)
			if v != mirror {
				t.Errorf("Intensity not symmetric at d=%v: %v vs %v", d, v, mirror)
			}
			if v <= 0 || v > 1 {
				t.Errorf("Intensity(%v) = %v out of range", d, v)
			}
			if v > prev {
				t.Errorf("Intensity increasing at d=%v: %v after %v", d, v, prev)
			}
			if v == math.SmallestNonzeroFloat64 {
				break
			}
			if v == prev {
				t.Errorf("Intensity not strictly decreasing at d=%v: %v", d, v)
			}
			prev = v
		}
	}
}

func TestIntensityFarAwayStaysPositive(t *testing.T) {
	for _, d := range []float64{3000, 5000, 1e9} {
		if v := Intensity(d, 0, 12000); v <= 0 {
			t.Errorf("Intensity(%v) = %v, want a positive floor", d, v)
		}
	}
	if v := Intensity(1, 0, 0); v <= 0 || v >= 1 {
		t.Errorf("zero falloff off-center = %v", v)
	}
}

func TestIntensityWiderFalloffSpreadsFurther(t *testing.T) {
	title := Intensity(100, 0, 12000)
	subtitle := Intensity(100, 0, 18000)
	if subtitle <= title {
		t.Errorf("Expected wider falloff to reach further: %v <= %v", subtitle, title)
	}
	if v := Intensity(100, 0, 12000); math.Abs(v-math.Exp(-10000.0/12000)) > 1e-12 {
		t.Errorf("unexpected value %v", v)
	}
}

func TestLinearMaps(t *testing.T) {
	if w := MapWeight(0.5, 400, 900); w != 650 {
		t.Errorf("MapWeight = %v", w)
	}
	if s := MapScale(1, 1.25); s != 1.25 {
		t.Errorf("MapScale = %v", s)
	}
	if s := MapScale(0, 1.25); s != 1 {
		t.Errorf("MapScale(0) = %v", s)
	}
	if y := MapLift(0.5, -6); y != -3 {
		t.Errorf("MapLift = %v", y)
	}
	if a := MapShadow(1, 0.15); a != 0.15 {
		t.Errorf("MapShadow = %v", a)
	}
}

func TestColorBlend(t *testing.T) {
	p, _ := Defaults(KindTitle)
	if c := p.Color(0); c != palette.Neutral {
		t.Errorf("zero intensity should stay neutral, got %v", c)
	}
	// full intensity: accent is AccentB, then neutral blended toward it at 0.9
	want := palette.Lerp(palette.Neutral, palette.AccentB, 0.9)
	if c := p.Color(1); c != want {
		t.Errorf("Color(1) = %v, want %v", c, want)
	}

	p.NeutralBlend = 1
	if c := p.Color(1); c != palette.AccentB {
		t.Errorf("independent neutral blend not applied, got %v", c)
	}
}

func TestTargetAndRest(t *testing.T) {
	p, ok := Defaults(KindSubtitle)
	if !ok {
		t.Fatal("missing subtitle defaults")
	}
	top := p.Target(1)
	if top.Weight != 400 || top.Scale != 1.15 || top.Y != -4 || !top.ColorSet {
		t.Errorf("unexpected max target %+v", top)
	}
	rest := p.Rest()
	if rest.Weight != 100 || rest.Scale != 1 || rest.Y != 0 || rest.ColorSet || rest.Shadow != 0 {
		t.Errorf("unexpected rest %+v", rest)
	}
	if _, ok := Defaults("banner"); ok {
		t.Error("unknown kind should not resolve")
	}
}

func TestFieldIntensities(t *testing.T) {
	p, _ := Defaults(KindTitle)
	f := NewField(p)
	g := glyph.Row(0, 0, 3, 250, 40) // centers at 125, 375, 625

	got := f.Intensities(125, g)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("unexpected intensities %v", got)
	}
	if got[2] > 1e-9 {
		t.Errorf("glyph 500px away should be ~0, got %v", got[2])
	}

	first := &got[0]
	again := f.Intensities(375, g)
	if &again[0] != first {
		t.Error("Expected the buffer to be reused between events")
	}
	if again[1] != 1 {
		t.Errorf("middle glyph should be at full intensity, got %v", again[1])
	}
}

// countingGeometry records GlyphBounds calls; odd glyphs are not laid out.
type countingGeometry struct {
	glyph.Geometry
	calls int
}

func (g *countingGeometry) GlyphBounds(i int) (glyph.Rect, bool) {
	g.calls++
	if i%2 == 1 {
		return glyph.Rect{}, false
	}
	return g.Geometry.GlyphBounds(i)
}

func TestFieldUpdateQueriesOnce(t *testing.T) {
	p, _ := Defaults(KindTitle)
	f := NewField(p)
	g := &countingGeometry{Geometry: glyph.Row(0, 0, 4, 100, 40)}

	var seen []int
	f.Update(50, g, func(i int, v float64) {
		if math.IsNaN(v) || v <= 0 {
			t.Errorf("glyph %d got intensity %v", i, v)
		}
		seen = append(seen, i)
	})
	if g.calls != 4 {
		t.Errorf("GlyphBounds called %d times for 4 glyphs", g.calls)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Errorf("Expected only laid-out glyphs 0 and 2, got %v", seen)
	}
}
