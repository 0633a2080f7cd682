package palette

import (
	"image/color"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	pairs := [][2]color.RGBA{
		{Neutral, AccentA},
		{AccentA, AccentB},
		{{0, 0, 0, 255}, {255, 255, 255, 255}},
		{{12, 200, 7, 0}, {250, 1, 99, 255}},
	}
	for _, p := range pairs {
		if got := Lerp(p[0], p[1], 0); got != p[0] {
			t.Errorf("Lerp(%v, %v, 0) = %v", p[0], p[1], got)
		}
		if got := Lerp(p[0], p[1], 1); got != p[1] {
			t.Errorf("Lerp(%v, %v, 1) = %v", p[0], p[1], got)
		}
	}
}

func TestLerpRounds(t *testing.T) {
	got := Lerp(color.RGBA{0, 0, 0, 255}, color.RGBA{255, 1, 3, 255}, 0.5)
	want := color.RGBA{128, 1, 2, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLerpAccents(t *testing.T) {
	// #1f7aff -> #ff4dd2 at 0.5: (31+255)/2=143, (122+77)/2=99.5, (255+210)/2=232.5
	got := Lerp(AccentA, AccentB, 0.5)
	want := color.RGBA{143, 100, 233, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestHex(t *testing.T) {
	c, err := Hex("#1f7aff")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0x1f, 0x7a, 0xff, 255}) {
		t.Errorf("unexpected color %v", c)
	}
	if ToHex(c) != "#1f7aff" {
		t.Errorf("ToHex() = %s", ToHex(c))
	}
	if _, err := Hex("blue"); err == nil {
		t.Error("Expected error for malformed color")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{0, 0, 0, 255}, 0.15)
	if c.A != 38 {
		t.Errorf("Expected alpha 38, got %d", c.A)
	}
}
