package ui

import "testing"

func TestLinkHit(t *testing.T) {
	l := &Link{Label: "Projects", X: 100, Y: 0, W: 60, H: 48}
	if !l.IsMouseOver(130, 20) {
		t.Error("Expected hit inside the link")
	}
	if l.IsMouseOver(170, 20) {
		t.Error("Expected miss right of the link")
	}
}

func TestHeaderLayoutWithoutFaces(t *testing.T) {
	h := NewHeader("Portfolio", []string{"Projects", "Contact"}, nil, nil, nil)
	h.layoutLinks()
	if len(h.Links) != 2 {
		t.Fatalf("Links = %d", len(h.Links))
	}
	if h.Links[1].X <= h.Links[0].X {
		t.Errorf("links not laid out left to right: %v, %v", h.Links[0].X, h.Links[1].X)
	}
}

func TestDebugPanelClear(t *testing.T) {
	d := &DebugPanel{}
	d.Set("tweens: 3", "listeners: 7")
	if len(d.Lines) != 2 {
		t.Errorf("Lines = %v", d.Lines)
	}
	d.Clear()
	if d.Lines != nil {
		t.Error("Expected no lines after Clear")
	}
}
