package scene

import "testing"

func testOrnaments() []Ornament {
	return []Ornament{
		{ID: "a", Label: "left", X: 0.2, Y: 0.5},
		{ID: "b", Label: "right", X: 0.8, Y: 0.5},
	}
}

func TestGallery_PinchSelectsNearestOrnament(t *testing.T) {
	g := NewGallery()
	g.SetOrnaments(testOrnaments())

	id, selected := g.HandlePinch(0.22, 0.52)
	if !selected {
		t.Fatal("pinch near ornament should select it")
	}
	if id != "a" {
		t.Errorf("selected id = %q, want %q", id, "a")
	}
	if !g.Locked() {
		t.Error("selection should assert the interaction lock")
	}
}

func TestGallery_PinchFarAwayMisses(t *testing.T) {
	g := NewGallery()
	g.SetOrnaments(testOrnaments())

	id, selected := g.HandlePinch(0.5, 0.0)
	if selected || id != "" {
		t.Errorf("pinch far from ornaments = (%q, %v), want miss", id, selected)
	}
	if g.Locked() {
		t.Error("missed pinch should not lock interaction")
	}
}

func TestGallery_SecondPinchReleases(t *testing.T) {
	g := NewGallery()
	g.SetOrnaments(testOrnaments())

	g.HandlePinch(0.2, 0.5)

	// Release works regardless of where the second pinch lands.
	id, selected := g.HandlePinch(0.9, 0.9)
	if selected {
		t.Error("second pinch should release the selection")
	}
	if id != "a" {
		t.Errorf("released id = %q, want %q", id, "a")
	}
	if g.Locked() {
		t.Error("lock should clear on release")
	}
}

func TestGallery_SelectedReturnsOrnament(t *testing.T) {
	g := NewGallery()
	g.SetOrnaments(testOrnaments())

	if _, ok := g.Selected(); ok {
		t.Fatal("no ornament should be selected initially")
	}

	g.HandlePinch(0.8, 0.5)
	o, ok := g.Selected()
	if !ok {
		t.Fatal("expected a selected ornament")
	}
	if o.ID != "b" || o.Label != "right" {
		t.Errorf("selected = %+v, want ornament b", o)
	}
}

func TestGallery_SetOrnamentsDropsStaleSelection(t *testing.T) {
	g := NewGallery()
	g.SetOrnaments(testOrnaments())
	g.HandlePinch(0.2, 0.5)

	// Replace the set without the selected ornament.
	g.SetOrnaments([]Ornament{{ID: "c", Label: "new", X: 0.5, Y: 0.5}})

	if g.Locked() {
		t.Error("selection of a removed ornament should be dropped")
	}
}

func TestGallery_NearestWinsWhenOverlapping(t *testing.T) {
	g := NewGallery()
	g.SetOrnaments([]Ornament{
		{ID: "near", X: 0.50, Y: 0.50},
		{ID: "far", X: 0.56, Y: 0.50},
	})

	id, selected := g.HandlePinch(0.51, 0.50)
	if !selected || id != "near" {
		t.Errorf("HandlePinch = (%q, %v), want nearest ornament", id, selected)
	}
}
