package scene

import (
	"math"
	"sync"
)

// hitRadius is the normalized-coordinate radius inside which a pinch
// counts as hitting an ornament.
const hitRadius = 0.12

// Ornament is a photo hung on the scene at a normalized [0,1] slot.
type Ornament struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Gallery tracks the photo ornaments and which one, if any, is
// currently pinch-selected. A selected ornament asserts the
// interaction lock on the control pipeline. The API handlers mutate
// the ornament set concurrently with the control loop, so access is
// mutex guarded.
type Gallery struct {
	mu        sync.Mutex
	ornaments []Ornament
	selected  string
}

// NewGallery creates an empty gallery.
func NewGallery() *Gallery {
	return &Gallery{}
}

// SetOrnaments replaces the ornament set. A selection pointing at a
// removed ornament is dropped.
func (g *Gallery) SetOrnaments(ornaments []Ornament) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ornaments = append([]Ornament(nil), ornaments...)

	if g.selected == "" {
		return
	}
	for _, o := range g.ornaments {
		if o.ID == g.selected {
			return
		}
	}
	g.selected = ""
}

// HandlePinch resolves a pinch at normalized coordinates. A pinch
// while an ornament is selected releases it regardless of position;
// otherwise the nearest ornament within the hit radius is selected.
// Returns the affected ornament id (empty if the pinch hit nothing)
// and whether an ornament is selected afterwards.
func (g *Gallery) HandlePinch(x, y float64) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.selected != "" {
		released := g.selected
		g.selected = ""
		return released, false
	}

	bestID := ""
	bestDist := hitRadius
	for _, o := range g.ornaments {
		d := math.Hypot(o.X-x, o.Y-y)
		if d <= bestDist {
			bestDist = d
			bestID = o.ID
		}
	}

	if bestID == "" {
		return "", false
	}

	g.selected = bestID
	return bestID, true
}

// Selected returns the selected ornament, if any.
func (g *Gallery) Selected() (Ornament, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.selected == "" {
		return Ornament{}, false
	}
	for _, o := range g.ornaments {
		if o.ID == g.selected {
			return o, true
		}
	}
	return Ornament{}, false
}

// Locked reports whether an ornament selection is holding the
// interaction lock.
func (g *Gallery) Locked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selected != ""
}

// Deselect clears the selection.
func (g *Gallery) Deselect() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.selected = ""
}

// Ornaments returns a copy of the current ornament set.
func (g *Gallery) Ornaments() []Ornament {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Ornament(nil), g.ornaments...)
}
