// Package scene holds the client-side state of the particle scene that
// gesture control manipulates: the viewport transform, effect
// triggering, and photo ornaments.
package scene

import "math"

// Zoom clamp range for the viewport.
const (
	minZoom     = 0.5
	maxZoom     = 3.0
	defaultZoom = 1.0
)

// Viewport owns the pan offset, zoom factor and rotation angle of the
// scene camera. It is mutated once per tick by the control loop and
// read by the broadcast snapshot; no other writers exist.
type Viewport struct {
	panX     float64
	panY     float64
	zoom     float64
	rotation float64
}

// ViewportState is the serializable snapshot of a Viewport.
type ViewportState struct {
	PanX     float64 `json:"pan_x"`
	PanY     float64 `json:"pan_y"`
	Zoom     float64 `json:"zoom"`
	Rotation float64 `json:"rotation"`
}

// NewViewport creates a viewport at the origin with neutral zoom.
func NewViewport() *Viewport {
	return &Viewport{zoom: defaultZoom}
}

// Apply consumes one tick of control output. Pan and zoom deltas are
// already smoothed and scaled upstream; rotation speed is integrated
// over the elapsed time. Zoom is clamped, rotation wraps at 2π.
func (v *Viewport) Apply(panDX, panDY, zoomDelta, rotationSpeed, elapsed float64) {
	v.panX += panDX
	v.panY += panDY

	v.zoom += zoomDelta
	if v.zoom < minZoom {
		v.zoom = minZoom
	}
	if v.zoom > maxZoom {
		v.zoom = maxZoom
	}

	v.rotation = math.Mod(v.rotation+rotationSpeed*elapsed, 2*math.Pi)
	if v.rotation < 0 {
		v.rotation += 2 * math.Pi
	}
}

// Reset returns the viewport to its home position.
func (v *Viewport) Reset() {
	v.panX = 0
	v.panY = 0
	v.zoom = defaultZoom
	v.rotation = 0
}

// State returns a snapshot of the current transform.
func (v *Viewport) State() ViewportState {
	return ViewportState{
		PanX:     v.panX,
		PanY:     v.panY,
		Zoom:     v.zoom,
		Rotation: v.rotation,
	}
}
