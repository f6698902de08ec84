package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Preset landmark builders below model a right hand facing the camera,
// wrist at the bottom of the frame and fingers pointing up (Y decreases
// upward in image coordinates). All fixtures share the same wrist and
// knuckle row so palm width and hand scale are identical across poses.

func baseHand() HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}
	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	return lm
}

// extendFingers straightens the four non-thumb fingers upward.
func extendFingers(lm *HandLandmarks) {
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	lm.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	lm.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	lm.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	lm.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}
}

// curlFingers folds the four non-thumb fingers into the palm.
func curlFingers(lm *HandLandmarks) {
	lm.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.66, Z: -0.05}
	lm.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.68, Z: -0.04}
	lm.Points[IndexTip] = Point3D{X: 0.50, Y: 0.70, Z: -0.02}

	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.64, Z: -0.05}
	lm.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.66, Z: -0.04}
	lm.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}

	lm.Points[RingPIP] = Point3D{X: 0.45, Y: 0.66, Z: -0.05}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.68, Z: -0.04}
	lm.Points[RingTip] = Point3D{X: 0.40, Y: 0.70, Z: -0.02}

	lm.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.68, Z: -0.05}
	lm.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.70, Z: -0.04}
	lm.Points[PinkyTip] = Point3D{X: 0.36, Y: 0.72, Z: -0.02}
}

// curlFinger folds a single finger given its MCP/PIP/DIP/tip indices.
func curlFinger(lm *HandLandmarks, pip, dip, tip int, mcpX, mcpY float64) {
	lm.Points[pip] = Point3D{X: mcpX, Y: mcpY - 0.02, Z: -0.05}
	lm.Points[dip] = Point3D{X: mcpX - 0.03, Y: mcpY, Z: -0.04}
	lm.Points[tip] = Point3D{X: mcpX - 0.05, Y: mcpY + 0.02, Z: -0.02}
}

// thumbSide splays the thumb away from the palm.
func thumbSide(lm *HandLandmarks) {
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	lm.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}
}

// thumbRaised points the thumb straight up.
func thumbRaised(lm *HandLandmarks) {
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.65, Z: 0.0}
	lm.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.50, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}
}

// thumbLowered points the thumb straight down.
func thumbLowered(lm *HandLandmarks) {
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.78, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.82, Z: 0.0}
	lm.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.92, Z: 0.0}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.99, Z: 0.0}
}

// thumbCurled tucks the thumb across the palm.
func thumbCurled(lm *HandLandmarks) {
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	lm.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.70, Z: 0.01}
	lm.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.68, Z: 0.02}
	lm.Points[ThumbTip] = Point3D{X: 0.52, Y: 0.70, Z: 0.02}
}

// OpenPalmLandmarks returns a hand with all five fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	lm := baseHand()
	extendFingers(&lm)
	thumbSide(&lm)
	return lm
}

// ClosedFistLandmarks returns a hand with every finger folded into the palm.
func ClosedFistLandmarks() HandLandmarks {
	lm := baseHand()
	curlFingers(&lm)
	thumbCurled(&lm)
	return lm
}

// ThumbUpLandmarks returns a fist with the thumb raised.
func ThumbUpLandmarks() HandLandmarks {
	lm := baseHand()
	curlFingers(&lm)
	thumbRaised(&lm)
	return lm
}

// ThumbDownLandmarks returns a fist with the thumb pointing down.
func ThumbDownLandmarks() HandLandmarks {
	lm := baseHand()
	curlFingers(&lm)
	thumbLowered(&lm)
	return lm
}

// VictoryLandmarks returns a hand with index and middle fingers extended.
func VictoryLandmarks() HandLandmarks {
	lm := baseHand()
	curlFingers(&lm)
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}
	thumbCurled(&lm)
	return lm
}

// PointingUpLandmarks returns a hand with only the index finger extended
// and the thumb splayed to the side.
func PointingUpLandmarks() HandLandmarks {
	lm := baseHand()
	curlFingers(&lm)
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}
	thumbSide(&lm)
	return lm
}

// ILoveYouLandmarks returns a hand with thumb, index and pinky extended
// while middle and ring stay folded.
func ILoveYouLandmarks() HandLandmarks {
	lm := baseHand()
	extendFingers(&lm)
	curlFinger(&lm, MiddlePIP, MiddleDIP, MiddleTip, 0.50, 0.66)
	curlFinger(&lm, RingPIP, RingDIP, RingTip, 0.45, 0.68)
	thumbSide(&lm)
	return lm
}

// PinchLandmarks returns a hand with thumb and index tips touching while
// the remaining fingers stay extended.
func PinchLandmarks() HandLandmarks {
	lm := baseHand()
	extendFingers(&lm)
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.58, Z: 0.0}
	lm.Points[IndexDIP] = Point3D{X: 0.56, Y: 0.54, Z: 0.0}
	lm.Points[IndexTip] = Point3D{X: 0.56, Y: 0.51, Z: 0.0}
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.68, Z: 0.02}
	lm.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.58, Z: 0.01}
	lm.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.50, Z: 0.0}
	return lm
}

// PinchLandmarksAt returns pinch landmarks whose mirrored pinch midpoint
// lands on (x, y) in screen-normalized coordinates.
func PinchLandmarksAt(x, y float64) HandLandmarks {
	lm := PinchLandmarks()
	mid := Point3D{
		X: (lm.Points[ThumbTip].X + lm.Points[IndexTip].X) / 2,
		Y: (lm.Points[ThumbTip].Y + lm.Points[IndexTip].Y) / 2,
	}
	// The pipeline mirrors x, so place the raw midpoint at 1-x.
	return Translate(lm, (1-x)-mid.X, y-mid.Y)
}

// Translate returns a copy of lm shifted by (dx, dy) in image space.
func Translate(lm HandLandmarks, dx, dy float64) HandLandmarks {
	out := lm
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}
