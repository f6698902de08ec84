package gesture

import "github.com/ayusman/mudra/internal/detector"

const (
	// pinchThreshold is the thumb-to-index tip distance below which the
	// frame counts as pinching, in normalized image units.
	pinchThreshold = 0.08

	// thumbOffsetThreshold disambiguates thumb-up vs thumb-down vs fist
	// when every other finger is curled.
	thumbOffsetThreshold = 0.05
)

// Point2 is a 2D position in normalized image coordinates.
type Point2 struct {
	X float64
	Y float64
}

// Features holds the auxiliary scalars extracted from one landmark frame
// alongside the finger flags. Derived fresh every frame.
type Features struct {
	// PinchDistance is the thumb-tip to index-tip distance.
	PinchDistance float64
	// Pinching is true when PinchDistance is below pinchThreshold.
	Pinching bool
	// PalmCenter is the unweighted centroid of wrist, index knuckle and
	// pinky knuckle, in raw (unmirrored) image coordinates.
	PalmCenter Point2
	// HandScale is the wrist to middle-knuckle distance, a proxy for how
	// close the hand is to the camera.
	HandScale float64
	// ThumbOffset is thumb tip Y minus thumb base Y. Negative means the
	// tip is above the base (Y grows downward).
	ThumbOffset float64
}

// ExtractFeatures computes the geometric features for one frame.
// Pure function of the frame.
func ExtractFeatures(lm *detector.HandLandmarks) Features {
	wrist := lm.Points[detector.Wrist]
	indexMCP := lm.Points[detector.IndexMCP]
	pinkyMCP := lm.Points[detector.PinkyMCP]

	pinchDist := detector.Distance(lm.Points[detector.ThumbTip], lm.Points[detector.IndexTip])

	return Features{
		PinchDistance: pinchDist,
		Pinching:      pinchDist < pinchThreshold,
		PalmCenter: Point2{
			X: (wrist.X + indexMCP.X + pinkyMCP.X) / 3,
			Y: (wrist.Y + indexMCP.Y + pinkyMCP.Y) / 3,
		},
		HandScale:   detector.Distance(wrist, lm.Points[detector.MiddleMCP]),
		ThumbOffset: lm.Points[detector.ThumbTip].Y - lm.Points[detector.ThumbMCP].Y,
	}
}
