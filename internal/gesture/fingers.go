package gesture

import (
	"strings"

	"github.com/ayusman/mudra/internal/detector"
)

// Finger extension ratios. A non-thumb finger counts as curled when its
// tip sits closer to the wrist than curlRatio times its knuckle, or when
// the tip-to-knuckle distance collapses below bentRatio times the
// mid-joint-to-knuckle distance (a severely bent finger whose tip still
// clears the wrist test).
const (
	curlRatio = 1.4
	bentRatio = 0.8

	// Thumb rules are relative to palm width (index to pinky knuckle).
	thumbSplayRatio = 0.9
	thumbCurlRatio  = 0.3

	// minPalmWidth guards the thumb ratios against degenerate geometry;
	// below it the thumb reports curled rather than dividing toward Inf.
	minPalmWidth = 1e-6
)

// FingerState holds the per-finger extended flags for one frame. It is
// derived fresh every frame and never persisted.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Pinky  bool
}

// ExtendedCount returns how many non-thumb fingers are extended.
func (f FingerState) ExtendedCount() int {
	n := 0
	for _, ext := range []bool{f.Index, f.Middle, f.Ring, f.Pinky} {
		if ext {
			n++
		}
	}
	return n
}

// String renders the flags as a compact TIMRP mask for diagnostics,
// e.g. "T-M--" means thumb and middle extended, the rest curled.
func (f FingerState) String() string {
	var b strings.Builder
	for i, ext := range []bool{f.Thumb, f.Index, f.Middle, f.Ring, f.Pinky} {
		if ext {
			b.WriteByte("TIMRP"[i])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ClassifyFingers derives the extended/curled flag for each finger from
// a single landmark frame. Pure function of the frame.
func ClassifyFingers(lm *detector.HandLandmarks) FingerState {
	return FingerState{
		Thumb:  thumbExtended(lm),
		Index:  fingerExtended(lm, detector.IndexTip, detector.IndexPIP, detector.IndexMCP),
		Middle: fingerExtended(lm, detector.MiddleTip, detector.MiddlePIP, detector.MiddleMCP),
		Ring:   fingerExtended(lm, detector.RingTip, detector.RingPIP, detector.RingMCP),
		Pinky:  fingerExtended(lm, detector.PinkyTip, detector.PinkyPIP, detector.PinkyMCP),
	}
}

func fingerExtended(lm *detector.HandLandmarks, tip, pip, mcp int) bool {
	wrist := lm.Points[detector.Wrist]
	tipToWrist := detector.Distance(lm.Points[tip], wrist)
	knuckleToWrist := detector.Distance(lm.Points[mcp], wrist)
	if tipToWrist < curlRatio*knuckleToWrist {
		return false
	}
	if detector.Distance(lm.Points[tip], lm.Points[mcp]) < bentRatio*detector.Distance(lm.Points[pip], lm.Points[mcp]) {
		return false
	}
	return true
}

func thumbExtended(lm *detector.HandLandmarks) bool {
	palmWidth := detector.Distance(lm.Points[detector.IndexMCP], lm.Points[detector.PinkyMCP])
	if palmWidth < minPalmWidth {
		return false
	}
	tip := lm.Points[detector.ThumbTip]
	if detector.Distance(tip, lm.Points[detector.PinkyMCP]) <= thumbSplayRatio*palmWidth {
		return false
	}
	// A curled-but-splayed thumb has its tip collapsed onto the IP joint.
	if detector.Distance(tip, lm.Points[detector.ThumbIP]) < thumbCurlRatio*palmWidth {
		return false
	}
	return true
}
