package gesture

import "github.com/ayusman/mudra/internal/detector"

// Classify maps one landmark frame to a gesture label.
func Classify(lm *detector.HandLandmarks) Label {
	if lm == nil {
		return LabelNone
	}
	return DecideLabel(ClassifyFingers(lm), ExtractFeatures(lm))
}

// DecideLabel combines finger flags and geometric features into a single
// label. The rules are evaluated in fixed priority order; the order is a
// tie-break contract and must not be rearranged.
func DecideLabel(fs FingerState, ft Features) Label {
	extended := fs.ExtendedCount()

	// 1. Pinch needs the middle finger up so a loose fist with the thumb
	// resting on the index does not fire selections.
	if ft.Pinching && fs.Middle {
		return LabelPinch
	}

	// 2. Open palm: all five fingers out.
	if extended == 4 && fs.Thumb {
		return LabelOpenPalm
	}

	// 3. Fist, tolerant of one misclassified finger.
	if extended <= 1 && !fs.Thumb {
		return LabelClosedFist
	}

	// 4. Fist with the thumb out: direction decides.
	if extended == 0 && fs.Thumb {
		switch {
		case ft.ThumbOffset < -thumbOffsetThreshold:
			return LabelThumbUp
		case ft.ThumbOffset > thumbOffsetThreshold:
			return LabelThumbDown
		default:
			return LabelClosedFist
		}
	}

	// 5. Victory: index and middle only.
	if fs.Index && fs.Middle && !fs.Ring && !fs.Pinky {
		return LabelVictory
	}

	// 6. Pointing: index alone.
	if fs.Index && !fs.Middle && !fs.Ring && !fs.Pinky {
		return LabelPointingUp
	}

	// 7. ILY sign: thumb, index and pinky.
	if fs.Thumb && fs.Index && fs.Pinky && !fs.Middle && !fs.Ring {
		return LabelILoveYou
	}

	return LabelNone
}
