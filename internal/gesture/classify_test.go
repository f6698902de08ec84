package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestClassify_Presets(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want Label
	}{
		{"open palm", detector.OpenPalmLandmarks(), LabelOpenPalm},
		{"closed fist", detector.ClosedFistLandmarks(), LabelClosedFist},
		{"thumb up", detector.ThumbUpLandmarks(), LabelThumbUp},
		{"thumb down", detector.ThumbDownLandmarks(), LabelThumbDown},
		{"victory", detector.VictoryLandmarks(), LabelVictory},
		{"pointing up", detector.PointingUpLandmarks(), LabelPointingUp},
		{"i love you", detector.ILoveYouLandmarks(), LabelILoveYou},
		{"pinch", detector.PinchLandmarks(), LabelPinch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.hand); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_NilFrame(t *testing.T) {
	if got := Classify(nil); got != LabelNone {
		t.Errorf("Classify(nil) = %s, want %s", got, LabelNone)
	}
}

func TestClassify_TranslationInvariant(t *testing.T) {
	// Labels depend on relative geometry only, so a shifted hand must
	// classify the same.
	moved := detector.Translate(detector.VictoryLandmarks(), -0.2, 0.1)
	if got := Classify(&moved); got != LabelVictory {
		t.Errorf("Classify(translated victory) = %s, want %s", got, LabelVictory)
	}
}

func TestDecideLabel_PinchBeatsOpenPalm(t *testing.T) {
	// The pinch fixture keeps four fingers extended plus the thumb; the
	// pinch rule has priority over the open-palm rule.
	fs := FingerState{Thumb: true, Index: true, Middle: true, Ring: true, Pinky: true}
	ft := Features{Pinching: true}
	if got := DecideLabel(fs, ft); got != LabelPinch {
		t.Errorf("DecideLabel() = %s, want %s", got, LabelPinch)
	}
}

func TestDecideLabel_PinchNeedsMiddleFinger(t *testing.T) {
	// A loose fist with the thumb resting on the index is pinching
	// geometrically but must not fire pinch.
	fs := FingerState{}
	ft := Features{Pinching: true}
	if got := DecideLabel(fs, ft); got != LabelClosedFist {
		t.Errorf("DecideLabel() = %s, want %s", got, LabelClosedFist)
	}
}

func TestDecideLabel_FistToleratesOneFinger(t *testing.T) {
	fs := FingerState{Pinky: true}
	if got := DecideLabel(fs, Features{}); got != LabelClosedFist {
		t.Errorf("DecideLabel() = %s, want %s", got, LabelClosedFist)
	}
}

func TestDecideLabel_ThumbOffsetBands(t *testing.T) {
	fs := FingerState{Thumb: true}

	tests := []struct {
		offset float64
		want   Label
	}{
		{-0.2, LabelThumbUp},
		{-0.05, LabelClosedFist}, // on the boundary: ambiguous, stays fist
		{0.0, LabelClosedFist},
		{0.05, LabelClosedFist},
		{0.2, LabelThumbDown},
	}

	for _, tt := range tests {
		if got := DecideLabel(fs, Features{ThumbOffset: tt.offset}); got != tt.want {
			t.Errorf("offset %v: got %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestDecideLabel_Unrecognized(t *testing.T) {
	// Ring and pinky only: matches no rule.
	fs := FingerState{Ring: true, Pinky: true}
	if got := DecideLabel(fs, Features{}); got != LabelNone {
		t.Errorf("DecideLabel() = %s, want %s", got, LabelNone)
	}
}
