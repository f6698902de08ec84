package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetHands([]HandLandmarks{
			ThumbUpLandmarks(),
			OpenPalmLandmarks(),
		})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("Close returns nil", func(t *testing.T) {
		mock := NewMockDetector()

		if err := mock.Close(); err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

func TestFixtures_SharedPalmGeometry(t *testing.T) {
	// All fixtures model the same palm so scale-sensitive thresholds
	// behave identically across poses.
	fixtures := map[string]HandLandmarks{
		"open_palm":   OpenPalmLandmarks(),
		"closed_fist": ClosedFistLandmarks(),
		"thumb_up":    ThumbUpLandmarks(),
		"thumb_down":  ThumbDownLandmarks(),
		"victory":     VictoryLandmarks(),
		"pointing_up": PointingUpLandmarks(),
		"i_love_you":  ILoveYouLandmarks(),
		"pinch":       PinchLandmarks(),
	}

	ref := OpenPalmLandmarks()
	for name, lm := range fixtures {
		if lm.Points[Wrist] != ref.Points[Wrist] {
			t.Errorf("%s: wrist differs from the shared base", name)
		}
		if lm.Points[MiddleMCP] != ref.Points[MiddleMCP] {
			t.Errorf("%s: middle knuckle differs from the shared base", name)
		}
		if lm.Handedness != "Right" {
			t.Errorf("%s: handedness = %q, want Right", name, lm.Handedness)
		}
		if lm.Score < 0.9 {
			t.Errorf("%s: score = %v, want >= 0.9", name, lm.Score)
		}
	}
}

func TestPinchLandmarks_TipsTouch(t *testing.T) {
	lm := PinchLandmarks()

	d := Distance(lm.Points[ThumbTip], lm.Points[IndexTip])
	if d >= 0.08 {
		t.Errorf("thumb-index distance = %v, want below the pinch threshold", d)
	}
}

func TestPinchLandmarksAt_MirroredMidpoint(t *testing.T) {
	lm := PinchLandmarksAt(0.3, 0.7)

	midX := (lm.Points[ThumbTip].X + lm.Points[IndexTip].X) / 2
	midY := (lm.Points[ThumbTip].Y + lm.Points[IndexTip].Y) / 2

	if math.Abs((1-midX)-0.3) > epsilon {
		t.Errorf("mirrored midpoint x = %v, want 0.3", 1-midX)
	}
	if math.Abs(midY-0.7) > epsilon {
		t.Errorf("midpoint y = %v, want 0.7", midY)
	}
}

func TestTranslate(t *testing.T) {
	lm := OpenPalmLandmarks()
	moved := Translate(lm, 0.1, -0.2)

	if math.Abs(moved.Points[Wrist].X-(lm.Points[Wrist].X+0.1)) > epsilon {
		t.Errorf("wrist X = %v, want shifted by 0.1", moved.Points[Wrist].X)
	}
	if math.Abs(moved.Points[Wrist].Y-(lm.Points[Wrist].Y-0.2)) > epsilon {
		t.Errorf("wrist Y = %v, want shifted by -0.2", moved.Points[Wrist].Y)
	}

	// The original is untouched.
	if lm.Points[Wrist] != OpenPalmLandmarks().Points[Wrist] {
		t.Error("Translate should not mutate its input")
	}
}

func TestDistance(t *testing.T) {
	a := Point3D{X: 0, Y: 0, Z: 0}
	b := Point3D{X: 3, Y: 4, Z: 0}

	if d := Distance(a, b); math.Abs(d-5) > epsilon {
		t.Errorf("Distance = %v, want 5", d)
	}
}
