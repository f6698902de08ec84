package capture

import (
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

func solidFrame(c color.RGBA) gocv.Mat {
	mat := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&mat, image.Rect(0, 0, 160, 120), c, -1)
	return mat
}

func TestMotionGate_FirstFrameIsBaseline(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	frame := solidFrame(color.RGBA{R: 128, G: 128, B: 128})
	defer frame.Close()

	detected, percent := gate.Detect(&frame)
	if detected {
		t.Error("first frame should never report motion")
	}
	if percent != 0 {
		t.Errorf("change percent = %v, want 0 for first frame", percent)
	}
}

func TestMotionGate_NoMotionOnIdenticalFrames(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	frame1 := solidFrame(color.RGBA{R: 128, G: 128, B: 128})
	defer frame1.Close()
	frame2 := solidFrame(color.RGBA{R: 128, G: 128, B: 128})
	defer frame2.Close()

	gate.Detect(&frame1)
	detected, _ := gate.Detect(&frame2)
	if detected {
		t.Error("identical frames should not report motion")
	}
}

func TestMotionGate_DetectsLargeChange(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	dark := solidFrame(color.RGBA{})
	defer dark.Close()
	bright := solidFrame(color.RGBA{R: 255, G: 255, B: 255})
	defer bright.Close()

	gate.Detect(&dark)
	detected, percent := gate.Detect(&bright)
	if !detected {
		t.Errorf("full-frame change not detected (percent = %v)", percent)
	}
}

func TestMotionGate_ResetClearsBaseline(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	dark := solidFrame(color.RGBA{})
	defer dark.Close()
	bright := solidFrame(color.RGBA{R: 255, G: 255, B: 255})
	defer bright.Close()

	gate.Detect(&dark)
	gate.Reset()

	// After Reset the bright frame is a fresh baseline, not a change.
	detected, _ := gate.Detect(&bright)
	if detected {
		t.Error("frame after Reset should establish a new baseline")
	}
}

func TestMotionGate_NilFrame(t *testing.T) {
	gate := NewMotionGate(1.0)
	defer gate.Close()

	detected, percent := gate.Detect(nil)
	if detected || percent != 0 {
		t.Errorf("nil frame: detected=%v percent=%v, want false, 0", detected, percent)
	}
}
