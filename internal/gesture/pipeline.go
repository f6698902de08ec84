package gesture

import (
	"fmt"
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Tuning constants for the cross-frame state machines.
const (
	// palmHistorySize is the moving-average window for the palm centroid.
	palmHistorySize = 4

	// scaleRetain is the exponential smoothing factor for the hand-scale
	// estimate: new = scaleRetain*old + (1-scaleRetain)*current.
	scaleRetain = 0.9

	// zoomNoiseFloor suppresses zoom deltas below measurement jitter.
	zoomNoiseFloor = 0.001

	// pinchCooldownSeconds is the minimum wall-time between pinch events.
	pinchCooldownSeconds = 0.3

	// pinchMinMove is the positional tolerance: a new pinch within this
	// distance of the last trigger on both axes stays suppressed.
	pinchMinMove = 0.1

	// momentumDecay and momentumFloor govern the ambient rotation scalar:
	// multiplicative decay per frame with a hard snap to zero.
	momentumDecay = 0.9
	momentumFloor = 0.01

	// flickGain converts the last smoothed horizontal pan velocity into
	// rotation momentum when an open palm is released.
	flickGain = 25.0

	// rotationDamping scales momentum into the consumed rotation speed.
	rotationDamping = 0.6
)

// Input is everything the pipeline needs for one tick.
type Input struct {
	// Landmarks is the detected hand for this tick, or nil when no hand
	// is present.
	Landmarks *detector.HandLandmarks
	// Elapsed is the wall-clock delta since the previous tick, in seconds.
	Elapsed float64
	// InteractionLocked suppresses palm-driven pan/zoom and momentum
	// while an external UI interaction (photo selection) is active.
	InteractionLocked bool
	// PanSpeed and ZoomSpeed are externally configured sensitivities.
	PanSpeed  float64
	ZoomSpeed float64
}

// PinchEvent is a fired pinch with its screen-space-normalized position.
type PinchEvent struct {
	X float64
	Y float64
}

// Output is the full result of one tick. The caller routes the fields;
// the pipeline never invokes callbacks.
type Output struct {
	// RawGesture is this frame's classification before stabilization.
	RawGesture Label
	// StableGesture is set (non-None) on every tick the raw label has
	// held for its streak threshold.
	StableGesture Label
	// PanDX and PanDY are the palm-driven pan deltas, zero when palm
	// control is inactive. X is mirrored for webcam input.
	PanDX float64
	PanDY float64
	// ZoomDelta is the smoothed hand-scale change, zero when inactive or
	// below the noise floor.
	ZoomDelta float64
	// RotationSpeed is the ambient momentum times a fixed damping.
	RotationSpeed float64
	// Pinch is set only on the tick a pinch event fires.
	Pinch *PinchEvent
	// Debug is a human-readable state summary for diagnostic overlays.
	Debug string
}

// Pipeline owns all cross-frame gesture state. It is single-threaded:
// exactly one caller invokes ProcessTick, strictly sequentially. If a
// host ever shares it across goroutines the whole instance is the unit
// of mutual exclusion.
type Pipeline struct {
	streakLabel Label
	streakCount int

	palmBuf      [palmHistorySize]Point2
	palmLen      int
	palmHead     int
	smoothed     Point2
	haveSmoothed bool
	lastPanDX    float64

	scale    float64
	scaleSet bool

	pinchActive   bool
	pinchCooldown float64
	pinchLastPos  *Point2

	momentum float64
	prevRaw  Label
}

// New creates an empty pipeline ready for its first tick.
func New() *Pipeline {
	return &Pipeline{streakLabel: LabelNone, prevRaw: LabelNone}
}

// ProcessTick consumes one landmark frame and advances every state
// machine exactly once. The output for tick N depends only on tick N's
// input and the state left by tick N-1.
func (p *Pipeline) ProcessTick(in Input) Output {
	var out Output

	// The pinch cooldown decays by wall time on every tick, with or
	// without a hand in frame.
	p.pinchCooldown -= in.Elapsed
	if p.pinchCooldown < 0 {
		p.pinchCooldown = 0
	}

	var fs FingerState
	var ft Features
	raw := LabelNone
	if in.Landmarks != nil {
		fs = ClassifyFingers(in.Landmarks)
		ft = ExtractFeatures(in.Landmarks)
		raw = DecideLabel(fs, ft)
	}
	out.RawGesture = raw

	// LabelNone is the absent sentinel everywhere, never the empty string.
	out.StableGesture = LabelNone
	stable := p.updateStreak(raw)
	if stable {
		out.StableGesture = raw
	}

	// Continuous palm control. Tracking follows the raw label so panning
	// starts without waiting for stability; zoom waits for a stable palm.
	flick := 0.0
	if raw == LabelOpenPalm && !in.InteractionLocked {
		p.pushPalm(ft.PalmCenter)
		sm := p.palmMean()
		if p.haveSmoothed {
			dx := sm.X - p.smoothed.X
			dy := sm.Y - p.smoothed.Y
			out.PanDX = -dx * in.PanSpeed // mirrored input
			out.PanDY = dy * in.PanSpeed
			p.lastPanDX = -dx
		}
		p.smoothed = sm
		p.haveSmoothed = true

		if stable {
			out.ZoomDelta = p.updateScale(ft.HandScale) * in.ZoomSpeed
		}
	} else {
		// Cleared, not paused: re-entry starts fresh.
		if p.prevRaw == LabelOpenPalm && !in.InteractionLocked {
			flick = p.lastPanDX
		}
		p.clearPalm()
	}

	// Pinch debouncer.
	if raw != LabelPinch {
		p.pinchActive = false
		if raw == LabelNone {
			p.pinchLastPos = nil
		}
	} else if stable {
		pos := pinchPosition(in.Landmarks)
		if !p.pinchActive && p.pinchCooldown <= 0 && p.pinchMoved(pos) {
			p.pinchActive = true
			p.pinchCooldown = pinchCooldownSeconds
			p.pinchLastPos = &Point2{X: pos.X, Y: pos.Y}
			out.Pinch = &PinchEvent{X: pos.X, Y: pos.Y}
		}
	}

	// Rotation momentum.
	switch {
	case in.InteractionLocked || raw == LabelPinch || raw == LabelOpenPalm:
		p.momentum = 0
	case flick != 0:
		p.momentum = clamp(flick*flickGain, -1, 1)
	default:
		p.momentum *= momentumDecay
		if math.Abs(p.momentum) < momentumFloor {
			p.momentum = 0
		}
	}
	out.RotationSpeed = p.momentum * rotationDamping

	out.Debug = fmt.Sprintf("raw=%s streak=%d/%d fingers=%s stable=%v",
		raw, p.streakCount, StreakThreshold(raw), fs, stable)

	p.prevRaw = raw
	return out
}

// updateStreak advances the run-length state and reports whether the
// current label has reached its stability threshold.
func (p *Pipeline) updateStreak(raw Label) bool {
	switch {
	case raw == LabelNone:
		p.streakLabel = LabelNone
		p.streakCount = 0
	case raw == p.streakLabel:
		p.streakCount++
	default:
		p.streakLabel = raw
		p.streakCount = 1
	}
	return raw != LabelNone && p.streakCount >= StreakThreshold(raw)
}

// updateScale folds a new hand-scale sample into the exponential
// estimate and returns the unscaled zoom delta, or 0 below the noise
// floor or on the first sample.
func (p *Pipeline) updateScale(current float64) float64 {
	if !p.scaleSet {
		p.scale = current
		p.scaleSet = true
		return 0
	}
	prev := p.scale
	p.scale = scaleRetain*p.scale + (1-scaleRetain)*current
	d := p.scale - prev
	if math.Abs(d) <= zoomNoiseFloor {
		return 0
	}
	return d
}

func (p *Pipeline) pushPalm(pt Point2) {
	p.palmBuf[p.palmHead] = pt
	p.palmHead = (p.palmHead + 1) % palmHistorySize
	if p.palmLen < palmHistorySize {
		p.palmLen++
	}
}

func (p *Pipeline) palmMean() Point2 {
	var sum Point2
	for i := 0; i < p.palmLen; i++ {
		sum.X += p.palmBuf[i].X
		sum.Y += p.palmBuf[i].Y
	}
	n := float64(p.palmLen)
	return Point2{X: sum.X / n, Y: sum.Y / n}
}

func (p *Pipeline) clearPalm() {
	p.palmLen = 0
	p.palmHead = 0
	p.haveSmoothed = false
	p.lastPanDX = 0
	p.scaleSet = false
}

// pinchMoved reports whether pos clears the positional tolerance against
// the last trigger. With no recorded trigger it always passes.
func (p *Pipeline) pinchMoved(pos Point2) bool {
	if p.pinchLastPos == nil {
		return true
	}
	return math.Abs(pos.X-p.pinchLastPos.X) > pinchMinMove ||
		math.Abs(pos.Y-p.pinchLastPos.Y) > pinchMinMove
}

// pinchPosition is the midpoint of the thumb and index tips with X
// mirrored into screen space.
func pinchPosition(lm *detector.HandLandmarks) Point2 {
	t := lm.Points[detector.ThumbTip]
	i := lm.Points[detector.IndexTip]
	return Point2{X: 1 - (t.X+i.X)/2, Y: (t.Y + i.Y) / 2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
