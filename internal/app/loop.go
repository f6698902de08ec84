package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/store"
)

// runLoop is the control loop. Once per tick it reads a frame, detects
// the hand, runs the gesture pipeline, and routes the output to the
// viewport, effect director, photo gallery, event log, dashboard
// broadcast and renderer bridge, strictly in that order. It is the
// only goroutine that mutates the pipeline and viewport.
//
// Loop logic:
//  1. Start in idle mode (IdleFPS)
//  2. On motion detected, switch to active mode (ActiveFPS)
//  3. Skip the tick entirely when the frame timestamp has not advanced
//  4. Run hand detection only in active mode
//  5. Feed the pipeline every tick, hand or not, so cooldowns and
//     momentum keep decaying on wall time
//  6. After 2s without motion, switch back to idle mode
func (a *App) runLoop() {
	a.mu.RLock()
	stopCh := a.stopCh
	a.mu.RUnlock()

	activeMode := false
	lastMotionTime := time.Now()
	lastPosMsec := -1.0
	lastTick := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if control is disabled
			if !a.IsEnabled() {
				continue
			}

			camera := a.Camera()
			frame, err := camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// A stalled video source repeats the last frame with the
			// same timestamp; reprocessing it would double-count time
			// in nothing and re-run detection for free.
			pos := camera.PosMsec()
			if pos > 0 && pos == lastPosMsec {
				frame.Close()
				continue
			}
			lastPosMsec = pos

			// Step 1: Motion gating
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// Step 2: Hand detection, active mode only
			var hand *detector.HandLandmarks
			if activeMode {
				if d := a.Detector(); d != nil {
					hands, err := d.Detect(frame)
					if err != nil {
						log.Printf("Error detecting hands: %v", err)
					} else if len(hands) > 0 {
						hand = &hands[0]
					}
				}
			}
			frame.Close()

			now := time.Now()
			elapsed := now.Sub(lastTick).Seconds()
			lastTick = now

			a.tick(hand, elapsed)
		}
	}
}

// tick runs one pipeline step and routes its output.
func (a *App) tick(hand *detector.HandLandmarks, elapsed float64) {
	a.mu.RLock()
	panSpeed := a.panSpeed
	zoomSpeed := a.zoomSpeed
	broadcast := a.broadcast
	a.mu.RUnlock()

	out := a.pipeline.ProcessTick(gesture.Input{
		Landmarks:         hand,
		Elapsed:           elapsed,
		InteractionLocked: a.gallery.Locked(),
		PanSpeed:          panSpeed,
		ZoomSpeed:         zoomSpeed,
	})

	a.viewport.Apply(out.PanDX, out.PanDY, out.ZoomDelta, out.RotationSpeed, elapsed)

	effect, fired := a.director.Observe(out.StableGesture)
	if fired {
		a.recordEvent(string(out.StableGesture), string(effect))
	}

	if out.Pinch != nil {
		id, selected := a.gallery.HandlePinch(out.Pinch.X, out.Pinch.Y)
		if id != "" {
			detail := "released:" + id
			if selected {
				detail = "selected:" + id
			}
			a.recordEvent(string(gesture.LabelPinch), detail)
		}
	}

	// The readout remembers the most recent stable gesture; unstable
	// ticks must not blank it.
	if out.StableGesture != gesture.LabelNone {
		a.setLastGesture(out.StableGesture)
	}

	state := State{
		RawGesture:    string(out.RawGesture),
		StableGesture: string(out.StableGesture),
		PanDX:         out.PanDX,
		PanDY:         out.PanDY,
		ZoomDelta:     out.ZoomDelta,
		RotationSpeed: out.RotationSpeed,
		Viewport:      a.viewport.State(),
		Effect:        string(a.director.Current()),
		Debug:         out.Debug,
		Timestamp:     time.Now().UnixMilli(),
	}
	if selected, ok := a.gallery.Selected(); ok {
		state.SelectedPhoto = selected.ID
	}

	if broadcast != nil {
		broadcast(state)
	}

	if a.bridge != nil {
		a.bridge.Send(render.SceneState{
			Viewport:      state.Viewport,
			Effect:        state.Effect,
			StableGesture: state.StableGesture,
			SelectedPhoto: state.SelectedPhoto,
			Ornaments:     a.gallery.Ornaments(),
		})
	}
}

// recordEvent appends one entry to the gesture event log.
func (a *App) recordEvent(label, detail string) {
	if a.config.Store == nil {
		return
	}

	event := &store.Event{
		ID:     uuid.New().String(),
		Label:  label,
		Detail: detail,
	}
	if err := a.config.Store.Events().Append(event); err != nil {
		log.Printf("Failed to record gesture event: %v", err)
	}
}
