// Package app provides the main application logic for the Mudra gesture control system.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/scene"
	"github.com/ayusman/mudra/internal/store"
)

// Control loop timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active detection.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	RendererDir  string
	CameraID     int
	MotionThresh float64
}

// State is the per-tick control snapshot pushed to the dashboard and
// the renderer bridge.
type State struct {
	RawGesture    string              `json:"raw_gesture"`
	StableGesture string              `json:"stable_gesture"`
	PanDX         float64             `json:"pan_dx"`
	PanDY         float64             `json:"pan_dy"`
	ZoomDelta     float64             `json:"zoom_delta"`
	RotationSpeed float64             `json:"rotation_speed"`
	Viewport      scene.ViewportState `json:"viewport"`
	Effect        string              `json:"effect,omitempty"`
	SelectedPhoto string              `json:"selected_photo,omitempty"`
	Debug         string              `json:"debug"`
	Timestamp     int64               `json:"timestamp"`
}

// App orchestrates the camera, detector, gesture pipeline and scene.
// The tick loop is the single mutator of the pipeline and viewport;
// everything else observes through snapshots.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionGate
	detector detector.Detector
	pipeline *gesture.Pipeline
	viewport *scene.Viewport
	director *scene.Director
	gallery  *scene.Gallery
	bridge   *render.Bridge

	panSpeed  float64
	zoomSpeed float64

	broadcast   func(State)
	lastGesture gesture.Label

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:      config,
		camera:      capture.NewCamera(config.CameraID),
		motion:      capture.NewMotionGate(motionThreshold),
		pipeline:    gesture.New(),
		viewport:    scene.NewViewport(),
		director:    scene.NewDirector(),
		gallery:     scene.NewGallery(),
		panSpeed:    store.DefaultPanSpeed,
		zoomSpeed:   store.DefaultZoomSpeed,
		lastGesture: gesture.LabelNone,
		enabled:     false,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	if config.RendererDir != "" {
		if renderer, err := render.Discover(config.RendererDir); err == nil {
			a.bridge = render.NewBridge(renderer)
			log.Printf("Discovered renderer %q", renderer.Manifest.Name)
		} else {
			log.Printf("No renderer available (%v), control state will not be rendered", err)
		}
	}

	return a
}

// SetEnabled enables or disables gesture control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetBroadcast sets the hook that receives the per-tick state snapshot.
func (a *App) SetBroadcast(fn func(State)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.broadcast = fn
}

// SetSpeeds updates the pan and zoom sensitivity multipliers.
// Non-positive values are ignored.
func (a *App) SetSpeeds(panSpeed, zoomSpeed float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if panSpeed > 0 {
		a.panSpeed = panSpeed
	}
	if zoomSpeed > 0 {
		a.zoomSpeed = zoomSpeed
	}
}

// LoadSettings reads the sensitivity multipliers from the store.
func (a *App) LoadSettings() {
	if a.config.Store == nil {
		return
	}
	settings := a.config.Store.Settings()
	a.SetSpeeds(
		settings.GetFloat(store.SettingPanSpeed, store.DefaultPanSpeed),
		settings.GetFloat(store.SettingZoomSpeed, store.DefaultZoomSpeed),
	)
}

// ReloadPhotos refreshes the scene's ornament set from the store.
func (a *App) ReloadPhotos() {
	if a.config.Store == nil {
		return
	}

	photos, err := a.config.Store.Photos().List()
	if err != nil {
		log.Printf("Failed to load photos: %v", err)
		return
	}

	ornaments := make([]scene.Ornament, 0, len(photos))
	for _, p := range photos {
		ornaments = append(ornaments, scene.Ornament{
			ID:    p.ID,
			Label: p.Label,
			X:     p.SlotX,
			Y:     p.SlotY,
		})
	}
	a.gallery.SetOrnaments(ornaments)
}

// LastGesture returns the most recent stable gesture, for the tray readout.
func (a *App) LastGesture() gesture.Label {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastGesture
}

func (a *App) setLastGesture(label gesture.Label) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastGesture = label
}

// Start begins the control loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	if a.bridge != nil {
		if err := a.bridge.Start(); err != nil {
			log.Printf("Failed to start renderer: %v", err)
		}
	}

	// Create stop channel and start the loop
	a.stopCh = make(chan struct{})
	go a.runLoop()

	log.Println("Gesture control loop started")
	return nil
}

// Stop halts the control loop and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the loop to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion gate
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.bridge != nil {
		a.bridge.Stop()
	}

	log.Println("Gesture control loop stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Viewport returns the scene viewport.
func (a *App) Viewport() *scene.Viewport {
	return a.viewport
}

// Gallery returns the photo ornament gallery.
func (a *App) Gallery() *scene.Gallery {
	return a.gallery
}
