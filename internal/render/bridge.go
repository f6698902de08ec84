package render

import (
	"encoding/json"
	"log"
	"os/exec"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/scene"
)

// sendQueueSize bounds the number of scene updates waiting to be
// written. When the renderer falls behind, older updates are dropped;
// the scene state is absolute, so skipping frames is harmless.
const sendQueueSize = 8

// stopTimeout is how long Stop waits for the renderer to exit after
// its stdin is closed before killing it.
const stopTimeout = 2 * time.Second

// SceneState is the per-tick scene update shipped to the renderer as
// one JSON line over stdin.
type SceneState struct {
	Viewport      scene.ViewportState `json:"viewport"`
	Effect        string              `json:"effect,omitempty"`
	StableGesture string              `json:"stable_gesture"`
	SelectedPhoto string              `json:"selected_photo,omitempty"`
	Ornaments     []scene.Ornament    `json:"ornaments,omitempty"`
}

// Bridge launches the renderer process and streams scene updates to
// it. A missing or crashed renderer never blocks the control loop:
// Send drops updates when nothing is consuming them.
type Bridge struct {
	renderer *Renderer

	mu      sync.Mutex
	cmd     *exec.Cmd
	queue   chan []byte
	done    chan struct{}
	running bool
}

// NewBridge creates a Bridge for the given renderer.
func NewBridge(renderer *Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// Start launches the renderer process and the writer goroutine.
// Starting an already running bridge is a no-op.
func (b *Bridge) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}

	cmd := exec.Command(b.renderer.Executable, b.renderer.Manifest.Args...)
	cmd.Dir = b.renderer.Dir

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	b.cmd = cmd
	b.queue = make(chan []byte, sendQueueSize)
	b.done = make(chan struct{})
	b.running = true

	go func(queue chan []byte, done chan struct{}) {
		defer stdin.Close()
		for {
			select {
			case msg := <-queue:
				if _, err := stdin.Write(append(msg, '\n')); err != nil {
					log.Printf("renderer write error: %v", err)
					b.markStopped()
					return
				}
			case <-done:
				return
			}
		}
	}(b.queue, b.done)

	return nil
}

// Send queues one scene update for the renderer. Updates are dropped
// silently when the bridge is not running or the queue is full.
func (b *Bridge) Send(state SceneState) {
	b.mu.Lock()
	queue := b.queue
	running := b.running
	b.mu.Unlock()

	if !running || queue == nil {
		return
	}

	msg, err := json.Marshal(state)
	if err != nil {
		log.Printf("renderer marshal error: %v", err)
		return
	}

	select {
	case queue <- msg:
	default:
		// Renderer is behind; drop this frame.
	}
}

// Running reports whether the renderer process is believed alive.
func (b *Bridge) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

func (b *Bridge) markStopped() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = false
}

// Stop closes the renderer's stdin and waits briefly for it to exit,
// killing it if it lingers.
func (b *Bridge) Stop() {
	b.mu.Lock()
	if !b.running && b.cmd == nil {
		b.mu.Unlock()
		return
	}
	cmd := b.cmd
	done := b.done
	b.cmd = nil
	b.running = false
	b.mu.Unlock()

	if done != nil {
		close(done)
	}
	if cmd == nil {
		return
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	select {
	case <-exited:
	case <-time.After(stopTimeout):
		cmd.Process.Kill()
		<-exited
	}
}
