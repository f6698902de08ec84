package render

import (
	"testing"

	"github.com/ayusman/mudra/internal/scene"
)

func TestBridge_SendBeforeStartIsDropped(t *testing.T) {
	b := NewBridge(&Renderer{Executable: "/bin/cat"})

	// Must not panic or block.
	b.Send(SceneState{StableGesture: "open_palm"})

	if b.Running() {
		t.Error("bridge should not report running before Start")
	}
}

func TestBridge_StartSendStop(t *testing.T) {
	b := NewBridge(&Renderer{Executable: "/bin/cat"})

	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !b.Running() {
		t.Error("bridge should report running after Start")
	}

	for i := 0; i < 3; i++ {
		b.Send(SceneState{
			StableGesture: "open_palm",
			Viewport:      scene.ViewportState{Zoom: 1.0},
		})
	}

	b.Stop()
	if b.Running() {
		t.Error("bridge should not report running after Stop")
	}
}

func TestBridge_StartTwiceIsNoop(t *testing.T) {
	b := NewBridge(&Renderer{Executable: "/bin/cat"})

	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer b.Stop()

	if err := b.Start(); err != nil {
		t.Errorf("second Start() error = %v, want nil", err)
	}
}

func TestBridge_StartMissingExecutable(t *testing.T) {
	b := NewBridge(&Renderer{Executable: "/nonexistent/renderer"})

	if err := b.Start(); err == nil {
		t.Error("Start() should fail for a missing executable")
	}
	if b.Running() {
		t.Error("bridge should not report running after failed Start")
	}
}

func TestBridge_StopWithoutStart(t *testing.T) {
	b := NewBridge(&Renderer{Executable: "/bin/cat"})

	// Must not panic.
	b.Stop()
}
