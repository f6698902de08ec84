package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEventRepository_AppendAndRecent(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	labels := []string{"open_palm", "victory", "pinch"}
	for _, label := range labels {
		e := &Event{ID: uuid.NewString(), Label: label}
		if err := repo.Append(e); err != nil {
			t.Fatalf("Append(%q) error = %v", label, err)
		}
		// Timestamps need to differ for a deterministic ordering.
		time.Sleep(2 * time.Millisecond)
	}

	events, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Recent() returned %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Label != "pinch" {
		t.Errorf("most recent label = %q, want %q", events[0].Label, "pinch")
	}
}

func TestEventRepository_RecentLimit(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	for i := 0; i < 5; i++ {
		if err := repo.Append(&Event{ID: uuid.NewString(), Label: "closed_fist"}); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	events, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Recent(2) returned %d events, want 2", len(events))
	}
}

func TestEventRepository_Detail(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	photoID := uuid.NewString()
	e := &Event{ID: uuid.NewString(), Label: "pinch", Detail: photoID}
	if err := repo.Append(e); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	events, err := repo.Recent(1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if events[0].Detail != photoID {
		t.Errorf("Detail = %q, want %q", events[0].Detail, photoID)
	}
}

func TestEventRepository_Prune(t *testing.T) {
	s := newTestStore(t)
	repo := s.Events()

	if err := repo.Append(&Event{ID: uuid.NewString(), Label: "victory"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// A future cutoff removes everything.
	if err := repo.Prune(-time.Hour); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	events, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("Recent() after prune returned %d events, want 0", len(events))
	}
}
