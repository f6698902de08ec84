package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayusman/mudra/internal/store"
)

func TestSettingsHandler_GetDefaults(t *testing.T) {
	s := newTestStore(t)
	handler := NewSettingsHandler(s, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response settingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.PanSpeed != store.DefaultPanSpeed {
		t.Errorf("PanSpeed = %v, want default %v", response.PanSpeed, store.DefaultPanSpeed)
	}
	if response.ZoomSpeed != store.DefaultZoomSpeed {
		t.Errorf("ZoomSpeed = %v, want default %v", response.ZoomSpeed, store.DefaultZoomSpeed)
	}
}

func TestSettingsHandler_UpdatePersistsAndNotifies(t *testing.T) {
	s := newTestStore(t)

	var gotPan, gotZoom float64
	handler := NewSettingsHandler(s, func(pan, zoom float64) {
		gotPan, gotZoom = pan, zoom
	})

	body, _ := json.Marshal(map[string]any{"pan_speed": 1.5, "zoom_speed": 0.5})
	req := httptest.NewRequest(http.MethodPut, "/api/settings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if gotPan != 1.5 || gotZoom != 0.5 {
		t.Errorf("onChange got (%v, %v), want (1.5, 0.5)", gotPan, gotZoom)
	}

	// Values survive in the store.
	if got := s.Settings().GetFloat(store.SettingPanSpeed, 0); got != 1.5 {
		t.Errorf("stored pan speed = %v, want 1.5", got)
	}
}

func TestSettingsHandler_PartialUpdate(t *testing.T) {
	s := newTestStore(t)
	handler := NewSettingsHandler(s, nil)

	s.Settings().SetFloat(store.SettingZoomSpeed, 2.0)

	body, _ := json.Marshal(map[string]any{"pan_speed": 0.8})
	req := httptest.NewRequest(http.MethodPut, "/api/settings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response settingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.PanSpeed != 0.8 {
		t.Errorf("PanSpeed = %v, want 0.8", response.PanSpeed)
	}
	if response.ZoomSpeed != 2.0 {
		t.Errorf("ZoomSpeed = %v, want untouched 2.0", response.ZoomSpeed)
	}
}

func TestSettingsHandler_RejectsNonPositiveSpeed(t *testing.T) {
	s := newTestStore(t)
	handler := NewSettingsHandler(s, nil)

	body, _ := json.Marshal(map[string]any{"pan_speed": -1.0})
	req := httptest.NewRequest(http.MethodPut, "/api/settings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
