package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/store"
)

// SettingsHandler handles HTTP requests for the control sensitivity settings.
type SettingsHandler struct {
	store *store.Store

	// onChange is invoked with the new multipliers after a successful
	// update so the control loop can pick them up. May be nil.
	onChange func(panSpeed, zoomSpeed float64)
}

// NewSettingsHandler creates a new SettingsHandler with the given store.
func NewSettingsHandler(s *store.Store, onChange func(panSpeed, zoomSpeed float64)) *SettingsHandler {
	return &SettingsHandler{store: s, onChange: onChange}
}

type settingsResponse struct {
	PanSpeed  float64 `json:"pan_speed"`
	ZoomSpeed float64 `json:"zoom_speed"`
}

type updateSettingsRequest struct {
	PanSpeed  *float64 `json:"pan_speed"`
	ZoomSpeed *float64 `json:"zoom_speed"`
}

// ServeHTTP implements the http.Handler interface.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *SettingsHandler) current() settingsResponse {
	settings := h.store.Settings()
	return settingsResponse{
		PanSpeed:  settings.GetFloat(store.SettingPanSpeed, store.DefaultPanSpeed),
		ZoomSpeed: settings.GetFloat(store.SettingZoomSpeed, store.DefaultZoomSpeed),
	}
}

// get handles GET /api/settings.
func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.current())
}

// update handles PUT /api/settings.
func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	settings := h.store.Settings()

	if req.PanSpeed != nil {
		if *req.PanSpeed <= 0 {
			writeError(w, http.StatusBadRequest, "Pan speed must be positive")
			return
		}
		if err := settings.SetFloat(store.SettingPanSpeed, *req.PanSpeed); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save settings")
			return
		}
	}
	if req.ZoomSpeed != nil {
		if *req.ZoomSpeed <= 0 {
			writeError(w, http.StatusBadRequest, "Zoom speed must be positive")
			return
		}
		if err := settings.SetFloat(store.SettingZoomSpeed, *req.ZoomSpeed); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save settings")
			return
		}
	}

	current := h.current()
	if h.onChange != nil {
		h.onChange(current.PanSpeed, current.ZoomSpeed)
	}

	writeJSON(w, http.StatusOK, current)
}
