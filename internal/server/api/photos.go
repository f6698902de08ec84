// Package api provides HTTP API handlers for the Mudra gesture control system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// PhotoHandler handles HTTP requests for photo ornament resources.
type PhotoHandler struct {
	store *store.Store

	// onChange is invoked after any successful mutation so the scene
	// can reload its ornament set. May be nil.
	onChange func()
}

// NewPhotoHandler creates a new PhotoHandler with the given store.
// The onChange callback fires after every create, update or delete.
func NewPhotoHandler(s *store.Store, onChange func()) *PhotoHandler {
	return &PhotoHandler{store: s, onChange: onChange}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *PhotoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/photos or /api/photos/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/photos")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type photoRequest struct {
	Label    string   `json:"label"`
	FilePath string   `json:"file_path"`
	SlotX    *float64 `json:"slot_x"`
	SlotY    *float64 `json:"slot_y"`
}

type photoResponse struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	FilePath  string  `json:"file_path"`
	SlotX     float64 `json:"slot_x"`
	SlotY     float64 `json:"slot_y"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type listPhotosResponse struct {
	Photos []photoResponse `json:"photos"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toPhotoResponse converts a store.Photo to a photoResponse.
func toPhotoResponse(p *store.Photo) photoResponse {
	return photoResponse{
		ID:        p.ID,
		Label:     p.Label,
		FilePath:  p.FilePath,
		SlotX:     p.SlotX,
		SlotY:     p.SlotY,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func (h *PhotoHandler) changed() {
	if h.onChange != nil {
		h.onChange()
	}
}

// list handles GET /api/photos and returns all photos.
func (h *PhotoHandler) list(w http.ResponseWriter, r *http.Request) {
	photos, err := h.store.Photos().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list photos")
		return
	}

	response := listPhotosResponse{
		Photos: make([]photoResponse, 0, len(photos)),
	}
	for _, p := range photos {
		response.Photos = append(response.Photos, toPhotoResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/photos/{id} and returns a single photo.
func (h *PhotoHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	photo, err := h.store.Photos().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get photo")
		return
	}

	writeJSON(w, http.StatusOK, toPhotoResponse(photo))
}

// create handles POST /api/photos and creates a new photo ornament.
func (h *PhotoHandler) create(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.FilePath == "" {
		writeError(w, http.StatusBadRequest, "File path is required")
		return
	}

	photo := &store.Photo{
		ID:       uuid.New().String(),
		Label:    req.Label,
		FilePath: req.FilePath,
	}
	if req.SlotX != nil {
		photo.SlotX = *req.SlotX
	}
	if req.SlotY != nil {
		photo.SlotY = *req.SlotY
	}
	if !validSlot(photo.SlotX, photo.SlotY) {
		writeError(w, http.StatusBadRequest, "Slot coordinates must be within [0, 1]")
		return
	}

	if err := h.store.Photos().Create(photo); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create photo")
		return
	}

	h.changed()
	writeJSON(w, http.StatusCreated, toPhotoResponse(photo))
}

// update handles PUT /api/photos/{id} and updates an existing photo.
func (h *PhotoHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	photo, err := h.store.Photos().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get photo")
		return
	}

	var req photoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Label != "" {
		photo.Label = req.Label
	}
	if req.FilePath != "" {
		photo.FilePath = req.FilePath
	}
	if req.SlotX != nil {
		photo.SlotX = *req.SlotX
	}
	if req.SlotY != nil {
		photo.SlotY = *req.SlotY
	}
	if !validSlot(photo.SlotX, photo.SlotY) {
		writeError(w, http.StatusBadRequest, "Slot coordinates must be within [0, 1]")
		return
	}

	if err := h.store.Photos().Update(photo); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update photo")
		return
	}

	h.changed()
	writeJSON(w, http.StatusOK, toPhotoResponse(photo))
}

// delete handles DELETE /api/photos/{id} and removes a photo.
func (h *PhotoHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Photos().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	h.changed()
	w.WriteHeader(http.StatusNoContent)
}

func validSlot(x, y float64) bool {
	return x >= 0 && x <= 1 && y >= 0 && y <= 1
}
