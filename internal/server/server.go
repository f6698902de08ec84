// Package server provides the HTTP server for the Mudra gesture control system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera

	// OnSettingsChange fires when the sensitivity multipliers are
	// updated over the API. May be nil.
	OnSettingsChange func(panSpeed, zoomSpeed float64)

	// OnPhotosChange fires after any photo ornament mutation. May be nil.
	OnPhotosChange func()
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	state  *StateHandler
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		state:  NewStateHandler(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// State returns the WebSocket state hub. The control loop pushes its
// per-tick snapshot into it.
func (s *Server) State() *StateHandler {
	return s.state
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		photoHandler := api.NewPhotoHandler(s.config.Store, s.config.OnPhotosChange)
		s.mux.Handle("/api/photos", photoHandler)
		s.mux.Handle("/api/photos/", photoHandler)

		s.mux.Handle("/api/settings", api.NewSettingsHandler(s.config.Store, s.config.OnSettingsChange))
		s.mux.Handle("/api/events", api.NewEventsHandler(s.config.Store))
	}

	s.mux.Handle("/api/state", s.state)

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
