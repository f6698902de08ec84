// Package render bridges the control loop to the external 3D particle
// renderer process.
package render

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrRendererNotFound is returned when no renderer manifest could be discovered.
var ErrRendererNotFound = errors.New("renderer not found")

// Manifest describes the renderer executable and how to launch it.
type Manifest struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Executable string   `json:"executable"`
	Args       []string `json:"args,omitempty"`
}

// Renderer represents a discovered renderer with its manifest and location.
type Renderer struct {
	Manifest   Manifest
	Dir        string
	Executable string
}

// Discover reads the renderer.json manifest from the given directory.
// Returns ErrRendererNotFound if the directory or manifest is absent.
func Discover(dir string) (*Renderer, error) {
	manifestPath := filepath.Join(dir, "renderer.json")

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRendererNotFound
		}
		return nil, err
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	if manifest.Executable == "" {
		return nil, ErrRendererNotFound
	}

	executable := manifest.Executable
	if !filepath.IsAbs(executable) {
		executable = filepath.Join(dir, executable)
	}

	return &Renderer{
		Manifest:   manifest,
		Dir:        dir,
		Executable: executable,
	}, nil
}
