package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  game:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a set of resources loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource describes one image or sprite map.
//
// Example:
//
//   - id: IMAGE_SPACESHIP
//     path: images/spaceship.png
//     cols: 2
//     rows: 2
type ImageResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite map columns (0 if a plain image)
	Rows int    `yaml:"rows,omitempty"` // Sprite map rows (0 if a plain image)
}

// SoundResource describes one sound effect or music track.
//
// Example:
//
//   - id: SOUND_AMBIENT
//     path: sounds/ambient.wav
//     loop: true
type SoundResource struct {
	ID   string `yaml:"id"`             // Resource ID, matches engine.SoundID
	Path string `yaml:"path"`           // Relative file path from base_path
	Loop bool   `yaml:"loop,omitempty"` // Music tracks loop forever
}

// ParseResourceConfig parses a YAML resource manifest.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if len(config.Groups) == 0 {
		return nil, fmt.Errorf("resource config has no groups")
	}
	return &config, nil
}

// buildFullPath combines the base path with a resource's relative path.
//
//	buildFullPath("assets", "images/spaceship.png") == "assets/images/spaceship.png"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
