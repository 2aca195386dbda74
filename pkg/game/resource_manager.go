package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/shooter/pkg/embedded"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrResourceNotFound is returned when a resource ID is not in the manifest.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceManager is responsible for centralized management of game resources.
// It loads images and audio once and caches them for the rest of the session.
//
// Files are read from the embedded file system when it has been initialized
// (release builds, mobile), otherwise from the working directory.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game
// loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	tex, err := rm.LoadTextureByID("IMAGE_SPACESHIP")
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // path -> Image
	audioCache   map[string]*audio.Player // path -> Player
	audioContext *audio.Context           // may be nil (no audio device)

	// YAML resource manifest
	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
	loopingIDs  map[string]bool   // Sound IDs marked loop: true
	spriteGrids map[string][2]int // Image ID -> {cols, rows} for sprite maps

	readFile func(path string) ([]byte, error)
}

// NewResourceManager creates a ResourceManager with empty caches.
//
// Parameters:
//   - audioContext: the global audio context (48000 Hz); nil disables audio loading.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
		loopingIDs:   make(map[string]bool),
		spriteGrids:  make(map[string][2]int),
		readFile:     readResourceFile,
	}
}

// readResourceFile reads from the embedded FS if available, otherwise from disk.
func readResourceFile(path string) ([]byte, error) {
	if embedded.IsInitialized() {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads a PNG image and caches it.
//
// Returns an error if the file cannot be read or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// audioStream is the common shape of the ebiten audio decoders' output.
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio decodes WAV, MP3 or OGG Vorbis by file extension.
// Assets are 48000 Hz, so no resampling is needed.
func decodeAudio(path string, data []byte) (audioStream, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// loadPlayer reads, decodes and wraps an audio file in a player.
func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}

	data, err := rm.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	var source io.Reader = stream
	if loop {
		source = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(source)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadAudio loads a music track wrapped in an infinite loop.
// Supported formats: WAV, MP3 and OGG Vorbis.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound effect (no loop).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

// LoadResourceConfig reads and applies the YAML resource manifest so that
// resources can be loaded by ID instead of hard-coded paths.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	config, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	rm.config = config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources)", configPath, len(rm.resourceMap))
	return nil
}

// buildResourceMap maps resource IDs to full file paths.
//
//	IMAGE_SPACESHIP -> assets/images/spaceship.png
//	SOUND_LASER     -> assets/sounds/shoot.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.loopingIDs = make(map[string]bool)
	rm.spriteGrids = make(map[string][2]int)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
			if img.Cols > 0 && img.Rows > 0 {
				rm.spriteGrids[img.ID] = [2]int{img.Cols, img.Rows}
			}
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[sound.ID] = fullPath
			if sound.Loop {
				rm.loopingIDs[sound.ID] = true
			}
		}
	}
}

// ResolvePath returns the file path of a resource ID.
// The error wraps ErrResourceNotFound for unknown IDs.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrResourceNotFound, resourceID)
	}
	return filePath, nil
}

// SpriteGrid returns the frame grid declared for a sprite map.
// ok is false for plain images and unknown IDs.
func (rm *ResourceManager) SpriteGrid(resourceID string) (cols, rows int, ok bool) {
	grid, ok := rm.spriteGrids[resourceID]
	return grid[0], grid[1], ok
}

// LoadImageByID loads an image by its manifest ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.ResolvePath(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// LoadTextureByID loads an image by ID and wraps it for the gameplay code.
func (rm *ResourceManager) LoadTextureByID(resourceID string) (engine.Texture, error) {
	img, err := rm.LoadImageByID(resourceID)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(img), nil
}

// LoadSoundByID loads a sound by ID; tracks marked loop are loaded as music.
func (rm *ResourceManager) LoadSoundByID(soundID string) (*audio.Player, error) {
	filePath, err := rm.ResolvePath(soundID)
	if err != nil {
		return nil, err
	}
	if rm.loopingIDs[soundID] {
		return rm.LoadAudio(filePath)
	}
	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads every image and sound of a manifest group.
//
// Images must load; sound failures are logged and skipped so that the game
// still runs without an audio device.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("%w: group %s", ErrResourceNotFound, groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			log.Printf("[ResourceManager] Warning: Failed to load sound %s: %v", sound.ID, err)
		}
	}

	return nil
}
