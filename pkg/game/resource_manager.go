package game

import (
	"fmt"
	"image"
	"os"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/embedded"
)

// ResourceManager is responsible for centralized management of uploaded textures.
// Decoded images are uploaded through the renderer exactly once per path and
// reused until Clear is called (e.g. when a new image folder is opened).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Textures must be created on the
// game goroutine, so the cache is only touched from Update/Draw.
type ResourceManager struct {
	renderer     carousel.Renderer
	textureCache map[string]carousel.Texture // Cache for uploaded textures: path -> Texture
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - renderer: The backend used to upload decoded images.
func NewResourceManager(renderer carousel.Renderer) *ResourceManager {
	return &ResourceManager{
		renderer:     renderer,
		textureCache: make(map[string]carousel.Texture),
	}
}

// UploadTexture uploads a decoded image and caches it under path.
// If the path has already been uploaded, it returns the cached texture.
func (rm *ResourceManager) UploadTexture(path string, img image.Image) (carousel.Texture, error) {
	if tex, exists := rm.textureCache[path]; exists {
		return tex, nil
	}

	tex, err := rm.renderer.LoadTexture(img)
	if err != nil {
		return nil, fmt.Errorf("failed to upload texture %s: %w", path, err)
	}

	rm.textureCache[path] = tex
	return tex, nil
}

// GetTexture retrieves a previously uploaded texture, or nil if not found.
func (rm *ResourceManager) GetTexture(path string) carousel.Texture {
	return rm.textureCache[path]
}

// TextureCount returns the number of cached textures.
func (rm *ResourceManager) TextureCount() int {
	return len(rm.textureCache)
}

// Clear drops all cached textures.
func (rm *ResourceManager) Clear() {
	rm.textureCache = make(map[string]carousel.Texture)
}

// ReadFile reads a resource file, preferring the embedded assets.
func (rm *ResourceManager) ReadFile(path string) ([]byte, error) {
	return ReadAsset(path)
}

// ReadAsset reads a resource file without a ResourceManager,
// e.g. the shader source needed to create the renderer.
func ReadAsset(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", path, err)
	}
	return data, nil
}
