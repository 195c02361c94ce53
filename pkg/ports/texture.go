package ports

import (
	"fmt"
	"image"
)

// Texture is a decoded, display-ready frame image.
// Handles are compared by identity: the cache hands out one *Texture per path
// until that path is evicted.
type Texture struct {
	Path  string
	Image image.Image
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.Image.Bounds().Dx()
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.Image.Bounds().Dy()
}

// TextureCache maps frame file paths to decoded textures.
// It is process-wide shared state; implementations must be safe for concurrent use.
type TextureCache interface {
	// GetOrLoad returns the cached texture for path, decoding and inserting it on a miss.
	// Decoding failures are reported as *DecodeError.
	GetOrLoad(path string) (*Texture, error)

	// Evict removes the entry for path. A load that started before the
	// eviction must not reinstall its result.
	Evict(path string)
}

// DecodeError reports that a single frame image could not be loaded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
