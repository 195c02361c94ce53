package mocks

import (
	"image"
	"sync"

	"github.com/user/menuvideo/pkg/ports"
)

// TextureCache is a mock implementation of ports.TextureCache.
// By default GetOrLoad returns one stable 1x1 texture per path.
type TextureCache struct {
	mu       sync.Mutex
	textures map[string]*ports.Texture

	// Log, when set, records "evict:<path>" in call order.
	Log *CallLog

	GetOrLoadFunc func(path string) (*ports.Texture, error)
	EvictFunc     func(path string)

	GetOrLoadCalls []string
	EvictCalls     []string
}

// NewTextureCache creates a new mock TextureCache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*ports.Texture)}
}

func (m *TextureCache) GetOrLoad(path string) (*ports.Texture, error) {
	m.mu.Lock()
	m.GetOrLoadCalls = append(m.GetOrLoadCalls, path)
	m.mu.Unlock()

	if m.GetOrLoadFunc != nil {
		return m.GetOrLoadFunc(path)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if tex, ok := m.textures[path]; ok {
		return tex, nil
	}
	tex := &ports.Texture{Path: path, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	m.textures[path] = tex
	return tex, nil
}

func (m *TextureCache) Evict(path string) {
	m.Log.Add("evict:" + path)
	m.mu.Lock()
	m.EvictCalls = append(m.EvictCalls, path)
	delete(m.textures, path)
	m.mu.Unlock()

	if m.EvictFunc != nil {
		m.EvictFunc(path)
	}
}

// Cached reports whether path currently has an entry.
func (m *TextureCache) Cached(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.textures[path]
	return ok
}

// LoadCount returns how many times GetOrLoad was called.
func (m *TextureCache) LoadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GetOrLoadCalls)
}

var _ ports.TextureCache = (*TextureCache)(nil)
