// Package texturecache provides the process-wide frame texture cache.
package texturecache

import (
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/user/menuvideo/pkg/ports"
)

// Cache implements ports.TextureCache over a filesystem and an image decoder.
// Concurrent misses on the same path share one decode. Every Evict bumps a
// per-path generation; a load only installs its result if the generation it
// started under is still current.
type Cache struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	metrics  ports.PlaybackMetrics
	logger   ports.Logger

	mu      sync.Mutex
	entries map[string]*ports.Texture
	gens    map[string]uint64
	group   singleflight.Group
}

// New creates an empty Cache.
func New(fs ports.FileSystem, renderer ports.Renderer, metrics ports.PlaybackMetrics, logger ports.Logger) *Cache {
	return &Cache{
		fs:       fs,
		renderer: renderer,
		metrics:  metrics,
		logger:   logger.WithComponent("texturecache"),
		entries:  make(map[string]*ports.Texture),
		gens:     make(map[string]uint64),
	}
}

// GetOrLoad returns the cached texture for path, decoding it on a miss.
func (c *Cache) GetOrLoad(path string) (*ports.Texture, error) {
	c.mu.Lock()
	if tex, ok := c.entries[path]; ok {
		c.mu.Unlock()
		c.metrics.ObserveCacheLookup(true)
		return tex, nil
	}
	gen := c.gens[path]
	c.mu.Unlock()
	c.metrics.ObserveCacheLookup(false)

	key := path + "#" + strconv.FormatUint(gen, 10)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.load(path, gen)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ports.Texture), nil
}

func (c *Cache) load(path string, gen uint64) (*ports.Texture, error) {
	c.mu.Lock()
	if tex, ok := c.entries[path]; ok {
		c.mu.Unlock()
		return tex, nil
	}
	c.mu.Unlock()

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, &ports.DecodeError{Path: path, Err: err}
	}
	img, err := c.renderer.DecodeImage(data, ports.FormatForExt(filepath.Ext(path)))
	if err != nil {
		return nil, &ports.DecodeError{Path: path, Err: err}
	}
	tex := &ports.Texture{Path: path, Image: img}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[path] != gen {
		c.logger.Debug("Discarding texture for %s evicted during load", path)
		return tex, nil
	}
	if existing, ok := c.entries[path]; ok {
		return existing, nil
	}
	c.entries[path] = tex
	return tex, nil
}

// Evict drops path from the cache. Loads already in flight for path will not
// reinstall their result.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gens[path]++
	if _, ok := c.entries[path]; ok {
		delete(c.entries, path)
		c.metrics.ObserveEviction()
	}
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var _ ports.TextureCache = (*Cache)(nil)
