// Package imagesurface provides a scene-graph sprite that displays frame
// textures stretched to the window, and snapshots of the rendered scene.
package imagesurface

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/menuvideo/pkg/host"
	"github.com/user/menuvideo/pkg/ports"
)

// Sprite is a host node showing one texture at a time.
type Sprite struct {
	*host.Node

	mu      sync.Mutex
	texture *ports.Texture
	swaps   int
}

// NewSprite creates a sprite node showing tex.
func NewSprite(name string, tex *ports.Texture) *Sprite {
	s := &Sprite{Node: host.NewNode(name), texture: tex}
	s.Node.SetContent(s)
	return s
}

// SetTexture replaces the displayed texture. It is ignored once the node is destroyed.
func (s *Sprite) SetTexture(tex *ports.Texture) {
	if s.Destroyed() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texture = tex
	s.swaps++
}

// Texture returns the displayed texture.
func (s *Sprite) Texture() *ports.Texture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texture
}

// Swaps returns how many times the texture was replaced.
func (s *Sprite) Swaps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swaps
}

// Draw stretches the texture over the whole window, centred on it.
func (s *Sprite) Draw(dst host.Painter, window image.Point) {
	tex := s.Texture()
	if tex == nil || tex.Image == nil {
		return
	}
	dst.DrawImageScaled(tex.Image, 0, 0, window.X, window.Y)
}

var _ ports.DisplaySurface = (*Sprite)(nil)

// Snapshot renders scene onto a canvas cleared to bg.
func Snapshot(scene *host.Scene, renderer ports.Renderer, bg color.Color) image.Image {
	size := scene.WindowSize()
	canvas := renderer.CreateCanvas(size.X, size.Y, bg)
	scene.Render(canvas)
	return canvas.ToImage()
}
