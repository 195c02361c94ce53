package ports

// DisplaySurface is the image node that receives frame textures.
// It is owned by the host scene graph; a playback session only holds a
// non-owning reference and must stop driving it once it is destroyed.
type DisplaySurface interface {
	// SetTexture replaces the displayed texture.
	SetTexture(tex *Texture)

	// Texture returns the currently displayed texture, or nil.
	Texture() *Texture

	// OnDestroy registers fn to run when the owner tears the surface down.
	OnDestroy(fn func())

	// Destroyed reports whether the surface has been torn down.
	Destroyed() bool
}
