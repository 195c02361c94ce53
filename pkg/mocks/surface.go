package mocks

import (
	"sync"

	"github.com/user/menuvideo/pkg/ports"
)

// Surface is a mock implementation of ports.DisplaySurface that counts swaps.
type Surface struct {
	mu        sync.Mutex
	texture   *ports.Texture
	destroyed bool
	onDestroy []func()

	SetTextureCalls int
}

func (m *Surface) SetTexture(tex *ports.Texture) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.destroyed {
		panic("mocks: SetTexture on destroyed surface")
	}
	m.SetTextureCalls++
	m.texture = tex
}

func (m *Surface) Texture() *ports.Texture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.texture
}

func (m *Surface) OnDestroy(fn func()) {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		fn()
		return
	}
	m.onDestroy = append(m.onDestroy, fn)
	m.mu.Unlock()
}

func (m *Surface) Destroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

// Destroy tears the surface down and runs destroy callbacks.
func (m *Surface) Destroy() {
	m.mu.Lock()
	if m.destroyed {
		m.mu.Unlock()
		return
	}
	m.destroyed = true
	callbacks := m.onDestroy
	m.onDestroy = nil
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// MarkDestroyed flags the surface as destroyed without running callbacks,
// simulating an owner that frees the node without notifying.
func (m *Surface) MarkDestroyed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = true
}

var _ ports.DisplaySurface = (*Surface)(nil)
