package mocks

import (
	"context"
	"sync"

	"github.com/user/menuvideo/pkg/ports"
)

// FrameExtractor is a mock implementation of ports.FrameExtractor.
type FrameExtractor struct {
	AvailableFunc func() bool
	ExtractFunc   func(ctx context.Context, req ports.ExtractRequest) error

	mu           sync.Mutex
	ExtractCalls []ports.ExtractRequest
}

func (m *FrameExtractor) Available() bool {
	if m.AvailableFunc != nil {
		return m.AvailableFunc()
	}
	return true
}

func (m *FrameExtractor) Extract(ctx context.Context, req ports.ExtractRequest) error {
	m.mu.Lock()
	m.ExtractCalls = append(m.ExtractCalls, req)
	m.mu.Unlock()
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, req)
	}
	return nil
}

var _ ports.FrameExtractor = (*FrameExtractor)(nil)

// VideoProber is a mock implementation of ports.VideoProber.
type VideoProber struct {
	ProbeFunc func(path string) (ports.VideoInfo, error)
}

func (m *VideoProber) Probe(path string) (ports.VideoInfo, error) {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(path)
	}
	return ports.VideoInfo{}, nil
}

var _ ports.VideoProber = (*VideoProber)(nil)

// Alert is one message shown through Notifier.
type Alert struct {
	Title   string
	Message string
}

// Notifier records alerts.
type Notifier struct {
	mu     sync.Mutex
	alerts []Alert
}

func (m *Notifier) Alert(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, Alert{Title: title, Message: message})
}

// Alerts returns the recorded alerts.
func (m *Notifier) Alerts() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Alert(nil), m.alerts...)
}

var _ ports.Notifier = (*Notifier)(nil)

// MainThread runs posted functions when the test calls Drain.
type MainThread struct {
	mu      sync.Mutex
	pending []func()
}

func (m *MainThread) Post(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
}

// Drain runs and clears all posted functions. It returns how many ran.
func (m *MainThread) Drain() int {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

var _ ports.MainThread = (*MainThread)(nil)
