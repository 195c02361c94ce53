// Package playback drives a display surface from a frame set, choosing the
// frame for "now" on every tick of the host's main loop.
package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/ports"
)

// DefaultTickInterval wakes sessions at 60 Hz.
const DefaultTickInterval = time.Second / 60

// State is the lifecycle state of a Session.
type State int

const (
	StateUninitialized State = iota
	StateActivated
	StateTicking
	StateDetached
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActivated:
		return "activated"
	case StateTicking:
		return "ticking"
	case StateDetached:
		return "detached"
	default:
		return "unknown"
	}
}

// FrameSource discovers the frame set a session plays.
type FrameSource interface {
	Discover(dir string) (framestore.FrameSet, error)
}

// Options configures playback.
type Options struct {
	FrameRate    FrameRate     // Target playback rate
	TickInterval time.Duration // Wake-up interval; should not exceed one frame period
}

// Scheduler owns the collaborators shared by every playback session:
// the frame source, the process-wide texture cache and the host's main loop.
type Scheduler struct {
	frames  FrameSource
	cache   ports.TextureCache
	fs      ports.FileSystem
	tasks   ports.TaskScheduler
	clock   ports.Clock
	metrics ports.PlaybackMetrics
	logger  ports.Logger
	opts    Options
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	frames FrameSource,
	cache ports.TextureCache,
	fs ports.FileSystem,
	tasks ports.TaskScheduler,
	clock ports.Clock,
	metrics ports.PlaybackMetrics,
	logger ports.Logger,
	opts Options,
) *Scheduler {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	return &Scheduler{
		frames:  frames,
		cache:   cache,
		fs:      fs,
		tasks:   tasks,
		clock:   clock,
		metrics: metrics,
		logger:  logger.WithComponent("playback"),
		opts:    opts,
	}
}

// NewSession creates a session for the frames in dir. The playback clock
// starts now; the frame set is read when the session is attached.
func (p *Scheduler) NewSession(dir string) *Session {
	id := uuid.New()
	return &Session{
		id:     id,
		p:      p,
		dir:    dir,
		start:  p.clock.Now(),
		logger: p.logger.WithComponent(id.String()[:8]),
	}
}

// Session binds one frame set to one display surface.
// It never deletes frame files and never outlives its surface: once detached
// it cannot be attached again.
type Session struct {
	id     uuid.UUID
	p      *Scheduler
	dir    string
	start  time.Time
	logger ports.Logger

	mu         sync.Mutex
	state      State
	frames     framestore.FrameSet
	surface    ports.DisplaySurface
	task       ports.TaskHandle
	current    int
	texture    *ports.Texture
	lastFailed string
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentFrame returns the last displayed 1-based frame index, or 0 before the first swap.
func (s *Session) CurrentFrame() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Frames returns the frame set read at activation.
func (s *Session) Frames() framestore.FrameSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Attach loads the frame set metadata, binds the surface and starts ticking.
// A frame set that cannot be read is treated as empty: ticks no-op until a
// new session is created after extraction.
func (s *Session) Attach(surface ports.DisplaySurface) error {
	s.mu.Lock()
	switch s.state {
	case StateDetached:
		s.mu.Unlock()
		return ErrDetached
	case StateUninitialized:
	default:
		s.mu.Unlock()
		return ErrAlreadyAttached
	}
	if surface.Destroyed() {
		s.mu.Unlock()
		return ErrSurfaceDestroyed
	}

	frames, err := s.p.frames.Discover(s.dir)
	if err != nil {
		s.logger.Warn("Failed to read frames: %s", err)
	}
	s.frames = frames
	s.surface = surface
	s.texture = surface.Texture()
	s.state = StateActivated

	s.logger.Info("Initializing scheduler (fps: %s, frameCount: %d)", s.p.opts.FrameRate, frames.Count)
	s.task = s.p.tasks.Schedule(s.p.opts.TickInterval, s.Tick)
	s.state = StateTicking
	s.p.metrics.SessionStarted()
	s.mu.Unlock()

	// Registered outside the lock: a surface may run the callback immediately.
	surface.OnDestroy(s.Detach)
	return nil
}

// Tick shows the frame for the current time. It is a no-op unless the session
// is ticking. Missing frames, decode failures and empty frame sets skip the
// tick and leave the displayed texture untouched.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateTicking {
		return
	}
	if s.surface.Destroyed() {
		s.detachLocked()
		return
	}
	s.p.metrics.ObserveTick(s.advance())
}

func (s *Session) advance() ports.TickOutcome {
	if s.frames.Empty() {
		return ports.TickEmpty
	}

	elapsed := s.p.clock.Now().Sub(s.start)
	index := FrameIndex(elapsed, s.p.opts.FrameRate, s.frames.Count)
	path := s.frames.Path(index)

	// Extraction may still be writing the tail of the sequence.
	exists, err := s.p.fs.Exists(path)
	if err != nil || !exists {
		return ports.TickMissingFrame
	}

	tex, err := s.p.cache.GetOrLoad(path)
	if err != nil {
		if path != s.lastFailed {
			s.logger.Warn("Failed to load texture at frame %d: %s", index, err)
			s.lastFailed = path
		}
		return ports.TickDecodeFailed
	}
	s.lastFailed = ""

	if tex == s.texture {
		s.current = index
		return ports.TickUnchanged
	}

	s.surface.SetTexture(tex)
	s.texture = tex
	s.current = index
	return ports.TickSwapped
}

// Detach stops the session. When it returns no tick will run again and the
// surface is no longer referenced. Safe to call repeatedly and from the
// surface's destroy callback.
func (s *Session) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detachLocked()
}

func (s *Session) detachLocked() {
	if s.state == StateDetached {
		return
	}
	wasTicking := s.state == StateTicking
	s.state = StateDetached
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
	s.surface = nil
	s.texture = nil
	if wasTicking {
		s.p.metrics.SessionStopped()
		s.logger.Info("Playback detached")
	}
}
