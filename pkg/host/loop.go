// Package host is a minimal single-threaded main loop and scene graph that
// playback sessions and background sprites run on.
package host

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/user/menuvideo/pkg/ports"
)

// DefaultResolution is the loop's wake-up period.
const DefaultResolution = time.Second / 120

// Loop runs periodic tasks and posted callbacks on one goroutine.
// Schedule, Post and TaskHandle.Cancel may be called from any goroutine.
type Loop struct {
	clock      ports.Clock
	resolution time.Duration
	logger     ports.Logger

	mu     sync.Mutex
	tasks  map[uint64]*task
	nextID uint64
	posted chan func()
}

type task struct {
	loop     *Loop
	id       uint64
	interval time.Duration
	next     time.Time
	fn       func()
}

// NewLoop creates a loop. A non-positive resolution uses DefaultResolution.
func NewLoop(clock ports.Clock, resolution time.Duration, logger ports.Logger) *Loop {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Loop{
		clock:      clock,
		resolution: resolution,
		logger:     logger.WithComponent("host"),
		tasks:      make(map[uint64]*task),
		posted:     make(chan func(), 64),
	}
}

// Schedule runs fn every interval on the loop goroutine, starting at the next step.
func (l *Loop) Schedule(interval time.Duration, fn func()) ports.TaskHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	t := &task{
		loop:     l,
		id:       l.nextID,
		interval: interval,
		next:     l.clock.Now(),
		fn:       fn,
	}
	l.tasks[t.id] = t
	return t
}

// Cancel removes the task. A task cancelled from another goroutine may still
// be mid-run; callers that need a hard stop guard their own state.
func (t *task) Cancel() {
	t.loop.mu.Lock()
	defer t.loop.mu.Unlock()
	delete(t.loop.tasks, t.id)
}

// Post queues fn to run on the loop goroutine. It blocks if the queue is full.
func (l *Loop) Post(fn func()) {
	l.posted <- fn
}

// Run steps the loop every resolution until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.resolution)
	defer ticker.Stop()

	l.logger.Debug("Main loop started (resolution: %s)", l.resolution)
	for {
		select {
		case <-ctx.Done():
			l.Step()
			l.logger.Debug("Main loop stopped")
			return nil
		case fn := <-l.posted:
			fn()
		case <-ticker.C:
			l.Step()
		}
	}
}

// Step drains posted callbacks, then runs every task that is due.
// A task that fell behind runs once and is rescheduled from now.
func (l *Loop) Step() {
	l.drain()

	now := l.clock.Now()
	for _, t := range l.due(now) {
		l.mu.Lock()
		_, live := l.tasks[t.id]
		l.mu.Unlock()
		if live {
			t.fn()
		}
	}
}

// Pending returns the number of scheduled tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.posted:
			fn()
		default:
			return
		}
	}
}

func (l *Loop) due(now time.Time) []*task {
	l.mu.Lock()
	defer l.mu.Unlock()

	var due []*task
	for _, t := range l.tasks {
		if now.Before(t.next) {
			continue
		}
		due = append(due, t)
		t.next = t.next.Add(t.interval)
		if !t.next.After(now) {
			t.next = now.Add(t.interval)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].id < due[j].id })
	return due
}

var (
	_ ports.TaskScheduler = (*Loop)(nil)
	_ ports.MainThread    = (*Loop)(nil)
)
