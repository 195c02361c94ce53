package mocks

import (
	"sync"
	"time"

	"github.com/user/menuvideo/pkg/ports"
)

// Scheduler is a ports.TaskScheduler whose tasks only run when the test calls RunAll.
type Scheduler struct {
	mu    sync.Mutex
	tasks []*Task
}

// Task is a task registered with Scheduler.
type Task struct {
	Interval  time.Duration
	fn        func()
	cancelled bool
	mu        *sync.Mutex
}

// Cancel stops the task.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (t *Task) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// Schedule registers fn.
func (s *Scheduler) Schedule(interval time.Duration, fn func()) ports.TaskHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &Task{Interval: interval, fn: fn, mu: &s.mu}
	s.tasks = append(s.tasks, t)
	return t
}

// RunAll invokes every task that has not been cancelled once.
func (s *Scheduler) RunAll() {
	s.mu.Lock()
	var due []*Task
	for _, t := range s.tasks {
		if !t.cancelled {
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

// Tasks returns all registered tasks, including cancelled ones.
func (s *Scheduler) Tasks() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Task(nil), s.tasks...)
}

var _ ports.TaskScheduler = (*Scheduler)(nil)
