package ports

import "time"

// Clock provides monotonic time so tests can drive playback deterministically.
type Clock interface {
	Now() time.Time
}

// TaskScheduler registers recurring callbacks on the host's main loop.
type TaskScheduler interface {
	// Schedule runs fn every interval on the main loop until the handle is cancelled.
	Schedule(interval time.Duration, fn func()) TaskHandle
}

// TaskHandle cancels a scheduled task. After Cancel returns the task is never
// invoked again. Cancel is idempotent.
type TaskHandle interface {
	Cancel()
}

// MainThread hands work from background goroutines to the main loop.
type MainThread interface {
	// Post queues fn to run on the main loop. Safe to call from any goroutine.
	Post(fn func())
}
