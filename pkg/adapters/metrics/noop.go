package metrics

import "github.com/user/menuvideo/pkg/ports"

// Noop discards all observations.
type Noop struct{}

// NewNoop creates a new no-op recorder.
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) ObserveTick(outcome ports.TickOutcome) {}
func (Noop) ObserveCacheLookup(hit bool)           {}
func (Noop) ObserveEviction()                      {}
func (Noop) SessionStarted()                       {}
func (Noop) SessionStopped()                       {}

var _ ports.PlaybackMetrics = (*Noop)(nil)
