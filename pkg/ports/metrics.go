package ports

// TickOutcome classifies what a playback tick did.
type TickOutcome string

const (
	TickSwapped      TickOutcome = "swapped"
	TickUnchanged    TickOutcome = "unchanged"
	TickEmpty        TickOutcome = "empty"
	TickMissingFrame TickOutcome = "missing_frame"
	TickDecodeFailed TickOutcome = "decode_failed"
)

// PlaybackMetrics records playback and texture cache activity.
type PlaybackMetrics interface {
	ObserveTick(outcome TickOutcome)
	ObserveCacheLookup(hit bool)
	ObserveEviction()
	SessionStarted()
	SessionStopped()
}
