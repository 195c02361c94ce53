package ports

import (
	"context"
	"time"
)

// ExtractRequest describes one frame extraction job.
type ExtractRequest struct {
	VideoPath     string // Source video
	OutputPattern string // printf-style output pattern, e.g. /data/frames/output_%04d.png
	LogPath       string // Decoder diagnostics are written here
	FPS           int    // Frames per second to sample
}

// FrameExtractor converts a video into a sequence of still frames.
type FrameExtractor interface {
	// Available reports whether the external decoder can be run.
	Available() bool

	// Extract runs the decoder and blocks until it exits.
	Extract(ctx context.Context, req ExtractRequest) error
}

// VideoInfo describes a probed source video.
type VideoInfo struct {
	Codec    string
	Width    int
	Height   int
	Duration time.Duration // Zero when the container does not record it
}

// VideoProber reads container metadata from a source video.
type VideoProber interface {
	Probe(path string) (VideoInfo, error)
}

// AlertErrorTitle is the title of every error popup.
const AlertErrorTitle = "An error has occurred!"

// Notifier shows a modal message to the user (the host's alert popup).
// It must only be called on the main loop.
type Notifier interface {
	Alert(title, message string)
}
