package pipeline

import (
	"time"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/ports"
)

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput names the source video to inspect.
type ProbeInput struct {
	VideoPath string
	FPS       int // Extraction rate, used to estimate the frame count
}

// ProbeResult describes the source video.
type ProbeResult struct {
	Info           ports.VideoInfo
	Probed         bool // False when the container could not be read; Info is then empty
	ExpectedFrames int  // 0 when the duration is unknown
}

// =============================================================================
// Prepare Stage Types
// =============================================================================

// PrepareInput locates the frames folder.
type PrepareInput struct {
	DataDir   string
	FramesDir string
}

// PrepareResult is an empty frames folder ready for extraction.
type PrepareResult struct {
	FramesDir     string
	OutputPattern string // printf-style pattern for the decoder
	LogPath       string
}

// =============================================================================
// Extract Stage Types
// =============================================================================

// ExtractInput contains parameters for frame extraction.
type ExtractInput struct {
	VideoPath      string
	FPS            int
	FramesDir      string
	OutputPattern  string
	LogPath        string
	ExpectedFrames int           // For progress reporting; 0 disables percentages
	PollInterval   time.Duration // How often the folder is scanned for progress
}

// ExtractResult is the frame set written by the decoder.
type ExtractResult struct {
	Frames  framestore.FrameSet
	Elapsed time.Duration
}
