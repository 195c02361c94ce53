// Package probe implements the source video inspection stage.
package probe

import (
	"context"
	"errors"
	"time"

	"github.com/user/menuvideo/pkg/pipeline"
	"github.com/user/menuvideo/pkg/ports"
)

// ErrVideoNotFound is returned when the configured video path does not exist.
var ErrVideoNotFound = errors.New("video path does not exist")

// Stage checks the source video and estimates how many frames extraction will produce.
type Stage struct {
	fs     ports.FileSystem
	prober ports.VideoProber
	logger ports.Logger
}

// NewStage creates a new probe stage.
func NewStage(fs ports.FileSystem, prober ports.VideoProber, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		prober: prober,
		logger: logger.WithComponent("probe"),
	}
}

// Execute fails only when the video is missing. Containers the prober cannot
// read are still handed to the decoder, without a frame estimate.
func (s *Stage) Execute(ctx context.Context, input pipeline.ProbeInput) (pipeline.ProbeResult, error) {
	result := pipeline.ProbeResult{}

	if input.VideoPath == "" {
		return result, ErrVideoNotFound
	}
	exists, err := s.fs.Exists(input.VideoPath)
	if err != nil {
		return result, err
	}
	if !exists {
		return result, ErrVideoNotFound
	}

	info, err := s.prober.Probe(input.VideoPath)
	if err != nil {
		s.logger.Warn("Could not read video metadata: %s", err)
		return result, nil
	}

	result.Info = info
	result.Probed = true
	result.ExpectedFrames = ExpectedFrames(info.Duration, input.FPS)
	s.logger.Info("Source video: %s %dx%d, %s", info.Codec, info.Width, info.Height, info.Duration)
	return result, nil
}

// ExpectedFrames estimates the frames an fps filter emits for a clip of length d.
func ExpectedFrames(d time.Duration, fps int) int {
	if d <= 0 || fps <= 0 {
		return 0
	}
	return int((d*time.Duration(fps) + time.Second/2) / time.Second)
}
