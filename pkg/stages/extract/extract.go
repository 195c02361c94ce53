// Package extract implements the frame extraction stage.
package extract

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/pipeline"
	"github.com/user/menuvideo/pkg/ports"
)

// DefaultPollInterval is how often progress is reported while the decoder runs.
const DefaultPollInterval = time.Second

// FrameSource counts frames on disk.
type FrameSource interface {
	Discover(dir string) (framestore.FrameSet, error)
}

// Stage runs the external decoder and reports progress by watching the frames folder.
type Stage struct {
	extractor ports.FrameExtractor
	frames    FrameSource
	clock     ports.Clock
	logger    ports.Logger
}

// NewStage creates a new extract stage.
func NewStage(extractor ports.FrameExtractor, frames FrameSource, clock ports.Clock, logger ports.Logger) *Stage {
	return &Stage{
		extractor: extractor,
		frames:    frames,
		clock:     clock,
		logger:    logger.WithComponent("extract"),
	}
}

// Execute blocks until the decoder exits, then returns the frames it wrote.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	interval := input.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	start := s.clock.Now()
	done := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		return s.extractor.Extract(gctx, ports.ExtractRequest{
			VideoPath:     input.VideoPath,
			OutputPattern: input.OutputPattern,
			LogPath:       input.LogPath,
			FPS:           input.FPS,
		})
	})
	g.Go(func() error {
		s.watch(gctx, done, input.FramesDir, input.ExpectedFrames, interval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("extract frames: %w", err)
	}

	frames, err := s.frames.Discover(input.FramesDir)
	if err != nil {
		return result, err
	}
	if frames.Empty() {
		return result, fmt.Errorf("no frames extracted from %s", input.VideoPath)
	}

	result.Frames = frames
	result.Elapsed = s.clock.Now().Sub(start)
	s.logger.Info("Extracted %d frames in %s", frames.Count, result.Elapsed.Round(time.Millisecond))
	return result, nil
}

// watch logs the frame count until done is closed.
func (s *Stage) watch(ctx context.Context, done <-chan struct{}, dir string, expected int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := -1
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			set, err := s.frames.Discover(dir)
			if err != nil || set.Count == last {
				continue
			}
			last = set.Count
			if expected > 0 {
				pct := set.Count * 100 / expected
				if pct > 100 {
					pct = 100
				}
				s.logger.Info("Extracting frames: %d/%d (%d%%)", set.Count, expected, pct)
			} else {
				s.logger.Info("Extracting frames: %d", set.Count)
			}
		}
	}
}
