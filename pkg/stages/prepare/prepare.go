// Package prepare implements the frames folder teardown and setup stage.
package prepare

import (
	"context"
	"path/filepath"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/pipeline"
	"github.com/user/menuvideo/pkg/ports"
)

// LogName is the decoder log written next to the frames.
const LogName = "ffmpeg.log"

// Directory is the frame store surface this stage needs.
type Directory interface {
	Rebuild(dir string) error
	EnsureDirectory(path string) error
}

// Stage empties the frames folder and recreates it under the data directory.
type Stage struct {
	dir    Directory
	scheme framestore.NamingScheme
	logger ports.Logger
}

// NewStage creates a new prepare stage.
func NewStage(dir Directory, scheme framestore.NamingScheme, logger ports.Logger) *Stage {
	return &Stage{
		dir:    dir,
		scheme: scheme,
		logger: logger.WithComponent("prepare"),
	}
}

// Execute returns the store's *framestore.IOError unchanged on failure.
func (s *Stage) Execute(ctx context.Context, input pipeline.PrepareInput) (pipeline.PrepareResult, error) {
	result := pipeline.PrepareResult{}

	if err := s.dir.Rebuild(input.FramesDir); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := s.dir.EnsureDirectory(input.DataDir); err != nil {
		return result, err
	}
	if err := s.dir.EnsureDirectory(input.FramesDir); err != nil {
		return result, err
	}

	s.logger.Debug("Frames folder ready: %s", input.FramesDir)

	result.FramesDir = input.FramesDir
	result.OutputPattern = filepath.Join(input.FramesDir, s.scheme.Pattern())
	result.LogPath = filepath.Join(input.FramesDir, LogName)
	return result, nil
}
