// Package ffmpeg extracts still frames from a video with the ffmpeg CLI.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/user/menuvideo/pkg/ports"
)

// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
var ErrFFmpegNotFound = errors.New("ffmpeg not found")

// Extractor implements ports.FrameExtractor by running ffmpeg.
type Extractor struct {
	customPath string
	logger     ports.Logger
}

// New creates an Extractor. customPath, when non-empty, overrides the PATH search.
func New(customPath string, logger ports.Logger) *Extractor {
	return &Extractor{customPath: customPath, logger: logger.WithComponent("ffmpeg")}
}

// Available reports whether ffmpeg can be found and runs.
func (e *Extractor) Available() bool {
	path, err := e.find()
	if err != nil {
		return false
	}
	return exec.Command(path, "-version").Run() == nil
}

// Extract samples req.VideoPath at req.FPS into req.OutputPattern, writing
// ffmpeg's console output to req.LogPath. It blocks until ffmpeg exits or ctx
// is cancelled.
func (e *Extractor) Extract(ctx context.Context, req ports.ExtractRequest) error {
	path, err := e.find()
	if err != nil {
		return err
	}

	logFile, err := os.Create(req.LogPath)
	if err != nil {
		return fmt.Errorf("create ffmpeg log: %w", err)
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, path, Args(req)...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	e.logger.Debug("Running %s %v", path, cmd.Args[1:])
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg failed (see %s): %w", req.LogPath, err)
	}
	return nil
}

// Args builds the ffmpeg argument list for req.
func Args(req ports.ExtractRequest) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", req.VideoPath,
		"-vf", "fps=" + strconv.Itoa(req.FPS),
		req.OutputPattern,
	}
}

// find searches for ffmpeg in PATH and common locations.
func (e *Extractor) find() (string, error) {
	if e.customPath != "" {
		if _, err := os.Stat(e.customPath); err == nil {
			return e.customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, e.customPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

var _ ports.FrameExtractor = (*Extractor)(nil)
