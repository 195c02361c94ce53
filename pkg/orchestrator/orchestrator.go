// Package orchestrator coordinates regeneration of the menu background frames.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/pipeline"
	"github.com/user/menuvideo/pkg/ports"
	"github.com/user/menuvideo/pkg/stages/probe"
)

// ErrFFmpegUnavailable is returned when the external decoder cannot be run.
var ErrFFmpegUnavailable = errors.New("ffmpeg is not available")

// Alert titles and messages shown to the user.
const (
	TitleError     = ports.AlertErrorTitle
	TitleExecuting = "Executing..."
	TitleDone      = "Done"

	MsgFFmpegMissing = "Please install FFmpeg and add it to your system environment variables: https://ffmpeg.org/download.html"
	MsgVideoMissing  = "Failed to load video background file: Path does not exist"
	MsgDeleteFailed  = "Failed to delete folder \"%s\" with error \"%s\""
	MsgCreateFailed  = "Failed to create folder \"%s\" with error \"%s\""
	MsgExecuting     = "Extracting frames, the new background shows the next time the menu opens"
	MsgExtractFailed = "Failed to extract frames: %s"
	MsgExtracted     = "Extracted %d frames"
)

// Config contains the regeneration parameters.
type Config struct {
	VideoPath    string
	DataDir      string
	FPS          int
	PollInterval time.Duration
}

// FramesDir returns the frames folder under the data directory.
func (c Config) FramesDir() string {
	return filepath.Join(c.DataDir, framestore.DefaultDirName)
}

// Result summarizes a successful regeneration.
type Result struct {
	Video   ports.VideoInfo
	Frames  framestore.FrameSet
	Elapsed time.Duration
}

// Orchestrator runs probe, prepare and extract in order. Every outcome the
// user must see is posted to the main thread as an alert.
type Orchestrator struct {
	probeStage   pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult]
	prepareStage pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult]
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	extractor    ports.FrameExtractor
	main         ports.MainThread
	notifier     ports.Notifier
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	probeStage pipeline.Stage[pipeline.ProbeInput, pipeline.ProbeResult],
	prepareStage pipeline.Stage[pipeline.PrepareInput, pipeline.PrepareResult],
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	extractor ports.FrameExtractor,
	main ports.MainThread,
	notifier ports.Notifier,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		probeStage:   probeStage,
		prepareStage: prepareStage,
		extractStage: extractStage,
		extractor:    extractor,
		main:         main,
		notifier:     notifier,
		logger:       logger.WithComponent("regenerate"),
	}
}

// Regenerate replaces the frames folder with frames extracted from cfg.VideoPath.
// It may run off the main thread.
func (o *Orchestrator) Regenerate(ctx context.Context, cfg Config) (Result, error) {
	o.logger.Info("Starting regeneration")

	if !o.extractor.Available() {
		o.logger.Error("FFmpeg is not available")
		o.alert(TitleError, l10n.T(MsgFFmpegMissing))
		return Result{}, ErrFFmpegUnavailable
	}

	// 1. Probe source video
	probed, err := o.probeStage.Execute(ctx, pipeline.ProbeInput{VideoPath: cfg.VideoPath, FPS: cfg.FPS})
	if err != nil {
		o.logger.Error("Failed to load video %s: %s", cfg.VideoPath, err)
		if errors.Is(err, probe.ErrVideoNotFound) {
			o.alert(TitleError, l10n.T(MsgVideoMissing))
		} else {
			o.alert(TitleError, l10n.F(MsgExtractFailed, err))
		}
		return Result{}, fmt.Errorf("probe stage: %w", err)
	}

	// 2. Rebuild frames folder
	framesDir := cfg.FramesDir()
	prepared, err := o.prepareStage.Execute(ctx, pipeline.PrepareInput{DataDir: cfg.DataDir, FramesDir: framesDir})
	if err != nil {
		o.logger.Error("Failed to prepare frames folder: %s", err)
		o.alert(TitleError, folderMessage(err))
		return Result{}, fmt.Errorf("prepare stage: %w", err)
	}

	// 3. Extract frames
	o.alert(TitleExecuting, l10n.T(MsgExecuting))
	extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{
		VideoPath:      cfg.VideoPath,
		FPS:            cfg.FPS,
		FramesDir:      prepared.FramesDir,
		OutputPattern:  prepared.OutputPattern,
		LogPath:        prepared.LogPath,
		ExpectedFrames: probed.ExpectedFrames,
		PollInterval:   cfg.PollInterval,
	})
	if err != nil {
		o.logger.Error("Failed to extract frames: %s", err)
		o.alert(TitleError, l10n.F(MsgExtractFailed, err))
		return Result{}, fmt.Errorf("extract stage: %w", err)
	}

	o.alert(TitleDone, l10n.F(MsgExtracted, extracted.Frames.Count))
	o.logger.Info("Regeneration completed successfully")

	return Result{
		Video:   probed.Info,
		Frames:  extracted.Frames,
		Elapsed: extracted.Elapsed,
	}, nil
}

// alert shows a popup on the main thread.
func (o *Orchestrator) alert(title, message string) {
	title = l10n.T(title)
	o.main.Post(func() {
		o.notifier.Alert(title, message)
	})
}

func folderMessage(err error) string {
	var ioErr *framestore.IOError
	if !errors.As(err, &ioErr) {
		return err.Error()
	}
	switch ioErr.Op {
	case framestore.OpCreate:
		return l10n.F(MsgCreateFailed, ioErr.Path, ioErr.Reason())
	default:
		return l10n.F(MsgDeleteFailed, ioErr.Path, ioErr.Reason())
	}
}
