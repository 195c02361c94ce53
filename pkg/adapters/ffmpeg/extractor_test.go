package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/menuvideo/pkg/adapters/logger"
	"github.com/user/menuvideo/pkg/ports"
)

func TestArgs(t *testing.T) {
	req := ports.ExtractRequest{
		VideoPath:     "/videos/menu.mp4",
		OutputPattern: "/data/menuVideoBgFrames/output_%04d.png",
		FPS:           24,
	}

	got := strings.Join(Args(req), " ")

	if !strings.Contains(got, "-i /videos/menu.mp4 -vf fps=24 /data/menuVideoBgFrames/output_%04d.png") {
		t.Errorf("unexpected args %q", got)
	}
}

func TestExtractor_CustomPathMissing(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "no-ffmpeg"), logger.NewNoop())

	if e.Available() {
		t.Error("expected ffmpeg to be unavailable")
	}
	err := e.Extract(context.Background(), ports.ExtractRequest{})
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("expected ErrFFmpegNotFound, got %v", err)
	}
}

func TestExtractor_Extract(t *testing.T) {
	e := New("", logger.NewNoop())
	if !e.Available() {
		t.Skip("ffmpeg not available")
	}

	dir := t.TempDir()
	req := ports.ExtractRequest{
		VideoPath:     filepath.Join(dir, "missing.mp4"),
		OutputPattern: filepath.Join(dir, "output_%04d.png"),
		LogPath:       filepath.Join(dir, "ffmpeg.log"),
		FPS:           10,
	}

	if err := e.Extract(context.Background(), req); err == nil {
		t.Fatal("expected ffmpeg to fail on a missing input")
	}
	data, err := os.ReadFile(req.LogPath)
	if err != nil {
		t.Fatalf("expected ffmpeg log: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected ffmpeg diagnostics in the log")
	}
}
