package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/orchestrator"
)

func writeFrames(t *testing.T, dir string, n int) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= n; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 16, 9))
		for x := 0; x < 16; x++ {
			for y := 0; y < 9; y++ {
				img.Set(x, y, color.RGBA{R: uint8(40 * i), A: 255})
			}
		}
		f, err := os.Create(filepath.Join(dir, framestore.DefaultScheme().Name(i)))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
}

func TestApp_Commands(t *testing.T) {
	app := newApp()

	names := make(map[string]bool)
	for _, c := range app.Commands {
		names[c.Name] = true
	}
	for _, want := range []string{"generate", "play", "info", "clean"} {
		if !names[want] {
			t.Errorf("missing command %q", want)
		}
	}
}

func TestApp_Clean(t *testing.T) {
	dataDir := t.TempDir()
	framesDir := filepath.Join(dataDir, framestore.DefaultDirName)
	writeFrames(t, framesDir, 3)

	err := newApp().Run([]string{"menuvideo", "--quiet", "--data-dir", dataDir, "clean"})
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if _, err := os.Stat(framesDir); !os.IsNotExist(err) {
		t.Errorf("expected frames folder to be removed, stat err = %v", err)
	}
}

func TestApp_InvalidFPS(t *testing.T) {
	err := newApp().Run([]string{"menuvideo", "--quiet", "--data-dir", t.TempDir(), "--fps", "0", "info"})
	if err == nil {
		t.Fatal("expected fps validation error")
	}
}

func TestApp_GenerateWithoutFFmpeg(t *testing.T) {
	dataDir := t.TempDir()

	err := newApp().Run([]string{
		"menuvideo", "--quiet", "--data-dir", dataDir,
		"generate", "--ffmpeg", filepath.Join(dataDir, "no-ffmpeg"), "--video", filepath.Join(dataDir, "bg.mp4"),
	})
	if !errors.Is(err, orchestrator.ErrFFmpegUnavailable) {
		t.Fatalf("expected ErrFFmpegUnavailable, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dataDir, framestore.DefaultDirName)); !os.IsNotExist(err) {
		t.Error("expected the frames folder to be left alone")
	}
}

func TestApp_PlaySnapshot(t *testing.T) {
	dataDir := t.TempDir()
	writeFrames(t, filepath.Join(dataDir, framestore.DefaultDirName), 2)
	out := filepath.Join(dataDir, "snap.png")

	err := newApp().Run([]string{
		"menuvideo", "--quiet", "--data-dir", dataDir,
		"play", "--duration", "100ms", "--snapshot", out, "--snapshot-width", "64",
	})
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("expected snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("snapshot is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 36 {
		t.Errorf("unexpected snapshot size %v", img.Bounds())
	}
	r, _, _, _ := img.At(32, 18).RGBA()
	if r == 0 {
		t.Error("expected a frame to be drawn into the snapshot")
	}
}
