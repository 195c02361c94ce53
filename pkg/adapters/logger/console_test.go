package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/menuvideo/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelWarn, &out, &errOut)

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	log.Warn("warn %d", 3)
	log.Error("error %d", 4)

	if out.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "warn 3") || !strings.Contains(got, "error 4") {
		t.Errorf("expected warn and error on stderr, got %q", got)
	}
}

func TestConsoleLogger_StreamSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &errOut)

	log.Info("hello")
	log.Warn("careful")

	if strings.TrimSpace(out.String()) != "hello" {
		t.Errorf("expected info on stdout, got %q", out.String())
	}
	if strings.TrimSpace(errOut.String()) != "careful" {
		t.Errorf("expected warn on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &out)

	log.WithComponent("playback").WithComponent("ab12").Info("tick")

	if got := strings.TrimSpace(out.String()); got != "[playback/ab12] tick" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out)

	log.Error("boom")

	if out.Len() != 0 {
		t.Errorf("expected quiet logger to drop errors, got %q", out.String())
	}
}
