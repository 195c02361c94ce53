// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/orchestrator"
	"github.com/user/menuvideo/pkg/playback"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MENUVIDEO_"

const (
	MinFPS = 1
	MaxFPS = 240
)

// Config represents the full configuration for menuvideo.
type Config struct {
	// Source
	VideoPath  string `yaml:"video_path" env:"VIDEO_PATH"`
	FFmpegPath string `yaml:"ffmpeg_path" env:"FFMPEG_PATH"`

	// Storage
	DataDir string `yaml:"data_dir" env:"DATA_DIR"`

	// Playback
	FPS      int `yaml:"fps" env:"FPS"`
	TickRate int `yaml:"tick_rate" env:"TICK_RATE"` // Scheduler wake-ups per second

	// Window
	Window          WindowConfig `yaml:"window" envPrefix:"WINDOW_"`
	BackgroundColor string       `yaml:"background_color" env:"BACKGROUND_COLOR"`

	// Observability
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR"`
}

// WindowConfig is the size of the headless window.
type WindowConfig struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		DataDir:  defaultDataDir(),
		FPS:      30,
		TickRate: 60,
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		BackgroundColor: "#000000",
		LogLevel:        "info",
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".menuvideo"
	}
	return filepath.Join(dir, "menuvideo")
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Load applies the YAML file at path (when non-empty) over the defaults, then
// MENUVIDEO_* environment variables over that.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		var err error
		if cfg, err = LoadFromFile(path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges shared by every command.
func (c Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, c.FPS)
	}
	if c.TickRate < c.FPS {
		return fmt.Errorf("tick rate %d must not be lower than fps %d", c.TickRate, c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data dir must be set")
	}
	return nil
}

// FramesDir returns the frames folder under the data directory.
func (c Config) FramesDir() string {
	return filepath.Join(c.DataDir, framestore.DefaultDirName)
}

// TickInterval returns the scheduler wake-up period.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return playback.DefaultTickInterval
	}
	return time.Second / time.Duration(c.TickRate)
}

// PlaybackOptions converts Config to playback.Options.
func (c Config) PlaybackOptions() playback.Options {
	return playback.Options{
		FrameRate:    playback.FPS(c.FPS),
		TickInterval: c.TickInterval(),
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		VideoPath: c.VideoPath,
		DataDir:   c.DataDir,
		FPS:       c.FPS,
	}
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Black
	}
	return color.RGBA{
		R: hexValue(hex[0])<<4 | hexValue(hex[1]),
		G: hexValue(hex[2])<<4 | hexValue(hex[3]),
		B: hexValue(hex[4])<<4 | hexValue(hex[5]),
		A: 255,
	}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
