package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/user/menuvideo/pkg/adapters/ffmpeg"
	"github.com/user/menuvideo/pkg/adapters/ggrenderer"
	"github.com/user/menuvideo/pkg/adapters/imagesurface"
	"github.com/user/menuvideo/pkg/adapters/metrics"
	"github.com/user/menuvideo/pkg/adapters/mp4probe"
	"github.com/user/menuvideo/pkg/adapters/notifier"
	"github.com/user/menuvideo/pkg/adapters/osfilesystem"
	"github.com/user/menuvideo/pkg/adapters/texturecache"
	"github.com/user/menuvideo/pkg/background"
	"github.com/user/menuvideo/pkg/config"
	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/host"
	"github.com/user/menuvideo/pkg/orchestrator"
	"github.com/user/menuvideo/pkg/playback"
	"github.com/user/menuvideo/pkg/ports"
	"github.com/user/menuvideo/pkg/stages/extract"
	"github.com/user/menuvideo/pkg/stages/prepare"
	"github.com/user/menuvideo/pkg/stages/probe"
)

// deps holds the adapters shared by every command.
type deps struct {
	cfg      config.Config
	log      ports.Logger
	fs       *osfilesystem.FileSystem
	renderer *ggrenderer.Renderer
	registry *prometheus.Registry
	metrics  *metrics.Prometheus
	cache    *texturecache.Cache
	store    *framestore.Store
	clock    host.SystemClock
}

func newDeps(c *cli.Context) (*deps, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	d := &deps{
		cfg:      cfg,
		log:      newLogger(c, cfg),
		fs:       osfilesystem.New(),
		renderer: ggrenderer.New(),
		registry: prometheus.NewRegistry(),
	}
	d.metrics = metrics.NewPrometheus(d.registry)
	d.cache = texturecache.New(d.fs, d.renderer, d.metrics, d.log)
	d.store = framestore.New(d.fs, d.cache, framestore.DefaultScheme(), d.log)
	return d, nil
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: l10n.T("Extract frames from the background video"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "video", Aliases: []string{"i"}, Usage: l10n.T("Source video path")},
			&cli.StringFlag{Name: "ffmpeg", Usage: l10n.T("Path to the ffmpeg executable")},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	d, err := newDeps(c)
	if err != nil {
		return err
	}
	if c.IsSet("video") {
		d.cfg.VideoPath = c.String("video")
	}
	if c.IsSet("ffmpeg") {
		d.cfg.FFmpegPath = c.String("ffmpeg")
	}

	extractor := ffmpeg.New(d.cfg.FFmpegPath, d.log)
	loop := host.NewLoop(d.clock, 0, d.log)
	orch := orchestrator.New(
		probe.NewStage(d.fs, mp4probe.New(), d.log),
		prepare.NewStage(d.store, d.store.Scheme(), d.log),
		extract.NewStage(extractor, d.store, d.clock, d.log),
		extractor,
		loop,
		notifier.NewConsole(os.Stdout),
		d.log,
	)

	// Regeneration runs off the main loop; alerts are posted back to it.
	ctx, stop := context.WithCancel(c.Context)
	defer stop()
	errCh := make(chan error, 1)
	go func() {
		_, err := orch.Regenerate(ctx, d.cfg.ToOrchestratorConfig())
		errCh <- err
		loop.Post(stop)
	}()

	if err := loop.Run(ctx); err != nil {
		return err
	}
	err = <-errCh
	// Show alerts posted while an interrupted run was unwinding.
	loop.Step()
	return err
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: l10n.T("Play the extracted frames on a headless menu"),
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "duration", Aliases: []string{"d"}, Usage: l10n.T("Stop after this long (0 runs until interrupted)")},
			&cli.StringFlag{Name: "snapshot", Usage: l10n.T("Write the last displayed frame as PNG to this path")},
			&cli.IntFlag{Name: "snapshot-width", Usage: l10n.T("Resize the snapshot to this width")},
			&cli.StringFlag{Name: "metrics-addr", Usage: l10n.T("Serve Prometheus metrics on this address")},
		},
		Action: runPlay,
	}
}

func runPlay(c *cli.Context) error {
	d, err := newDeps(c)
	if err != nil {
		return err
	}
	if c.IsSet("metrics-addr") {
		d.cfg.MetricsAddr = c.String("metrics-addr")
	}

	if d.cfg.MetricsAddr != "" {
		srv := metrics.StartServer(d.cfg.MetricsAddr, d.registry, d.log)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	scene := host.NewScene(d.cfg.Window.Width, d.cfg.Window.Height)
	menu := host.NewNode("MenuLayer")
	menu.AddChild(host.NewNode(background.MenuBackgroundNode))
	scene.Root().AddChild(menu)

	loop := host.NewLoop(d.clock, 0, d.log)
	scheduler := playback.NewScheduler(d.store, d.cache, d.fs, loop, d.clock, d.metrics, d.log, d.cfg.PlaybackOptions())
	applier := background.NewApplier(d.fs, d.cache, d.store.Scheme(), scheduler, notifier.NewConsole(os.Stdout), d.log)

	ctx := c.Context
	if dur := c.Duration("duration"); dur > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dur)
		defer cancel()
	}

	var session *playback.Session
	loop.Post(func() {
		_, s, err := applier.Apply(menu, background.MenuBackgroundNode, d.cfg.FramesDir())
		if err != nil {
			d.log.Warn("Background not applied: %s", err)
			return
		}
		session = s
	})
	if err := loop.Run(ctx); err != nil {
		return err
	}

	if path := c.String("snapshot"); path != "" {
		if err := writeSnapshot(d, scene, path, c.Int("snapshot-width")); err != nil {
			return err
		}
	}

	// Closing the menu detaches playback.
	menu.Destroy()
	if session != nil {
		d.log.Info("Played %d frames, last frame %d", session.Frames().Count, session.CurrentFrame())
	}
	return nil
}

func writeSnapshot(d *deps, scene *host.Scene, path string, width int) error {
	img := imagesurface.Snapshot(scene, d.renderer, config.ParseColor(d.cfg.BackgroundColor))
	if width > 0 {
		b := img.Bounds()
		img = d.renderer.ResizeImage(img, width, b.Dy()*width/b.Dx())
	}
	data, err := d.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := d.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	d.log.Info("Snapshot saved to %s", path)
	return nil
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: l10n.T("Show the frames folder and source video"),
		Action: func(c *cli.Context) error {
			d, err := newDeps(c)
			if err != nil {
				return err
			}

			set, err := d.store.Discover(d.cfg.FramesDir())
			if err != nil {
				return err
			}
			fmt.Println(l10n.F("Frames folder: %s", set.Dir))
			fmt.Println(l10n.F("Frames: %d", set.Count))
			if !set.Empty() {
				length := time.Duration(set.Count) * time.Second / time.Duration(d.cfg.FPS)
				fmt.Println(l10n.F("Loop length at %d fps: %s", d.cfg.FPS, length))
			}

			if d.cfg.VideoPath == "" {
				return nil
			}
			info, err := mp4probe.New().Probe(d.cfg.VideoPath)
			if err != nil {
				fmt.Println(l10n.F("Video: %s (%s)", d.cfg.VideoPath, err))
				return nil
			}
			fmt.Println(l10n.F("Video: %s %s %dx%d, %s", d.cfg.VideoPath, info.Codec, info.Width, info.Height, info.Duration))
			fmt.Println(l10n.F("Expected frames at %d fps: %d", d.cfg.FPS, probe.ExpectedFrames(info.Duration, d.cfg.FPS)))
			return nil
		},
	}
}

func cleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: l10n.T("Delete the extracted frames"),
		Action: func(c *cli.Context) error {
			d, err := newDeps(c)
			if err != nil {
				return err
			}
			return d.store.Rebuild(d.cfg.FramesDir())
		},
	}
}
