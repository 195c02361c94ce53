package background

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/user/menuvideo/pkg/adapters/logger"
	"github.com/user/menuvideo/pkg/adapters/metrics"
	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/host"
	"github.com/user/menuvideo/pkg/mocks"
	"github.com/user/menuvideo/pkg/playback"
	"github.com/user/menuvideo/pkg/ports"
)

const framesDir = "/data/menuVideoBgFrames"

type fixture struct {
	fs       *mocks.FileSystem
	cache    *mocks.TextureCache
	tasks    *mocks.Scheduler
	clock    *mocks.Clock
	notifier *mocks.Notifier
	applier  *Applier
	layer    *host.Node
	menuBg   *host.Node
}

func newFixture(frames int) *fixture {
	f := &fixture{
		fs:       mocks.NewFileSystem(),
		cache:    mocks.NewTextureCache(),
		tasks:    &mocks.Scheduler{},
		clock:    mocks.NewClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		notifier: &mocks.Notifier{},
		layer:    host.NewNode("MenuLayer"),
		menuBg:   host.NewNode(MenuBackgroundNode),
	}
	f.fs.AddFrames(framesDir, "output_%04d.png", frames)
	f.layer.AddChild(f.menuBg)
	f.layer.AddChild(host.NewNode("main-menu"))

	scheme := framestore.DefaultScheme()
	store := framestore.New(f.fs, f.cache, scheme, logger.NewNoop())
	scheduler := playback.NewScheduler(store, f.cache, f.fs, f.tasks, f.clock, metrics.NewNoop(), logger.NewNoop(),
		playback.Options{FrameRate: playback.FPS(2)})
	f.applier = NewApplier(f.fs, f.cache, scheme, scheduler, f.notifier, logger.NewNoop())
	return f
}

func TestApplier_Apply(t *testing.T) {
	f := newFixture(4)

	sprite, session, err := f.applier.Apply(f.layer, MenuBackgroundNode, framesDir)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if f.menuBg.Visible() {
		t.Error("expected the menu background to be hidden")
	}
	children := f.layer.Children()
	if children[0] != sprite.Node {
		t.Error("expected the sprite behind the other menu nodes")
	}
	if sprite.Texture() == nil || sprite.Texture().Path != framesDir+"/output_0001.png" {
		t.Errorf("expected frame 1 as the initial texture, got %+v", sprite.Texture())
	}
	if session.State() != playback.StateTicking {
		t.Errorf("expected ticking session, got %s", session.State())
	}
	if len(f.notifier.Alerts()) != 0 {
		t.Errorf("unexpected alerts %+v", f.notifier.Alerts())
	}

	// First tick shows frame 1 again: same handle, no swap.
	f.tasks.RunAll()
	if sprite.Swaps() != 0 {
		t.Errorf("expected no redundant swap, got %d", sprite.Swaps())
	}

	f.clock.Advance(600 * time.Millisecond)
	f.tasks.RunAll()
	if sprite.Swaps() != 1 || session.CurrentFrame() != 2 {
		t.Errorf("expected swap to frame 2, got %d swaps at frame %d", sprite.Swaps(), session.CurrentFrame())
	}
}

func TestApplier_MissingFirstFrame(t *testing.T) {
	f := newFixture(0)

	sprite, session, err := f.applier.Apply(f.layer, MenuBackgroundNode, framesDir)

	if !errors.Is(err, ErrNoBackground) {
		t.Fatalf("expected ErrNoBackground, got %v", err)
	}
	if sprite != nil || session != nil {
		t.Error("expected nothing to be created")
	}
	if !f.menuBg.Visible() {
		t.Error("expected the menu to be left untouched")
	}
	alerts := f.notifier.Alerts()
	if len(alerts) != 1 || alerts[0].Message != MsgBackgroundMissing {
		t.Errorf("unexpected alerts %+v", alerts)
	}
}

func TestApplier_UndecodableFirstFrame(t *testing.T) {
	f := newFixture(2)
	f.cache.GetOrLoadFunc = func(path string) (*ports.Texture, error) {
		return nil, &ports.DecodeError{Path: path, Err: image.ErrFormat}
	}

	_, _, err := f.applier.Apply(f.layer, MenuBackgroundNode, framesDir)

	var decodeErr *ports.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !f.menuBg.Visible() {
		t.Error("expected the menu to be left untouched")
	}
}

func TestApplier_LayerDestroyDetaches(t *testing.T) {
	f := newFixture(3)
	_, session, err := f.applier.Apply(f.layer, MenuBackgroundNode, framesDir)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	f.layer.Destroy()

	if session.State() != playback.StateDetached {
		t.Errorf("expected detach when the menu closes, got %s", session.State())
	}
}

func TestApplier_NoBackgroundNode(t *testing.T) {
	f := newFixture(1)

	if _, _, err := f.applier.Apply(f.layer, "missing-node", framesDir); err != nil {
		t.Fatalf("expected Apply to succeed without the node, got %v", err)
	}
	if !f.menuBg.Visible() {
		t.Error("expected unrelated node to stay visible")
	}
}
