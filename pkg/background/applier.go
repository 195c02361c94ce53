// Package background replaces a menu's static background with the video
// frame sprite.
package background

import (
	"errors"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/menuvideo/pkg/adapters/imagesurface"
	"github.com/user/menuvideo/pkg/framestore"
	"github.com/user/menuvideo/pkg/host"
	"github.com/user/menuvideo/pkg/playback"
	"github.com/user/menuvideo/pkg/ports"
)

const (
	// MenuBackgroundNode is the name of the menu's built-in background node.
	MenuBackgroundNode = "main-menu-bg"
	// SpriteName names the sprite node showing the frames.
	SpriteName = "menu-bg-video"

	MsgBackgroundMissing = "Failed to find background image"
)

// ErrNoBackground is returned when the first frame is not on disk.
var ErrNoBackground = errors.New("background frames not found")

// Applier installs the video background into a menu layer.
type Applier struct {
	fs        ports.FileSystem
	cache     ports.TextureCache
	scheme    framestore.NamingScheme
	scheduler *playback.Scheduler
	notifier  ports.Notifier
	logger    ports.Logger
}

// NewApplier creates a new Applier.
func NewApplier(
	fs ports.FileSystem,
	cache ports.TextureCache,
	scheme framestore.NamingScheme,
	scheduler *playback.Scheduler,
	notifier ports.Notifier,
	logger ports.Logger,
) *Applier {
	return &Applier{
		fs:        fs,
		cache:     cache,
		scheme:    scheme,
		scheduler: scheduler,
		notifier:  notifier,
		logger:    logger.WithComponent("background"),
	}
}

// Apply hides the node named bgNode in layer and puts a sprite showing the
// first frame behind the rest of the layer, then starts playback on it.
// It must run on the main thread. When the first frame is missing the layer
// is left untouched and the user is alerted.
func (a *Applier) Apply(layer *host.Node, bgNode, framesDir string) (*imagesurface.Sprite, *playback.Session, error) {
	a.logger.Info("Applying background to node \"%s\"", bgNode)

	first := framestore.FrameSet{Dir: framesDir, Count: 1, Scheme: a.scheme}.Path(1)
	exists, err := a.fs.Exists(first)
	if err != nil || !exists {
		a.notifier.Alert(l10n.T(ports.AlertErrorTitle), l10n.T(MsgBackgroundMissing))
		return nil, nil, ErrNoBackground
	}

	// The initial texture comes from the shared cache so the first tick sees
	// the same handle and does not swap.
	tex, err := a.cache.GetOrLoad(first)
	if err != nil {
		a.notifier.Alert(l10n.T(ports.AlertErrorTitle), l10n.T(MsgBackgroundMissing))
		return nil, nil, fmt.Errorf("load first frame: %w", err)
	}

	if bg, ok := layer.Child(bgNode); ok {
		bg.SetVisible(false)
	}

	sprite := imagesurface.NewSprite(SpriteName, tex)
	layer.AddChildBehind(sprite.Node)

	session := a.scheduler.NewSession(framesDir)
	if err := session.Attach(sprite); err != nil {
		return sprite, nil, fmt.Errorf("attach playback: %w", err)
	}
	return sprite, session, nil
}
