package framestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/user/menuvideo/pkg/adapters/logger"
	"github.com/user/menuvideo/pkg/adapters/osfilesystem"
	"github.com/user/menuvideo/pkg/mocks"
	"github.com/user/menuvideo/pkg/ports"
)

const framesDir = "/data/menuVideoBgFrames"

func newTestStore(fsys *mocks.FileSystem, cache *mocks.TextureCache) *Store {
	return New(fsys, cache, DefaultScheme(), logger.NewNoop())
}

func TestNamingScheme_Name(t *testing.T) {
	s := DefaultScheme()

	tests := []struct {
		index int
		want  string
	}{
		{1, "output_0001.png"},
		{42, "output_0042.png"},
		{9999, "output_9999.png"},
		{12345, "output_12345.png"},
	}

	for _, tt := range tests {
		if got := s.Name(tt.index); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestNamingScheme_PatternMatchesName(t *testing.T) {
	s := NamingScheme{Prefix: "frame-", Width: 5, Ext: ".jpg"}

	if got := s.Pattern(); got != "frame-%05d.jpg" {
		t.Fatalf("unexpected pattern %q", got)
	}
	if fmt.Sprintf(s.Pattern(), 7) != s.Name(7) {
		t.Errorf("pattern and name disagree: %q vs %q", fmt.Sprintf(s.Pattern(), 7), s.Name(7))
	}
}

func TestNamingScheme_Index(t *testing.T) {
	s := DefaultScheme()

	if n, ok := s.Index("output_0013.png"); !ok || n != 13 {
		t.Errorf("Index(output_0013.png) = %d, %v", n, ok)
	}
	for _, name := range []string{"ffmpeg.log", "output_abcd.png", "output_0000.png", "other_0001.png"} {
		if _, ok := s.Index(name); ok {
			t.Errorf("expected %q to not parse", name)
		}
	}
}

func TestStore_Discover(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.AddFrames(framesDir, "output_%04d.png", 4)
	fsys.WriteFile(filepath.Join(framesDir, "ffmpeg.log"), []byte("log"))
	fsys.MkdirAll(filepath.Join(framesDir, "nested.png"))

	store := newTestStore(fsys, mocks.NewTextureCache())

	set, err := store.Discover(framesDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Count != 4 {
		t.Errorf("expected 4 frames, got %d", set.Count)
	}
	if set.Dir != framesDir {
		t.Errorf("expected dir %s, got %s", framesDir, set.Dir)
	}
	if got := set.Path(3); got != filepath.Join(framesDir, "output_0003.png") {
		t.Errorf("unexpected path %s", got)
	}
}

func TestStore_DiscoverIgnoresGaps(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.AddFrames(framesDir, "output_%04d.png", 5)
	fsys.Remove(filepath.Join(framesDir, "output_0003.png"))

	set, err := newTestStore(fsys, mocks.NewTextureCache()).Discover(framesDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Count != 4 {
		t.Errorf("expected 4 frames counted despite the gap, got %d", set.Count)
	}
}

func TestStore_DiscoverMissingDirectory(t *testing.T) {
	store := newTestStore(mocks.NewFileSystem(), mocks.NewTextureCache())

	set, err := store.Discover(framesDir)
	if err != nil {
		t.Fatalf("expected no error for missing directory, got %v", err)
	}
	if !set.Empty() {
		t.Errorf("expected empty frame set, got %d frames", set.Count)
	}
}

func TestStore_DiscoverScanError(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.ReadDirFunc = func(path string) ([]ports.DirEntry, error) {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrPermission}
	}

	_, err := newTestStore(fsys, mocks.NewTextureCache()).Discover(framesDir)

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Op != OpScan {
		t.Errorf("expected scan op, got %s", ioErr.Op)
	}
}

func TestStore_DiscoverIsSnapshot(t *testing.T) {
	fsys := mocks.NewFileSystem()
	fsys.AddFrames(framesDir, "output_%04d.png", 2)
	store := newTestStore(fsys, mocks.NewTextureCache())

	set, _ := store.Discover(framesDir)
	fsys.AddFrames(framesDir, "output_%04d.png", 6)

	if set.Count != 2 {
		t.Errorf("expected snapshot to keep 2 frames, got %d", set.Count)
	}
}

func TestStore_RebuildEvictsBeforeDelete(t *testing.T) {
	log := &mocks.CallLog{}
	fsys := mocks.NewFileSystem()
	fsys.Log = log
	fsys.AddFrames(framesDir, "output_%04d.png", 3)
	fsys.WriteFile(filepath.Join(framesDir, "ffmpeg.log"), []byte("log"))
	cache := mocks.NewTextureCache()
	cache.Log = log

	if err := newTestStore(fsys, cache).Rebuild(framesDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cache.EvictCalls) != 3 {
		t.Fatalf("expected 3 evictions, got %d", len(cache.EvictCalls))
	}

	entries := log.Entries()
	position := make(map[string]int)
	for i, e := range entries {
		position[e] = i
	}
	for i := 1; i <= 3; i++ {
		path := filepath.Join(framesDir, fmt.Sprintf("output_%04d.png", i))
		evict, ok1 := position["evict:"+path]
		remove, ok2 := position["remove:"+path]
		if !ok1 || !ok2 {
			t.Fatalf("missing evict/remove for %s in %v", path, entries)
		}
		if evict > remove {
			t.Errorf("expected evict before remove for %s: %v", path, entries)
		}
	}

	if entries[len(entries)-1] != "removeall:"+framesDir {
		t.Errorf("expected directory tree removal last, got %v", entries)
	}
	if exists, _ := fsys.Exists(framesDir); exists {
		t.Error("expected frames directory to be removed")
	}
}

func TestStore_RebuildStopsOnLockedFile(t *testing.T) {
	log := &mocks.CallLog{}
	fsys := mocks.NewFileSystem()
	fsys.Log = log
	fsys.AddFrames(framesDir, "output_%04d.png", 4)
	locked := filepath.Join(framesDir, "output_0002.png")
	fsys.RemoveFunc = func(path string) error {
		if path == locked {
			return &fs.PathError{Op: "remove", Path: path, Err: syscall.EBUSY}
		}
		return nil
	}
	cache := mocks.NewTextureCache()
	cache.Log = log
	for i := 1; i <= 4; i++ {
		cache.GetOrLoad(filepath.Join(framesDir, fmt.Sprintf("output_%04d.png", i)))
	}

	err := newTestStore(fsys, cache).Rebuild(framesDir)

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Op != OpDelete || ioErr.Path != framesDir {
		t.Errorf("unexpected IOError fields: %+v", ioErr)
	}
	if !errors.Is(err, syscall.EBUSY) {
		t.Errorf("expected the OS error to be wrapped, got %v", err)
	}
	if ioErr.Reason() != syscall.EBUSY.Error() {
		t.Errorf("expected OS message %q, got %q", syscall.EBUSY.Error(), ioErr.Reason())
	}

	// Every frame is evicted, including the ones after the failure.
	if len(cache.EvictCalls) != 4 {
		t.Errorf("expected 4 evictions, got %d", len(cache.EvictCalls))
	}
	for i := 1; i <= 4; i++ {
		path := filepath.Join(framesDir, fmt.Sprintf("output_%04d.png", i))
		if cache.Cached(path) {
			t.Errorf("expected %s to be evicted", path)
		}
	}

	// Deletion stopped at the locked file.
	for _, e := range log.Entries() {
		if e == "remove:"+filepath.Join(framesDir, "output_0003.png") || strings.HasPrefix(e, "removeall:") {
			t.Errorf("expected deletion to stop at the locked file, saw %s", e)
		}
	}
	if _, ok := fsys.GetFile(filepath.Join(framesDir, "output_0004.png")); !ok {
		t.Error("expected remaining frames to be left in place")
	}
}

func TestStore_RebuildMissingDirectory(t *testing.T) {
	cache := mocks.NewTextureCache()

	if err := newTestStore(mocks.NewFileSystem(), cache).Rebuild(framesDir); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cache.EvictCalls) != 0 {
		t.Errorf("expected no evictions, got %d", len(cache.EvictCalls))
	}
}

func TestStore_EnsureDirectory(t *testing.T) {
	fsys := mocks.NewFileSystem()
	store := newTestStore(fsys, mocks.NewTextureCache())

	if err := store.EnsureDirectory(framesDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists, _ := fsys.Exists("/data"); !exists {
		t.Error("expected parent directory to be created")
	}

	fsys.MkdirAllFunc = func(path string) error {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrPermission}
	}
	err := store.EnsureDirectory(framesDir)

	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != OpCreate {
		t.Fatalf("expected create IOError, got %v", err)
	}
	if !strings.Contains(err.Error(), `failed to create folder "/data/menuVideoBgFrames"`) {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestStore_RealFilesystem(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DefaultDirName)
	fsys := osfilesystem.New()
	cache := mocks.NewTextureCache()
	store := New(fsys, cache, DefaultScheme(), logger.NewNoop())

	if err := store.EnsureDirectory(dir); err != nil {
		t.Fatalf("EnsureDirectory failed: %v", err)
	}
	for i := 1; i <= 3; i++ {
		os.WriteFile(filepath.Join(dir, DefaultScheme().Name(i)), []byte("png"), 0644)
	}
	os.WriteFile(filepath.Join(dir, "ffmpeg.log"), []byte("log"), 0644)

	set, err := store.Discover(dir)
	if err != nil || set.Count != 3 {
		t.Fatalf("expected 3 frames, got %d (%v)", set.Count, err)
	}

	if err := store.Rebuild(dir); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected directory to be removed, stat err = %v", err)
	}
	if len(cache.EvictCalls) != 3 {
		t.Errorf("expected 3 evictions, got %d", len(cache.EvictCalls))
	}
}
