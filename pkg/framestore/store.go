// Package framestore manages the directory of extracted frame images:
// discovery, teardown before re-extraction, and directory creation.
package framestore

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/user/menuvideo/pkg/ports"
)

// DefaultDirName is the fixed subfolder of the data directory holding frames.
const DefaultDirName = "menuVideoBgFrames"

// Store is a directory-backed frame collection. The texture cache is shared
// with playback sessions; the store evicts from it but never loads into it.
type Store struct {
	fs     ports.FileSystem
	cache  ports.TextureCache
	scheme NamingScheme
	logger ports.Logger
}

// New creates a new Store.
func New(fsys ports.FileSystem, cache ports.TextureCache, scheme NamingScheme, logger ports.Logger) *Store {
	return &Store{
		fs:     fsys,
		cache:  cache,
		scheme: scheme,
		logger: logger.WithComponent("framestore"),
	}
}

// Scheme returns the naming scheme used for discovery and lookups.
func (s *Store) Scheme() NamingScheme {
	return s.scheme
}

// Discover scans dir non-recursively and counts frame files. A missing
// directory yields an empty FrameSet and no error: nothing has been extracted yet.
func (s *Store) Discover(dir string) (FrameSet, error) {
	set := FrameSet{Dir: dir, Scheme: s.scheme}

	files, err := s.frameFiles(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Frames directory %s does not exist", dir)
			return set, nil
		}
		return set, &IOError{Op: OpScan, Path: dir, Err: err}
	}

	set.Count = len(files)
	s.logger.Debug("Discovered %d frames in %s", set.Count, dir)
	return set, nil
}

// Rebuild tears down dir so a new extraction can write into it.
// Every tracked frame is evicted from the texture cache before any file is
// deleted, so no cache entry outlives its backing file. Deletion stops at the
// first failure and returns an *IOError; the directory is then left partially
// cleaned. A missing directory is a no-op.
func (s *Store) Rebuild(dir string) error {
	exists, err := s.fs.Exists(dir)
	if err != nil {
		return &IOError{Op: OpDelete, Path: dir, Err: err}
	}
	if !exists {
		return nil
	}

	files, err := s.frameFiles(dir)
	if err != nil {
		return &IOError{Op: OpDelete, Path: dir, Err: err}
	}

	for _, path := range files {
		s.cache.Evict(path)
	}
	s.logger.Debug("Evicted %d cached frames", len(files))

	for _, path := range files {
		if err := s.fs.Remove(path); err != nil {
			s.logger.Error("Failed to delete %s: %s", path, err)
			return &IOError{Op: OpDelete, Path: dir, Err: err}
		}
	}

	// Leftovers such as the decoder log.
	if err := s.fs.RemoveAll(dir); err != nil {
		return &IOError{Op: OpDelete, Path: dir, Err: err}
	}

	s.logger.Info("Removed %d frames from %s", len(files), dir)
	return nil
}

// EnsureDirectory creates path and its parents if absent.
func (s *Store) EnsureDirectory(path string) error {
	if err := s.fs.MkdirAll(path); err != nil {
		return &IOError{Op: OpCreate, Path: path, Err: err}
	}
	return nil
}

// frameFiles returns the full paths of regular files matching the scheme's
// extension, sorted by name.
func (s *Store) frameFiles(dir string) ([]string, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.Regular && s.scheme.Matches(e.Name) {
			files = append(files, filepath.Join(dir, e.Name))
		}
	}
	sort.Strings(files)
	return files, nil
}
