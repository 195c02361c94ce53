package framestore

import "path/filepath"

// FrameSet is one extracted video loop. Count is a snapshot taken at
// discovery; a FrameSet never refreshes itself when files change later.
type FrameSet struct {
	Dir    string
	Count  int
	Scheme NamingScheme
}

// Empty reports whether there is nothing to play.
func (f FrameSet) Empty() bool {
	return f.Count == 0
}

// Path returns the file path for a 1-based frame index without touching the disk.
func (f FrameSet) Path(index int) string {
	return filepath.Join(f.Dir, f.Scheme.Name(index))
}
