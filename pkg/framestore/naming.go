package framestore

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// NamingScheme maps 1-based frame indices to file names: Prefix, the index
// zero-padded to Width digits, then Ext. output_0001.png is frame 1.
type NamingScheme struct {
	Prefix string
	Width  int
	Ext    string // Includes the leading dot
}

// DefaultScheme returns the scheme the extraction pipeline writes.
func DefaultScheme() NamingScheme {
	return NamingScheme{
		Prefix: "output_",
		Width:  4,
		Ext:    ".png",
	}
}

// Name returns the file name for a 1-based frame index.
func (s NamingScheme) Name(index int) string {
	return fmt.Sprintf("%s%0*d%s", s.Prefix, s.Width, index, s.Ext)
}

// Pattern returns the printf-style pattern handed to the decoder, e.g. output_%04d.png.
func (s NamingScheme) Pattern() string {
	return fmt.Sprintf("%s%%0%dd%s", strings.ReplaceAll(s.Prefix, "%", "%%"), s.Width, s.Ext)
}

// Matches reports whether a file name has the scheme's extension.
// Discovery counts by extension only; gaps and stray names are not validated.
func (s NamingScheme) Matches(name string) bool {
	return strings.EqualFold(filepath.Ext(name), s.Ext)
}

// Index parses the frame index out of a file name produced by Name.
func (s NamingScheme) Index(name string) (int, bool) {
	if !strings.HasPrefix(name, s.Prefix) || !s.Matches(name) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, s.Prefix), filepath.Ext(name))
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
