// Package ports defines interfaces for external dependencies.
package ports

// DirEntry describes one entry returned by FileSystem.ReadDir.
type DirEntry struct {
	Name    string
	Regular bool // true for regular files, false for directories, symlinks and devices
}

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// ReadDir lists the entries of a directory without recursing.
	ReadDir(path string) ([]DirEntry, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// RemoveAll deletes a directory tree. A missing path is not an error.
	RemoveAll(path string) error
}
