package framestore

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op names the storage operation that failed.
type Op string

const (
	OpCreate Op = "create"
	OpDelete Op = "delete"
	OpScan   Op = "scan"
)

// IOError reports a frame directory that could not be created, scanned or
// deleted. The operation that returned it has stopped; the directory may be
// left partially modified.
type IOError struct {
	Op   Op
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s folder %q: %s", e.Op, e.Path, e.Reason())
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Reason returns the OS-provided message without the path decoration that
// *fs.PathError adds.
func (e *IOError) Reason() string {
	var pe *fs.PathError
	if errors.As(e.Err, &pe) {
		return pe.Err.Error()
	}
	return e.Err.Error()
}
