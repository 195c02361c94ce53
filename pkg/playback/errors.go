package playback

import "errors"

var (
	// ErrDetached is returned when attaching a session that has already been detached.
	ErrDetached = errors.New("playback: session detached")

	// ErrAlreadyAttached is returned when a session is attached twice.
	ErrAlreadyAttached = errors.New("playback: session already attached")

	// ErrSurfaceDestroyed is returned when attaching to a surface that has been torn down.
	ErrSurfaceDestroyed = errors.New("playback: display surface destroyed")
)
