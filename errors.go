package bmpview

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrImageLoad is returned when a source image is missing, unreadable,
	// or not a decodable bitmap. It is recoverable: the caller keeps its
	// previous state.
	ErrImageLoad = errors.New("bmpview: image load failed")

	// ErrAllocation is returned when an image is too large to hold the
	// source and all derived buffers. It is not recoverable.
	ErrAllocation = errors.New("bmpview: insufficient memory for image buffers")

	// ErrInvalidDimensions is returned for non-positive pixmap dimensions.
	ErrInvalidDimensions = errors.New("bmpview: invalid dimensions")
)

// LoadError records a failed image load and its path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("bmpview: load %s: %v", e.Path, e.Err)
}

// Unwrap returns both the cause and ErrImageLoad so that errors.Is matches
// either.
func (e *LoadError) Unwrap() []error {
	return []error{ErrImageLoad, e.Err}
}
