package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOutputPath is returned by Save when no output path was configured.
	ErrNoOutputPath = errors.New("no output path configured")

	// ErrInvalidDimensions is returned when a resize target is not positive.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidRadius is returned for a negative corner radius.
	ErrInvalidRadius = errors.New("invalid corner radius")

	// ErrNoImage is returned when an operation is handed a nil image.
	ErrNoImage = errors.New("no image")
)

// DecodeError reports a missing, unreadable or unsupported input file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure to encode or write the output file.
type EncodeError struct {
	Path   string
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("failed to encode image %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to encode image %q as %s: %v", e.Path, e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
