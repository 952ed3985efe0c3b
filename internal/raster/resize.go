package raster

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultFilter is the resampling filter used by Editor.Resize.
var DefaultFilter = imaging.CatmullRom

var filters = map[string]imaging.ResampleFilter{
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"catmullrom": imaging.CatmullRom,
	"lanczos":    imaging.Lanczos,
}

// ParseFilter looks up a resampling filter by name: "nearest", "box",
// "linear", "catmullrom" or "lanczos". An empty name selects DefaultFilter.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	if name == "" {
		return DefaultFilter, nil
	}
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter: %s", name)
	}
	return f, nil
}

// ResizeImage resamples src to exactly width×height. Resizing to the
// source's own dimensions returns an unfiltered copy.
//
// # Errors
//
//   - ErrNoImage if src is nil or has no pixels
//   - ErrInvalidDimensions if width or height is not positive
func ResizeImage(src image.Image, width, height int, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrNoImage
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return imaging.Resize(src, width, height, filter), nil
}

// Resize resamples src to width×height with DefaultFilter and installs the
// result as the buffer.
//
// src is supplied by the caller and need not be the editor's own image; to
// resize the current buffer pass e.Image(). The input file is not loaded.
func (e *Editor) Resize(src image.Image, width, height int) error {
	return e.ResizeWith(src, width, height, DefaultFilter)
}

// ResizeWith is Resize with an explicit resampling filter.
func (e *Editor) ResizeWith(src image.Image, width, height int, filter imaging.ResampleFilter) error {
	resized, err := ResizeImage(src, width, height, filter)
	if err != nil {
		return err
	}
	e.buf = resized
	return nil
}
