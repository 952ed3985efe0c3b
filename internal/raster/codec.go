package raster

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultJPEGQuality is used by Save when no quality option was given.
const DefaultJPEGQuality = 95

// decodeFile reads the image at path into a fresh NRGBA buffer anchored at
// the origin. JPEG EXIF orientation is applied.
//
// # Errors
//
//   - *DecodeError if path is empty, the file cannot be opened, or its
//     contents are not a PNG, JPEG, GIF, BMP, TIFF or WebP image
func decodeFile(path string) (*image.NRGBA, error) {
	if path == "" {
		return nil, &DecodeError{Path: path, Err: errors.New("no input path configured")}
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return imaging.Clone(img), nil
}

// encodeFile writes img to path in the named format. An empty format is
// inferred from the path's extension. A partially written file is removed.
func encodeFile(img image.Image, path, format string, jpegQuality int) (err error) {
	if format == "" {
		format = filepath.Ext(path)
	}
	format = strings.ToLower(strings.TrimPrefix(format, "."))

	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return &EncodeError{Path: path, Format: format, Err: err}
	}

	out, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Format: format, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &EncodeError{Path: path, Format: format, Err: cerr}
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := imaging.Encode(out, img, f, imaging.JPEGQuality(jpegQuality)); err != nil {
		return &EncodeError{Path: path, Format: format, Err: fmt.Errorf("encode: %w", err)}
	}
	return nil
}
