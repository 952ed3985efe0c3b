package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// solidImage creates an NRGBA image filled with c.
func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writePNG encodes img into dir and returns the file's path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// buffer returns the editor's buffer as *image.NRGBA.
func buffer(t *testing.T, e *Editor) *image.NRGBA {
	t.Helper()
	img, ok := e.Image().(*image.NRGBA)
	require.True(t, ok, "buffer should be *image.NRGBA, got %T", e.Image())
	return img
}
