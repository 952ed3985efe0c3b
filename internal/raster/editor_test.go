package raster

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e := New("in.png", WithOutput("out.png"), WithJPEGQuality(80))

	assert.Equal(t, "in.png", e.Input())
	assert.Equal(t, "out.png", e.Output())
	assert.Equal(t, 80, e.jpegQuality)
	assert.False(t, e.Loaded())
	assert.Nil(t, e.Image())
}

func TestWithJPEGQuality_OutOfRange(t *testing.T) {
	for _, q := range []int{-1, 0, 101} {
		e := New("in.png", WithJPEGQuality(q))
		assert.Equal(t, DefaultJPEGQuality, e.jpegQuality, "quality %d", q)
	}
}

func TestLoad(t *testing.T) {
	path := writePNG(t, t.TempDir(), "red.png", solidImage(30, 20, color.NRGBA{255, 0, 0, 255}))

	e := New(path)
	require.NoError(t, e.Load())
	require.True(t, e.Loaded())

	b := e.Image().Bounds()
	assert.Equal(t, image.Rect(0, 0, 30, 20), b)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, buffer(t, e).NRGBAAt(5, 5))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(notImage, []byte("definitely not a png"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(dir, "missing.png")},
		{"not an image", notImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.path)
			err := e.Load()

			var decErr *DecodeError
			require.True(t, errors.As(err, &decErr), "want *DecodeError, got %v", err)
			assert.Equal(t, tt.path, decErr.Path)
			assert.False(t, e.Loaded())
		})
	}
}

func TestLazyLoad_OnFirstTransformation(t *testing.T) {
	path := writePNG(t, t.TempDir(), "green.png", solidImage(8, 8, color.NRGBA{0, 255, 0, 255}))

	e := New(path)
	require.NoError(t, e.Overlay(RGB(0, 0, 255)))
	require.True(t, e.Loaded())
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, buffer(t, e).NRGBAAt(0, 0))
}

func TestLazyLoad_DecodeErrorSurfaces(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "missing.png"))

	var decErr *DecodeError
	assert.ErrorAs(t, e.RemoveColor(RGB(0, 0, 0)), &decErr)
	assert.ErrorAs(t, e.ChangeColor(RGB(0, 0, 0), RGB(1, 1, 1)), &decErr)
	assert.ErrorAs(t, e.Overlay(RGB(0, 0, 0)), &decErr)
	assert.ErrorAs(t, e.RoundCorners(4), &decErr)
	assert.False(t, e.Loaded())
}

func TestLoadedBufferOutlivesInputFile(t *testing.T) {
	path := writePNG(t, t.TempDir(), "white.png", solidImage(10, 10, color.NRGBA{255, 255, 255, 255}))

	e := New(path)
	require.NoError(t, e.Overlay(RGB(10, 20, 30)))
	require.NoError(t, os.Remove(path))

	// Every further operation works on the buffer, not the (now gone) file.
	require.NoError(t, e.ChangeColor(RGB(10, 20, 30), RGB(40, 50, 60)))
	assert.Equal(t, color.NRGBA{40, 50, 60, 255}, buffer(t, e).NRGBAAt(9, 9))
}

func TestNewFromImage_CopiesSource(t *testing.T) {
	src := solidImage(4, 4, color.NRGBA{1, 2, 3, 255})
	e := NewFromImage(src)
	require.True(t, e.Loaded())

	require.NoError(t, e.Overlay(RGB(9, 9, 9)))
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, src.NRGBAAt(0, 0), "source must not be mutated")
}

func TestNewFromImage_NonZeroOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 14, 13))
	e := NewFromImage(src)
	assert.Equal(t, image.Rect(0, 0, 4, 3), e.Image().Bounds())
}

func TestSave_NoOutputPath(t *testing.T) {
	e := NewFromImage(solidImage(2, 2, color.NRGBA{0, 0, 0, 255}))
	assert.ErrorIs(t, e.Save("png"), ErrNoOutputPath)
}

func TestSave_PNGRoundTripKeepsAlpha(t *testing.T) {
	dir := t.TempDir()
	src := solidImage(6, 6, color.NRGBA{200, 100, 50, 255})
	src.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0})
	src.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 128})

	out := filepath.Join(dir, "out.png")
	e := NewFromImage(src, WithOutput(out))
	require.NoError(t, e.Save("png"))

	reloaded := New(out)
	require.NoError(t, reloaded.Load())
	got := buffer(t, reloaded)
	assert.Equal(t, color.NRGBA{0, 0, 0, 0}, got.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, got.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{200, 100, 50, 255}, got.NRGBAAt(5, 5))
}

func TestSave_FormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out.jpeg", "out.gif", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			e := NewFromImage(solidImage(5, 5, color.NRGBA{0, 128, 255, 255}), WithOutput(out))
			require.NoError(t, e.Save(""))

			reloaded := New(out)
			require.NoError(t, reloaded.Load())
			assert.Equal(t, image.Rect(0, 0, 5, 5), reloaded.Image().Bounds())
		})
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xyz")
	e := NewFromImage(solidImage(2, 2, color.NRGBA{0, 0, 0, 255}), WithOutput(out))

	var encErr *EncodeError
	require.ErrorAs(t, e.Save("xyz"), &encErr)
	assert.Equal(t, "xyz", encErr.Format)
	assert.NoFileExists(t, out)
}

func TestSave_UnwritablePath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no-such-dir", "out.png")
	e := NewFromImage(solidImage(2, 2, color.NRGBA{0, 0, 0, 255}), WithOutput(out))

	var encErr *EncodeError
	require.ErrorAs(t, e.Save("png"), &encErr)
	assert.ErrorIs(t, encErr, os.ErrNotExist)
}

func TestSave_LoadsInputForConversion(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "in.png", solidImage(7, 3, color.NRGBA{10, 20, 30, 255}))
	out := filepath.Join(dir, "out.bmp")

	e := New(in)
	e.SetOutput(out)
	require.NoError(t, e.Save("bmp"))
	assert.FileExists(t, out)
}

func TestDescribe(t *testing.T) {
	e := New("in.png", WithOutput("out.png"))
	info := e.Describe()
	assert.Equal(t, Info{Input: "in.png", Output: "out.png"}, info)

	e = NewFromImage(solidImage(3, 2, color.NRGBA{0, 0, 0, 255}))
	info = e.Describe()
	assert.True(t, info.Loaded)
	assert.Equal(t, 3, info.Width)
	assert.Equal(t, 2, info.Height)
	assert.True(t, info.Opaque)

	require.NoError(t, e.RemoveColor(RGB(0, 0, 0)))
	assert.False(t, e.Describe().Opaque)
}
