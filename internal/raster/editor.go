package raster

import (
	"image"
)

// Editor applies pixel transformations to one image.
//
// The buffer starts out unloaded. Load, or the first transformation that
// needs pixels, decodes the input file; after that the file is never read
// again and every operation acts on the buffer.
//
// # Example Usage
//
//	ed := raster.New("logo.png", raster.WithOutput("logo-rounded.png"))
//	if err := ed.RemoveColor(raster.RGB(255, 255, 255)); err != nil {
//	    return err
//	}
//	if err := ed.RoundCorners(12); err != nil {
//	    return err
//	}
//	return ed.Save("png")
type Editor struct {
	input       string
	output      string
	jpegQuality int

	// buf is nil until the input has been decoded.
	buf *image.NRGBA
}

// Option configures an Editor.
type Option func(*Editor)

// WithOutput sets the path Save writes to.
func WithOutput(path string) Option {
	return func(e *Editor) { e.output = path }
}

// WithJPEGQuality sets the JPEG quality (1-100) used by Save. Values outside
// that range are ignored.
func WithJPEGQuality(q int) Option {
	return func(e *Editor) {
		if q >= 1 && q <= 100 {
			e.jpegQuality = q
		}
	}
}

// New creates an Editor for the image at input. Nothing is read until the
// buffer is first needed.
func New(input string, opts ...Option) *Editor {
	e := &Editor{
		input:       input,
		jpegQuality: DefaultJPEGQuality,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromImage creates an Editor whose buffer is already loaded with a copy
// of img. It has no input path.
func NewFromImage(img image.Image, opts ...Option) *Editor {
	e := New("", opts...)
	if img != nil {
		e.buf = toNRGBA(img)
	}
	return e
}

// Input returns the path the buffer is (or will be) decoded from.
func (e *Editor) Input() string { return e.input }

// Output returns the configured output path, or "" if none.
func (e *Editor) Output() string { return e.output }

// SetOutput sets the path Save writes to.
func (e *Editor) SetOutput(path string) { e.output = path }

// Loaded reports whether the buffer holds pixels.
func (e *Editor) Loaded() bool { return e.buf != nil }

// Load decodes the input file into the buffer. It is a no-op once the
// buffer is loaded.
func (e *Editor) Load() error {
	if e.buf != nil {
		return nil
	}
	buf, err := decodeFile(e.input)
	if err != nil {
		return err
	}
	e.buf = buf
	return nil
}

// Image returns the current buffer, or nil if nothing has been loaded.
// The returned image is the live buffer; later operations may mutate or
// replace it.
func (e *Editor) Image() image.Image {
	if e.buf == nil {
		return nil
	}
	return e.buf
}

// Save encodes the buffer to the output path. Format is a short identifier
// such as "png", "jpg", "gif", "tiff" or "bmp"; when empty it is taken from
// the output path's extension. Save loads the input if nothing has been
// loaded yet, so it can be used on its own to convert formats.
func (e *Editor) Save(format string) error {
	if e.output == "" {
		return ErrNoOutputPath
	}
	if err := e.Load(); err != nil {
		return err
	}
	return encodeFile(e.buf, e.output, format, e.jpegQuality)
}

// Info describes the state of an Editor.
type Info struct {
	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`
	Loaded bool   `json:"loaded"`

	// Width and Height are zero until the buffer is loaded.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Opaque is true when every pixel has alpha 255.
	Opaque bool `json:"opaque"`
}

// Describe reports the editor's paths and buffer dimensions without
// loading anything.
func (e *Editor) Describe() Info {
	info := Info{
		Input:  e.input,
		Output: e.output,
		Loaded: e.buf != nil,
	}
	if e.buf != nil {
		info.Width = e.buf.Rect.Dx()
		info.Height = e.buf.Rect.Dy()
		info.Opaque = e.buf.Opaque()
	}
	return info
}
