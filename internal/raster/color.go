package raster

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit, non-premultiplied RGBA color.
//
// Color implements color.Color, so it can be handed to anything in the
// image packages directly.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// RGB returns the fully opaque color (r, g, b).
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as "#RRGGBB", or "#RRGGBBAA" when it is not fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c Color) String() string { return c.Hex() }

// ParseColor parses a color written as "#RRGGBB", "#RGB", "#RRGGBBAA"
// (the leading '#' is optional) or as decimal "r,g,b" / "r,g,b,a".
// Alpha defaults to 255.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color string")
	}
	if strings.Contains(s, ",") {
		return parseDecimalColor(s)
	}

	hex := strings.TrimPrefix(s, "#")
	alpha := uint8(255)
	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("invalid color %q: hex colors need 3, 6 or 8 digits", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func parseDecimalColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("invalid color %q: want r,g,b or r,g,b,a", s)
	}

	v := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: component %d: %w", s, i, err)
		}
		v[i] = uint8(n)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorSample is the color of one pixel in several representations.
type ColorSample struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Hex  string   `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA Color    `json:"rgba"` // Non-premultiplied components with alpha
	HSL  HSLColor `json:"hsl"`  // HSL representation of the RGB part
}

// SampleColor reads the color at (x, y).
//
// Coordinates are 0-based with origin at the image's top-left corner.
// The components are non-premultiplied, so a half-transparent red pixel
// reports R=255 and A=128.
//
// # Errors
//
//   - Returns error if img is nil
//   - Returns error if (x, y) lies outside the image bounds
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	bounds := img.Bounds()
	p := image.Pt(bounds.Min.X+x, bounds.Min.Y+y)
	if !p.In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, bounds.Dx(), bounds.Dy())
	}

	n := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
	c := Color{R: n.R, G: n.G, B: n.B, A: n.A}

	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()

	return &ColorSample{
		X:    x,
		Y:    y,
		Hex:  RGB(c.R, c.G, c.B).Hex(),
		RGBA: c,
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}
