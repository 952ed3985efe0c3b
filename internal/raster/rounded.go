package raster

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so that four segments
// approximate an ellipse.
const kappa = 0.5522847498

// RoundCorners clips the buffer to a rounded rectangle with the given corner
// radius, with anti-aliased edges.
//
// The result is the buffer composited source-atop onto an opaque white
// rounded-rectangle mask covering the whole canvas: alpha comes from the
// mask, color from the buffer. Where the buffer is translucent the white
// mask shows through.
//
// The horizontal and vertical radii are clamped to half the width and half
// the height respectively, so an oversized radius produces a pill or an
// ellipse rather than an error. A radius of zero leaves an opaque image
// unchanged.
func (e *Editor) RoundCorners(radius int) error {
	if radius < 0 {
		return ErrInvalidRadius
	}
	if err := e.Load(); err != nil {
		return err
	}

	w, h := e.buf.Rect.Dx(), e.buf.Rect.Dy()
	mask := roundedRectMask(w, h, float32(radius))
	e.buf = sourceAtop(clone.AsRGBA(e.buf), mask)
	return nil
}

// roundedRectMask rasterizes an opaque rounded rectangle spanning a w×h
// canvas into an alpha mask.
func roundedRectMask(w, h int, radius float32) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return mask
	}
	if radius == 0 {
		draw.Draw(mask, mask.Rect, image.Opaque, image.Point{}, draw.Src)
		return mask
	}

	fw, fh := float32(w), float32(h)
	rx, ry := min(radius, fw/2), min(radius, fh/2)
	kx, ky := rx*kappa, ry*kappa

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	z.MoveTo(rx, 0)
	z.LineTo(fw-rx, 0)
	z.CubeTo(fw-rx+kx, 0, fw, ry-ky, fw, ry)
	z.LineTo(fw, fh-ry)
	z.CubeTo(fw, fh-ry+ky, fw-rx+kx, fh, fw-rx, fh)
	z.LineTo(rx, fh)
	z.CubeTo(rx-kx, fh, 0, fh-ry+ky, 0, fh-ry)
	z.LineTo(0, ry)
	z.CubeTo(0, ry-ky, rx-kx, 0, rx, 0)
	z.ClosePath()
	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	return mask
}

// sourceAtop composites the premultiplied src onto an opaque white
// destination whose coverage is mask, and returns the non-premultiplied
// result.
//
// With destination alpha m and source alpha a, source-atop gives
// alpha m and premultiplied color c*m + m*(1-a). Dividing by m leaves the
// straight color c + (1-a), independent of the mask.
func sourceAtop(src *image.RGBA, mask *image.Alpha) *image.NRGBA {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srow := src.Pix[y*src.Stride:]
		drow := dst.Pix[y*dst.Stride:]
		mrow := mask.Pix[y*mask.Stride:]
		for x := 0; x < w; x++ {
			m := mrow[x]
			if m == 0 {
				continue
			}
			i := x * 4
			inv := 255 - srow[i+3]
			drow[i+0] = srow[i+0] + inv
			drow[i+1] = srow[i+1] + inv
			drow[i+2] = srow[i+2] + inv
			drow[i+3] = m
		}
	}
	return dst
}
