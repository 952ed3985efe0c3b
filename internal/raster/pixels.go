package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// KeyThreshold is the exclusive per-channel distance under which RemoveColor
// treats a pixel as matching the key color.
const KeyThreshold = 35

// rgbMask selects the color bits of a packed 0xAARRGGBB value.
const rgbMask = 0x00ffffff

// toNRGBA copies img into a new NRGBA buffer anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// eachPixel calls fn with the 4-byte R,G,B,A slice of every pixel in buf.
func eachPixel(buf *image.NRGBA, fn func(px []uint8)) {
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	for y := 0; y < h; y++ {
		row := buf.Pix[y*buf.Stride : y*buf.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			fn(row[i : i+4 : i+4])
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func packRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RemoveColor makes every pixel whose color is within KeyThreshold of key
// fully transparent.
//
// A pixel matches when each of |dR|, |dG| and |dB| is strictly less than
// KeyThreshold. Matching pixels become (0,0,0,0); the rest are untouched.
// The key's alpha and the pixel's alpha play no part in the comparison.
func (e *Editor) RemoveColor(key Color) error {
	if err := e.Load(); err != nil {
		return err
	}

	eachPixel(e.buf, func(px []uint8) {
		if absDiff(px[0], key.R) < KeyThreshold &&
			absDiff(px[1], key.G) < KeyThreshold &&
			absDiff(px[2], key.B) < KeyThreshold {
			px[0], px[1], px[2], px[3] = 0, 0, 0, 0
		}
	})
	return nil
}

// ChangeColor replaces the RGB value of every pixel that exactly equals
// from with to. Alpha is preserved and ignored by the match.
//
// Matching pixels are flipped with a single XOR against from^to, so
// ChangeColor(a, b) followed by ChangeColor(b, a) restores an image that
// held no b pixels beforehand.
func (e *Editor) ChangeColor(from, to Color) error {
	if err := e.Load(); err != nil {
		return err
	}

	old := packRGB(from.R, from.G, from.B)
	toggle := old ^ packRGB(to.R, to.G, to.B)
	if toggle == 0 {
		return nil
	}

	eachPixel(e.buf, func(px []uint8) {
		rgb := packRGB(px[0], px[1], px[2])
		if rgb&rgbMask != old {
			return
		}
		rgb ^= toggle
		px[0], px[1], px[2] = uint8(rgb>>16), uint8(rgb>>8), uint8(rgb)
	})
	return nil
}

// Overlay paints every pixel with c's RGB while keeping the pixel's own
// alpha, recoloring the image's silhouette to a single flat color.
// The alpha of c is ignored.
func (e *Editor) Overlay(c Color) error {
	if err := e.Load(); err != nil {
		return err
	}

	eachPixel(e.buf, func(px []uint8) {
		px[0], px[1], px[2] = c.R, c.G, c.B
	})
	return nil
}
