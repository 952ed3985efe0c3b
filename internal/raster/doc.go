// Package raster implements the in-memory editing operations of rasteredit.
//
// An Editor owns a single 8-bit, non-premultiplied RGBA pixel buffer
// (*image.NRGBA anchored at the origin). The buffer is decoded from the
// editor's input path on the first operation that needs it, or up front via
// Load. From then on every operation works on the buffer, never on the file.
//
// # Operations
//
//   - RemoveColor: color-key pixels close to a target color to full transparency
//   - ChangeColor: replace one exact RGB value with another, keeping alpha
//   - Overlay: recolor every pixel to one flat color, keeping alpha
//   - RoundCorners: clip the buffer to an anti-aliased rounded rectangle
//   - Resize: resample a supplied image and install it as the buffer
//   - Save: encode the buffer to the configured output path
//
// RemoveColor, ChangeColor and Overlay mutate the buffer in place.
// RoundCorners and Resize replace it with a new buffer.
//
// # Color Keying
//
// RemoveColor compares each channel independently (Chebyshev distance).
// A pixel is keyed out only when every one of |dR|, |dG|, |dB| is strictly
// below KeyThreshold. Alpha is ignored by the comparison.
//
// # Error Handling
//
// Decoding failures are reported as *DecodeError and encoding failures as
// *EncodeError; both unwrap to the underlying cause. Saving without an
// output path returns ErrNoOutputPath. Invalid geometry is rejected with
// ErrInvalidDimensions or ErrInvalidRadius before any pixel is touched.
//
// # Thread Safety
//
// An Editor is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package raster
