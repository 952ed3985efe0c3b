package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCorners_ZeroRadiusIsIdentity(t *testing.T) {
	src := solidImage(20, 10, color.NRGBA{30, 60, 90, 255})
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(19, 9, color.NRGBA{0, 255, 0, 255})

	e := NewFromImage(src)
	require.NoError(t, e.RoundCorners(0))

	assert.Equal(t, src.Pix, buffer(t, e).Pix)
}

func TestRoundCorners_LargeRadiusClearsCorners(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		radius int
	}{
		{"square at half", 20, 20, 10},
		{"square oversized", 20, 20, 500},
		{"wide pill", 40, 20, 10},
		{"wide ellipse", 40, 20, 100},
		{"tall ellipse", 16, 48, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFromImage(solidImage(tt.w, tt.h, color.NRGBA{200, 10, 10, 255}))
			require.NoError(t, e.RoundCorners(tt.radius))

			buf := buffer(t, e)
			require.Equal(t, tt.w, buf.Rect.Dx())
			require.Equal(t, tt.h, buf.Rect.Dy())

			for _, p := range [][2]int{{0, 0}, {tt.w - 1, 0}, {0, tt.h - 1}, {tt.w - 1, tt.h - 1}} {
				assert.Equal(t, uint8(0), buf.NRGBAAt(p[0], p[1]).A, "corner (%d,%d)", p[0], p[1])
			}
			assert.Equal(t, color.NRGBA{200, 10, 10, 255}, buf.NRGBAAt(tt.w/2, tt.h/2))
			// The middle of each edge stays inside the shape.
			assert.NotZero(t, buf.NRGBAAt(0, tt.h/2).A)
			assert.NotZero(t, buf.NRGBAAt(tt.w/2, 0).A)
		})
	}
}

func TestRoundCorners_AntiAliasedEdge(t *testing.T) {
	e := NewFromImage(solidImage(64, 64, color.NRGBA{0, 0, 0, 255}))
	require.NoError(t, e.RoundCorners(32))

	buf := buffer(t, e)
	partial := 0
	for x := 0; x < 64; x++ {
		if a := buf.NRGBAAt(x, 10).A; a > 0 && a < 255 {
			partial++
		}
	}
	assert.NotZero(t, partial, "expected partially covered pixels along the curve")
}

func TestRoundCorners_SmallRadiusOnlyTouchesCorners(t *testing.T) {
	e := NewFromImage(solidImage(30, 30, color.NRGBA{5, 5, 5, 255}))
	require.NoError(t, e.RoundCorners(4))

	buf := buffer(t, e)
	assert.Equal(t, uint8(0), buf.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), buf.NRGBAAt(15, 0).A)
	assert.Equal(t, uint8(255), buf.NRGBAAt(0, 15).A)
	assert.Equal(t, uint8(255), buf.NRGBAAt(10, 10).A)
}

func TestRoundCorners_TranslucentSourceAtop(t *testing.T) {
	src := solidImage(3, 3, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 128})
	src.SetNRGBA(2, 2, color.NRGBA{0, 0, 0, 0})

	e := NewFromImage(src)
	require.NoError(t, e.RoundCorners(0))

	buf := buffer(t, e)
	// Alpha comes from the opaque mask; the white mask shows through the source.
	assert.Equal(t, color.NRGBA{255, 127, 127, 255}, buf.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, buf.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, buf.NRGBAAt(0, 0))
}

func TestRoundCorners_NegativeRadius(t *testing.T) {
	src := solidImage(4, 4, color.NRGBA{1, 1, 1, 255})
	e := NewFromImage(src)

	assert.ErrorIs(t, e.RoundCorners(-1), ErrInvalidRadius)
	assert.Equal(t, src.Pix, buffer(t, e).Pix)
}

func TestRoundCorners_EmptyImage(t *testing.T) {
	e := NewFromImage(solidImage(0, 0, color.NRGBA{}))
	require.NoError(t, e.RoundCorners(5))
	assert.True(t, e.Image().Bounds().Empty())
}
