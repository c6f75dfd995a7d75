package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/stringart/imageio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func uniform(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}

	return img
}

// TestLoad_Formats decodes the same picture from several containers.
func TestLoad_Formats(t *testing.T) {
	src := uniform(20, 20, 128)
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, enc(&buf))
			c, err := imageio.Load(&buf, 8)
			require.NoError(t, err)
			assert.Equal(t, 8, c.Width())
			assert.Equal(t, 8, c.Height())
			for _, v := range c.Values() {
				assert.InDelta(t, 128.0/255, v, 1e-3)
			}
		})
	}
}

// TestFromImage_CentreCrop keeps only the middle square of a wide picture,
// with either kernel.
func TestFromImage_CentreCrop(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 30, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 30; x++ {
			if x >= 10 && x < 20 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	for _, f := range []imageio.Filter{imageio.Lanczos3, imageio.CatmullRom} {
		c, err := imageio.FromImage(img, 5, imageio.WithFilter(f))
		require.NoError(t, err, f.String())
		for _, v := range c.Values() {
			assert.InDelta(t, 1.0, v, 1e-3, f.String())
		}
	}
}

// TestParseFilter round-trips filter names.
func TestParseFilter(t *testing.T) {
	for _, f := range []imageio.Filter{imageio.Lanczos3, imageio.CatmullRom} {
		got, err := imageio.ParseFilter(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := imageio.ParseFilter("box")
	assert.ErrorIs(t, err, imageio.ErrUnknownFilter)

	_, err = imageio.FromImage(uniform(4, 4, 0), 2, imageio.WithFilter(imageio.Filter(7)))
	assert.ErrorIs(t, err, imageio.ErrUnknownFilter)
}

// TestFromImage_OffsetBounds handles pictures not anchored at (0,0).
func TestFromImage_OffsetBounds(t *testing.T) {
	img := uniform(40, 40, 0).SubImage(image.Rect(10, 10, 30, 20))
	c, err := imageio.FromImage(img, 4)
	require.NoError(t, err)
	for _, v := range c.Values() {
		assert.InDelta(t, 0.0, v, 1e-3)
	}
}

// TestFromImage_Color converts colour to luminance.
func TestFromImage_Color(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	c, err := imageio.FromImage(img, 3)
	require.NoError(t, err)
	for _, v := range c.Values() {
		assert.InDelta(t, 1.0, v, 1e-3)
	}
}

// TestLoad_Errors covers sizes, empty pictures and garbage input.
func TestLoad_Errors(t *testing.T) {
	_, err := imageio.Load(strings.NewReader("not an image"), 10)
	assert.Error(t, err)

	_, err = imageio.Load(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, imageio.ErrBadSize)

	_, err = imageio.FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), 10)
	assert.ErrorIs(t, err, imageio.ErrEmptyImage)

	_, err = imageio.LoadFile(filepath.Join(t.TempDir(), "missing.png"), 10)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadFile reads a PNG from disk.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, uniform(12, 16, 255)))
	require.NoError(t, f.Close())

	c, err := imageio.LoadFile(path, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Width())
	assert.InDelta(t, 36.0, c.SumAbs(), 1e-2)
}
