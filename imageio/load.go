package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Sentinel errors for image loading.
var (
	// ErrBadSize indicates a non-positive output size.
	ErrBadSize = errors.New("imageio: size must be positive")

	// ErrEmptyImage indicates a decoded picture with no pixels.
	ErrEmptyImage = errors.New("imageio: image has no pixels")

	// ErrUnknownFilter indicates an unrecognised resampling filter.
	ErrUnknownFilter = errors.New("imageio: unknown resampling filter")
)

// Filter selects the resampling kernel.
type Filter int

const (
	// Lanczos3 resamples with a three-lobe Lanczos window (nfnt/resize).
	Lanczos3 Filter = iota

	// CatmullRom resamples with the Catmull-Rom cubic (x/image/draw).
	CatmullRom
)

// String returns the filter name used by the command line.
func (f Filter) String() string {
	switch f {
	case Lanczos3:
		return "lanczos3"
	case CatmullRom:
		return "catmull-rom"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter maps a filter name back to its value.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "lanczos3", "":
		return Lanczos3, nil
	case "catmull-rom":
		return CatmullRom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

// Option configures loading.
type Option func(*Options)

// Options holds the loading knobs.
type Options struct {
	Filter Filter
}

// WithFilter selects the resampling kernel.
func WithFilter(f Filter) Option {
	return func(o *Options) { o.Filter = f }
}

// LoadFile opens path and runs Load on it.
func LoadFile(path string, size int, opts ...Option) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, size, opts...)
}

// Load decodes r and returns the size×size luminance canvas.
func Load(r io.Reader, size int, opts ...Option) (*canvas.Canvas, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	c, err := FromImage(img, size, opts...)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", format, err)
	}

	return c, nil
}

// FromImage crops img to its centred square, resamples it to size×size and
// converts it to luminance.
func FromImage(img image.Image, size int, opts ...Option) (*canvas.Canvas, error) {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if size <= 0 {
		return nil, ErrBadSize
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	var scaled image.Image
	switch o.Filter {
	case Lanczos3:
		scaled = resize.Resize(uint(size), uint(size), subImage(img, crop), resize.Lanczos3)
	case CatmullRom:
		dst := image.NewGray16(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)
		scaled = dst
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFilter, o.Filter)
	}

	return luminance(scaled, size)
}

// subImage returns the crop rectangle of img, copying only when img has no
// SubImage method.
func subImage(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return s.SubImage(r)
	}
	dst := image.NewRGBA64(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)

	return dst
}

// luminance maps a size×size image to [0,1] gray values.
func luminance(img image.Image, size int) (*canvas.Canvas, error) {
	b := img.Bounds()
	vals := make([]float64, size*size)
	var (
		x, y int
		g    color.Gray16
	)
	for y = 0; y < size; y++ {
		for x = 0; x < size; x++ {
			g = color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			vals[y*size+x] = float64(g.Y) / 0xffff
		}
	}

	return canvas.FromValues(size, size, vals)
}
