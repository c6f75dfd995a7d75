package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/stringart/pins"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultMargin is the inset between the pin circle and the SVG border.
const DefaultMargin = 10

// SVGOptions controls the vector output.
type SVGOptions struct {
	Margin      float64 // inset of the pin circle
	StrokeColor string  // #rgb, #rrggbb or an SVG colour name
	StrokeWidth float64
	Background  string // empty ⇒ no background rect
}

// DefaultSVGOptions returns black hairlines on white with a 10px margin.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Margin:      DefaultMargin,
		StrokeColor: "#000000",
		StrokeWidth: 0.5,
		Background:  "white",
	}
}

// WriteSVG writes a size×size SVG drawing with one <line> per chord of seq.
//
// Hex stroke colours are normalised to lower-case #rrggbb.
//
// Errors: pins.ErrBadPinCount, pins.ErrBadSize, ErrPinOutOfRange,
// ErrBadColor, or the writer's error.
func WriteSVG(w io.Writer, seq []int, pinCount, size int, opts SVGOptions) error {
	coords, err := pins.LayoutWithMargin(pinCount, size, opts.Margin)
	if err != nil {
		return err
	}
	if err = checkPins(seq, pinCount); err != nil {
		return err
	}
	color, err := NormalizeColor(opts.StrokeColor)
	if err != nil {
		return err
	}

	sw := svgWriter{w: bufio.NewWriter(w)}
	sw.printf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		size, size, size, size)
	if opts.Background != "" {
		sw.printf(`  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(opts.Background))
	}
	stroke := html.EscapeString(color)
	width := strconv.FormatFloat(opts.StrokeWidth, 'g', -1, 64)
	var i int
	for i = 1; i < len(seq); i++ {
		sw.line(coords[seq[i-1]], coords[seq[i]], stroke, width)
	}
	sw.printf("</svg>\n")

	return sw.w.Flush()
}

// NormalizeColor canonicalises a hex colour through go-colorful; names pass
// through untouched.
func NormalizeColor(s string) (string, error) {
	if !strings.HasPrefix(s, "#") {
		if s == "" {
			return "", fmt.Errorf("%w: empty", ErrBadColor)
		}
		return s, nil
	}
	if len(s) != 4 && len(s) != 7 {
		return "", fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return c.Hex(), nil
}

// svgWriter emits SVG elements; write errors surface at Flush.
type svgWriter struct {
	w *bufio.Writer
}

func (s svgWriter) printf(format string, a ...any) {
	fmt.Fprintf(s.w, format, a...)
}

func (s svgWriter) line(p1, p2 geom.Coord, stroke, width string) {
	s.printf(`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(p1.X), num(p1.Y), num(p2.X), num(p2.Y), stroke, width)
}

// num prints a coordinate rounded to three decimals, trimming trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
