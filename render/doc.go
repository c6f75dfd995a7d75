// Package render turns a pin sequence back into pictures.
//
// Raster replays every chord onto a white canvas, darkening each sample by
// the line weight, the same way the search consumed the residual. WritePNG
// encodes such a canvas as 8-bit grayscale. WriteSVG emits a vector drawing
// with one <line> per chord over a white background; its pins sit on a
// circle inset by a margin (10px by default) instead of the raster layout.
package render
