// Package imageio prepares input pictures for the solvers.
//
// Decoding is left to the registered image decoders: PNG, JPEG and GIF from
// the standard library plus BMP, TIFF and WebP from golang.org/x/image. The
// decoded picture is cropped to its centred square, resampled to size×size
// and reduced to luminance in [0,1], 1 = white.
//
// Two kernels are available. Lanczos3 (github.com/nfnt/resize) is the
// default; CatmullRom goes through golang.org/x/image/draw.
package imageio
