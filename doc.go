// Package stringart turns a grayscale picture into a thread path: an ordered
// list of pins on a circle such that straight threads between consecutive
// pins, each adding a fixed amount of darkness, rebuild the picture.
//
// 🚀 What is in the box?
//
//	• pins/    – pin layout on the circle and sequence validation
//	• chord/   – chord rasteriser and the immutable chord cache
//	• canvas/  – flat float64 images: target, residual, rendered output
//	• params/  – the single immutable run configuration
//	• tabu/    – greedy search with a short tabu memory
//	• genetic/ – generational GA over whole sequences
//	• render/  – PNG and SVG output
//	• imageio/ – decoding, centre crop and resampling of input images
//	• metrics/ – Prometheus instrumentation for long runs
//
// Pipeline:
//
//	image ─► canvas (size×size, 1 = white)
//	      ─► pins.Layout ─► chord.Build (parallel)
//	      ─► tabu | genetic | hybrid (tabu result seeds the GA)
//	      ─► sequence ─► render.Raster / render.WriteSVG
//
// Generate wires these steps together; every stage is also usable alone.
//
//	go get github.com/katalvlaran/stringart
package stringart
