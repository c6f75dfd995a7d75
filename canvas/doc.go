// Package canvas provides the flat grayscale buffer shared by the target
// image, the residual ("ink debt") image and the rendered output.
//
// Values are float64 in row-major order; 1 is white, 0 is black. The
// residual starts as 1 − target, so dark target pixels carry high debt.
// Committing a chord subtracts a fixed weight at every sample; the floor of
// that subtraction is a named policy:
//
//	Unclamped: values may go negative; a heavily covered dark area keeps
//	           competing for more thread.
//	ClampZero: values stop at 0; no pixel is ever "owed" negative ink.
//
// Access keyed by (x, y) is bounds-checked (At/Set/Add return
// ErrOutOfRange). The chord-sample paths (Get/Score/Subtract) clamp into the
// canvas instead, since cached samples are already clamped at rasterisation
// time.
//
// Concurrency: a Canvas is not synchronised. Many goroutines may read it at
// once (Get/Score/SumAbs); mutation must be exclusive.
package canvas
