// Package filter implements the fixed set of bmpview image kernels and the
// dispatch that precomputes every variant of a loaded image.
//
// Kernels:
//   - Grayscale: weighted luminance, truncated
//   - Sepia: standard sepia matrix, upper-clamped
//   - Reflect: horizontal mirror, in place on a copy of the source
//   - Blur: 3x3 box average over in-bounds neighbors
//   - EdgeDetect: per-channel Sobel magnitude, out-of-bounds taps skipped
//
// Every kernel reads an immutable source and writes a freshly allocated
// destination of the same size. Neighborhood kernels never read their own
// output, so a pass is free of ordering effects and may be split into row
// bands across goroutines without changing a single pixel.
package filter
