package viewer

import "github.com/gogpu/bmpview/internal/overlay"

// DefaultMaxPixels bounds the source image size. Six full buffers are
// resident per image, so this is roughly 800 MiB of pixel data.
const DefaultMaxPixels = 1 << 25

// Theme selects the colors of the help screen.
type Theme = overlay.Theme

// Themes.
const (
	ThemeLight = overlay.ThemeLight
	ThemeDark  = overlay.ThemeDark
)

// Option configures a Viewer during creation.
//
// Example:
//
//	v := viewer.New(
//	    viewer.WithRenderer(r),
//	    viewer.WithTheme(viewer.ThemeDark),
//	    viewer.WithWorkers(4),
//	)
type Option func(*options)

// options holds optional configuration for Viewer creation.
type options struct {
	renderer  Renderer
	theme     Theme
	workers   int
	maxPixels int
}

// defaultOptions returns the default viewer options: no renderer, light
// theme, sequential kernels.
func defaultOptions() options {
	return options{
		theme:     ThemeLight,
		maxPixels: DefaultMaxPixels,
	}
}

// WithRenderer sets the render target used by Viewer.Render.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithTheme sets the initial help screen theme.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithWorkers sets how many goroutines the kernels use.
// 0 runs everything sequentially on the caller's goroutine; a negative
// value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMaxPixels sets the largest accepted source image, in pixels.
// Larger images fail to load with bmpview.ErrAllocation.
// n <= 0 removes the limit.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		o.maxPixels = n
	}
}
