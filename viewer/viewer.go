// Package viewer holds the state of a bmpview session: the loaded image,
// its precomputed filter variants, the selected filter, and the help
// screen shown while nothing is loaded.
//
// Platform concerns stay outside. A front end translates its input events
// with KeyAction, obtains file paths however it likes, and supplies a
// Renderer that puts frames on screen.
package viewer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/bmpview"
	"github.com/gogpu/bmpview/internal/filter"
	"github.com/gogpu/bmpview/internal/image"
	"github.com/gogpu/bmpview/internal/overlay"
	"github.com/gogpu/bmpview/internal/parallel"
)

// ErrNoRenderer is returned by Render when no renderer was configured.
var ErrNoRenderer = errors.New("viewer: no renderer")

// Renderer draws a frame, unscaled, and shows title alongside it.
type Renderer interface {
	Render(frame *bmpview.Pixmap, title string) error
}

// Viewer is a single image viewing session.
//
// Thread safety: all methods are safe for concurrent use, so input
// handling and rendering may run on different goroutines.
type Viewer struct {
	opts options
	pool *parallel.WorkerPool
	proc *filter.Processor

	mu      sync.RWMutex
	result  *filter.Result
	path    string
	current bmpview.FilterKind
	theme   Theme
	help    *bmpview.Pixmap
}

// New creates a viewer with nothing loaded.
func New(opts ...Option) *Viewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &Viewer{opts: o, theme: o.theme}
	if o.workers != 0 {
		v.pool = parallel.NewWorkerPool(o.workers)
	}
	v.proc = filter.NewProcessor(v.pool)
	return v
}

// Close releases the worker pool. The viewer must not be used afterwards.
func (v *Viewer) Close() {
	v.pool.Close()
}

// Load decodes the image at path and precomputes every filter variant.
//
// On failure the viewer keeps whatever it showed before. Errors wrapping
// bmpview.ErrImageLoad are recoverable and are logged as warnings; an
// error wrapping bmpview.ErrAllocation means the image cannot be held in
// memory.
func (v *Viewer) Load(path string) error {
	log := bmpview.Logger()

	src, err := image.LoadLimited(path, v.opts.maxPixels)
	if err != nil {
		if errors.Is(err, bmpview.ErrImageLoad) {
			log.Warn("error loading image", "path", path, "err", err)
		}
		return err
	}
	if err := v.setSource(path, src); err != nil {
		return err
	}

	log.Info("image loaded", "path", path, "width", src.Width(), "height", src.Height())
	return nil
}

// LoadPixmap uses src as the new source image. src must not be modified
// afterwards.
func (v *Viewer) LoadPixmap(src *bmpview.Pixmap) error {
	if src == nil {
		return filter.ErrNilSource
	}
	if m := v.opts.maxPixels; m > 0 && src.Width()*src.Height() > m {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels",
			bmpview.ErrAllocation, src.Width(), src.Height(), m)
	}
	return v.setSource("", src)
}

// setSource precomputes src and swaps it in. The old variants are dropped
// wholesale.
func (v *Viewer) setSource(path string, src *bmpview.Pixmap) error {
	r, err := v.proc.Precompute(src)
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.result = r
	v.path = path
	v.mu.Unlock()
	return nil
}

// Loaded reports whether an image is loaded.
func (v *Viewer) Loaded() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.result != nil
}

// Path returns the path of the loaded image, or "" if none was loaded
// from a file.
func (v *Viewer) Path() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.path
}

// Select switches the displayed filter. Selecting before any image is
// loaded is allowed; it takes effect once one is.
func (v *Viewer) Select(kind bmpview.FilterKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %d", filter.ErrUnknownKind, kind)
	}

	v.mu.Lock()
	v.current = kind
	v.mu.Unlock()

	bmpview.Logger().Info("filter selected", "kind", kind)
	return nil
}

// Current returns the selected filter.
func (v *Viewer) Current() bmpview.FilterKind {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Title returns the window title for the selected filter.
func (v *Viewer) Title() string {
	return v.Current().Title()
}

// SetTheme changes the help screen theme.
func (v *Viewer) SetTheme(t Theme) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if t != v.theme {
		v.theme = t
		v.help = nil
	}
}

// Variant returns the precomputed image for kind, or nil when nothing is
// loaded.
func (v *Viewer) Variant(kind bmpview.FilterKind) *bmpview.Pixmap {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.result.Get(kind)
}

// Size returns the size a window should have to show the current frame
// unscaled: the image size, or the help screen size when nothing is
// loaded.
func (v *Viewer) Size() (width, height int) {
	if src := v.Variant(bmpview.Identity); src != nil {
		return src.Width(), src.Height()
	}
	return overlay.Width, overlay.Height
}

// Frame returns what should be on screen: the selected variant, or the
// help screen when nothing is loaded.
func (v *Viewer) Frame() (*bmpview.Pixmap, error) {
	v.mu.RLock()
	if frame := v.result.Get(v.current); frame != nil {
		v.mu.RUnlock()
		return frame, nil
	}
	help, theme := v.help, v.theme
	v.mu.RUnlock()

	if help != nil {
		return help, nil
	}

	help, err := overlay.Help(theme)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if v.theme == theme {
		v.help = help
	}
	v.mu.Unlock()
	return help, nil
}

// Render hands the current frame and title to the configured renderer.
func (v *Viewer) Render() error {
	if v.opts.renderer == nil {
		return ErrNoRenderer
	}
	frame, err := v.Frame()
	if err != nil {
		return err
	}
	return v.opts.renderer.Render(frame, v.Title())
}

// HandleKey applies a key press. Filter keys select a filter; for the
// open and quit keys the action is returned for the front end to carry
// out.
func (v *Viewer) HandleKey(key rune) (Action, error) {
	action, kind := KeyAction(key)
	if action == ActionSelect {
		if err := v.Select(kind); err != nil {
			return ActionNone, err
		}
	}
	return action, nil
}
