package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/bmpview"
	"github.com/gogpu/bmpview/internal/parallel"
)

// Dispatch errors.
var (
	// ErrUnknownKind is returned for a FilterKind outside the registry.
	ErrUnknownKind = errors.New("filter: unknown filter kind")

	// ErrNilSource is returned when a kernel is given no source image.
	ErrNilSource = errors.New("filter: nil source")
)

// rowFunc computes rows [y0, y1) of dst. It must not write outside those
// rows and must not modify src.
type rowFunc func(dst, src *bmpview.Pixmap, y0, y1 int)

// kernel describes how one filter runs.
type kernel struct {
	// inPlace kernels start from a copy of the source and rewrite it;
	// the others start from a zeroed buffer and read the source only.
	inPlace bool
	rows    rowFunc
}

// registry maps each filter kind to its kernel. Identity has none: its
// output is the source itself.
var registry = [bmpview.KindCount]kernel{
	bmpview.Grayscale:  {rows: grayscaleRows},
	bmpview.Sepia:      {rows: sepiaRows},
	bmpview.Reflect:    {inPlace: true, rows: reflectRows},
	bmpview.Blur:       {rows: blurRows},
	bmpview.EdgeDetect: {rows: edgeRows},
}

// Processor runs kernels, optionally splitting each one into row bands on
// a worker pool. The zero value and a nil *Processor run sequentially.
type Processor struct {
	pool *parallel.WorkerPool
}

// NewProcessor returns a processor that runs on pool. A nil pool means
// sequential execution.
func NewProcessor(pool *parallel.WorkerPool) *Processor {
	return &Processor{pool: pool}
}

func (p *Processor) workerPool() *parallel.WorkerPool {
	if p == nil {
		return nil
	}
	return p.pool
}

// Apply runs the kernel for kind over src and returns a new pixmap of the
// same size. For Identity it returns src unchanged. src is never modified.
func (p *Processor) Apply(kind bmpview.FilterKind, src *bmpview.Pixmap) (*bmpview.Pixmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if kind == bmpview.Identity {
		return src, nil
	}

	k := registry[kind]
	var dst *bmpview.Pixmap
	if k.inPlace {
		dst = src.Clone()
	} else {
		dst = bmpview.MustPixmap(src.Width(), src.Height())
	}

	parallel.ForRows(p.workerPool(), src.Height(), func(y0, y1 int) {
		k.rows(dst, src, y0, y1)
	})
	return dst, nil
}

// sequential is the processor used by the package-level helpers.
var sequential = &Processor{}

// Apply runs the kernel for kind sequentially.
func Apply(kind bmpview.FilterKind, src *bmpview.Pixmap) (*bmpview.Pixmap, error) {
	return sequential.Apply(kind, src)
}

// applyOrNil is used by the typed helpers below, whose kinds are always
// registered; it only fails for a nil source, and then returns nil.
func applyOrNil(kind bmpview.FilterKind, src *bmpview.Pixmap) *bmpview.Pixmap {
	dst, err := sequential.Apply(kind, src)
	if err != nil {
		return nil
	}
	return dst
}

// Grayscale returns the luminance image of src, or nil if src is nil.
func Grayscale(src *bmpview.Pixmap) *bmpview.Pixmap { return applyOrNil(bmpview.Grayscale, src) }

// Sepia returns the sepia-toned image of src, or nil if src is nil.
func Sepia(src *bmpview.Pixmap) *bmpview.Pixmap { return applyOrNil(bmpview.Sepia, src) }

// Reflect returns src mirrored horizontally, or nil if src is nil.
func Reflect(src *bmpview.Pixmap) *bmpview.Pixmap { return applyOrNil(bmpview.Reflect, src) }

// Blur returns the 3x3 box blur of src, or nil if src is nil.
func Blur(src *bmpview.Pixmap) *bmpview.Pixmap { return applyOrNil(bmpview.Blur, src) }

// EdgeDetect returns the Sobel edge image of src, or nil if src is nil.
func EdgeDetect(src *bmpview.Pixmap) *bmpview.Pixmap { return applyOrNil(bmpview.EdgeDetect, src) }
