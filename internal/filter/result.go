package filter

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/bmpview"
)

// Result holds every filtered variant of one source image.
// It is immutable once returned by Precompute.
type Result struct {
	variants [bmpview.KindCount]*bmpview.Pixmap
}

// Get returns the variant for kind, or nil if kind is invalid or r is nil.
func (r *Result) Get(kind bmpview.FilterKind) *bmpview.Pixmap {
	if r == nil || !kind.Valid() {
		return nil
	}
	return r.variants[kind]
}

// Len returns the number of populated variants.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, v := range r.variants {
		if v != nil {
			n++
		}
	}
	return n
}

// Precompute runs every kernel over src once and keeps src itself as the
// Identity variant. Kernels run concurrently, at most one per pool worker.
// All six buffers stay resident so switching filters never recomputes.
func (p *Processor) Precompute(src *bmpview.Pixmap) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	log := bmpview.Logger()
	start := time.Now()

	r := &Result{}
	r.variants[bmpview.Identity] = src

	var g errgroup.Group
	g.SetLimit(p.workerPool().Workers())
	for _, kind := range bmpview.Kinds() {
		if kind == bmpview.Identity {
			continue
		}
		g.Go(func() error {
			t := time.Now()
			out, err := p.Apply(kind, src)
			if err != nil {
				return err
			}
			r.variants[kind] = out
			log.Debug("filter computed", "kind", kind, "elapsed", time.Since(t))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("precompute done",
		"width", src.Width(), "height", src.Height(),
		"variants", r.Len(), "elapsed", time.Since(start))
	return r, nil
}

// Precompute runs every kernel sequentially over src.
func Precompute(src *bmpview.Pixmap) (*Result, error) {
	return sequential.Precompute(src)
}
