// Package image loads source images into bmpview pixmaps and writes
// pixmaps back out.
//
// BMP is the primary format (golang.org/x/image/bmp); PNG and JPEG are
// accepted as well, detected by content rather than by extension.
package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/bmpview"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when saving to an unknown extension.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when a decoded image has no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// NoLimit disables the pixel budget in LoadLimited.
const NoLimit = 0

// Load decodes the image at path into an opaque ARGB8888 pixmap.
// Every failure wraps bmpview.ErrImageLoad inside a *bmpview.LoadError.
func Load(path string) (*bmpview.Pixmap, error) {
	return LoadLimited(path, NoLimit)
}

// LoadLimited is like Load but first reads the image header and rejects
// images with more than maxPixels pixels with bmpview.ErrAllocation,
// before any pixel buffer is allocated. maxPixels <= 0 means no limit.
func LoadLimited(path string, maxPixels int) (*bmpview.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &bmpview.LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if maxPixels > 0 {
		cfg, format, err := image.DecodeConfig(bufio.NewReader(f))
		if err != nil {
			return nil, &bmpview.LoadError{Path: path, Err: fmt.Errorf("image: decode header: %w", err)}
		}
		if overBudget(cfg.Width, cfg.Height, maxPixels) {
			return nil, fmt.Errorf("%w: %s is %dx%d %s (limit %d pixels)",
				bmpview.ErrAllocation, path, cfg.Width, cfg.Height, format, maxPixels)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, &bmpview.LoadError{Path: path, Err: err}
		}
	}

	pm, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, &bmpview.LoadError{Path: path, Err: err}
	}
	return pm, nil
}

// overBudget reports whether a width x height image has more than
// maxPixels pixels. It divides instead of multiplying so that header
// dimensions cannot overflow int.
func overBudget(width, height, maxPixels int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return width > maxPixels/height
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*bmpview.Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}

	bmpview.Logger().Debug("image decoded", "format", format, "bounds", img.Bounds())
	return FromStdImage(img)
}

// FromStdImage converts any image.Image to an opaque pixmap. The image is
// first normalised to non-premultiplied RGBA, then alpha is forced to
// 0xFF: the viewer has nothing to composite transparent pixels onto.
func FromStdImage(img image.Image) (*bmpview.Pixmap, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	pm, err := bmpview.FromNRGBA(nrgba)
	if err != nil {
		return nil, err
	}
	pix := pm.Pix()
	for i, px := range pix {
		pix[i] = px | bmpview.Opaque<<24
	}
	return pm, nil
}

// EncodePNG writes p as PNG.
func EncodePNG(w io.Writer, p *bmpview.Pixmap) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes p as a BMP.
func EncodeBMP(w io.Writer, p *bmpview.Pixmap) error {
	if err := bmp.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// Save writes p to path, choosing the encoder from the extension
// (.png or .bmp).
func Save(path string, p *bmpview.Pixmap) error {
	var encode func(io.Writer, *bmpview.Pixmap) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = EncodePNG
	case ".bmp":
		encode = EncodeBMP
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := encode(w, p); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("image: write %s: %w", path, err)
	}
	return f.Close()
}
