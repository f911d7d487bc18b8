package bmpview

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular buffer of ARGB8888 pixels stored row-major.
type Pixmap struct {
	width  int
	height int
	pix    []Pixel
}

// NewPixmap creates a zeroed pixmap with the given dimensions.
// It returns ErrInvalidDimensions if either dimension is not positive.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// MustPixmap is like NewPixmap but panics on invalid dimensions.
func MustPixmap(width, height int) *Pixmap {
	p, err := NewPixmap(width, height)
	if err != nil {
		panic(err)
	}
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the raw pixel slice. Pixel (x, y) is at index y*Width()+x.
func (p *Pixmap) Pix() []Pixel {
	return p.pix
}

// Row returns the pixels of row y.
func (p *Pixmap) Row(y int) []Pixel {
	return p.pix[y*p.width : (y+1)*p.width]
}

// PixelAt returns the pixel at (x, y), or 0 when out of bounds.
func (p *Pixmap) PixelAt(x, y int) Pixel {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// SetPixel stores px at (x, y). Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, px Pixel) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = px
}

// Fill sets every pixel to px.
func (p *Pixmap) Fill(px Pixel) {
	for i := range p.pix {
		p.pix[i] = px
	}
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{
		width:  p.width,
		height: p.height,
		pix:    make([]Pixel, len(p.pix)),
	}
	copy(c.pix, p.pix)
	return c
}

// SameSize reports whether q has the same dimensions as p.
func (p *Pixmap) SameSize(q *Pixmap) bool {
	return q != nil && p.width == q.width && p.height == q.height
}

// Equal reports whether q has the same dimensions and pixels as p.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if !p.SameSize(q) {
		return false
	}
	for i, px := range p.pix {
		if q.pix[i] != px {
			return false
		}
	}
	return true
}

// ToImage converts the pixmap to a non-premultiplied image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		row := p.Row(y)
		off := y * img.Stride
		for x, px := range row {
			r, g, b := px.Unpack()
			img.Pix[off+x*4+0] = r
			img.Pix[off+x*4+1] = g
			img.Pix[off+x*4+2] = b
			img.Pix[off+x*4+3] = px.Alpha()
		}
	}
	return img
}

// FromNRGBA packs a non-premultiplied image into a new pixmap.
// The image origin is mapped to (0, 0).
func FromNRGBA(img *image.NRGBA) (*Pixmap, error) {
	bounds := img.Bounds()
	p, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.height; y++ {
		src := img.Pix[y*img.Stride:]
		dst := p.Row(y)
		for x := range dst {
			dst[x] = PackARGB(src[x*4+3], src[x*4+0], src[x*4+1], src[x*4+2])
		}
	}
	return p, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	px := p.PixelAt(x, y)
	r, g, b := px.Unpack()
	return color.NRGBA{R: r, G: g, B: b, A: px.Alpha()}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
