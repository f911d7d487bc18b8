package filter

import "github.com/gogpu/bmpview"

// Luminance weights for grayscale conversion. Human vision is most
// sensitive to green and least to blue, so a weighted sum looks better
// than the channel mean.
const (
	lumR float32 = 0.212671
	lumG float32 = 0.715160
	lumB float32 = 0.072169
)

// colorMatrix is a 3x3 RGB transform in row-major order:
//
//	[R']   [m0 m1 m2]   [R]
//	[G'] = [m3 m4 m5] * [G]
//	[B']   [m6 m7 m8]   [B]
type colorMatrix [9]float64

// sepiaMatrix is the standard sepia tone transform. Rows sum to more than
// one for red and green, so bright inputs saturate.
var sepiaMatrix = colorMatrix{
	0.393, 0.769, 0.189,
	0.349, 0.686, 0.168,
	0.272, 0.534, 0.131,
}

// luminance returns the truncated weighted luminance of a pixel.
// Products are converted explicitly so the compiler cannot fuse them into
// multiply-add instructions, which would change results on some targets.
func luminance(r, g, b uint8) uint8 {
	v := float32(lumR*float32(r)) + float32(lumG*float32(g))
	v = v + float32(lumB*float32(b))
	return uint8(v)
}

// row applies one matrix row to (r, g, b) and truncates toward zero.
func (m *colorMatrix) row(i int, r, g, b float64) int {
	v := float64(m[i*3]*r) + float64(m[i*3+1]*g)
	v = v + float64(m[i*3+2]*b)
	return int(v)
}

// transform applies the matrix and saturates each channel at 255.
func (m *colorMatrix) transform(r, g, b uint8) (uint8, uint8, uint8) {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return bmpview.ClampByte(m.row(0, fr, fg, fb)),
		bmpview.ClampByte(m.row(1, fr, fg, fb)),
		bmpview.ClampByte(m.row(2, fr, fg, fb))
}

func grayscaleRows(dst, src *bmpview.Pixmap, y0, y1 int) {
	for y := y0; y < y1; y++ {
		in, out := src.Row(y), dst.Row(y)
		for x, px := range in {
			v := luminance(px.Unpack())
			out[x] = bmpview.Pack(v, v, v)
		}
	}
}

func sepiaRows(dst, src *bmpview.Pixmap, y0, y1 int) {
	for y := y0; y < y1; y++ {
		in, out := src.Row(y), dst.Row(y)
		for x, px := range in {
			out[x] = bmpview.Pack(sepiaMatrix.transform(px.Unpack()))
		}
	}
}
