package filter

import (
	"math"

	"github.com/gogpu/bmpview"
)

// Sobel operators indexed by (dy+1)*3 + (dx+1).
var (
	sobelX = [9]int{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
	sobelY = [9]int{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)

// gradient holds per-channel Sobel responses for one pixel.
type gradient struct {
	rx, gx, bx int
	ry, gy, by int
}

// magnitude returns the saturated gradient length.
func magnitude(x, y int) uint8 {
	return bmpview.ClampByte(int(math.Sqrt(float64(x*x + y*y))))
}

// edgeRows computes rows [y0, y1) of the Sobel edge image.
//
// Taps that fall outside the image are skipped. This is not zero padding
// of the source: the effective operator is truncated near the border, so
// border pixels of a uniform non-black image report an edge.
func edgeRows(dst, src *bmpview.Pixmap, y0, y1 int) {
	w, h := src.Width(), src.Height()
	pix := src.Pix()

	for y := y0; y < y1; y++ {
		out := dst.Row(y)
		for x := range w {
			var g gradient

			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					k := (dy+1)*3 + (dx + 1)
					r, gr, b := pix[ny*w+nx].Unpack()
					g.rx += int(r) * sobelX[k]
					g.gx += int(gr) * sobelX[k]
					g.bx += int(b) * sobelX[k]
					g.ry += int(r) * sobelY[k]
					g.gy += int(gr) * sobelY[k]
					g.by += int(b) * sobelY[k]
				}
			}

			out[x] = bmpview.Pack(
				magnitude(g.rx, g.ry),
				magnitude(g.gx, g.gy),
				magnitude(g.bx, g.by),
			)
		}
	}
}
