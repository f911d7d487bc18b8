package filter

import "github.com/gogpu/bmpview"

// blurRows computes rows [y0, y1) of a 3x3 box blur.
//
// Each channel is the truncated mean of the in-bounds neighbors, the
// center included. Out-of-bounds neighbors are dropped from both the sum
// and the divisor, so corners average 4 pixels, edges 6 and interior 9.
func blurRows(dst, src *bmpview.Pixmap, y0, y1 int) {
	w, h := src.Width(), src.Height()
	pix := src.Pix()

	for y := y0; y < y1; y++ {
		out := dst.Row(y)
		for x := range w {
			var n, sumR, sumG, sumB int

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
					r, g, b := pix[ny*w+nx].Unpack()
					sumR += int(r)
					sumG += int(g)
					sumB += int(b)
					n++
				}
			}

			out[x] = bmpview.Pack(uint8(sumR/n), uint8(sumG/n), uint8(sumB/n))
		}
	}
}
