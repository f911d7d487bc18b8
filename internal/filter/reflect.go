package filter

import "github.com/gogpu/bmpview"

// reflectRows mirrors rows [y0, y1) of dst horizontally in place.
// dst starts as a copy of the source; an odd width leaves the center
// column where it is.
func reflectRows(dst, _ *bmpview.Pixmap, y0, y1 int) {
	w := dst.Width()
	for y := y0; y < y1; y++ {
		row := dst.Row(y)
		for x := 0; x < w/2; x++ {
			row[x], row[w-1-x] = row[w-1-x], row[x]
		}
	}
}
