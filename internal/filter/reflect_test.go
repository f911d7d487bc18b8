package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReflectMirrorsRows(t *testing.T) {
	for _, w := range []int{1, 2, 5, 8} {
		src := createPatternPixmap(t, w, 3, noisePixel)
		dst := Reflect(src)

		for y := range src.Height() {
			for x := range w {
				if dst.PixelAt(x, y) != src.PixelAt(w-1-x, y) {
					t.Fatalf("width %d: (%d,%d) != source (%d,%d)", w, x, y, w-1-x, y)
				}
			}
		}
	}
}

func TestReflectOddWidthKeepsCenter(t *testing.T) {
	src := createPatternPixmap(t, 5, 2, noisePixel)
	dst := Reflect(src)

	for y := range 2 {
		if dst.PixelAt(2, y) != src.PixelAt(2, y) {
			t.Errorf("center column moved in row %d", y)
		}
	}
}

func TestReflectInvolution(t *testing.T) {
	src := createPatternPixmap(t, 9, 4, noisePixel)
	twice := Reflect(Reflect(src))

	if diff := cmp.Diff(src.Pix(), twice.Pix()); diff != "" {
		t.Errorf("Reflect(Reflect(src)) mismatch (-want +got):\n%s", diff)
	}
}

func TestReflectLeavesSourceUntouched(t *testing.T) {
	src := createPatternPixmap(t, 6, 6, noisePixel)
	orig := src.Clone()

	dst := Reflect(src)

	if !src.Equal(orig) {
		t.Error("source was modified")
	}
	if &dst.Pix()[0] == &src.Pix()[0] {
		t.Error("Reflect returned a buffer aliasing the source")
	}
}
