package filter

import (
	"testing"

	"github.com/gogpu/bmpview"
)

// Test helper functions shared across filter tests.

// createTestPixmap creates a pixmap filled with px.
func createTestPixmap(t testing.TB, w, h int, px bmpview.Pixel) *bmpview.Pixmap {
	t.Helper()
	p, err := bmpview.NewPixmap(w, h)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d): %v", w, h, err)
	}
	p.Fill(px)
	return p
}

// createPatternPixmap creates a pixmap whose pixels are given by fn.
func createPatternPixmap(t testing.TB, w, h int, fn func(x, y int) bmpview.Pixel) *bmpview.Pixmap {
	t.Helper()
	p := createTestPixmap(t, w, h, 0)
	for y := range h {
		for x := range w {
			p.SetPixel(x, y, fn(x, y))
		}
	}
	return p
}

// noisePixel is a cheap deterministic pixel generator for larger images.
func noisePixel(x, y int) bmpview.Pixel {
	v := uint32(x*7919+y*104729) * 2654435761
	return bmpview.Pack(uint8(v>>8), uint8(v>>16), uint8(v>>24))
}

// gray returns an opaque gray pixel.
func gray(v uint8) bmpview.Pixel {
	return bmpview.Pack(v, v, v)
}

// channels unpacks px for error messages.
func channels(px bmpview.Pixel) [3]uint8 {
	r, g, b := px.Unpack()
	return [3]uint8{r, g, b}
}
