package filter

import (
	"testing"

	"github.com/gogpu/bmpview"
)

func TestEdgeDetectUniformBlack(t *testing.T) {
	src := createTestPixmap(t, 6, 4, gray(0))
	for i, px := range EdgeDetect(src).Pix() {
		if px != gray(0) {
			t.Fatalf("pixel %d = %v, want zero", i, channels(px))
		}
	}
}

func TestEdgeDetectUniformInterior(t *testing.T) {
	src := createTestPixmap(t, 6, 5, bmpview.Pack(100, 150, 200))
	dst := EdgeDetect(src)

	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			if got := dst.PixelAt(x, y); got != gray(0) {
				t.Errorf("interior (%d,%d) = %v, want zero", x, y, channels(got))
			}
		}
	}

	// Skipped out-of-bounds taps truncate the operator at the border.
	if got := dst.PixelAt(0, 2); got == gray(0) {
		t.Error("left border of a non-black image should report a gradient")
	}
}

func TestEdgeDetectVerticalStep(t *testing.T) {
	// Columns 0-3 black, 4-7 white.
	src := createPatternPixmap(t, 8, 5, func(x, _ int) bmpview.Pixel {
		if x < 4 {
			return gray(0)
		}
		return gray(255)
	})
	dst := EdgeDetect(src)

	tests := []struct {
		x    int
		want uint8
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 255}, // step
		{4, 255}, // step
		{5, 0},
		{6, 0},
		{7, 255}, // right border, truncated operator
	}

	for y := 1; y < 4; y++ {
		for _, tt := range tests {
			if got := dst.PixelAt(tt.x, y); got != gray(tt.want) {
				t.Errorf("(%d,%d) = %v, want %d", tt.x, y, channels(got), tt.want)
			}
		}
	}
}

func TestEdgeDetectMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		gx, gy int
		want   uint8
	}{
		{"zero", 0, 0, 0},
		{"axis", 100, 0, 100},
		{"pythagorean", 30, 40, 50},
		{"truncated", 1, 1, 1}, // sqrt(2)
		{"saturated", 1020, 0, 255},
		{"negative components", -30, -40, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := magnitude(tt.gx, tt.gy); got != tt.want {
				t.Errorf("magnitude(%d, %d) = %d, want %d", tt.gx, tt.gy, got, tt.want)
			}
		})
	}
}

func TestEdgeDetectChannelsIndependent(t *testing.T) {
	// Only the red channel steps; green and blue stay flat.
	src := createPatternPixmap(t, 4, 3, func(x, _ int) bmpview.Pixel {
		if x < 2 {
			return bmpview.Pack(0, 50, 50)
		}
		return bmpview.Pack(10, 50, 50)
	})

	got := EdgeDetect(src).PixelAt(1, 1)
	if want := bmpview.Pack(40, 0, 0); got != want {
		t.Errorf("(1,1) = %v, want %v", channels(got), channels(want))
	}
}
