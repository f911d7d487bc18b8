package bmpview

import "testing"

// BenchmarkFillVsSetPixel compares Fill against a SetPixel loop.
func BenchmarkFillVsSetPixel(b *testing.B) {
	pm := MustPixmap(1000, 1000)
	px := Pack(255, 0, 0)

	b.Run("SetPixel", func(b *testing.B) {
		for b.Loop() {
			for y := 0; y < pm.Height(); y++ {
				for x := 0; x < pm.Width(); x++ {
					pm.SetPixel(x, y, px)
				}
			}
		}
	})

	b.Run("Fill", func(b *testing.B) {
		for b.Loop() {
			pm.Fill(px)
		}
	})
}

// BenchmarkClone measures a full-buffer copy, the first step of every
// in-place filter.
func BenchmarkClone(b *testing.B) {
	pm := MustPixmap(1920, 1080)
	pm.Fill(Pack(10, 20, 30))

	b.ReportAllocs()
	for b.Loop() {
		_ = pm.Clone()
	}
}

func BenchmarkToImage(b *testing.B) {
	pm := MustPixmap(1920, 1080)

	b.ReportAllocs()
	for b.Loop() {
		_ = pm.ToImage()
	}
}
