package bmpview

// Pixel is a packed 32-bit ARGB8888 value with alpha in the most
// significant byte.
type Pixel uint32

// Opaque is the alpha value written by every filter.
const Opaque = 0xFF

// Pack combines three channels into a fully opaque pixel.
func Pack(r, g, b uint8) Pixel {
	return Pixel(Opaque)<<24 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// PackARGB combines four channels into a pixel.
func PackARGB(a, r, g, b uint8) Pixel {
	return Pixel(a)<<24 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// Unpack returns the red, green and blue channels, discarding alpha.
func (p Pixel) Unpack() (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Alpha returns the alpha channel.
func (p Pixel) Alpha() uint8 {
	return uint8(p >> 24)
}

// ClampByte saturates x at 255.
//
// Only the upper bound is guarded: a negative x is truncated to its low
// eight bits rather than clamped to zero. None of the kernels in this
// module can produce a negative argument.
// TODO(clamp): decide whether negative inputs should clamp to 0 once a
// caller that can go negative exists.
func ClampByte(x int) uint8 {
	if x > 0xFF {
		return 0xFF
	}
	return uint8(x)
}
