// Package bmpview holds the core types of a small bitmap viewer: the
// ARGB8888 pixel format, the Pixmap buffer and the set of filters the
// viewer can show.
//
// # Overview
//
// An image is loaded once (see internal/image), every filter variant is
// computed up front (internal/filter), and the viewer package switches
// between the cached variants on key presses. Filters never run while a
// frame is being presented.
//
// # Pixel Format
//
// A Pixel packs alpha, red, green and blue into one uint32, alpha in the
// high byte:
//
//	p := bmpview.Pack(255, 128, 0)   // 0xFFFF8000
//	r, g, b := p.Unpack()
//
// Loaded images are always opaque.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) is stored at index y*width+x
//
// # Logging
//
// The package logs nothing by default. Use SetLogger to route its
// log/slog records, including those of the internal packages, to a
// handler of your choice.
package bmpview

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
