// Package overlay draws the viewer's text screens.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bmpview"
)

// Default help screen size, matching the initial window.
const (
	Width  = 640
	Height = 480
)

// Theme selects the help screen colors.
type Theme uint8

// Themes.
const (
	// ThemeLight draws black text on white.
	ThemeLight Theme = iota
	// ThemeDark draws white text on black.
	ThemeDark
)

// String returns "light" or "dark".
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// colors returns the background and foreground for t.
func (t Theme) colors() (bg, fg color.Color) {
	if t == ThemeDark {
		return color.Black, color.White
	}
	return color.White, color.Black
}

// line is one row of help text at a position in unscaled pixels.
type line struct {
	x, y int
	text string
}

// helpLines is the help text layout. y is the top of the line.
var helpLines = []line{
	{10, 10, "Press F to select a file."},
	{10, 30, "Once a file is loaded, use the "},
	{10, 40, "following keys to apply filters:"},
	{20, 60, "G - Grayscale"},
	{20, 80, "S - Sepia"},
	{20, 100, "R - Reflect"},
	{20, 120, "B - Blur"},
	{20, 140, "E - Edges"},
	{20, 160, "O - Original"},
}

// scale is applied to helpLines positions and the font size.
const scale = 2

// fontSize is the glyph size in points at 72 DPI, before scaling.
const fontSize = 8

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

// helpFace returns the shared Go Regular face, parsing it on first use.
func helpFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("overlay: parse font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    fontSize * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Help renders the key help screen for theme into a new Width x Height
// pixmap.
func Help(theme Theme) (*bmpview.Pixmap, error) {
	return HelpSized(theme, Width, Height)
}

// HelpSized is like Help with an explicit size. Text that does not fit is
// clipped.
func HelpSized(theme Theme, width, height int) (*bmpview.Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, bmpview.ErrInvalidDimensions
	}
	ff, err := helpFace()
	if err != nil {
		return nil, err
	}

	bg, fg := theme.colors()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	ascent := ff.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: ff,
	}
	for _, l := range helpLines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(l.x * scale),
			Y: fixed.I(l.y*scale) + ascent,
		}
		d.DrawString(l.text)
	}

	return bmpview.FromNRGBA(dst)
}
