package overlay

import (
	"errors"
	"testing"

	"github.com/gogpu/bmpview"
)

func TestHelpSize(t *testing.T) {
	pm, err := Help(ThemeLight)
	if err != nil {
		t.Fatalf("Help: %v", err)
	}
	if pm.Width() != Width || pm.Height() != Height {
		t.Errorf("size = %dx%d, want %dx%d", pm.Width(), pm.Height(), Width, Height)
	}
}

func TestHelpThemes(t *testing.T) {
	tests := []struct {
		theme  Theme
		bg, fg bmpview.Pixel
	}{
		{ThemeLight, bmpview.Pack(255, 255, 255), bmpview.Pack(0, 0, 0)},
		{ThemeDark, bmpview.Pack(0, 0, 0), bmpview.Pack(255, 255, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.theme.String(), func(t *testing.T) {
			pm, err := Help(tt.theme)
			if err != nil {
				t.Fatal(err)
			}

			// Bottom-right corner is far from any text.
			if got := pm.PixelAt(Width-1, Height-1); got != tt.bg {
				t.Errorf("background = %#08x, want %#08x", uint32(got), uint32(tt.bg))
			}

			// Some glyph pixels must be drawn in the foreground color.
			text := 0
			for _, px := range pm.Pix() {
				if px == tt.fg {
					text++
				}
			}
			if text == 0 {
				t.Error("no text pixels drawn")
			}
		})
	}
}

func TestHelpThemesDiffer(t *testing.T) {
	light, err := Help(ThemeLight)
	if err != nil {
		t.Fatal(err)
	}
	dark, err := Help(ThemeDark)
	if err != nil {
		t.Fatal(err)
	}
	if light.Equal(dark) {
		t.Error("light and dark help screens are identical")
	}
}

func TestHelpSizedInvalid(t *testing.T) {
	if _, err := HelpSized(ThemeDark, 0, 10); !errors.Is(err, bmpview.ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestHelpSizedClips(t *testing.T) {
	pm, err := HelpSized(ThemeDark, 40, 20)
	if err != nil {
		t.Fatalf("small help screen: %v", err)
	}
	if pm.Width() != 40 || pm.Height() != 20 {
		t.Errorf("size = %dx%d, want 40x20", pm.Width(), pm.Height())
	}
}
