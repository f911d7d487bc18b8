package image

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/bmpview"
)

// FileRenderer presents frames by writing them to a file, unscaled.
// Each frame replaces the previous one atomically, so an external image
// viewer watching Path never sees a partial write.
type FileRenderer struct {
	// Path is the output file. Its extension selects PNG or BMP.
	Path string
}

// Render writes frame to r.Path. title is logged, since a file has no
// window to carry it.
func (r *FileRenderer) Render(frame *bmpview.Pixmap, title string) error {
	if frame == nil {
		return fmt.Errorf("image: render %s: nil frame", r.Path)
	}

	dir, base := filepath.Split(r.Path)
	tmp := filepath.Join(dir, ".tmp-"+base)
	if err := Save(tmp, frame); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("image: render %s: %w", r.Path, err)
	}

	bmpview.Logger().Debug("frame rendered",
		"path", r.Path, "title", title,
		"width", frame.Width(), "height", frame.Height())
	return nil
}
