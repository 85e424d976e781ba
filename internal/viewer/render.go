package viewer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"IndicatorScope/internal/model"
)

// Renderer writes viewers to their destinations: the report goes to Out,
// charts go to HTML files in Dir.
type Renderer struct {
	Dir string
	Out io.Writer
}

// Render displays v and returns the file written, if any.
func (r *Renderer) Render(v Viewer) (string, error) {
	if v.Kind() == model.ViewerReport {
		return "", v.Display(r.Out)
	}

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.Dir, string(v.Kind())+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := v.Display(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
