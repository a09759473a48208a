package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
)

var guidelineExtensions = []string{".png", ".jpg", ".jpeg"}

// Guidelines resolves the reference image for a welfare indicator.
// Images are stored flat as <key>.<ext>, e.g. fin_condition.png.
type Guidelines struct {
	fsys fs.FS
	root string
}

// NewGuidelines creates a lookup over fsys. A nil fsys finds nothing.
func NewGuidelines(fsys fs.FS) *Guidelines {
	return &Guidelines{fsys: fsys}
}

// GuidelinesDir creates a lookup rooted at a directory on disk
func GuidelinesDir(dir string) *Guidelines {
	if dir == "" {
		return NewGuidelines(nil)
	}
	return &Guidelines{fsys: os.DirFS(dir), root: dir}
}

// Lookup returns the image path for an indicator name or key.
// A missing image is reported through ok=false, never as an error.
func (g *Guidelines) Lookup(indicator string) (string, bool) {
	if g == nil || g.fsys == nil {
		return "", false
	}
	key := Key(indicator)
	for _, ext := range guidelineExtensions {
		name := key + ext
		info, err := fs.Stat(g.fsys, name)
		if err != nil || info.IsDir() {
			continue
		}
		if g.root != "" {
			return filepath.Join(g.root, name), true
		}
		return name, true
	}
	return "", false
}

// Missing lists the indicators (by name) that have no guideline image
func (g *Guidelines) Missing(indicators []string) []string {
	var missing []string
	for _, name := range indicators {
		if _, ok := g.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
