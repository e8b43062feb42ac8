package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Filesystem = (*Lister)(nil)

// Lister lists folders relative to a project root.
type Lister struct {
	root     string
	atlasExt string
}

// NewLister creates a Lister rooted at root that flags files with atlasExt.
func NewLister(root, atlasExt string) *Lister {
	return &Lister{root: root, atlasExt: atlasExt}
}

// ListEntries returns the files directly inside dir, sorted by name.
// Sub-directories are not listed. A missing dir yields an error wrapping fs.ErrNotExist.
func (l *Lister) ListEntries(dir string) ([]ports.DirEntry, error) {
	full := filepath.Join(l.root, filepath.FromSlash(dir))

	dirEntries, err := os.ReadDir(full)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", full)
	}

	entries := make([]ports.DirEntry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		isMeta := strings.HasSuffix(name, domain.MetaExtension)
		entries = append(entries, ports.DirEntry{
			Name:              name,
			IsMetadata:        isMeta,
			HasAtlasExtension: !isMeta && strings.EqualFold(filepath.Ext(name), l.atlasExt),
		})
	}
	return entries, nil
}
