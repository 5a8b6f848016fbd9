// Package fs provides file system adapters for inspecting install directories.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirectoryLister = (*Lister)(nil)

// Lister reads directories straight from disk.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// ListSubdirectories returns the sorted names of the directories directly
// under path. Symlinks to directories count as directories. A missing path
// has no subdirectories.
func (l *Lister) ListSubdirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
			continue
		}
		if entry.Type()&iofs.ModeSymlink != 0 && l.Exists(filepath.Join(path, entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether path is an existing directory.
func (l *Lister) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
