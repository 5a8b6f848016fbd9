// Package install orders the install roots searched for frameworks and SDKs.
package install

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
)

// InstallDir is the directory name of an install below an XDG data directory.
const InstallDir = "dotnet"

var _ ports.InstallLocator = (*Locator)(nil)

// Locator computes install roots from explicit locations and the XDG data
// directories.
type Locator struct {
	// DataHome is searched first among the well-known locations.
	DataHome string
	// DataDirs follow DataHome in order.
	DataDirs []string
}

// NewLocator creates a Locator from the current XDG environment.
func NewLocator() *Locator {
	return &Locator{
		DataHome: xdg.DataHome,
		DataDirs: xdg.DataDirs,
	}
}

// Roots returns install roots in priority order: appDir, extra, the configured
// roots, then the well-known locations. The well-known locations are skipped
// when multilevel lookup is off. Duplicates keep their first position.
func (l *Locator) Roots(appDir string, extra []string, settings domain.HostSettings) []string {
	candidates := make([]string, 0, 2+len(extra)+len(settings.Roots)+len(l.DataDirs))
	if appDir != "" {
		candidates = append(candidates, appDir)
	}
	candidates = append(candidates, extra...)
	candidates = append(candidates, settings.Roots...)

	if settings.MultilevelLookup {
		if l.DataHome != "" {
			candidates = append(candidates, filepath.Join(l.DataHome, InstallDir))
		}
		for _, dir := range l.DataDirs {
			candidates = append(candidates, filepath.Join(dir, InstallDir))
		}
	}

	seen := make(map[string]bool, len(candidates))
	roots := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		c = filepath.Clean(c)
		if seen[c] {
			continue
		}
		seen[c] = true
		roots = append(roots, c)
	}
	return roots
}
