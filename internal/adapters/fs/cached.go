package fs

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize bounds the number of directories a CachedLister remembers.
const DefaultCacheSize = 512

var _ ports.DirectoryLister = (*CachedLister)(nil)

// CachedLister memoizes listings and existence checks of another lister.
// Retried resolution passes list the same directories repeatedly, so each
// directory is read at most once per process. Entries never expire.
type CachedLister struct {
	next     ports.DirectoryLister
	listings *lru.Cache[string, []string]
	exists   *lru.Cache[string, bool]
}

// NewCachedLister wraps next with caches holding up to size entries each.
func NewCachedLister(next ports.DirectoryLister, size int) (*CachedLister, error) {
	listings, err := lru.New[string, []string](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create listing cache"), "size", size)
	}
	exists, err := lru.New[string, bool](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create existence cache"), "size", size)
	}
	return &CachedLister{next: next, listings: listings, exists: exists}, nil
}

// ListSubdirectories returns the cached listing of path, reading it on a miss.
// Failed reads are not cached.
func (c *CachedLister) ListSubdirectories(path string) ([]string, error) {
	if names, ok := c.listings.Get(path); ok {
		return names, nil
	}
	names, err := c.next.ListSubdirectories(path)
	if err != nil {
		return nil, err
	}
	c.listings.Add(path, names)
	return names, nil
}

// Exists returns the cached existence of path, probing it on a miss.
func (c *CachedLister) Exists(path string) bool {
	if ok, found := c.exists.Get(path); found {
		return ok
	}
	ok := c.next.Exists(path)
	c.exists.Add(path, ok)
	return ok
}
