package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fxr/internal/core/ports"
)

// ListerNodeID is the unique identifier for the directory lister Graft node.
const ListerNodeID graft.ID = "adapter.fs.lister"

func init() {
	graft.Register(graft.Node[ports.DirectoryLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirectoryLister, error) {
			lister, err := NewCachedLister(NewLister(), DefaultCacheSize)
			if err != nil {
				return nil, err
			}
			return lister, nil
		},
	})
}
