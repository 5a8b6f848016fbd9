package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fxr/internal/adapters/settings"
	"go.trai.ch/fxr/internal/core/ports"
)

// NodeID is the unique identifier for the resolution store Graft node.
const NodeID graft.ID = "adapter.resolution_store"

func init() {
	graft.Register(graft.Node[ports.ResolutionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.ResolutionStore, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			// The state location comes from the environment and settings
			// file only; --env-file is applied per command.
			s, err := loader.Load("")
			if err != nil {
				return nil, err
			}
			return NewStore(s.StateDir), nil
		},
	})
}
