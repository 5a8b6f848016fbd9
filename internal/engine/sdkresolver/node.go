package sdkresolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fxr/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/core/ports"
)

// NodeID is the unique identifier for the SDK resolver Graft node.
const NodeID graft.ID = "engine.sdkresolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ListerNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			lister, err := graft.Dep[ports.DirectoryLister](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(lister, log, tel), nil
		},
	})
}
