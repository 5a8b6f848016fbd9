package fxresolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fxr/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/fxr/internal/core/ports"
)

// NodeID is the unique identifier for the framework resolver Graft node.
const NodeID graft.ID = "engine.fxresolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ListerNodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			lister, err := graft.Dep[ports.DirectoryLister](ctx)
			if err != nil {
				return nil, err
			}

			configs, err := graft.Dep[ports.ConfigReader](ctx)
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

			return New(lister, configs, log, tel), nil
		},
	})
}
