package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fxr/internal/adapters/logger"
	"go.trai.ch/fxr/internal/core/ports"
)

// NodeID is the unique identifier for the config reader Graft node.
const NodeID graft.ID = "adapter.config_reader"

func init() {
	graft.Register(graft.Node[ports.ConfigReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(log), nil
		},
	})
}
