package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fxr/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/adapters/install"   //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/fxr/internal/engine/fxresolver"
	"go.trai.ch/fxr/internal/engine/sdkresolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			config.NodeID,
			install.NodeID,
			fs.ListerNodeID,
			cas.NodeID,
			logger.NodeID,
			fxresolver.NodeID,
			sdkresolver.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	configs, err := graft.Dep[ports.ConfigReader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.InstallLocator](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.DirectoryLister](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResolutionStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	fx, err := graft.Dep[*fxresolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	sdk, err := graft.Dep[*sdkresolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, configs, locator, lister, store, log, fx, sdk), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
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

	return NewComponents(app, log, tel), nil
}
