// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fxr/internal/adapters/cas"
	_ "go.trai.ch/fxr/internal/adapters/config"
	_ "go.trai.ch/fxr/internal/adapters/fs"
	_ "go.trai.ch/fxr/internal/adapters/install"
	_ "go.trai.ch/fxr/internal/adapters/logger"
	_ "go.trai.ch/fxr/internal/adapters/settings"
	_ "go.trai.ch/fxr/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/fxr/internal/app"
	_ "go.trai.ch/fxr/internal/engine/fxresolver"
	_ "go.trai.ch/fxr/internal/engine/sdkresolver"
)
