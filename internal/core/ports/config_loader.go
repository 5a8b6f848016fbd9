package ports

import "go.trai.ch/fxr/internal/core/domain"

// ConfigReader reads runtime configs and discovers SDK manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigReader interface {
	// ReadRuntimeConfig parses the runtime config at path.
	// When optional is true a missing file yields an empty config.
	ReadRuntimeConfig(path string, optional bool) (*domain.RuntimeConfig, error)

	// FindSdkManifest walks up from cwd to the nearest global.json and returns its policy.
	// Without a global.json it returns the default policy.
	FindSdkManifest(cwd string, allowPrerelease bool) (domain.SdkPolicy, error)
}
