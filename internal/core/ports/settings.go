package ports

import "go.trai.ch/fxr/internal/core/domain"

// SettingsLoader loads host settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	// Load gathers settings; variables from envFile, if given, apply beneath the process environment.
	Load(envFile string) (domain.HostSettings, error)
}

// InstallLocator orders the install roots for a resolution.
type InstallLocator interface {
	// Roots returns install roots in priority order: appDir first when not empty,
	// then extra, then the configured and well-known global locations.
	Roots(appDir string, extra []string, settings domain.HostSettings) []string
}
