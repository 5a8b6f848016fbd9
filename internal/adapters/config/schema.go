package config

// RuntimeConfigFile represents the structure of a *.runtimeconfig.json file.
type RuntimeConfigFile struct {
	RuntimeOptions RuntimeOptionsDTO `json:"runtimeOptions"`
}

// RuntimeOptionsDTO holds the framework references and their shared roll-forward settings.
type RuntimeOptionsDTO struct {
	RollForwardSettingsDTO

	Framework  *FrameworkDTO  `json:"framework"`
	Frameworks []FrameworkDTO `json:"frameworks"`
}

// FrameworkDTO represents a single framework reference.
type FrameworkDTO struct {
	RollForwardSettingsDTO

	Name    string `json:"name"`
	Version string `json:"version"`
}

// RollForwardSettingsDTO may appear at the runtimeOptions level and on each framework.
type RollForwardSettingsDTO struct {
	RollForward                *string `json:"rollForward"`
	RollForwardOnNoCandidateFx *int    `json:"rollForwardOnNoCandidateFx"`
	ApplyPatches               *bool   `json:"applyPatches"`
}

// GlobalJSON represents the structure of a global.json file.
type GlobalJSON struct {
	Sdk *SdkDTO `json:"sdk"`
}

// SdkDTO is the sdk section of global.json.
type SdkDTO struct {
	Version         *string `json:"version"`
	RollForward     *string `json:"rollForward"`
	AllowPrerelease *bool   `json:"allowPrerelease"`
}
