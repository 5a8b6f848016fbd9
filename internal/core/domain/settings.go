package domain

// HostSettings are machine-level settings gathered from the environment,
// dotenv files and the settings file.
type HostSettings struct {
	// RollForward overrides the application's roll-forward policy when set.
	RollForward *RollForwardPolicy
	// RollForwardOnNoCandidateFx is the legacy override, already mapped to a
	// policy. It applies only when no layer sets RollForward.
	RollForwardOnNoCandidateFx *RollForwardPolicy
	// RollForwardToPrerelease disables the release-only first search pass.
	RollForwardToPrerelease bool
	// Roots are global install locations searched after the application-local one.
	Roots []string
	// MultilevelLookup enables the well-known per-user and system roots.
	MultilevelLookup bool
	// SdkAllowPrerelease is the default when global.json does not say.
	SdkAllowPrerelease bool
	// StateDir is where resolution records are kept.
	StateDir string
}

// Inventory lists what is installed under one install root.
type Inventory struct {
	Root       string
	Frameworks map[string][]Version
	Sdks       []Version
}
