package domain

// FrameworkReference is one requested framework dependency together with the
// settings that govern how far it may roll forward.
type FrameworkReference struct {
	Name             string
	RequestedVersion Version
	Policy           RollForwardPolicy
	ApplyPatches     bool
	PreferRelease    bool
	UseExactVersion  bool
}

// NewFrameworkReference creates a reference with default settings: policy
// Minor, patches applied, and releases preferred for release requests.
func NewFrameworkReference(name string, version Version) FrameworkReference {
	return FrameworkReference{
		Name:             name,
		RequestedVersion: version,
		Policy:           DefaultRollForwardPolicy,
		ApplyPatches:     true,
		PreferRelease:    !version.IsPrerelease(),
	}
}

// IsCompatibleWithHigherVersion reports whether a framework satisfying higher
// can also satisfy r. It must only be called when r's requested version is not
// above higher.
func (r FrameworkReference) IsCompatibleWithHigherVersion(higher Version) bool {
	lower := r.RequestedVersion
	if lower.Equal(higher) {
		return true
	}
	if r.UseExactVersion {
		return false
	}
	if lower.Major() != higher.Major() {
		return r.Policy >= RollForwardMajor
	}
	if lower.Minor() != higher.Minor() {
		return r.Policy >= RollForwardMinor
	}
	// Prerelease references are exempt from the apply-patches gate.
	if lower.Patch() != higher.Patch() &&
		r.Policy == RollForwardLatestPatch && !r.ApplyPatches && !lower.IsPrerelease() {
		return false
	}
	return r.Policy != RollForwardDisable
}

// MergeRollForwardSettingsFrom folds other's settings into r, keeping the most
// restrictive of each. It reports whether r changed.
func (r *FrameworkReference) MergeRollForwardSettingsFrom(other FrameworkReference) bool {
	before := *r
	r.Policy = MinPolicy(r.Policy, other.Policy)
	r.ApplyPatches = r.ApplyPatches && other.ApplyPatches
	r.PreferRelease = r.PreferRelease || other.PreferRelease
	r.UseExactVersion = r.UseExactVersion || other.UseExactVersion
	return !before.SettingsEqual(*r)
}

// SettingsEqual compares the roll-forward settings, ignoring name and version.
func (r FrameworkReference) SettingsEqual(o FrameworkReference) bool {
	return r.Policy == o.Policy &&
		r.ApplyPatches == o.ApplyPatches &&
		r.PreferRelease == o.PreferRelease &&
		r.UseExactVersion == o.UseExactVersion
}

// Same compares the reference including its requested version.
func (r FrameworkReference) Same(o FrameworkReference) bool {
	return r.Name == o.Name && r.RequestedVersion.Equal(o.RequestedVersion) && r.SettingsEqual(o)
}

// RollsForward reports whether disk resolution may pick anything other than
// the exact requested version.
func (r FrameworkReference) RollsForward() bool {
	if r.UseExactVersion || r.Policy == RollForwardDisable {
		return false
	}
	return r.ApplyPatches || r.Policy != RollForwardLatestPatch
}

// ResolvedFramework is a reference mapped to a concrete install directory.
type ResolvedFramework struct {
	Name      string
	Directory string
	Found     Version
	// OldestRequested is the lowest version any reference to Name asked for.
	// It is kept for diagnostics and never drives resolution.
	OldestRequested Version
}
