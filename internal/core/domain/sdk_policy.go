package domain

import "go.trai.ch/zerr"

// SdkRollForwardPolicy is the roll-forward vocabulary of global.json.
// It groups patch numbers into feature bands (patch / 100).
type SdkRollForwardPolicy uint8

const (
	// SdkRollForwardDisable accepts only the exact requested version.
	SdkRollForwardDisable SdkRollForwardPolicy = iota
	// SdkRollForwardPatch accepts the closest higher patch in the requested feature band.
	SdkRollForwardPatch
	// SdkRollForwardFeature accepts the closest higher feature band of the requested minor.
	SdkRollForwardFeature
	// SdkRollForwardMinor accepts the closest higher minor of the requested major.
	SdkRollForwardMinor
	// SdkRollForwardMajor accepts the closest higher major.
	SdkRollForwardMajor
	// SdkRollForwardLatestPatch accepts the newest patch in the requested feature band.
	SdkRollForwardLatestPatch
	// SdkRollForwardLatestFeature accepts the newest feature band of the requested minor.
	SdkRollForwardLatestFeature
	// SdkRollForwardLatestMinor accepts the newest minor of the requested major.
	SdkRollForwardLatestMinor
	// SdkRollForwardLatestMajor accepts the newest installed SDK.
	SdkRollForwardLatestMajor
)

var sdkPolicyNames = [...]string{
	SdkRollForwardDisable:       "disable",
	SdkRollForwardPatch:         "patch",
	SdkRollForwardFeature:       "feature",
	SdkRollForwardMinor:         "minor",
	SdkRollForwardMajor:         "major",
	SdkRollForwardLatestPatch:   "latestPatch",
	SdkRollForwardLatestFeature: "latestFeature",
	SdkRollForwardLatestMinor:   "latestMinor",
	SdkRollForwardLatestMajor:   "latestMajor",
}

// ParseSdkRollForwardPolicy maps a global.json token to a policy.
// Unknown tokens are an error, never a silent default.
func ParseSdkRollForwardPolicy(text string) (SdkRollForwardPolicy, error) {
	for p, name := range sdkPolicyNames {
		if name == text {
			return SdkRollForwardPolicy(p), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnsupportedRollForwardValue, "unknown sdk roll forward policy"), "value", text)
}

func (p SdkRollForwardPolicy) String() string {
	if int(p) < len(sdkPolicyNames) {
		return sdkPolicyNames[p]
	}
	return "unsupported"
}

// IsLatest reports whether the policy prefers the highest value at its restricted tier.
func (p SdkRollForwardPolicy) IsLatest() bool {
	switch p {
	case SdkRollForwardLatestPatch, SdkRollForwardLatestFeature,
		SdkRollForwardLatestMinor, SdkRollForwardLatestMajor:
		return true
	default:
		return false
	}
}

// AllowsExactMatch reports whether an existing directory equal to the
// requested version short-circuits the scan.
func (p SdkRollForwardPolicy) AllowsExactMatch() bool {
	return p == SdkRollForwardDisable || p == SdkRollForwardPatch
}

// SdkPolicy is the SDK constraint of a project, usually read from global.json.
type SdkPolicy struct {
	// Requested is empty when any SDK is acceptable.
	Requested       Version
	Policy          SdkRollForwardPolicy
	AllowPrerelease bool
	// Source is the global.json path the policy came from, if any.
	Source string
}

// DefaultSdkPolicy picks the newest installed SDK.
func DefaultSdkPolicy(allowPrerelease bool) SdkPolicy {
	return SdkPolicy{Policy: SdkRollForwardLatestMajor, AllowPrerelease: allowPrerelease}
}

// ResolvedSdk is the SDK directory picked for a policy.
type ResolvedSdk struct {
	Directory string
	Version   Version
	// Source is the global.json the policy came from, if any.
	Source string
}
