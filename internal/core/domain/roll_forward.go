package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// RollForwardPolicy controls how far framework resolution may move away from
// the requested version. Values are totally ordered from least to most permissive.
type RollForwardPolicy uint8

const (
	// RollForwardDisable requires the exact requested version.
	RollForwardDisable RollForwardPolicy = iota
	// RollForwardLatestPatch rolls to the newest patch of the requested major.minor.
	RollForwardLatestPatch
	// RollForwardMinor rolls to the lowest higher minor if the requested one is missing.
	RollForwardMinor
	// RollForwardLatestMinor rolls to the newest minor of the requested major.
	RollForwardLatestMinor
	// RollForwardMajor rolls to the lowest higher major if the requested one is missing.
	RollForwardMajor
	// RollForwardLatestMajor rolls to the newest installed version.
	RollForwardLatestMajor
)

// DefaultRollForwardPolicy applies when no configuration source names a policy.
const DefaultRollForwardPolicy = RollForwardMinor

var rollForwardNames = [...]string{
	RollForwardDisable:     "Disable",
	RollForwardLatestPatch: "LatestPatch",
	RollForwardMinor:       "Minor",
	RollForwardLatestMinor: "LatestMinor",
	RollForwardMajor:       "Major",
	RollForwardLatestMajor: "LatestMajor",
}

// RollForwardPolicies lists every policy in ascending order.
func RollForwardPolicies() []RollForwardPolicy {
	return []RollForwardPolicy{
		RollForwardDisable,
		RollForwardLatestPatch,
		RollForwardMinor,
		RollForwardLatestMinor,
		RollForwardMajor,
		RollForwardLatestMajor,
	}
}

// ParseRollForwardPolicy maps a case-sensitive configuration token to a policy.
func ParseRollForwardPolicy(text string) (RollForwardPolicy, error) {
	for p, name := range rollForwardNames {
		if name == text {
			return RollForwardPolicy(p), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnsupportedRollForwardValue, "unknown roll forward policy"), "value", text)
}

// ParseRollForwardOnNoCandidateFx maps the legacy numeric setting to a policy.
func ParseRollForwardOnNoCandidateFx(value int) (RollForwardPolicy, error) {
	switch value {
	case 0:
		return RollForwardLatestPatch, nil
	case 1:
		return RollForwardMinor, nil
	case 2:
		return RollForwardMajor, nil
	default:
		return 0, zerr.With(
			zerr.Wrap(ErrUnsupportedRollForwardValue, "unknown rollForwardOnNoCandidateFx value"),
			"value", strconv.Itoa(value),
		)
	}
}

// String returns the configuration token of the policy.
func (p RollForwardPolicy) String() string {
	if int(p) < len(rollForwardNames) {
		return rollForwardNames[p]
	}
	return "RollForwardPolicy(" + strconv.Itoa(int(p)) + ")"
}

// Compare orders policies from least to most permissive.
func (p RollForwardPolicy) Compare(o RollForwardPolicy) int {
	switch {
	case p < o:
		return -1
	case p > o:
		return 1
	default:
		return 0
	}
}

// IsLatest reports whether the policy picks the highest qualifying version
// rather than the lowest.
func (p RollForwardPolicy) IsLatest() bool {
	return p == RollForwardLatestMinor || p == RollForwardLatestMajor
}

// MinPolicy returns the more restrictive of a and b.
func MinPolicy(a, b RollForwardPolicy) RollForwardPolicy {
	if a < b {
		return a
	}
	return b
}
