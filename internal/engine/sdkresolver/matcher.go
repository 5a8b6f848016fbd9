package sdkresolver

import "go.trai.ch/fxr/internal/core/domain"

type matcher struct {
	policy domain.SdkPolicy
}

// matches filters out versions the policy can never select.
func (m matcher) matches(v domain.Version) bool {
	if v.IsEmpty() || (!m.policy.AllowPrerelease && v.IsPrerelease()) {
		return false
	}

	req := m.policy.Requested
	if req.IsEmpty() {
		return true
	}

	switch m.policy.Policy {
	case domain.SdkRollForwardPatch, domain.SdkRollForwardLatestPatch:
		if v.Major() != req.Major() || v.Minor() != req.Minor() ||
			v.Feature() != req.Feature() || v.PatchInFeature() < req.PatchInFeature() {
			return false
		}
	case domain.SdkRollForwardFeature, domain.SdkRollForwardLatestFeature:
		if v.Major() != req.Major() || v.Minor() != req.Minor() ||
			v.Feature() < req.Feature() ||
			(v.Feature() == req.Feature() && v.PatchInFeature() < req.PatchInFeature()) {
			return false
		}
	case domain.SdkRollForwardMinor, domain.SdkRollForwardLatestMinor:
		if v.Major() != req.Major() {
			return false
		}
	case domain.SdkRollForwardMajor, domain.SdkRollForwardLatestMajor:
	default:
		return false
	}

	return !v.Less(req)
}

// isBetterMatch reports whether candidate beats current. Both must match.
// At the tier the policy governs, latest policies prefer the higher value and
// the others the value closest to the request; the patch within a feature
// band always prefers the higher value.
func (m matcher) isBetterMatch(candidate, current domain.Version) bool {
	if current.IsEmpty() {
		return true
	}
	if m.policy.Requested.IsEmpty() {
		return current.Less(candidate)
	}

	latest := m.policy.Policy.IsLatest()
	prefer := func(a, b uint32) bool {
		if latest {
			return a > b
		}
		return a < b
	}

	switch {
	case candidate.Major() != current.Major():
		return prefer(candidate.Major(), current.Major())
	case candidate.Minor() != current.Minor():
		return prefer(candidate.Minor(), current.Minor())
	case candidate.Feature() != current.Feature():
		return prefer(candidate.Feature(), current.Feature())
	case candidate.PatchInFeature() != current.PatchInFeature():
		return candidate.PatchInFeature() > current.PatchInFeature()
	default:
		return current.Less(candidate)
	}
}
