package fxresolver

import "go.trai.ch/fxr/internal/core/domain"

// SelectVersion picks the installed version that best satisfies ref, or
// reports false when none qualifies. When ref prefers releases a release-only
// pass runs first, unless rollForwardToPrerelease is set.
func SelectVersion(
	available []domain.Version,
	ref domain.FrameworkReference,
	rollForwardToPrerelease bool,
) (domain.Version, bool) {
	if ref.PreferRelease && !rollForwardToPrerelease {
		if best, ok := searchBestMatch(available, ref, true); ok {
			return best, true
		}
	}
	return searchBestMatch(available, ref, false)
}

func searchBestMatch(available []domain.Version, ref domain.FrameworkReference, releaseOnly bool) (domain.Version, bool) {
	specified := ref.RequestedVersion
	policy := ref.Policy
	eligible := func(v domain.Version) bool {
		return !releaseOnly || !v.IsPrerelease()
	}

	var best domain.Version
	if policy > domain.RollForwardLatestPatch {
		for _, v := range available {
			if !eligible(v) || v.Less(specified) {
				continue
			}
			if policy <= domain.RollForwardLatestMinor && v.Major() != specified.Major() {
				continue
			}
			switch {
			case best.IsEmpty():
				best = v
			case policy.IsLatest():
				best = domain.MaxVersion(best, v)
			default:
				best = domain.MinVersion(best, v)
			}
		}
	}

	// Latest* policies already found the highest version as a whole; the
	// others picked the lowest, so the patch level is raised separately.
	if ref.ApplyPatches && (policy == domain.RollForwardLatestPatch ||
		policy == domain.RollForwardMinor ||
		policy == domain.RollForwardMajor) {
		base := best
		if base.IsEmpty() {
			base = specified
		}
		for _, v := range available {
			if eligible(v) && !v.Less(base) &&
				v.Major() == base.Major() && v.Minor() == base.Minor() {
				best = domain.MaxVersion(best, v)
			}
		}
	}

	if best.IsEmpty() {
		return best, false
	}

	// A prerelease request always takes the newest build of the chosen
	// major.minor.patch.
	if specified.IsPrerelease() {
		for _, v := range available {
			if eligible(v) && v.Release().Equal(best.Release()) && best.Less(v) {
				best = v
			}
		}
	}
	return best, true
}
