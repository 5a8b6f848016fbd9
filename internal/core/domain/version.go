package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Version is an immutable semantic version of an installed framework or SDK.
// The zero value is the empty sentinel: it sorts below every parsed version and
// is never returned as a resolution result.
type Version struct {
	major      uint32
	minor      uint32
	patch      uint32
	prerelease string
	build      string
	valid      bool
}

// NewVersion builds a version from its components without parsing.
func NewVersion(major, minor, patch uint32, prerelease string) Version {
	return Version{major: major, minor: minor, patch: patch, prerelease: prerelease, valid: true}
}

// ParseVersion parses a full "major.minor.patch[-prerelease][+build]" version.
func ParseVersion(text string) (Version, error) {
	sv, err := semver.StrictNewVersion(text)
	if err != nil {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersionString, err.Error()), "value", text)
	}
	return fromSemver(text, sv)
}

// MustParseVersion is ParseVersion that panics on error. Intended for tests and constants.
func MustParseVersion(text string) Version {
	v, err := ParseVersion(text)
	if err != nil {
		panic(err)
	}
	return v
}

func fromSemver(text string, sv *semver.Version) (Version, error) {
	if sv.Major() > math.MaxUint32 || sv.Minor() > math.MaxUint32 || sv.Patch() > math.MaxUint32 {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersionString, "version component out of range"), "value", text)
	}
	return Version{
		major:      uint32(sv.Major()),
		minor:      uint32(sv.Minor()),
		patch:      uint32(sv.Patch()),
		prerelease: sv.Prerelease(),
		build:      sv.Metadata(),
		valid:      true,
	}, nil
}

// Major returns the major component.
func (v Version) Major() uint32 { return v.major }

// Minor returns the minor component.
func (v Version) Minor() uint32 { return v.minor }

// Patch returns the patch component.
func (v Version) Patch() uint32 { return v.patch }

// Prerelease returns the prerelease label without the leading dash.
func (v Version) Prerelease() string { return v.prerelease }

// Build returns the build metadata. It never takes part in ordering.
func (v Version) Build() string { return v.build }

// IsEmpty reports whether v is the empty sentinel.
func (v Version) IsEmpty() bool { return !v.valid }

// IsPrerelease reports whether v carries a prerelease label.
func (v Version) IsPrerelease() bool { return v.prerelease != "" }

// Feature returns the SDK feature band (patch / 100).
func (v Version) Feature() uint32 { return v.patch / 100 }

// PatchInFeature returns the SDK patch within its feature band (patch % 100).
func (v Version) PatchInFeature() uint32 { return v.patch % 100 }

// Release returns v without its prerelease label and build metadata.
func (v Version) Release() Version {
	if !v.valid {
		return v
	}
	return NewVersion(v.major, v.minor, v.patch, "")
}

// String returns the canonical form; ParseVersion(v.String()) == v.
func (v Version) String() string {
	if !v.valid {
		return ""
	}
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(v.major), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(v.minor), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(v.patch), 10))
	if v.prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.prerelease)
	}
	if v.build != "" {
		b.WriteByte('+')
		b.WriteString(v.build)
	}
	return b.String()
}

// Compare returns -1, 0 or +1. Major, minor and patch compare numerically;
// at equal numbers a release sorts above a prerelease, and two prerelease
// labels follow semantic version precedence.
func (v Version) Compare(o Version) int {
	switch {
	case !v.valid && !o.valid:
		return 0
	case !v.valid:
		return -1
	case !o.valid:
		return 1
	}
	if c := cmpUint(v.major, o.major); c != 0 {
		return c
	}
	if c := cmpUint(v.minor, o.minor); c != 0 {
		return c
	}
	if c := cmpUint(v.patch, o.patch); c != 0 {
		return c
	}
	switch {
	case v.prerelease == o.prerelease:
		return 0
	case v.prerelease == "":
		return 1
	case o.prerelease == "":
		return -1
	}
	return semver.New(0, 0, 0, v.prerelease, "").Compare(semver.New(0, 0, 0, o.prerelease, ""))
}

// Equal reports whether v and o have the same precedence.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// Less reports whether v sorts before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// MaxVersion returns the higher of a and b.
func MaxVersion(a, b Version) Version {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// MinVersion returns the lower of a and b. The empty sentinel is ignored.
func MinVersion(a, b Version) Version {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	case a.Compare(b) <= 0:
		return a
	default:
		return b
	}
}

func cmpUint(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
