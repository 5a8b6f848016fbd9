package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RuntimeConfig is the parsed content of a *.runtimeconfig.json file.
type RuntimeConfig struct {
	Path       string
	Frameworks []FrameworkReference
}

// IsSelfContained reports whether the config declares no framework references.
func (c *RuntimeConfig) IsSelfContained() bool {
	return len(c.Frameworks) == 0
}

// Overrides are application-level settings that win over the application's
// runtime config. They never apply to references declared by frameworks.
type Overrides struct {
	// RollForward replaces the policy of every application reference when set.
	RollForward *RollForwardPolicy
	// FxVersion pins a framework to an exact version, as "[name=]version".
	FxVersion string
}

// Apply returns a copy of refs with the overrides applied.
func (o Overrides) Apply(refs []FrameworkReference) ([]FrameworkReference, error) {
	out := make([]FrameworkReference, len(refs))
	copy(out, refs)

	if o.RollForward != nil {
		for i := range out {
			out[i].Policy = *o.RollForward
		}
	}

	if o.FxVersion == "" {
		return out, nil
	}

	name, text, qualified := strings.Cut(o.FxVersion, "=")
	if !qualified {
		name, text = "", o.FxVersion
	}
	version, err := ParseVersion(text)
	if err != nil {
		return nil, zerr.With(err, "source", "fx-version")
	}

	if !qualified {
		if len(out) != 1 {
			return nil, zerr.With(zerr.Wrap(ErrAmbiguousFxVersionOverride, "cannot apply fx version override"), "frameworks", len(out))
		}
		name = out[0].Name
	}

	for i := range out {
		if out[i].Name != name {
			continue
		}
		out[i].RequestedVersion = version
		out[i].UseExactVersion = true
		out[i].PreferRelease = !version.IsPrerelease()
		return out, nil
	}
	return nil, zerr.With(zerr.Wrap(ErrFrameworkMissing, "fx version override names an unreferenced framework"), "framework", name)
}
