package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/zerr"
)

// GlobalJSONFile is the name of the SDK manifest.
const GlobalJSONFile = "global.json"

// FindSdkManifest walks up from cwd to the nearest global.json and returns
// its SDK policy. Without one, any installed SDK is acceptable.
func (r *Reader) FindSdkManifest(cwd string, allowPrerelease bool) (domain.SdkPolicy, error) {
	path, found, err := findGlobalJSON(cwd)
	if err != nil {
		return domain.SdkPolicy{}, err
	}
	if !found {
		r.logger.Debug("no global.json found", "cwd", cwd)
		return domain.DefaultSdkPolicy(allowPrerelease), nil
	}

	r.logger.Debug("found global.json", "path", path)
	policy, err := readGlobalJSON(path, allowPrerelease)
	if err != nil {
		return domain.SdkPolicy{}, zerr.With(err, "path", path)
	}
	return policy, nil
}

func findGlobalJSON(cwd string) (string, bool, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", cwd)
	}

	for {
		candidate := filepath.Join(dir, GlobalJSONFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func readGlobalJSON(path string, allowPrerelease bool) (domain.SdkPolicy, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return domain.SdkPolicy{}, zerr.Wrap(err, "failed to read global.json")
	}

	var file GlobalJSON
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.SdkPolicy{}, zerr.Wrap(domain.ErrInvalidGlobalJSON, err.Error())
	}

	policy := domain.DefaultSdkPolicy(allowPrerelease)
	policy.Source = path
	if file.Sdk == nil {
		return policy, nil
	}

	if file.Sdk.AllowPrerelease != nil {
		policy.AllowPrerelease = *file.Sdk.AllowPrerelease
	}

	if file.Sdk.Version != nil {
		v, err := domain.ParseVersion(*file.Sdk.Version)
		if err != nil {
			return domain.SdkPolicy{}, zerr.With(
				zerr.Wrap(domain.ErrInvalidGlobalJSON, "invalid sdk version"), "value", *file.Sdk.Version)
		}
		policy.Requested = v
		policy.Policy = domain.SdkRollForwardPatch
		if v.IsPrerelease() {
			policy.AllowPrerelease = true
		}
	}

	if file.Sdk.RollForward != nil {
		p, err := domain.ParseSdkRollForwardPolicy(*file.Sdk.RollForward)
		if err != nil {
			return domain.SdkPolicy{}, err
		}
		policy.Policy = p
	}

	if policy.Requested.IsEmpty() && policy.Policy != domain.SdkRollForwardLatestMajor {
		return domain.SdkPolicy{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidGlobalJSON, "sdk roll forward policy requires a version"),
			"roll_forward", policy.Policy.String())
	}
	return policy, nil
}
