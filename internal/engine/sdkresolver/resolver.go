// Package sdkresolver picks the installed SDK that best satisfies a project's
// SDK policy.
package sdkresolver

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

const sdkDir = "sdk"

// Resolver walks the install roots looking for SDK version directories.
type Resolver struct {
	lister    ports.DirectoryLister
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Resolver.
func New(lister ports.DirectoryLister, logger ports.Logger, telemetry ports.Telemetry) *Resolver {
	return &Resolver{
		lister:    lister,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Resolve returns the SDK directory chosen for policy. Roots are searched in
// priority order; a later root only contributes a version that is a better
// match than the best found so far.
func (r *Resolver) Resolve(ctx context.Context, policy domain.SdkPolicy, roots []string) (domain.ResolvedSdk, error) {
	_, vertex := r.telemetry.Record(ctx, "resolve sdk")

	r.logger.Debug("resolving sdk",
		"version", requestedLabel(policy.Requested),
		"roll_forward", policy.Policy.String(),
		"allow_prerelease", policy.AllowPrerelease)

	m := matcher{policy: policy}
	var (
		best  domain.ResolvedSdk
		exact bool
	)

	for _, root := range roots {
		dir := filepath.Join(root, sdkDir)
		r.logger.Debug("searching sdk directory", "path", dir)

		if m.policy.Policy.AllowsExactMatch() && !policy.Requested.IsEmpty() {
			exactDir := filepath.Join(dir, policy.Requested.String())
			if r.lister.Exists(exactDir) {
				best = domain.ResolvedSdk{Directory: exactDir, Version: policy.Requested}
				exact = true
				break
			}
		}
		if policy.Policy == domain.SdkRollForwardDisable {
			continue
		}

		names, err := r.lister.ListSubdirectories(dir)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to list sdk versions"), "path", dir)
			vertex.Complete(err)
			return domain.ResolvedSdk{}, err
		}
		for _, name := range names {
			path := filepath.Join(dir, name)
			v, err := domain.ParseVersion(name)
			if err != nil {
				r.logger.Debug("ignoring invalid sdk version", "path", path)
				vertex.Log(domain.LogLevelWarn, "ignoring unparseable directory "+path)
				continue
			}
			if !m.matches(v) {
				vertex.Log(domain.LogLevelDebug, fmt.Sprintf("skipped %s: outside %s %s",
					v, policy.Policy, requestedLabel(policy.Requested)))
				continue
			}
			if !m.isBetterMatch(v, best.Version) {
				vertex.Log(domain.LogLevelDebug, fmt.Sprintf("skipped %s: %s is a better match", v, best.Version))
				continue
			}
			best = domain.ResolvedSdk{Directory: filepath.Join(dir, name), Version: v}
		}
	}

	if best.Directory == "" {
		err := zerr.Wrap(domain.ErrSdkNotFound, "no compatible sdk installed")
		err = zerr.With(err, "version", requestedLabel(policy.Requested))
		err = zerr.With(err, "roll_forward", policy.Policy.String())
		if policy.Source != "" {
			err = zerr.With(err, "global_json", policy.Source)
		}
		vertex.Complete(err)
		return domain.ResolvedSdk{}, err
	}

	best.Source = policy.Source
	r.logger.Debug("sdk resolved", "path", best.Directory)
	if exact {
		vertex.Cached()
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("sdk %s selected from %s", best.Version, best.Directory))
	vertex.Complete(nil)
	return best, nil
}

func requestedLabel(v domain.Version) string {
	if v.IsEmpty() {
		return "latest"
	}
	return v.String()
}
