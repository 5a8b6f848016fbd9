// Package fxresolver resolves an application's framework references to
// installed framework directories.
//
// Resolution is a bounded fixed point. Each pass walks the reference graph,
// reconciling duplicate references in memory (soft roll-forward) before
// mapping them to disk (hard resolution). When a reference to an already
// hard-resolved framework changes its effective settings, the pass is
// abandoned and retried with the reconciled references as the new starting
// point.
package fxresolver

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// MaxAttempts bounds the fixed-point loop.
	MaxAttempts = 100
	// MaxDepth bounds how deeply framework configs may reference further frameworks.
	MaxDepth = 64

	sharedDir        = "shared"
	configFileSuffix = ".runtimeconfig.json"
)

var errRetry = zerr.New("hard-resolved framework reference changed")

// Options configure a single resolution.
type Options struct {
	// Roots are install locations in priority order.
	Roots []string
	// RollForwardToPrerelease disables the release-only first search pass.
	RollForwardToPrerelease bool
}

// Resolver resolves framework reference graphs against the install roots.
type Resolver struct {
	lister    ports.DirectoryLister
	configs   ports.ConfigReader
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Resolver.
func New(
	lister ports.DirectoryLister,
	configs ports.ConfigReader,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Resolver {
	return &Resolver{
		lister:    lister,
		configs:   configs,
		logger:    logger,
		telemetry: telemetry,
	}
}

type passStatus int

const (
	passDone passStatus = iota
	passRetry
)

// Resolve maps the application's framework references, and transitively the
// references declared by each resolved framework, to install directories.
func (r *Resolver) Resolve(
	ctx context.Context,
	refs []domain.FrameworkReference,
	opts Options,
) (*domain.Resolution, error) {
	var seed map[string]domain.FrameworkReference

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "framework resolution canceled")
		}

		actx, vertex := r.telemetry.Record(ctx, fmt.Sprintf("resolve attempt %d", attempt))
		rc := newResolutionContext(seed)

		status, err := r.process(actx, rc, refs, opts, 0)
		if err != nil {
			vertex.Complete(err)
			return nil, err
		}
		if status == passDone {
			vertex.Complete(nil)
			return &domain.Resolution{Frameworks: rc.resolved, Attempts: attempt}, nil
		}

		vertex.Complete(zerr.With(errRetry, "framework", rc.retryCause))
		r.logger.Debug("restarting framework resolution",
			"attempt", attempt, "framework", rc.retryCause)
		seed = rc.newest
	}

	return nil, zerr.With(
		zerr.Wrap(domain.ErrResolutionDidNotConverge, "retry limit reached"),
		"attempts", MaxAttempts,
	)
}

func (r *Resolver) process(
	ctx context.Context,
	rc *resolutionContext,
	refs []domain.FrameworkReference,
	opts Options,
	depth int,
) (passStatus, error) {
	if depth > MaxDepth {
		return passDone, zerr.With(
			zerr.Wrap(domain.ErrResolutionDidNotConverge, "framework references nest too deeply"),
			"depth", depth,
		)
	}

	for _, ref := range refs {
		rc.seed(ref)
	}

	for _, ref := range refs {
		idx := rc.indexOf(ref.Name)
		if idx >= 0 {
			changed, err := r.softRollForward(rc, ref)
			if err != nil {
				return passDone, err
			}
			if changed {
				rc.retryCause = ref.Name
				return passRetry, nil
			}
			rc.moveToEnd(idx)
			continue
		}

		if _, err := r.softRollForward(rc, ref); err != nil {
			return passDone, err
		}

		newest := rc.newest[ref.Name]
		fx, err := r.resolveFx(ctx, newest, opts)
		if err != nil {
			return passDone, err
		}
		fx.OldestRequested = rc.oldest[ref.Name].RequestedVersion

		newest.RequestedVersion = fx.Found
		rc.newest[ref.Name] = newest
		rc.resolved = append(rc.resolved, fx)

		cfg, err := r.configs.ReadRuntimeConfig(filepath.Join(fx.Directory, fx.Name+configFileSuffix), true)
		if err != nil {
			return passDone, zerr.With(err, "framework", fx.Name)
		}

		status, err := r.process(ctx, rc, cfg.Frameworks, opts, depth+1)
		if err != nil || status == passRetry {
			return status, err
		}
	}

	return passDone, nil
}

// softRollForward reconciles ref with the newest reference of the same name
// and reports whether the newest reference changed.
func (r *Resolver) softRollForward(rc *resolutionContext, ref domain.FrameworkReference) (bool, error) {
	current := rc.newest[ref.Name]

	higher, lower := ref, current
	if ref.RequestedVersion.Less(current.RequestedVersion) {
		higher, lower = current, ref
	}

	if !lower.IsCompatibleWithHigherVersion(higher.RequestedVersion) {
		err := zerr.Wrap(domain.ErrFrameworkCompatFailure, "framework reference cannot roll forward")
		err = zerr.With(err, "framework", ref.Name)
		err = zerr.With(err, "requested_version", lower.RequestedVersion.String())
		err = zerr.With(err, "roll_forward", lower.Policy.String())
		return false, zerr.With(err, "higher_version", higher.RequestedVersion.String())
	}

	merged := higher
	merged.MergeRollForwardSettingsFrom(lower)
	rc.newest[ref.Name] = merged

	changed := !merged.Same(current)
	if changed {
		r.logger.Debug("reconciled framework reference",
			"framework", ref.Name,
			"version", merged.RequestedVersion.String(),
			"roll_forward", merged.Policy.String(),
			"apply_patches", merged.ApplyPatches)
	}
	return changed, nil
}

// resolveFx maps ref to a directory, searching the roots in priority order.
// A candidate from a later root replaces the current one only when it is the
// better match of the two.
func (r *Resolver) resolveFx(
	ctx context.Context,
	ref domain.FrameworkReference,
	opts Options,
) (domain.ResolvedFramework, error) {
	var (
		selected     domain.Version
		selectedDir  string
		selectedRoot string
	)

	for _, root := range opts.Roots {
		fxDir := filepath.Join(root, sharedDir, ref.Name)
		r.logger.Debug("searching framework directory", "path", fxDir)

		if !ref.RollsForward() {
			dir := filepath.Join(fxDir, ref.RequestedVersion.String())
			if r.lister.Exists(dir) {
				selected, selectedDir, selectedRoot = ref.RequestedVersion, dir, root
				break
			}
			continue
		}

		available, err := r.listVersions(ctx, fxDir)
		if err != nil {
			return domain.ResolvedFramework{}, err
		}
		found, ok := SelectVersion(available, ref, opts.RollForwardToPrerelease)
		if !ok {
			continue
		}
		candidate := found
		if !selected.IsEmpty() {
			candidate, _ = SelectVersion([]domain.Version{found, selected}, ref, opts.RollForwardToPrerelease)
		}
		if candidate.Equal(selected) {
			logOnVertex(ctx, domain.LogLevelDebug, fmt.Sprintf("%s %s in %s loses to %s from %s",
				ref.Name, found, root, selected, selectedRoot))
			continue
		}
		r.logger.Debug("selected framework version", "framework", ref.Name,
			"version", candidate.String(), "root", root)
		selected, selectedDir, selectedRoot = candidate, filepath.Join(fxDir, candidate.String()), root
	}

	if selected.IsEmpty() {
		err := zerr.Wrap(domain.ErrFrameworkMissing, "no compatible framework version found")
		err = zerr.With(err, "framework", ref.Name)
		err = zerr.With(err, "requested_version", ref.RequestedVersion.String())
		return domain.ResolvedFramework{}, zerr.With(err, "roll_forward", ref.Policy.String())
	}

	logOnVertex(ctx, domain.LogLevelInfo, fmt.Sprintf("%s %s selected from %s", ref.Name, selected, selectedRoot))
	return domain.ResolvedFramework{
		Name:      ref.Name,
		Directory: selectedDir,
		Found:     selected,
	}, nil
}

func (r *Resolver) listVersions(ctx context.Context, dir string) ([]domain.Version, error) {
	names, err := r.lister.ListSubdirectories(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list framework versions"), "path", dir)
	}
	versions := make([]domain.Version, 0, len(names))
	for _, name := range names {
		v, err := domain.ParseVersion(name)
		if err != nil {
			path := filepath.Join(dir, name)
			r.logger.Debug("ignoring unparseable version directory", "path", path)
			logOnVertex(ctx, domain.LogLevelWarn, "ignoring unparseable directory "+path)
			continue
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func logOnVertex(ctx context.Context, level domain.LogLevel, msg string) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(level, msg)
	}
}

// resolutionContext is owned by a single pass.
type resolutionContext struct {
	newest     map[string]domain.FrameworkReference
	oldest     map[string]domain.FrameworkReference
	resolved   []domain.ResolvedFramework
	retryCause string
}

// newResolutionContext starts a pass. The newest references of the previous
// pass carry over so that reconciled settings survive the restart.
func newResolutionContext(seed map[string]domain.FrameworkReference) *resolutionContext {
	newest := make(map[string]domain.FrameworkReference, len(seed))
	for name, ref := range seed {
		newest[name] = ref
	}
	return &resolutionContext{
		newest: newest,
		oldest: make(map[string]domain.FrameworkReference),
	}
}

func (rc *resolutionContext) seed(ref domain.FrameworkReference) {
	if _, ok := rc.newest[ref.Name]; !ok {
		rc.newest[ref.Name] = ref
	}
	if old, ok := rc.oldest[ref.Name]; !ok || ref.RequestedVersion.Less(old.RequestedVersion) {
		rc.oldest[ref.Name] = ref
	}
}

func (rc *resolutionContext) indexOf(name string) int {
	return slices.IndexFunc(rc.resolved, func(fx domain.ResolvedFramework) bool {
		return fx.Name == name
	})
}

// moveToEnd keeps frameworks referenced by a later node after their dependents.
func (rc *resolutionContext) moveToEnd(idx int) {
	fx := rc.resolved[idx]
	rc.resolved = append(slices.Delete(rc.resolved, idx, idx+1), fx)
}
