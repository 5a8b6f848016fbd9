// Package app implements the application layer for fxr.
package app

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/fxr/internal/engine/fxresolver"
	"go.trai.ch/fxr/internal/engine/sdkresolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	sharedDir = "shared"
	sdkDir    = "sdk"
)

// App represents the main application logic.
type App struct {
	settings ports.SettingsLoader
	configs  ports.ConfigReader
	locator  ports.InstallLocator
	lister   ports.DirectoryLister
	store    ports.ResolutionStore
	logger   ports.Logger
	fx       *fxresolver.Resolver
	sdk      *sdkresolver.Resolver
	now      func() time.Time
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	configs ports.ConfigReader,
	locator ports.InstallLocator,
	lister ports.DirectoryLister,
	store ports.ResolutionStore,
	logger ports.Logger,
	fx *fxresolver.Resolver,
	sdk *sdkresolver.Resolver,
) *App {
	return &App{
		settings: settings,
		configs:  configs,
		locator:  locator,
		lister:   lister,
		store:    store,
		logger:   logger,
		fx:       fx,
		sdk:      sdk,
		now:      time.Now,
	}
}

// WithClock sets the clock used to timestamp resolution records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// ResolveRequest holds the inputs of a framework resolution.
type ResolveRequest struct {
	// ConfigPath is the application's runtime config.
	ConfigPath string
	// EnvFile is an optional dotenv file applied beneath the process environment.
	EnvFile string
	// RollForward and RollForwardOnNoCandidateFx are command-line overrides;
	// empty means unset.
	RollForward                string
	RollForwardOnNoCandidateFx string
	// FxVersion pins a framework, as "[name=]version".
	FxVersion string
	// Roots are searched after the application directory.
	Roots []string
}

// ResolveReport is the outcome of ResolveFrameworks.
type ResolveReport struct {
	ConfigPath string
	Resolution *domain.Resolution
	Record     domain.ResolutionRecord
	// Previous is the record of the last run, if any.
	Previous *domain.ResolutionRecord
	// Changed reports whether the result differs from Previous.
	Changed bool
}

// ResolveFrameworks resolves the frameworks an application needs and records
// the outcome.
func (a *App) ResolveFrameworks(ctx context.Context, req ResolveRequest) (*ResolveReport, error) {
	settings, err := a.settings.Load(req.EnvFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	configPath, err := filepath.Abs(req.ConfigPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", req.ConfigPath)
	}

	cfg, err := a.configs.ReadRuntimeConfig(configPath, false)
	if err != nil {
		return nil, err
	}
	if cfg.IsSelfContained() {
		a.logger.Info("application is self-contained", "path", configPath)
		return &ResolveReport{ConfigPath: configPath, Resolution: &domain.Resolution{}}, nil
	}

	overrides, err := overridesFor(req, settings)
	if err != nil {
		return nil, err
	}
	refs, err := overrides.Apply(cfg.Frameworks)
	if err != nil {
		return nil, err
	}

	roots := a.locator.Roots(filepath.Dir(configPath), req.Roots, settings)
	a.logger.Debug("resolving frameworks",
		"path", configPath, "roots", strings.Join(roots, string(os.PathListSeparator)))

	res, err := a.fx.Resolve(ctx, refs, fxresolver.Options{
		Roots:                   roots,
		RollForwardToPrerelease: settings.RollForwardToPrerelease,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "framework resolution failed"), "path", configPath)
	}

	report := &ResolveReport{ConfigPath: configPath, Resolution: res}
	a.record(report)
	return report, nil
}

// record compares the resolution with the stored one and replaces it. Store
// failures never fail the resolution.
func (a *App) record(report *ResolveReport) {
	previous, err := a.store.Get(report.ConfigPath)
	if err != nil {
		a.logger.Warn("failed to read previous resolution", "path", report.ConfigPath, "error", err.Error())
		previous = nil
	}

	report.Record = domain.NewResolutionRecord(report.ConfigPath, report.Resolution, a.now())
	report.Previous = previous
	report.Changed = previous != nil && previous.Fingerprint != report.Record.Fingerprint

	if report.Changed {
		a.logger.Info("resolution changed since last run",
			"path", report.ConfigPath,
			"previous", previous.Fingerprint,
			"current", report.Record.Fingerprint)
	}

	if err := a.store.Put(report.Record); err != nil {
		a.logger.Warn("failed to store resolution", "path", report.ConfigPath, "error", err.Error())
	}
}

// overridesFor layers the command-line overrides over the host settings.
// roll_forward from any layer beats the legacy setting; for each of the two,
// the flag beats the host settings.
func overridesFor(req ResolveRequest, settings domain.HostSettings) (domain.Overrides, error) {
	var rollForward, legacy *domain.RollForwardPolicy

	if req.RollForward != "" {
		policy, err := domain.ParseRollForwardPolicy(req.RollForward)
		if err != nil {
			return domain.Overrides{}, zerr.With(err, "flag", "roll-forward")
		}
		rollForward = &policy
	}
	if req.RollForwardOnNoCandidateFx != "" {
		n, err := strconv.Atoi(req.RollForwardOnNoCandidateFx)
		if err != nil {
			return domain.Overrides{}, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrUnsupportedRollForwardValue, "not a number"),
					"value", req.RollForwardOnNoCandidateFx),
				"flag", "roll-forward-on-no-candidate-fx")
		}
		policy, err := domain.ParseRollForwardOnNoCandidateFx(n)
		if err != nil {
			return domain.Overrides{}, zerr.With(err, "flag", "roll-forward-on-no-candidate-fx")
		}
		legacy = &policy
	}

	return domain.Overrides{
		RollForward: cmp.Or(rollForward, settings.RollForward, legacy, settings.RollForwardOnNoCandidateFx),
		FxVersion:   req.FxVersion,
	}, nil
}

// SdkRequest holds the inputs of an SDK resolution.
type SdkRequest struct {
	// Dir is where the global.json search starts. Empty means the working directory.
	Dir     string
	EnvFile string
	Roots   []string
}

// ResolveSdk picks the SDK for a directory according to the nearest global.json.
func (a *App) ResolveSdk(ctx context.Context, req SdkRequest) (domain.ResolvedSdk, error) {
	settings, err := a.settings.Load(req.EnvFile)
	if err != nil {
		return domain.ResolvedSdk{}, zerr.Wrap(err, "failed to load settings")
	}

	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return domain.ResolvedSdk{}, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", req.Dir)
	}

	policy, err := a.configs.FindSdkManifest(dir, settings.SdkAllowPrerelease)
	if err != nil {
		return domain.ResolvedSdk{}, err
	}

	return a.sdk.Resolve(ctx, policy, a.locator.Roots("", req.Roots, settings))
}

// ListRequest holds the inputs of an inventory listing.
type ListRequest struct {
	EnvFile string
	Roots   []string
}

// ListInstalled reports what is installed under every root, in root order.
func (a *App) ListInstalled(ctx context.Context, req ListRequest) ([]domain.Inventory, error) {
	settings, err := a.settings.Load(req.EnvFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}

	roots := a.locator.Roots("", req.Roots, settings)
	inventories := make([]domain.Inventory, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inv, err := a.inventory(root)
			if err != nil {
				return zerr.With(err, "root", root)
			}
			inventories[i] = inv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "failed to list installs")
	}
	return inventories, nil
}

func (a *App) inventory(root string) (domain.Inventory, error) {
	inv := domain.Inventory{Root: root, Frameworks: make(map[string][]domain.Version)}

	names, err := a.lister.ListSubdirectories(filepath.Join(root, sharedDir))
	if err != nil {
		return domain.Inventory{}, err
	}
	for _, name := range names {
		versions, err := a.versionsIn(filepath.Join(root, sharedDir, name))
		if err != nil {
			return domain.Inventory{}, err
		}
		if len(versions) > 0 {
			inv.Frameworks[name] = versions
		}
	}

	inv.Sdks, err = a.versionsIn(filepath.Join(root, sdkDir))
	if err != nil {
		return domain.Inventory{}, err
	}
	return inv, nil
}

// versionsIn returns the parseable version directories under dir, ascending.
func (a *App) versionsIn(dir string) ([]domain.Version, error) {
	names, err := a.lister.ListSubdirectories(dir)
	if err != nil {
		return nil, err
	}

	versions := make([]domain.Version, 0, len(names))
	for _, name := range names {
		v, err := domain.ParseVersion(name)
		if err != nil {
			a.logger.Debug("skipping unparseable version directory", "path", filepath.Join(dir, name))
			continue
		}
		versions = append(versions, v)
	}
	slices.SortFunc(versions, domain.Version.Compare)
	return versions, nil
}
