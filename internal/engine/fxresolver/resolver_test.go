package fxresolver_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fxr/internal/adapters/telemetry"
	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/fxr/internal/core/ports/mocks"
	"go.trai.ch/fxr/internal/engine/fxresolver"
	"go.uber.org/mock/gomock"
)

// fakeInstall is an in-memory install tree keyed by directory path.
type fakeInstall struct {
	dirs    map[string][]string
	configs map[string][]domain.FrameworkReference
}

func newFakeInstall() *fakeInstall {
	return &fakeInstall{
		dirs:    make(map[string][]string),
		configs: make(map[string][]domain.FrameworkReference),
	}
}

func (f *fakeInstall) install(root, name string, versions ...string) {
	dir := filepath.Join(root, "shared", name)
	f.dirs[dir] = append(f.dirs[dir], versions...)
}

func (f *fakeInstall) declare(root, name, version string, refs ...domain.FrameworkReference) {
	path := filepath.Join(root, "shared", name, version, name+".runtimeconfig.json")
	f.configs[path] = refs
}

func (f *fakeInstall) ListSubdirectories(path string) ([]string, error) {
	return f.dirs[path], nil
}

func (f *fakeInstall) Exists(path string) bool {
	return slices.Contains(f.dirs[filepath.Dir(path)], filepath.Base(path))
}

func (f *fakeInstall) ReadRuntimeConfig(path string, _ bool) (*domain.RuntimeConfig, error) {
	return &domain.RuntimeConfig{Path: path, Frameworks: f.configs[path]}, nil
}

func (f *fakeInstall) FindSdkManifest(string, bool) (domain.SdkPolicy, error) {
	return domain.DefaultSdkPolicy(true), nil
}

func newResolver(t *testing.T, inst *fakeInstall) *fxresolver.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return fxresolver.New(inst, inst, log, telemetry.NewNoOp())
}

func ref(name, version string, policy domain.RollForwardPolicy, applyPatches bool) domain.FrameworkReference {
	r := domain.NewFrameworkReference(name, domain.MustParseVersion(version))
	r.Policy = policy
	r.ApplyPatches = applyPatches
	return r
}

const (
	root     = "/opt/fx"
	fxName   = "Example.Runtime"
	altRoot  = "/usr/share/fx"
	noResult = ""
)

var (
	releaseOnly = []string{"2.1.2", "2.1.3", "2.4.0", "2.4.1", "3.1.1", "3.1.2"}
	mixed       = []string{
		"4.1.0-preview.1", "4.1.1", "4.1.2-preview.1", "4.1.2", "4.1.3-preview.1",
		"4.5.1-preview.2", "4.5.2-preview.1", "5.1.0-preview.1", "5.1.1",
		"5.1.2-preview.1", "5.1.2", "5.5.1-preview.2", "5.5.2", "6.0.1", "6.0.2-preview.1",
	}
)

func TestResolver_Resolve_SingleFramework(t *testing.T) {
	tests := []struct {
		name         string
		installed    []string
		requested    string
		policy       domain.RollForwardPolicy
		applyPatches bool
		want         string
	}{
		{"release LatestPatch", releaseOnly, "2.1.0", domain.RollForwardLatestPatch, true, "2.1.3"},
		{"release LatestPatch no patches", releaseOnly, "2.1.0", domain.RollForwardLatestPatch, false, noResult},
		{"release Minor", releaseOnly, "2.1.0", domain.RollForwardMinor, true, "2.1.3"},
		{"release Minor no patches", releaseOnly, "2.1.0", domain.RollForwardMinor, false, "2.1.2"},
		{"release LatestMinor", releaseOnly, "2.1.0", domain.RollForwardLatestMinor, true, "2.4.1"},
		{"release Major no patches", releaseOnly, "2.1.0", domain.RollForwardMajor, false, "2.1.2"},
		{"release LatestMajor", releaseOnly, "2.1.0", domain.RollForwardLatestMajor, true, "3.1.2"},
		{"release Disable", releaseOnly, "2.1.0", domain.RollForwardDisable, true, noResult},
		{"release LatestPatch missing minor", releaseOnly, "2.0.0", domain.RollForwardLatestPatch, true, noResult},

		{"mixed Disable", mixed, "4.1.0", domain.RollForwardDisable, true, noResult},
		{"mixed LatestPatch", mixed, "4.1.0", domain.RollForwardLatestPatch, true, "4.1.2"},
		{"mixed LatestPatch no patches", mixed, "4.1.0", domain.RollForwardLatestPatch, false, noResult},
		{"mixed Minor", mixed, "4.1.0", domain.RollForwardMinor, true, "4.1.2"},
		{"mixed Minor no patches", mixed, "4.1.0", domain.RollForwardMinor, false, "4.1.1"},
		{"mixed LatestMinor", mixed, "4.1.0", domain.RollForwardLatestMinor, true, "4.1.2"},
		{"mixed Major", mixed, "4.1.0", domain.RollForwardMajor, true, "4.1.2"},
		{"mixed Major no patches", mixed, "4.1.0", domain.RollForwardMajor, false, "4.1.1"},
		{"mixed LatestMajor", mixed, "4.1.0", domain.RollForwardLatestMajor, true, "6.0.1"},
		{"mixed Disable exact", mixed, "4.1.1", domain.RollForwardDisable, true, "4.1.1"},
		{"mixed LatestPatch no patches exact", mixed, "4.1.1", domain.RollForwardLatestPatch, false, "4.1.1"},

		{"prerelease Disable", mixed, "5.1.0-preview.0", domain.RollForwardDisable, true, noResult},
		{"prerelease LatestPatch", mixed, "5.1.0-preview.0", domain.RollForwardLatestPatch, true, "5.1.2"},
		{"prerelease LatestPatch no patches", mixed, "5.1.0-preview.0", domain.RollForwardLatestPatch, false, noResult},
		{"prerelease Minor", mixed, "5.1.0-preview.0", domain.RollForwardMinor, true, "5.1.2"},
		{"prerelease Minor no patches", mixed, "5.1.0-preview.0", domain.RollForwardMinor, false, "5.1.0-preview.1"},
		{"prerelease LatestMinor", mixed, "5.1.0-preview.0", domain.RollForwardLatestMinor, true, "5.5.2"},
		{"prerelease LatestMinor no patches", mixed, "5.1.0-preview.0", domain.RollForwardLatestMinor, false, "5.5.2"},
		{"prerelease Major", mixed, "5.1.0-preview.0", domain.RollForwardMajor, true, "5.1.2"},
		{"prerelease Major no patches", mixed, "5.1.0-preview.0", domain.RollForwardMajor, false, "5.1.0-preview.1"},
		{"prerelease LatestMajor", mixed, "5.1.0-preview.0", domain.RollForwardLatestMajor, true, "6.0.2-preview.1"},
		{"prerelease Disable exact", mixed, "5.1.0-preview.1", domain.RollForwardDisable, true, "5.1.0-preview.1"},
		{"prerelease LatestPatch no patches exact", mixed, "5.1.0-preview.1", domain.RollForwardLatestPatch, false, "5.1.0-preview.1"},
		{"prerelease LatestMajor across majors", mixed, "4.9.0-preview.6", domain.RollForwardLatestMajor, true, "6.0.2-preview.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newFakeInstall()
			inst.install(root, fxName, tt.installed...)
			r := newResolver(t, inst)

			res, err := r.Resolve(context.Background(),
				[]domain.FrameworkReference{ref(fxName, tt.requested, tt.policy, tt.applyPatches)},
				fxresolver.Options{Roots: []string{root}})

			if tt.want == noResult {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrFrameworkMissing))
				return
			}
			require.NoError(t, err)
			require.Len(t, res.Frameworks, 1)
			fx := res.Frameworks[0]
			assert.Equal(t, tt.want, fx.Found.String())
			assert.Equal(t, filepath.Join(root, "shared", fxName, tt.want), fx.Directory)
			assert.Equal(t, tt.requested, fx.OldestRequested.String())
			assert.Equal(t, 1, res.Attempts)
		})
	}
}

func TestResolver_Resolve_RollForwardToPrerelease(t *testing.T) {
	inst := newFakeInstall()
	inst.install(root, fxName, "4.1.1", "4.1.2-preview.1")
	r := newResolver(t, inst)
	refs := []domain.FrameworkReference{ref(fxName, "4.1.0", domain.RollForwardLatestPatch, true)}

	res, err := r.Resolve(context.Background(), refs, fxresolver.Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.Equal(t, "4.1.1", res.Frameworks[0].Found.String())

	res, err = r.Resolve(context.Background(), refs, fxresolver.Options{
		Roots:                   []string{root},
		RollForwardToPrerelease: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "4.1.2-preview.1", res.Frameworks[0].Found.String())
}

func TestResolver_Resolve_ExactVersionOverride(t *testing.T) {
	inst := newFakeInstall()
	inst.install(root, fxName, "2.1.2", "2.1.3")
	r := newResolver(t, inst)

	pinned := ref(fxName, "2.1.2", domain.RollForwardLatestMajor, true)
	pinned.UseExactVersion = true

	res, err := r.Resolve(context.Background(), []domain.FrameworkReference{pinned},
		fxresolver.Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.Equal(t, "2.1.2", res.Frameworks[0].Found.String())
}

func TestResolver_Resolve_SharedDependency(t *testing.T) {
	inst := newFakeInstall()
	inst.install(root, "Base", "1.0.0", "1.2.0", "1.3.0")
	inst.install(root, "Web", "1.0.0")
	inst.declare(root, "Web", "1.0.0", ref("Base", "1.2.0", domain.RollForwardMinor, true))
	r := newResolver(t, inst)

	res, err := r.Resolve(context.Background(), []domain.FrameworkReference{
		ref("Web", "1.0.0", domain.RollForwardMinor, true),
		ref("Base", "1.0.0", domain.RollForwardMinor, true),
	}, fxresolver.Options{Roots: []string{root}})
	require.NoError(t, err)

	require.Len(t, res.Frameworks, 2)
	assert.Equal(t, "Web", res.Frameworks[0].Name)
	assert.Equal(t, "Base", res.Frameworks[1].Name)
	assert.Equal(t, "1.2.0", res.Frameworks[1].Found.String())
	assert.Equal(t, "1.0.0", res.Frameworks[1].OldestRequested.String())
	assert.Equal(t, 1, res.Attempts)
}

func TestResolver_Resolve_RetriesWhenResolvedReferenceChanges(t *testing.T) {
	inst := newFakeInstall()
	inst.install(root, "Base", "1.0.0", "1.2.0")
	inst.install(root, "Web", "1.0.0")
	inst.declare(root, "Web", "1.0.0", ref("Base", "1.2.0", domain.RollForwardMinor, true))
	r := newResolver(t, inst)

	res, err := r.Resolve(context.Background(), []domain.FrameworkReference{
		ref("Base", "1.0.0", domain.RollForwardMinor, true),
		ref("Web", "1.0.0", domain.RollForwardMinor, true),
	}, fxresolver.Options{Roots: []string{root}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts)
	require.Len(t, res.Frameworks, 2)
	assert.Equal(t, "Web", res.Frameworks[0].Name)
	assert.Equal(t, "Base", res.Frameworks[1].Name)
	assert.Equal(t, "1.2.0", res.Frameworks[1].Found.String())

	for _, fx := range res.Frameworks {
		assert.False(t, fx.Found.Less(fx.OldestRequested), "%s resolved below its oldest request", fx.Name)
	}
}

func TestResolver_Resolve_Scenarios(t *testing.T) {
	installed := []string{"2.1.0", "2.1.3", "2.2.0", "3.0.0"}

	tests := []struct {
		name      string
		installed []string
		refs      []domain.FrameworkReference
		want      string
		attempts  int
	}{
		{
			name:      "Minor stays within major.minor and takes the latest patch",
			installed: installed,
			refs:      []domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardMinor, true)},
			want:      "2.1.3",
			attempts:  1,
		},
		{
			name:      "LatestMajor takes the newest install",
			installed: installed,
			refs:      []domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardLatestMajor, true)},
			want:      "3.0.0",
			attempts:  1,
		},
		{
			name:      "merged references roll to the patched higher request",
			installed: []string{"2.1.3", "2.5.2", "2.6.0", "3.0.0"},
			refs: []domain.FrameworkReference{
				ref(fxName, "2.1.0", domain.RollForwardMinor, true),
				ref(fxName, "2.5.0", domain.RollForwardLatestPatch, true),
			},
			want:     "2.5.2",
			attempts: 2,
		},
		{
			name:      "Disable needs the exact version",
			installed: []string{"1.0.1"},
			refs:      []domain.FrameworkReference{ref(fxName, "1.0.0", domain.RollForwardDisable, true)},
			want:      noResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newFakeInstall()
			inst.install(root, fxName, tt.installed...)

			res, err := newResolver(t, inst).Resolve(context.Background(), tt.refs,
				fxresolver.Options{Roots: []string{root}})
			if tt.want == noResult {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrFrameworkMissing))
				return
			}
			require.NoError(t, err)
			require.Len(t, res.Frameworks, 1)
			assert.Equal(t, tt.want, res.Frameworks[0].Found.String())
			assert.Equal(t, tt.attempts, res.Attempts)
		})
	}
}

func TestResolver_Resolve_SettingsChangeOnResolvedReference(t *testing.T) {
	tests := []struct {
		name     string
		second   domain.FrameworkReference
		attempts int
	}{
		{"identical reference", ref(fxName, "2.1.0", domain.RollForwardMinor, true), 1},
		{"lower policy", ref(fxName, "2.1.0", domain.RollForwardLatestPatch, true), 2},
		{"patches turned off", ref(fxName, "2.1.0", domain.RollForwardMinor, false), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newFakeInstall()
			inst.install(root, fxName, "2.1.3")

			res, err := newResolver(t, inst).Resolve(context.Background(), []domain.FrameworkReference{
				ref(fxName, "2.1.0", domain.RollForwardMinor, true),
				tt.second,
			}, fxresolver.Options{Roots: []string{root}})
			require.NoError(t, err)
			assert.Equal(t, tt.attempts, res.Attempts)
			require.Len(t, res.Frameworks, 1)
			assert.Equal(t, "2.1.3", res.Frameworks[0].Found.String())
		})
	}
}

func TestResolver_Resolve_IncompatibleReferences(t *testing.T) {
	inst := newFakeInstall()
	inst.install(root, "Base", "1.0.0", "1.2.0")
	inst.install(root, "Web", "1.0.0")
	inst.declare(root, "Web", "1.0.0", ref("Base", "1.2.0", domain.RollForwardMinor, true))
	r := newResolver(t, inst)

	_, err := r.Resolve(context.Background(), []domain.FrameworkReference{
		ref("Web", "1.0.0", domain.RollForwardMinor, true),
		ref("Base", "1.0.0", domain.RollForwardLatestPatch, true),
	}, fxresolver.Options{Roots: []string{root}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFrameworkCompatFailure))
}

func TestResolver_Resolve_MultipleRoots(t *testing.T) {
	t.Run("later root wins with a better match", func(t *testing.T) {
		inst := newFakeInstall()
		inst.install(root, fxName, "2.5.0-preview.1")
		inst.install(altRoot, fxName, "2.1.1")
		r := newResolver(t, inst)

		res, err := r.Resolve(context.Background(),
			[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardLatestMinor, true)},
			fxresolver.Options{Roots: []string{root, altRoot}})
		require.NoError(t, err)
		assert.Equal(t, "2.1.1", res.Frameworks[0].Found.String())
		assert.Equal(t, filepath.Join(altRoot, "shared", fxName, "2.1.1"), res.Frameworks[0].Directory)
	})

	t.Run("first root kept on a tie", func(t *testing.T) {
		inst := newFakeInstall()
		inst.install(root, fxName, "2.1.3")
		inst.install(altRoot, fxName, "2.1.3")
		r := newResolver(t, inst)

		res, err := r.Resolve(context.Background(),
			[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardMinor, true)},
			fxresolver.Options{Roots: []string{root, altRoot}})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "shared", fxName, "2.1.3"), res.Frameworks[0].Directory)
	})

	t.Run("exact match found in a later root", func(t *testing.T) {
		inst := newFakeInstall()
		inst.install(root, fxName, "2.1.3")
		inst.install(altRoot, fxName, "2.1.0")
		r := newResolver(t, inst)

		res, err := r.Resolve(context.Background(),
			[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardDisable, true)},
			fxresolver.Options{Roots: []string{root, altRoot}})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(altRoot, "shared", fxName, "2.1.0"), res.Frameworks[0].Directory)
	})
}

func TestResolver_Resolve_MissingFrameworkCarriesContext(t *testing.T) {
	r := newResolver(t, newFakeInstall())

	_, err := r.Resolve(context.Background(),
		[]domain.FrameworkReference{ref(fxName, "8.0.0", domain.RollForwardMinor, true)},
		fxresolver.Options{Roots: []string{root}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFrameworkMissing))
	assert.Contains(t, err.Error(), "no compatible framework version found")
}

func TestResolver_Resolve_IgnoresUnparseableDirectories(t *testing.T) {
	inst := newFakeInstall()
	inst.install(root, fxName, "latest", "2.1.3", "not-a-version")
	r := newResolver(t, inst)

	res, err := r.Resolve(context.Background(),
		[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardMinor, true)},
		fxresolver.Options{Roots: []string{root}})
	require.NoError(t, err)
	assert.Equal(t, "2.1.3", res.Frameworks[0].Found.String())
}

// chainInstall makes every framework fxN reference fxN+1.
type chainInstall struct{}

func (chainInstall) ListSubdirectories(string) ([]string, error) { return []string{"1.0.0"}, nil }

func (chainInstall) Exists(string) bool { return true }

func (chainInstall) ReadRuntimeConfig(path string, _ bool) (*domain.RuntimeConfig, error) {
	name := strings.TrimSuffix(filepath.Base(path), ".runtimeconfig.json")
	n, err := strconv.Atoi(strings.TrimPrefix(name, "fx"))
	if err != nil {
		return nil, err
	}
	next := domain.NewFrameworkReference(fmt.Sprintf("fx%d", n+1), domain.MustParseVersion("1.0.0"))
	return &domain.RuntimeConfig{Path: path, Frameworks: []domain.FrameworkReference{next}}, nil
}

func (chainInstall) FindSdkManifest(string, bool) (domain.SdkPolicy, error) {
	return domain.DefaultSdkPolicy(true), nil
}

func TestResolver_Resolve_DepthLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	r := fxresolver.New(chainInstall{}, chainInstall{}, log, telemetry.NewNoOp())

	_, err := r.Resolve(context.Background(),
		[]domain.FrameworkReference{domain.NewFrameworkReference("fx0", domain.MustParseVersion("1.0.0"))},
		fxresolver.Options{Roots: []string{root}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolutionDidNotConverge))
}

func TestResolver_Resolve_Canceled(t *testing.T) {
	r := newResolver(t, newFakeInstall())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx,
		[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardMinor, true)},
		fxresolver.Options{Roots: []string{root}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestResolver_Resolve_RecordsAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	inst := newFakeInstall()
	inst.install(root, fxName, "2.1.3")

	tel.EXPECT().Record(gomock.Any(), "resolve attempt 1").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		})
	gomock.InOrder(
		vertex.EXPECT().Log(domain.LogLevelInfo, fxName+" 2.1.3 selected from "+root),
		vertex.EXPECT().Complete(nil),
	)

	r := fxresolver.New(inst, inst, log, tel)
	_, err := r.Resolve(context.Background(),
		[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardMinor, true)},
		fxresolver.Options{Roots: []string{root}})
	require.NoError(t, err)
}

func TestResolver_Resolve_LogsSearchOntoAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)

	inst := newFakeInstall()
	inst.install(root, fxName, "2.1.3", "latest")
	inst.install(altRoot, fxName, "2.1.1")

	tel.EXPECT().Record(gomock.Any(), "resolve attempt 1").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, vertex), vertex
		})

	var lines []string
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(level domain.LogLevel, msg string) {
		lines = append(lines, level.String()+" "+msg)
	}).AnyTimes()
	vertex.EXPECT().Complete(nil)

	r := fxresolver.New(inst, inst, log, tel)
	res, err := r.Resolve(context.Background(),
		[]domain.FrameworkReference{ref(fxName, "2.1.0", domain.RollForwardMinor, true)},
		fxresolver.Options{Roots: []string{root, altRoot}})
	require.NoError(t, err)
	assert.Equal(t, "2.1.3", res.Frameworks[0].Found.String())

	assert.Equal(t, []string{
		"WARN ignoring unparseable directory " + filepath.Join(root, "shared", fxName, "latest"),
		"DEBUG " + fxName + " 2.1.1 in " + altRoot + " loses to 2.1.3 from " + root,
		"INFO " + fxName + " 2.1.3 selected from " + root,
	}, lines)
}
