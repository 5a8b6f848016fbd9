package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fxr/internal/core/domain"
)

func resolved(name, version, dir string) domain.ResolvedFramework {
	return domain.ResolvedFramework{Name: name, Found: domain.MustParseVersion(version), Directory: dir}
}

func TestResolution_Fingerprint(t *testing.T) {
	base := resolved("Example.Runtime", "6.0.2", "/opt/dotnet/shared/Example.Runtime/6.0.2")
	web := resolved("Example.Web", "6.0.2", "/opt/dotnet/shared/Example.Web/6.0.2")

	r := &domain.Resolution{Frameworks: []domain.ResolvedFramework{web, base}}
	fp := r.Fingerprint()

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), fp)
	assert.Equal(t, fp, (&domain.Resolution{Frameworks: []domain.ResolvedFramework{web, base}, Attempts: 3}).Fingerprint(),
		"attempts do not affect the fingerprint")

	reordered := &domain.Resolution{Frameworks: []domain.ResolvedFramework{base, web}}
	assert.NotEqual(t, fp, reordered.Fingerprint())

	moved := &domain.Resolution{Frameworks: []domain.ResolvedFramework{
		web, resolved("Example.Runtime", "6.0.2", "/usr/share/dotnet/shared/Example.Runtime/6.0.2"),
	}}
	assert.NotEqual(t, fp, moved.Fingerprint())

	patched := &domain.Resolution{Frameworks: []domain.ResolvedFramework{
		web, resolved("Example.Runtime", "6.0.3", "/opt/dotnet/shared/Example.Runtime/6.0.2"),
	}}
	assert.NotEqual(t, fp, patched.Fingerprint())
}

func TestNewResolutionRecord(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := &domain.Resolution{Frameworks: []domain.ResolvedFramework{
		resolved("Example.Web", "6.0.2", "/a"),
		resolved("Example.Runtime", "6.0.3", "/b"),
	}}

	rec := domain.NewResolutionRecord("/srv/app/app.runtimeconfig.json", r, now)
	assert.Equal(t, "/srv/app/app.runtimeconfig.json", rec.ConfigPath)
	assert.Equal(t, r.Fingerprint(), rec.Fingerprint)
	assert.Equal(t, []string{"Example.Web@6.0.2", "Example.Runtime@6.0.3"}, rec.Frameworks)
	assert.Equal(t, now, rec.Timestamp)
}
