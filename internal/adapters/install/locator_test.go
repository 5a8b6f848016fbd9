package install_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fxr/internal/adapters/install"
	"go.trai.ch/fxr/internal/core/domain"
)

func TestLocator_Roots(t *testing.T) {
	l := &install.Locator{
		DataHome: "/home/dev/.local/share",
		DataDirs: []string{"/usr/local/share", "/usr/share"},
	}

	tests := []struct {
		name     string
		appDir   string
		extra    []string
		settings domain.HostSettings
		want     []string
	}{
		{
			name:     "full order",
			appDir:   "/src/app/bin",
			extra:    []string{"/opt/extra"},
			settings: domain.HostSettings{Roots: []string{"/opt/dotnet"}, MultilevelLookup: true},
			want: []string{
				"/src/app/bin",
				"/opt/extra",
				"/opt/dotnet",
				"/home/dev/.local/share/dotnet",
				"/usr/local/share/dotnet",
				"/usr/share/dotnet",
			},
		},
		{
			name:     "multilevel lookup off",
			appDir:   "/src/app/bin",
			settings: domain.HostSettings{Roots: []string{"/opt/dotnet"}},
			want:     []string{"/src/app/bin", "/opt/dotnet"},
		},
		{
			name:     "duplicates keep first position",
			extra:    []string{"/usr/share/dotnet/", "/opt/dotnet"},
			settings: domain.HostSettings{Roots: []string{"/opt/dotnet", ""}, MultilevelLookup: true},
			want: []string{
				"/usr/share/dotnet",
				"/opt/dotnet",
				"/home/dev/.local/share/dotnet",
				"/usr/local/share/dotnet",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Roots(tt.appDir, tt.extra, tt.settings))
		})
	}
}

func TestNewLocator(t *testing.T) {
	l := install.NewLocator()
	assert.NotEmpty(t, l.DataHome)
}
