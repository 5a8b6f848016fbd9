package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fxr/cmd/fxr/commands"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DOTNET_ROLL_FORWARD",
		"DOTNET_ROLL_FORWARD_ON_NO_CANDIDATE_FX",
		"DOTNET_ROLL_FORWARD_TO_PRERELEASE",
		"DOTNET_ROOT",
		"FXR_ROLL_FORWARD",
		"FXR_ROLL_FORWARD_ON_NO_CANDIDATE_FX",
		"FXR_ROLL_FORWARD_TO_PRERELEASE",
		"FXR_ROOTS",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("DOTNET_MULTILEVEL_LOOKUP", "false")
	t.Setenv("FXR_STATE_DIR", t.TempDir())
}

func TestRun(t *testing.T) {
	isolateEnv(t)

	appDir := t.TempDir()
	configPath := filepath.Join(appDir, "app.runtimeconfig.json")
	configContent := `{"runtimeOptions": {"framework": {"name": "Example.Runtime", "version": "6.0.0"}}}`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(appDir, "shared", "Example.Runtime", "6.0.2"), 0o750))

	missingPath := filepath.Join(appDir, "missing.runtimeconfig.json")
	missingContent := `{"runtimeOptions": {"framework": {"name": "Other.Runtime", "version": "6.0.0"}}}`
	require.NoError(t, os.WriteFile(missingPath, []byte(missingContent), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		wantOutput   string
	}{
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
			wantOutput:   "fxr version dev",
		},
		{
			name:         "Resolve from the application directory",
			args:         []string{"resolve", configPath, "-o", "yaml"},
			expectedExit: 0,
			wantOutput:   "version: 6.0.2",
		},
		{
			name:         "Missing framework",
			args:         []string{"resolve", missingPath},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exitCode := run(tt.args, func(c *commands.CLI) {
				c.SetOutput(&buf)
			})
			assert.Equal(t, tt.expectedExit, exitCode)
			if tt.wantOutput != "" {
				assert.Contains(t, buf.String(), tt.wantOutput)
			}
		})
	}
}
