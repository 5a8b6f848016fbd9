// Package settings loads host settings from the environment, dotenv files and
// the user settings file.
package settings

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/fxr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Settings keys.
const (
	KeyRollForward                = "roll_forward"
	KeyRollForwardOnNoCandidateFx = "roll_forward_on_no_candidate_fx"
	KeyRollForwardToPrerelease    = "roll_forward_to_prerelease"
	KeyRoots                      = "roots"
	KeyMultilevelLookup           = "multilevel_lookup"
	KeySdkAllowPrerelease         = "sdk_allow_prerelease"
	KeyStateDir                   = "state_dir"
)

// envBindings maps each key to the variables that set it, highest priority first.
var envBindings = map[string][]string{
	KeyRollForward:                {"DOTNET_ROLL_FORWARD", "FXR_ROLL_FORWARD"},
	KeyRollForwardOnNoCandidateFx: {"DOTNET_ROLL_FORWARD_ON_NO_CANDIDATE_FX", "FXR_ROLL_FORWARD_ON_NO_CANDIDATE_FX"},
	KeyRollForwardToPrerelease:    {"DOTNET_ROLL_FORWARD_TO_PRERELEASE", "FXR_ROLL_FORWARD_TO_PRERELEASE"},
	KeyRoots:                      {"DOTNET_ROOT", "FXR_ROOTS"},
	KeyMultilevelLookup:           {"DOTNET_MULTILEVEL_LOOKUP", "FXR_MULTILEVEL_LOOKUP"},
	KeySdkAllowPrerelease:         {"FXR_SDK_ALLOW_PRERELEASE"},
	KeyStateDir:                   {"FXR_STATE_DIR"},
}

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader with viper.
//
// Precedence, highest first: process environment, the dotenv file passed to
// Load, the settings file, defaults. Command-line flags are applied by the
// caller on top of the result.
type Loader struct {
	// ConfigFile is the YAML settings file. A missing file is not an error.
	ConfigFile string
	// StateDir is the default directory of the resolution records.
	StateDir string
}

// NewLoader creates a Loader using the XDG base directories.
func NewLoader() *Loader {
	return &Loader{
		ConfigFile: filepath.Join(xdg.ConfigHome, "fxr", "config.yaml"),
		StateDir:   filepath.Join(xdg.StateHome, "fxr", "resolutions"),
	}
}

// Load gathers the host settings.
func (l *Loader) Load(envFile string) (domain.HostSettings, error) {
	v := viper.New()
	v.SetDefault(KeyRollForwardToPrerelease, false)
	v.SetDefault(KeyMultilevelLookup, true)
	v.SetDefault(KeySdkAllowPrerelease, true)
	v.SetDefault(KeyStateDir, l.StateDir)

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return domain.HostSettings{}, zerr.With(zerr.Wrap(err, "failed to bind environment"), "key", key)
		}
	}

	if err := l.readConfigFile(v); err != nil {
		return domain.HostSettings{}, err
	}

	if envFile != "" {
		if err := mergeDotenv(v, envFile); err != nil {
			return domain.HostSettings{}, err
		}
	}

	return decode(v)
}

func (l *Loader) readConfigFile(v *viper.Viper) error {
	if l.ConfigFile == "" {
		return nil
	}
	v.SetConfigFile(l.ConfigFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", l.ConfigFile)
	}
	return nil
}

// mergeDotenv layers the variables of path over the settings file. The
// process environment still wins, since viper consults it before config.
func mergeDotenv(v *viper.Viper, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
	}

	values := make(map[string]any)
	for key, names := range envBindings {
		for _, name := range names {
			if value, ok := vars[name]; ok && value != "" {
				values[key] = value
				break
			}
		}
	}
	if len(values) == 0 {
		return nil
	}
	if err := v.MergeConfigMap(values); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to merge env file"), "path", path)
	}
	return nil
}

func decode(v *viper.Viper) (domain.HostSettings, error) {
	s := domain.HostSettings{
		RollForwardToPrerelease: v.GetBool(KeyRollForwardToPrerelease),
		Roots:                   roots(v.Get(KeyRoots)),
		MultilevelLookup:        v.GetBool(KeyMultilevelLookup),
		SdkAllowPrerelease:      v.GetBool(KeySdkAllowPrerelease),
		StateDir:                v.GetString(KeyStateDir),
	}

	if text := v.GetString(KeyRollForward); text != "" {
		policy, err := domain.ParseRollForwardPolicy(text)
		if err != nil {
			return domain.HostSettings{}, zerr.With(err, "key", KeyRollForward)
		}
		s.RollForward = &policy
	}
	if text := v.GetString(KeyRollForwardOnNoCandidateFx); text != "" {
		n, err := strconv.Atoi(text)
		if err != nil {
			return domain.HostSettings{}, zerr.With(
				zerr.Wrap(domain.ErrUnsupportedRollForwardValue, "not a number"),
				"key", KeyRollForwardOnNoCandidateFx)
		}
		policy, err := domain.ParseRollForwardOnNoCandidateFx(n)
		if err != nil {
			return domain.HostSettings{}, zerr.With(err, "key", KeyRollForwardOnNoCandidateFx)
		}
		s.RollForwardOnNoCandidateFx = &policy
	}

	return s, nil
}

// roots accepts a path list string, as environment variables carry it, or a
// YAML sequence from the settings file.
func roots(raw any) []string {
	var out []string
	switch val := raw.(type) {
	case nil:
	case string:
		out = filepath.SplitList(val)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, val...)
	}

	cleaned := out[:0]
	for _, r := range out {
		if r != "" {
			cleaned = append(cleaned, filepath.Clean(os.ExpandEnv(r)))
		}
	}
	return cleaned
}
