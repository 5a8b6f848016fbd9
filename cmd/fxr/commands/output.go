package commands

import (
	"io"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.trai.ch/fxr/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var errUnknownFormat = zerr.New("unknown output format")

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", formatText, "Output format: text, yaml or toml")
}

// render writes view in the requested format. Text output is delegated to text.
func render(cmd *cobra.Command, view any, text func(io.Writer)) error {
	format, _ := cmd.Flags().GetString("output")
	w := cmd.OutOrStdout()

	var (
		data []byte
		err  error
	)
	switch format {
	case formatText:
		text(w)
		return nil
	case formatYAML:
		data, err = yaml.Marshal(view)
	case formatTOML:
		data, err = toml.Marshal(view)
	default:
		return zerr.With(zerr.Wrap(errUnknownFormat, "cannot render output"), "format", format)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode output"), "format", format)
	}
	_, err = w.Write(data)
	return err
}

type frameworkView struct {
	Name      string `yaml:"name" toml:"name"`
	Version   string `yaml:"version" toml:"version"`
	Requested string `yaml:"requested,omitempty" toml:"requested,omitempty"`
	Directory string `yaml:"directory" toml:"directory"`
}

type resolveView struct {
	Config      string          `yaml:"config" toml:"config"`
	Fingerprint string          `yaml:"fingerprint,omitempty" toml:"fingerprint,omitempty"`
	Changed     bool            `yaml:"changed" toml:"changed"`
	Attempts    int             `yaml:"attempts" toml:"attempts"`
	Frameworks  []frameworkView `yaml:"frameworks" toml:"frameworks"`
}

type sdkView struct {
	Version   string `yaml:"version" toml:"version"`
	Directory string `yaml:"directory" toml:"directory"`
	Source    string `yaml:"source,omitempty" toml:"source,omitempty"`
}

type installedFramework struct {
	Name     string   `yaml:"name" toml:"name"`
	Versions []string `yaml:"versions" toml:"versions"`
}

type rootView struct {
	Root       string               `yaml:"root" toml:"root"`
	Frameworks []installedFramework `yaml:"frameworks" toml:"frameworks"`
	Sdks       []string             `yaml:"sdks" toml:"sdks"`
}

type listView struct {
	Roots []rootView `yaml:"roots" toml:"roots"`
}

func versionString(v domain.Version) string {
	if v.IsEmpty() {
		return ""
	}
	return v.String()
}

func versionStrings(versions []domain.Version) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.String()
	}
	return out
}

func newListView(inventories []domain.Inventory) listView {
	view := listView{Roots: make([]rootView, len(inventories))}
	for i, inv := range inventories {
		names := make([]string, 0, len(inv.Frameworks))
		for name := range inv.Frameworks {
			names = append(names, name)
		}
		slices.Sort(names)

		rv := rootView{
			Root:       inv.Root,
			Frameworks: make([]installedFramework, len(names)),
			Sdks:       versionStrings(inv.Sdks),
		}
		for j, name := range names {
			rv.Frameworks[j] = installedFramework{Name: name, Versions: versionStrings(inv.Frameworks[name])}
		}
		view.Roots[i] = rv
	}
	return view
}
