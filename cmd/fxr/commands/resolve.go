package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fxr/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <app.runtimeconfig.json>",
		Short: "Resolve the frameworks an application needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rollForward, _ := cmd.Flags().GetString("roll-forward")
			legacy, _ := cmd.Flags().GetString("roll-forward-on-no-candidate-fx")
			fxVersion, _ := cmd.Flags().GetString("fx-version")

			report, err := c.app.ResolveFrameworks(cmd.Context(), app.ResolveRequest{
				ConfigPath:                 args[0],
				EnvFile:                    envFile(cmd),
				RollForward:                rollForward,
				RollForwardOnNoCandidateFx: legacy,
				FxVersion:                  fxVersion,
				Roots:                      rootsFlag(cmd),
			})
			if err != nil {
				return err
			}
			return render(cmd, newResolveView(report), func(w io.Writer) { writeResolve(w, report) })
		},
	}
	cmd.Flags().String("roll-forward", "", "Roll-forward policy for the application's frameworks")
	cmd.Flags().String("roll-forward-on-no-candidate-fx", "", "Legacy roll-forward setting: 0, 1 or 2")
	cmd.Flags().String("fx-version", "", "Pin a framework to an exact version, as [name=]version")
	addRootsFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func newResolveView(report *app.ResolveReport) resolveView {
	view := resolveView{
		Config:      report.ConfigPath,
		Fingerprint: report.Record.Fingerprint,
		Changed:     report.Changed,
		Attempts:    report.Resolution.Attempts,
		Frameworks:  make([]frameworkView, len(report.Resolution.Frameworks)),
	}
	for i, fx := range report.Resolution.Frameworks {
		view.Frameworks[i] = frameworkView{
			Name:      fx.Name,
			Version:   fx.Found.String(),
			Requested: versionString(fx.OldestRequested),
			Directory: fx.Directory,
		}
	}
	return view
}

func writeResolve(w io.Writer, report *app.ResolveReport) {
	if len(report.Resolution.Frameworks) == 0 {
		_, _ = fmt.Fprintln(w, "self-contained: no frameworks required")
		return
	}
	for _, fx := range report.Resolution.Frameworks {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			nameStyle.Render(fx.Name),
			versionStyle.Render(fx.Found.String()),
			pathStyle.Render(fx.Directory))
	}
	if report.Changed {
		_, _ = fmt.Fprintln(w, changedStyle.Render("changed since last run"))
	}
}
