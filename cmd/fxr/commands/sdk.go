package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fxr/internal/app"
	"go.trai.ch/fxr/internal/core/domain"
)

func (c *CLI) newSdkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdk [dir]",
		Short: "Resolve the SDK for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.SdkRequest{
				EnvFile: envFile(cmd),
				Roots:   rootsFlag(cmd),
			}
			if len(args) == 1 {
				req.Dir = args[0]
			}

			sdk, err := c.app.ResolveSdk(cmd.Context(), req)
			if err != nil {
				return err
			}
			view := sdkView{
				Version:   sdk.Version.String(),
				Directory: sdk.Directory,
				Source:    sdk.Source,
			}
			return render(cmd, view, func(w io.Writer) { writeSdk(w, sdk) })
		},
	}
	addRootsFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func writeSdk(w io.Writer, sdk domain.ResolvedSdk) {
	_, _ = fmt.Fprintf(w, "%s %s\n", versionStyle.Render(sdk.Version.String()), pathStyle.Render(sdk.Directory))
	if sdk.Source != "" {
		_, _ = fmt.Fprintf(w, "requested by %s\n", pathStyle.Render(sdk.Source))
	}
}
