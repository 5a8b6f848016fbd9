package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/fxr/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed frameworks and SDKs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inventories, err := c.app.ListInstalled(cmd.Context(), app.ListRequest{
				EnvFile: envFile(cmd),
				Roots:   rootsFlag(cmd),
			})
			if err != nil {
				return err
			}
			view := newListView(inventories)
			return render(cmd, view, func(w io.Writer) { writeList(w, view) })
		},
	}
	addRootsFlag(cmd)
	addOutputFlag(cmd)
	return cmd
}

func writeList(w io.Writer, view listView) {
	for _, root := range view.Roots {
		_, _ = fmt.Fprintln(w, rootStyle.Render(root.Root))
		if len(root.Frameworks) == 0 && len(root.Sdks) == 0 {
			_, _ = fmt.Fprintf(w, "  %s\n", pathStyle.Render("(empty)"))
			continue
		}
		for _, fx := range root.Frameworks {
			_, _ = fmt.Fprintf(w, "  %s %s\n", nameStyle.Render(fx.Name), versionStyle.Render(strings.Join(fx.Versions, ", ")))
		}
		if len(root.Sdks) > 0 {
			_, _ = fmt.Fprintf(w, "  %s %s\n", nameStyle.Render("sdk"), versionStyle.Render(strings.Join(root.Sdks, ", ")))
		}
	}
}
