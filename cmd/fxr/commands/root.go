// Package commands implements the CLI commands for fxr.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fxr/internal/app"
	"go.trai.ch/fxr/internal/build"
	"go.trai.ch/fxr/internal/core/ports"
)

// logConfigurer is implemented by loggers whose format and level can change
// after construction.
type logConfigurer interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// CLI represents the command line interface for fxr.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fxr",
		Short:         "Resolve shared frameworks and SDKs against local installs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("env-file", "", "Read settings from a dotenv file")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every resolution decision")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configureLogger

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newSdkCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogger(cmd *cobra.Command, _ []string) error {
	lc, ok := c.logger.(logConfigurer)
	if !ok {
		return nil
	}
	asJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	lc.SetJSON(asJSON)
	lc.SetVerbose(verbose)
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func envFile(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("env-file")
	return path
}

func addRootsFlag(cmd *cobra.Command) {
	cmd.Flags().StringArray("root", nil, "Search an additional install root (repeatable)")
}

func rootsFlag(cmd *cobra.Command) []string {
	roots, _ := cmd.Flags().GetStringArray("root")
	return roots
}
