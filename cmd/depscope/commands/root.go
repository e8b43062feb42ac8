// Package commands implements the CLI commands for depscope.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/depscope/internal/app"
	"go.trai.ch/depscope/internal/build"
	"go.trai.ch/depscope/internal/core/domain"
)

// CLI represents the command line interface for depscope.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Query(ctx context.Context, kind domain.QueryKind, asset string, opts app.Options) error
	Session(ctx context.Context, in io.Reader, opts app.SessionOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "depscope [asset]",
		Short: "Explore dependencies and references between project assets",
		Long: `depscope answers three questions about an asset of a Unity-style project:
what it depends on, what references it, and which sprites an atlas packs.
Running depscope with a single asset lists its dependencies.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.app.Query(cmd.Context(), domain.QueryForward, args[0], c.opts)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Path to depscope.yaml (default: search upwards from the working directory)")
	flags.StringVarP(&c.opts.Root, "root", "r", "", "Project root, overriding the configuration")
	flags.StringVarP(&c.opts.OutputMode, "output", "o", "auto", "Output mode: auto, interactive, linear, or plain")
	flags.StringVarP(&c.opts.Format, "format", "f", "text", "Result format: text or json")
	flags.BoolVar(&c.opts.JSONLog, "json-log", false, "Write logs as JSON")
	flags.BoolVar(&c.opts.Trace, "trace", false, "Log the duration of every analysis step")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newQueryCmd(domain.QueryForward, "deps [asset]", "List everything an asset depends on", "dependencies"))
	rootCmd.AddCommand(c.newQueryCmd(domain.QueryReferences, "refs [asset]", "List the assets that reference an asset", "references"))
	rootCmd.AddCommand(c.newQueryCmd(domain.QueryAtlasMembers, "atlas [asset]", "List the sprites packed into an atlas", "members"))
	rootCmd.AddCommand(c.newSessionCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream read by interactive sessions. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
