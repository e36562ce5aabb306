// Package commands implements the CLI commands for sectx.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sectx/internal/app"
	"go.trai.ch/sectx/internal/build"
	"go.trai.ch/sectx/internal/core/domain"
)

// CLI represents the command line interface for sectx.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, docPath string, sel app.Selector, variant domain.Variant) (*domain.Entry, error)
	BuildVariants(ctx context.Context, docPath string, sel app.Selector, variants []domain.Variant) ([]*domain.Entry, error)
	Invalidate(ctx context.Context, docPath string, sel app.Selector, target app.Target) (int, error)
	Status(ctx context.Context, docPath string) (*app.Status, error)
	GetContext(ctx context.Context, docPath string, sel app.Selector) (string, bool)
	CopyContext(ctx context.Context, docPath string, sel app.Selector) (string, error)
	Inject(ctx context.Context, docPath string, sel app.Selector, prompt string) string
	EnableInjection() (teardown func())
	DisableAutoUpdate()
	UseJSONLogs()
	EnableTracing(w io.Writer) (func(context.Context) error, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sectx",
		Short:         "Cache file context for the sections of an outline document",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	rootCmd.PersistentFlags().Bool("no-auto-update", false, "Never rebuild stale entries while reading")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON lines")
	rootCmd.PersistentFlags().Bool("trace", false, "Export trace spans to stderr")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configure
	rootCmd.PersistentPostRunE = c.flush

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newInvalidateCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newContextCmd())
	rootCmd.AddCommand(c.newInjectCmd())
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

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	noAutoUpdate, _ := cmd.Flags().GetBool("no-auto-update")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	trace, _ := cmd.Flags().GetBool("trace")

	if noAutoUpdate {
		c.app.DisableAutoUpdate()
	}
	if jsonLogs {
		c.app.UseJSONLogs()
	}
	if trace {
		shutdown, err := c.app.EnableTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		c.shutdown = shutdown
	}
	return nil
}

func (c *CLI) flush(cmd *cobra.Command, _ []string) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(cmd.Context())
}
