// Package commands implements the CLI commands for kapsel.
package commands

import (
	"context"
	"io"

	"github.com/Global19-atlassian-net/kapsel/internal/app"
	"github.com/Global19-atlassian-net/kapsel/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for kapsel.
type CLI struct {
	app     *app.App
	log     ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kapsel",
		Short:         "Manage a project's environment specs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("project", "p", ".", "Path to the project directory")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newEnvsCmd())
	rootCmd.AddCommand(c.newDiffCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}

func (c *CLI) projectDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("project")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}
