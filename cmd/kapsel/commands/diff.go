package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Show the difference between two env specs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := c.app.DiffSpecs(c.projectDir(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			if diff == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "env specs %s and %s are identical\n", args[0], args[1])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}
