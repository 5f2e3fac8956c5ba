package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newEnvsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List the project's env specs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.ListEnvSpecs(c.projectDir(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, info := range infos {
				fmt.Fprintf(out, "%s  %s\n", info.Name, info.Hash)
				if info.Description != info.Name {
					fmt.Fprintf(out, "  description: %s\n", info.Description)
				}
				if info.InheritFromName != "" {
					fmt.Fprintf(out, "  inherits: %s\n", info.InheritFromName)
				}
				if len(info.Channels) > 0 {
					fmt.Fprintf(out, "  channels: %s\n", strings.Join(info.Channels, ", "))
				}
				if len(info.CondaPackages) > 0 {
					fmt.Fprintf(out, "  packages: %s\n", strings.Join(info.CondaPackages, ", "))
				}
				if len(info.PipPackages) > 0 {
					fmt.Fprintf(out, "  pip: %s\n", strings.Join(info.PipPackages, ", "))
				}
			}
			return nil
		},
	}
}
