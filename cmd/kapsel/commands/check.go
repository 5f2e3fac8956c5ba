package commands

import (
	"fmt"

	"github.com/Global19-atlassian-net/kapsel/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether external environment files match the project's env specs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Check(cmd.Context(), c.projectDir(cmd))
			if err != nil {
				return err
			}

			for _, problem := range report.Problems {
				c.log.Warn(problem)
			}

			if report.InSync() {
				fmt.Fprintln(cmd.OutOrStdout(), "env specs are in sync")
				return nil
			}

			if report.Existing == nil {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Environment spec '%s' from %s is not in the project.\n",
					report.Candidate.Name(), report.CandidateFile)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Environment spec '%s' from %s is out of sync with the project. Diff:\n%s\n",
					report.Candidate.Name(), report.CandidateFile, report.Diff)
			}
			return domain.ErrSpecsOutOfSync
		},
	}
}
