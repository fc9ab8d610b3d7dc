package cmd

import (
	"fmt"

	"github.com/Ulysses-Xu/go-dbase/internal/job"
	"github.com/spf13/cobra"
)

func NewApplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <job.yaml>",
		Short: "Run the edits listed in a job file",
		Long: `Run an ordered list of batch edits against one file. Example job:

  input: orders.dbf
  output: orders-new.dbf
  encoding: gbk
  steps:
    - op: add-percent
      field: PRICE
      percent: 10
    - op: set-date
      day: 15
      month: 3
      year: 2024`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := job.LoadJob(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("loaded job", "file", args[0], "input", j.Input, "output", j.Output, "steps", len(j.Steps))

			if a.config.Backup && j.Output == j.Input {
				if err := backup(j.Input); err != nil {
					return err
				}
			}

			table, err := j.Run(a.config.Encoding)
			if err != nil {
				return err
			}
			defer table.Close()

			a.logger.Info("applied job", "file", args[0], "steps", len(j.Steps), "output", j.Output)
			fmt.Fprintf(cmd.OutOrStdout(), "%d steps applied, %d records written to %s\n", len(j.Steps), table.RecordCount(), j.Output)
			return nil
		},
	}
}
