package cmd

import (
	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/spf13/cobra"
)

func NewReplaceColumnsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace-columns <file> <src> <dst>",
		Short: "Copy one column into another",
		Long: `Copy the value of column src into column dst for every active record.
Numeric and date columns are copied right-justified, all others left-justified.

Example:
  dbfedit replace-columns orders.dbf PRICE OLD_PRICE`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editTable(cmd, args[0], func(table *godbf.Table) error {
				return table.ReplaceColumns(args[1], args[2])
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}
