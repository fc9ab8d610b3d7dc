package cmd

import (
	"fmt"
	"strconv"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/spf13/cobra"
)

func NewInsertTextCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert-text <file> <field> <offset> <text>",
		Short: "Overwrite text at an offset in a column",
		Long: `Write text into a column at a fixed byte offset for every active record.
Text that does not fit the column is cut off.

Example:
  dbfedit insert-text orders.dbf CODE 0 X`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[2], err)
			}
			return a.editTable(cmd, args[0], func(table *godbf.Table) error {
				return table.InsertText(args[1], offset, args[3])
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}
