package cmd

import (
	"fmt"
	"strconv"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/spf13/cobra"
)

func NewAddPercentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-percent <file> <field> <percent>",
		Short: "Scale a numeric column by a percentage",
		Long: `Multiply every active value of a numeric column by (1 + percent/100).
The result is rounded to the column's decimal count.

Example:
  dbfedit add-percent orders.dbf PRICE 7.5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid percent %q: %w", args[2], err)
			}
			return a.editTable(cmd, args[0], func(table *godbf.Table) error {
				return table.AddPercent(args[1], percent)
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}
