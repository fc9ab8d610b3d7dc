package cmd

import (
	"fmt"
	"strconv"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/spf13/cobra"
)

func NewSetDateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-date <file> <day> <month> <year>",
		Short: "Stamp the DATE column of every record",
		Long: `Store the given date as YYYYMMDD in the column named DATE for every active record.

Example:
  dbfedit set-date orders.dbf 15 3 2024`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var parts [3]int
			for i, arg := range args[1:] {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid date part %q: %w", arg, err)
				}
				parts[i] = v
			}
			return a.editTable(cmd, args[0], func(table *godbf.Table) error {
				return table.SetDate(parts[0], parts[1], parts[2])
			})
		},
	}
	addOutputFlag(cmd)
	return cmd
}
