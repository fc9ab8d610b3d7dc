package cmd

import (
	"fmt"
	"strings"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func NewDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the active records of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			t, err := godbf.LoadWithEncoding(args[0], a.config.Encoding)
			if err != nil {
				return err
			}
			defer t.Close()

			names := t.Fields()
			fields := make([]*godbf.Field, len(names))
			for i, name := range names {
				if fields[i], err = t.Select(name); err != nil {
					return err
				}
			}

			n := t.RecordCount()
			if limit > 0 && limit < n {
				n = limit
			}
			rows := make([][]string, n)
			for row := 0; row < n; row++ {
				values := make([]string, len(fields))
				for i, field := range fields {
					values[i] = strings.TrimSpace(field.GetString(row))
				}
				rows[row] = values
			}

			records := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(borderStyle).
				Headers(names...).
				Rows(rows...)

			fmt.Fprintln(cmd.OutOrStdout(), records.Render())
			if n < t.RecordCount() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d records shown\n", n, t.RecordCount())
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 0, "Show at most this many records, 0 for all")
	return cmd
}
