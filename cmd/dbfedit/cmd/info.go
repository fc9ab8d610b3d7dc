package cmd

import (
	"fmt"
	"strconv"
	"strings"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func NewInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show the header and columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := godbf.LoadWithEncoding(args[0], a.config.Encoding)
			if err != nil {
				return err
			}
			defer t.Close()

			header := t.Header()
			var b strings.Builder
			b.WriteString(titleStyle.Render(args[0]))
			b.WriteString("\n")
			for _, item := range [][2]string{
				{"Version", fmt.Sprintf("%s (0x%02X)", t.Version(), byte(t.Version()))},
				{"Last update", fmt.Sprintf("%04d-%02d-%02d", 1900+int(header.LastUpdateYear), header.LastUpdateMonth, header.LastUpdateDay)},
				{"Records", strconv.Itoa(t.RecordCount())},
				{"Deleted", strconv.Itoa(t.DeletedCount())},
				{"Header records", strconv.FormatUint(uint64(t.NumRecords()), 10)},
				{"Record length", strconv.Itoa(int(header.RecordLength))},
			} {
				fmt.Fprintf(&b, "%s %s\n", keyStyle.Render(fmt.Sprintf("%-15s", item[0])), item[1])
			}

			rows := make([][]string, 0, len(t.Layouts()))
			for _, l := range t.Layouts() {
				rows = append(rows, []string{
					l.Name,
					string(rune(l.Type)),
					strconv.Itoa(l.Offset),
					strconv.Itoa(l.Width),
					strconv.Itoa(l.Decimals),
				})
			}
			columns := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(borderStyle).
				Headers("Field", "Type", "Offset", "Width", "Decimals").
				Rows(rows...)

			b.WriteString("\n")
			b.WriteString(columns.Render())
			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}
