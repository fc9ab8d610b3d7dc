package cmd

import (
	"fmt"
	"io"
	"os"

	godbf "github.com/Ulysses-Xu/go-dbase"
	"github.com/spf13/cobra"
)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the result to this file instead of overwriting the input")
}

// editTable loads fileName, runs edit and writes the table to --output, or back over
// fileName when no output is given.
func (a *app) editTable(cmd *cobra.Command, fileName string, edit func(*godbf.Table) error) error {
	table, err := godbf.LoadWithEncoding(fileName, a.config.Encoding)
	if err != nil {
		return err
	}
	defer table.Close()

	a.logger.Debug("loaded table", "file", fileName, "version", table.Version().String(), "records", table.RecordCount(), "deleted", table.DeletedCount())

	if err := edit(table); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" || output == fileName {
		if a.config.Backup {
			if err := backup(fileName); err != nil {
				return err
			}
			a.logger.Debug("wrote backup", "file", fileName+".bak")
		}
		err = table.SaveInPlace()
		output = fileName
	} else {
		err = table.Save(output)
	}
	if err != nil {
		return err
	}

	a.logger.Info("saved table", "file", output, "records", table.RecordCount())
	fmt.Fprintf(cmd.OutOrStdout(), "%d records written to %s\n", table.RecordCount(), output)
	return nil
}

func backup(fileName string) error {
	src, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("failed to open %s for backup: %w", fileName, err)
	}
	defer src.Close()

	dst, err := os.Create(fileName + ".bak")
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return dst.Close()
}
