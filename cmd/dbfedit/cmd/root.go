package cmd

import (
	"log/slog"
	"os"

	"github.com/Ulysses-Xu/go-dbase/internal/config"
	"github.com/spf13/cobra"
)

type app struct {
	config *config.Config
	logger *slog.Logger
}

func addCommands(cmd *cobra.Command, a *app) {
	cmd.AddCommand(NewInfoCmd(a))
	cmd.AddCommand(NewDumpCmd(a))
	cmd.AddCommand(NewReplaceColumnsCmd(a))
	cmd.AddCommand(NewAddPercentCmd(a))
	cmd.AddCommand(NewInsertTextCmd(a))
	cmd.AddCommand(NewSetDateCmd(a))
	cmd.AddCommand(NewApplyCmd(a))
}

// NewRootCmd builds the dbfedit command tree around cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{config: cfg}

	cmd := &cobra.Command{
		Use:           "dbfedit <command> [flags]",
		Short:         "Edit dBase III tables in place",
		Long:          `dbfedit reads, rewrites and batch edits the columns of dBase III (.dbf) files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("encoding") {
				a.config.Encoding, _ = cmd.Flags().GetString("encoding")
			}
			if cmd.Flags().Changed("log-level") {
				a.config.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: a.config.Level(),
			}))
			return nil
		},
	}

	cmd.PersistentFlags().String("encoding", cfg.Encoding, "Code page of text columns, e.g. gbk")
	cmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	addCommands(cmd, a)

	return cmd
}

// Execute runs the root command with the configuration from the environment.
func Execute() {
	cmd := NewRootCmd(config.NewConfig())
	if err := cmd.Execute(); err != nil {
		slog.Error("dbfedit failed", "error", err)
		os.Exit(1)
	}
}
