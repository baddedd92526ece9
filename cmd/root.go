package cmd

import (
	"context"

	"gametool/config"

	"github.com/spf13/cobra"
)

// Execute runs the command line
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gametool",
		Short: "Lottery ticket import, reprint and reporting",
		Long: `gametool imports lottery sales records into Postgres, reprints stored
tickets with their cancellation, validation and prize notices, and reports
ticket fields and valuations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Get().ConfigureLogging()
		},
	}

	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(cancelCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(gamesCmd())
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}
