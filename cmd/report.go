package cmd

import (
	"fmt"

	"github.com/huangsam/githistory/core"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd prints the author table without the interactive screen.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print per-author commit statistics.",
	Long: `Print one row per author email with commit count, first and last commit day,
days between and an activity status.

Rows use the same sort keys and email filter as the explorer.

Examples:
  # Most active authors first
  githistory report --sort commits --reverse --limit 10

  # Authors from one domain as CSV
  githistory report --filter @example.com --output csv --output-file authors.csv

  # Columnar export for later analysis
  githistory report --output parquet --output-file authors.parquet`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		contract.ProcessProfilingConfig(profile, viper.GetString("profile"))
		if err := startProfiling(); err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteReport(rootCtx, cfg, source)
	},
	PostRunE: func(_ *cobra.Command, _ []string) error {
		return stopProfiling()
	},
}
