// Package cmd defines the command-line interface for githistory.
package cmd

import (
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("path", "p", contract.DefaultRepoPath, "Path inside the Git repository to explore")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	reportCmd.Flags().String("output-file", "", "Optional path to write output to")
	reportCmd.Flags().String("sort", schema.SortDefault.String(), "Sort key: default or email or commits or first or last or days")
	reportCmd.Flags().Bool("reverse", false, "Reverse the sort direction")
	reportCmd.Flags().StringP("filter", "f", "", "Only show author emails containing this text")
	reportCmd.Flags().IntP("limit", "l", 0, "Number of results to display (0 = all)")
	reportCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	reportCmd.Flags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}
}
