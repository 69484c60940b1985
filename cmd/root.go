package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/githistory/core"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/internal/tui"
	"github.com/huangsam/githistory/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// source reads commits for every command; chosen by the "source" key.
var source contract.CommitSource

// rootCmd opens the interactive explorer.
var rootCmd = &cobra.Command{
	Use:   "githistory",
	Short: "Explore per-author Git history in the terminal.",
	Long: `githistory reads the commit history reachable from HEAD and shows, per author
email, the number of commits, the first and last commit day and the days between.

The explorer draws a calendar heatmap of the current year above the author table.
Pin an author with enter to scope the heatmap to their commits.

Examples:
  # Explore the repository in the current directory
  githistory

  # Explore another repository with the go-git reader
  GITHISTORY_SOURCE=go-git githistory -p ~/src/project`,
	Version:            version,
	Args:               cobra.NoArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ds, err := core.LoadRepository(rootCtx, cfg, source)
		if err != nil {
			return err
		}
		return tui.Run(rootCtx, ds, tui.Options{
			RepoPath: cfg.DisplayPath,
			Year:     time.Now().Year(),
		})
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Environment first so GITHISTORY_CONFIG can pick the file
	viper.SetEnvPrefix("GITHISTORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".githistory")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetDefault("path", contract.DefaultRepoPath)
	viper.SetDefault("source", schema.GitBinarySource)
	viper.SetDefault("color", "yes")
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("sort", schema.SortDefault.String())
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Pick the commit reader before the repository is resolved through it.
	source = contract.NewCommitSource(schema.SourceBackend(strings.ToLower(input.Source)))

	// 4. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(ctx, cfg, source, input); err != nil {
		return err
	}
	contract.SetColorEnabled(cfg.UseColors)
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
