package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/githistory/schema"
)

// Default values for configuration.
const (
	DefaultRepoPath = "."
	MaxResultLimit  = 100000
)

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	RepoPath    string // Resolved repository root
	DisplayPath string // Path as the user gave it
	Source      schema.SourceBackend

	Output     schema.OutputMode
	OutputFile string
	Sort       schema.SortKey
	Reverse    bool
	Filter     string
	Limit      int // 0 means no limit
	Width      int // Terminal width override (0 = auto-detect)

	UseColors bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Path   string `mapstructure:"path"`
	Source string `mapstructure:"source"`
	Color  string `mapstructure:"color"`

	// --- Fields from reportCmd.Flags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Sort       string `mapstructure:"sort"`
	Reverse    bool   `mapstructure:"reverse"`
	Filter     string `mapstructure:"filter"`
	Limit      int    `mapstructure:"limit"`
	Width      int    `mapstructure:"width"`
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) {
	profile.Enabled = profilePrefix != ""
	profile.Prefix = profilePrefix
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. The repository is resolved through
// source, so an invalid path surfaces as *RepositoryOpenError.
func ProcessAndValidate(ctx context.Context, cfg *Config, source CommitSource, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return resolveRepoPath(ctx, cfg, source, input)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Filter = input.Filter
	cfg.OutputFile = input.OutputFile
	cfg.Reverse = input.Reverse
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Source = schema.SourceBackend(strings.ToLower(input.Source))
	if cfg.Source == "" {
		cfg.Source = schema.GitBinarySource
	}
	if _, ok := schema.ValidSourceBackends[cfg.Source]; !ok {
		return fmt.Errorf("invalid source '%s'. must be git, go-git", input.Source)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	cfg.Sort = schema.SortDefault
	if input.Sort != "" {
		key, ok := schema.ParseSortKey(strings.ToLower(input.Sort))
		if !ok {
			return fmt.Errorf("invalid sort '%s'. must be default, email, commits, first, last, days", input.Sort)
		}
		cfg.Sort = key
	}

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	return nil
}

// resolveRepoPath resolves the repository root containing the requested path.
func resolveRepoPath(ctx context.Context, cfg *Config, source CommitSource, input *ConfigRawInput) error {
	path := input.Path
	if path == "" {
		path = DefaultRepoPath
	}
	cfg.DisplayPath = path

	root, err := source.ResolveRepo(ctx, path)
	if err != nil {
		return err
	}
	cfg.RepoPath = root
	return nil
}
