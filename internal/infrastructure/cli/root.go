package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
	"github.com/felixgeelhaar/e2elint/pkg/application"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	includeJS    bool
	configPath   string
	verbose      bool
	outputFormat string
	workers      int
	minScore     int
)

// RootCmd reviews the given path when called without a subcommand.
var RootCmd = &cobra.Command{
	Use:     "e2elint [path]",
	Version: Version,
	Short:   "Architecture-aware linter for Playwright test suites",
	Long: `e2elint reviews browser-automation test suites against a three-layer
architecture: test specs orchestrate, page objects own locators and actions,
validators own assertions.

Each file gets a list of issues with suggestions and a 0-10 score.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runReview,
}

// Execute runs the root command and prints a hint for known failures.
func Execute() error {
	err := RootCmd.Execute()
	if err == nil {
		return nil
	}
	mapped := MapError(err)
	var cliErr *CLIError
	if errors.As(mapped, &cliErr) && cliErr.Hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", cliErr.Hint)
	}
	return mapped
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&includeJS, "include-js", false, "Also review JavaScript test files (*.spec.js, *.test.js)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: <path>/"+config.FileName+")")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	RootCmd.Flags().StringVarP(&outputFormat, "output", "o", config.OutputText, "Output format (text, json, yaml)")
	RootCmd.Flags().IntVar(&workers, "workers", 1, "Number of files reviewed concurrently")
	RootCmd.Flags().IntVar(&minScore, "min-score", 0, "Fail when any file scores below this value (0 disables)")
}

func targetPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

// resolveConfig loads the config for root and applies flags the user set.
func resolveConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	cfg, err := config.Load(root, configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("include-js") {
		cfg.IncludeJS = includeJS
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Output = outputFormat
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		cfg.Workers = workers
	}
	if f := flags.Lookup("min-score"); f != nil && f.Changed {
		cfg.MinScore = minScore
	}

	if !config.IsOutputFormat(cfg.Output) {
		return nil, fmt.Errorf("%w: unsupported output format %q", config.ErrInvalidConfig, cfg.Output)
	}
	return cfg, nil
}

func reviewOptions(cfg *config.Config) application.ReviewOptions {
	return application.ReviewOptions{
		IncludeJS: cfg.IncludeJS,
		Exclude:   cfg.Exclude,
		Workers:   cfg.Workers,
	}
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, summary, err := reviewPath(cmd, loadServices(), targetPath(args))
	if err != nil {
		return err
	}

	if err := render(cmd.OutOrStdout(), summary, cfg.Output); err != nil {
		return err
	}

	if cfg.MinScore > 0 {
		if below := summary.BelowScore(cfg.MinScore); len(below) > 0 {
			return fmt.Errorf("%w: %d file(s) scored below %d", ErrScoreBelowThreshold, len(below), cfg.MinScore)
		}
	}
	return nil
}
