package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
	"github.com/felixgeelhaar/e2elint/internal/infrastructure/watch"
	"github.com/felixgeelhaar/e2elint/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/e2elint/pkg/storage"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Review the suite, then re-review test files as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := targetPath(args)
		services := loadServices()
		out := cmd.OutOrStdout()

		cfg, summary, err := reviewPath(cmd, services, root)
		if err != nil {
			return err
		}
		if err := render(out, summary, cfg.Output); err != nil {
			return err
		}

		if os.Getenv("E2ELINT_WATCH_ONCE") == "true" {
			return nil
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		dir, filter := watchTarget(root, cfg)
		w, err := watch.NewFSWatcher(dir, watchDebounce, filter, func(paths []string) {
			reviewChanged(out, services, cfg, paths)
		})
		if err != nil {
			return err
		}
		if err := w.WatchRecursive(dir); err != nil {
			return err
		}

		fmt.Fprintf(out, "Watching %s for changes... (Ctrl+C to stop)\n", dir)
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before changed files are re-reviewed")
	RootCmd.AddCommand(watchCmd)
}

// watchTarget returns the directory to watch and the filter for root. A file
// root watches its directory but only reports that file.
func watchTarget(root string, cfg *config.Config) (string, *storage.PatternFilter) {
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return filepath.Dir(root), storage.NewPatternFilter([]string{filepath.Base(root)}, nil)
	}
	return root, storage.NewPatternFilter(storage.TestFilePatterns(cfg.IncludeJS), cfg.Exclude)
}

func reviewChanged(out io.Writer, services *wiring.AppServices, cfg *config.Config, paths []string) {
	fmt.Fprintf(out, "\nChange detected at %s\n", time.Now().Format("15:04:05"))
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Fprintf(out, "Removed %s\n", path)
			continue
		}
		report, err := services.Review.ReviewFile(path)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Error reading %s: %v", path, err)))
			continue
		}
		switch cfg.Output {
		case config.OutputJSON:
			data, err := json.Marshal(report)
			if err == nil {
				fmt.Fprintln(out, string(data))
			}
		case config.OutputYAML:
			fmt.Fprintln(out, "---")
			_ = renderYAML(out, report)
		default:
			renderFileReport(out, report)
		}
	}
}
