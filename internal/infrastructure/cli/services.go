package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
	"github.com/felixgeelhaar/e2elint/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

func loadServices() *wiring.AppServices {
	return wiring.BuildAppServices(newLogger(verbose))
}

// reviewPath resolves the config for root and runs one review.
func reviewPath(cmd *cobra.Command, services *wiring.AppServices, root string) (*config.Config, *review.Summary, error) {
	cfg, err := resolveConfig(cmd, root)
	if err != nil {
		return nil, nil, err
	}
	summary, err := services.Review.Run(cmd.Context(), root, reviewOptions(cfg))
	if err != nil {
		return cfg, summary, fmt.Errorf("review aborted: %w", err)
	}
	return cfg, summary, nil
}
