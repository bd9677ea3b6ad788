package wiring

import (
	"log/slog"

	"github.com/felixgeelhaar/e2elint/pkg/application"
	"github.com/felixgeelhaar/e2elint/pkg/domain/review/rules"
	"github.com/felixgeelhaar/e2elint/pkg/storage"
)

// AppServices exposes the application layer services wired to the local filesystem.
type AppServices struct {
	Source *storage.FilesystemSource
	Review *application.ReviewService
}

// BuildAppServices wires the default rule set, the filesystem source and logger.
func BuildAppServices(logger *slog.Logger) *AppServices {
	if logger == nil {
		logger = slog.Default()
	}
	source := storage.NewFilesystemSource()
	return &AppServices{
		Source: source,
		Review: application.NewReviewService(source, rules.NewReviewer(), logger),
	}
}
