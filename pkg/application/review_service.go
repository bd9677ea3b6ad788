package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/felixgeelhaar/e2elint/pkg/domain/review"
)

// ReviewOptions controls one review run.
type ReviewOptions struct {
	IncludeJS bool
	Exclude   []string
	// Workers above 1 review files concurrently. Report order is unaffected.
	Workers int
}

// ReviewService discovers files, reviews each independently and aggregates
// the reports in discovery order.
type ReviewService struct {
	source   review.FileSource
	reviewer *review.Reviewer
	logger   *slog.Logger
}

func NewReviewService(source review.FileSource, reviewer *review.Reviewer, logger *slog.Logger) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		source:   source,
		reviewer: reviewer,
		logger:   logger,
	}
}

type outcome struct {
	report  *review.FileReport
	failure *review.FileFailure
}

// Run reviews every file under root. Discovery failures yield an empty run and
// unreadable files are recorded as failures; only cancellation aborts a run.
func (s *ReviewService) Run(ctx context.Context, root string, opts ReviewOptions) (*review.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	fsm, err := review.NewRunStateMachine(root)
	if err != nil {
		return nil, err
	}

	summary := &review.Summary{
		ID:        uuid.New().String(),
		Root:      root,
		Reports:   make([]*review.FileReport, 0),
		StartedAt: time.Now(),
	}
	finish := func(event string) {
		s.advance(fsm, summary, event)
		summary.FinishedAt = time.Now()
	}

	s.advance(fsm, summary, review.EventDiscover)

	files, err := s.source.Discover(ctx, root, review.DiscoverOptions{
		IncludeJS: opts.IncludeJS,
		Exclude:   opts.Exclude,
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		finish(review.EventAbort)
		return summary, ctxErr
	}
	if err != nil {
		s.logger.Warn("discovery failed", "root", root, "error", err)
		files = nil
	}
	if len(files) == 0 {
		finish(review.EventNone)
		return summary, nil
	}

	s.advance(fsm, summary, review.EventReview)
	s.logger.Debug("review started", "run", summary.ID, "root", root, "files", len(files), "workers", opts.Workers)

	outcomes, err := s.reviewAll(ctx, files, opts.Workers)
	if err != nil {
		finish(review.EventAbort)
		return summary, err
	}

	for _, o := range outcomes {
		if o.failure != nil {
			summary.Failures = append(summary.Failures, *o.failure)
			continue
		}
		summary.Reports = append(summary.Reports, o.report)
	}

	finish(review.EventFinish)
	s.logger.Debug("review finished", "run", summary.ID, "reviewed", len(summary.Reports), "failed", len(summary.Failures))
	return summary, nil
}

// advance moves the run to its next phase and mirrors it into the summary.
// A rejected event is logged and leaves the phase unchanged.
func (s *ReviewService) advance(fsm *review.RunStateMachine, summary *review.Summary, event string) {
	if err := fsm.Transition(event); err != nil {
		s.logger.Error("run state transition rejected", "run", summary.ID, "event", event, "error", err)
	}
	summary.Status = fsm.Current()
}

func (s *ReviewService) reviewAll(ctx context.Context, files []string, workers int) ([]outcome, error) {
	outcomes := make([]outcome, len(files))

	if workers <= 1 {
		for i, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			outcomes[i] = s.reviewOne(path)
		}
		return outcomes, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.reviewOne(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (s *ReviewService) reviewOne(path string) outcome {
	content, err := s.source.Read(path)
	if err != nil {
		s.logger.Warn("skipping unreadable file", "path", path, "error", err)
		return outcome{failure: &review.FileFailure{Path: path, Error: err.Error()}}
	}
	report := s.reviewer.Review(path, content)
	s.logger.Debug("file reviewed", "path", path, "role", report.Role, "issues", len(report.Issues), "score", report.Score)
	return outcome{report: report}
}

// ReviewFile reads and reviews a single file.
func (s *ReviewService) ReviewFile(path string) (*review.FileReport, error) {
	content, err := s.source.Read(path)
	if err != nil {
		return nil, fmt.Errorf("review %s: %w", path, err)
	}
	return s.reviewer.Review(path, content), nil
}

// ReviewContent reviews content as if it were stored at path.
func (s *ReviewService) ReviewContent(path, content string) *review.FileReport {
	return s.reviewer.Review(path, content)
}
