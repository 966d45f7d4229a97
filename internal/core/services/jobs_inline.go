// internal/core/services/jobs_inline.go
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// InlineJobRunner executes workflow jobs synchronously in the calling
// goroutine instead of enqueueing them. Used by tests and single-process
// deployments that run without a worker fleet.
//
// The runner depends on the services and the services depend on a
// ports.JobEnqueuer, so construction happens in two steps: build the runner
// empty, pass it to the service constructors, then Bind the finished services.
type InlineJobRunner struct {
	postings    ports.PostingService
	acceptances ports.AcceptanceService
	discounts   ports.DiscountService
	logger      *slog.Logger
}

// Statically assert that *InlineJobRunner implements the enqueuer port.
var _ ports.JobEnqueuer = (*InlineJobRunner)(nil)

// NewInlineJobRunner creates an unbound inline runner
func NewInlineJobRunner(logger *slog.Logger) *InlineJobRunner {
	return &InlineJobRunner{
		logger: logger.With(slog.String("component", "inline_jobs")),
	}
}

// Bind wires the runner to the services it dispatches to.
func (r *InlineJobRunner) Bind(
	postings ports.PostingService,
	acceptances ports.AcceptanceService,
	discounts ports.DiscountService,
) {
	r.postings = postings
	r.acceptances = acceptances
	r.discounts = discounts
}

// EnqueuePostingFulfillment runs the fulfillment loop immediately.
func (r *InlineJobRunner) EnqueuePostingFulfillment(ctx context.Context, postingID uuid.UUID) error {
	r.logger.InfoContext(ctx, "running posting fulfillment inline",
		slog.String("posting_id", postingID.String()))
	return r.postings.ProcessPickingPosting(ctx, postingID)
}

// EnqueueAcceptanceProcessing completes the intake batch immediately.
func (r *InlineJobRunner) EnqueueAcceptanceProcessing(ctx context.Context, acceptanceID uuid.UUID) error {
	r.logger.InfoContext(ctx, "running acceptance processing inline",
		slog.String("acceptance_id", acceptanceID.String()))
	return r.acceptances.ProcessAcceptance(ctx, acceptanceID)
}

// EnqueueSkuRepricing reprices the given skus immediately.
func (r *InlineJobRunner) EnqueueSkuRepricing(ctx context.Context, skuIDs []uuid.UUID) error {
	for _, skuID := range skuIDs {
		if err := r.discounts.UpdateSkuActualPrice(ctx, skuID); err != nil {
			return err
		}
	}
	return nil
}
