// internal/workers/fulfillment_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// FulfillmentProcessor runs the posting fulfillment loop in the background.
type FulfillmentProcessor struct {
	postings ports.PostingService
	logger   *slog.Logger
}

// NewFulfillmentProcessor creates a new fulfillment processor
func NewFulfillmentProcessor(postings ports.PostingService, logger *slog.Logger) *FulfillmentProcessor {
	return &FulfillmentProcessor{
		postings: postings,
		logger:   logger.With(slog.String("processor", "fulfillment")),
	}
}

// ProcessPosting handles a TypePostingFulfill task. Redelivery is safe: the
// loop re-queries in-work picking tasks and an already finalized posting is a
// no-op.
func (p *FulfillmentProcessor) ProcessPosting(ctx context.Context, t *asynq.Task) error {
	var payload PostingFulfillPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "processing posting fulfillment",
		slog.String("posting_id", payload.PostingID.String()))

	if err := p.postings.ProcessPickingPosting(ctx, payload.PostingID); err != nil {
		// A missing posting will not appear on retry.
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to fulfill posting: %w", err)
	}

	p.logger.InfoContext(ctx, "posting fulfillment completed",
		slog.String("posting_id", payload.PostingID.String()))

	return nil
}
