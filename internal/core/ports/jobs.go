// internal/core/ports/jobs.go
package ports

import (
	"context"

	"github.com/google/uuid"
)

// JobEnqueuer submits workflow jobs for background processing. Create
// endpoints persist the aggregate, enqueue, and return immediately; callers
// observe progress through the GET endpoints. Jobs are at-least-once:
// processors re-query in_work tasks on every pass, so redelivery resumes
// rather than duplicates work.
type JobEnqueuer interface {
	EnqueuePostingFulfillment(ctx context.Context, postingID uuid.UUID) error
	EnqueueAcceptanceProcessing(ctx context.Context, acceptanceID uuid.UUID) error
	EnqueueSkuRepricing(ctx context.Context, skuIDs []uuid.UUID) error
}
