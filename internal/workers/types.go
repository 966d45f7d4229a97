// internal/workers/types.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// Task type names registered with asynq
const (
	TypePostingFulfill    = "posting:fulfill"
	TypeAcceptanceProcess = "acceptance:process"
	TypeSkuReprice        = "sku:reprice"
)

// PostingFulfillPayload is the payload for TypePostingFulfill tasks
type PostingFulfillPayload struct {
	PostingID uuid.UUID `json:"posting_id"`
}

// AcceptanceProcessPayload is the payload for TypeAcceptanceProcess tasks
type AcceptanceProcessPayload struct {
	AcceptanceID uuid.UUID `json:"acceptance_id"`
}

// SkuRepricePayload is the payload for TypeSkuReprice tasks
type SkuRepricePayload struct {
	SkuIDs []uuid.UUID `json:"sku_ids"`
}

// AsynqEnqueuer submits workflow jobs to asynq. It is the production
// implementation of ports.JobEnqueuer; tests use a synchronous in-process one.
type AsynqEnqueuer struct {
	client *asynq.Client
	logger *slog.Logger
}

// Statically assert that *AsynqEnqueuer implements the enqueuer port.
var _ ports.JobEnqueuer = (*AsynqEnqueuer)(nil)

// NewAsynqEnqueuer creates a new asynq-backed job enqueuer
func NewAsynqEnqueuer(client *asynq.Client, logger *slog.Logger) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: client,
		logger: logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueuePostingFulfillment submits a posting fulfillment job.
func (e *AsynqEnqueuer) EnqueuePostingFulfillment(ctx context.Context, postingID uuid.UUID) error {
	return e.enqueue(ctx, TypePostingFulfill, PostingFulfillPayload{PostingID: postingID})
}

// EnqueueAcceptanceProcessing submits an acceptance processing job.
func (e *AsynqEnqueuer) EnqueueAcceptanceProcessing(ctx context.Context, acceptanceID uuid.UUID) error {
	return e.enqueue(ctx, TypeAcceptanceProcess, AcceptanceProcessPayload{AcceptanceID: acceptanceID})
}

// EnqueueSkuRepricing submits a repricing job for the given skus.
func (e *AsynqEnqueuer) EnqueueSkuRepricing(ctx context.Context, skuIDs []uuid.UUID) error {
	if len(skuIDs) == 0 {
		return nil
	}
	return e.enqueue(ctx, TypeSkuReprice, SkuRepricePayload{SkuIDs: skuIDs})
}

func (e *AsynqEnqueuer) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, b))
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", taskType, err)
	}

	e.logger.InfoContext(ctx, "task enqueued",
		slog.String("type", taskType),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))

	return nil
}
