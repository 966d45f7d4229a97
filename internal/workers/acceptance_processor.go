// internal/workers/acceptance_processor.go
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

// AcceptanceProcessor completes intake batches in the background.
type AcceptanceProcessor struct {
	acceptances ports.AcceptanceService
	logger      *slog.Logger
}

// NewAcceptanceProcessor creates a new acceptance processor
func NewAcceptanceProcessor(acceptances ports.AcceptanceService, logger *slog.Logger) *AcceptanceProcessor {
	return &AcceptanceProcessor{
		acceptances: acceptances,
		logger:      logger.With(slog.String("processor", "acceptance")),
	}
}

// ProcessAcceptance handles a TypeAcceptanceProcess task. Redelivery is safe:
// only in-work placing tasks are transitioned.
func (p *AcceptanceProcessor) ProcessAcceptance(ctx context.Context, t *asynq.Task) error {
	var payload AcceptanceProcessPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "processing acceptance",
		slog.String("acceptance_id", payload.AcceptanceID.String()))

	if err := p.acceptances.ProcessAcceptance(ctx, payload.AcceptanceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to process acceptance: %w", err)
	}

	return nil
}
