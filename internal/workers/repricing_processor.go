// internal/workers/repricing_processor.go
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

// RepricingProcessor recomputes sku display prices after discount changes.
type RepricingProcessor struct {
	discounts ports.DiscountService
	logger    *slog.Logger
}

// NewRepricingProcessor creates a new repricing processor
func NewRepricingProcessor(discounts ports.DiscountService, logger *slog.Logger) *RepricingProcessor {
	return &RepricingProcessor{
		discounts: discounts,
		logger:    logger.With(slog.String("processor", "repricing")),
	}
}

// RepriceSkus handles a TypeSkuReprice task. Each sku is repriced
// independently; a sku deleted between enqueue and processing is skipped.
func (p *RepricingProcessor) RepriceSkus(ctx context.Context, t *asynq.Task) error {
	var payload SkuRepricePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "repricing skus",
		slog.Int("count", len(payload.SkuIDs)))

	var failed int
	for _, skuID := range payload.SkuIDs {
		err := p.discounts.UpdateSkuActualPrice(ctx, skuID)
		if err == nil {
			continue
		}
		if errors.Is(err, domain.ErrNotFound) {
			p.logger.WarnContext(ctx, "sku vanished before repricing",
				slog.String("sku_id", skuID.String()))
			continue
		}
		failed++
		p.logger.ErrorContext(ctx, "failed to reprice sku",
			slog.String("sku_id", skuID.String()),
			slog.String("error", err.Error()))
	}

	if failed > 0 {
		return fmt.Errorf("failed to reprice %d of %d skus", failed, len(payload.SkuIDs))
	}

	return nil
}
