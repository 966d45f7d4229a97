// internal/core/services/discount.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// DiscountService manages promotional discounts and keeps sku display prices
// in sync with them.
type DiscountService struct {
	discounts ports.DiscountRepository
	skus      ports.SkuRepository
	db        ports.Database
	jobs      ports.JobEnqueuer
	cache     ports.CacheRepository
	logger    *slog.Logger
}

// Statically assert that *DiscountService implements the service port.
var _ ports.DiscountService = (*DiscountService)(nil)

// NewDiscountService creates a new discount service
func NewDiscountService(
	discounts ports.DiscountRepository,
	skus ports.SkuRepository,
	db ports.Database,
	jobs ports.JobEnqueuer,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *DiscountService {
	return &DiscountService{
		discounts: discounts,
		skus:      skus,
		db:        db,
		jobs:      jobs,
		cache:     cache,
		logger:    logger.With(slog.String("service", "discount")),
	}
}

// CreateDiscount creates an active discount and links it to the existing skus
// among sku_ids. Each sku carries at most one discount, so a new discount
// replaces a previous link. Repricing of the affected skus runs as a
// background job.
func (s *DiscountService) CreateDiscount(ctx context.Context, skuIDs []uuid.UUID, percentage int) (uuid.UUID, error) {
	if percentage <= 0 || percentage >= 100 {
		return uuid.Nil, fmt.Errorf("%w: percentage must be between 1 and 99, got %d",
			domain.ErrValidation, percentage)
	}

	skus, err := s.skus.FindByIDs(ctx, skuIDs)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve skus: %w", err)
	}

	discount := domain.NewDiscount(percentage)

	err = s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.discounts.CreateTx(ctx, tx, discount); err != nil {
			return err
		}
		for i := range skus {
			if err := s.skus.SetDiscountTx(ctx, tx, skus[i].ID, discount.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create discount: %w", err)
	}

	linked := make([]uuid.UUID, len(skus))
	for i := range skus {
		linked[i] = skus[i].ID
	}

	s.logger.InfoContext(ctx, "discount created",
		slog.String("discount_id", discount.ID.String()),
		slog.Int("percentage", percentage),
		slog.Int("skus_linked", len(linked)))

	if err := s.jobs.EnqueueSkuRepricing(ctx, linked); err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue sku repricing: %w", err)
	}

	return discount.ID, nil
}

// CancelDiscount finishes a discount. Display prices are not recomputed here;
// a sku keeps its discounted actual price until the next repricing touches it.
func (s *DiscountService) CancelDiscount(ctx context.Context, discountID uuid.UUID) error {
	discount, err := s.discounts.FindByID(ctx, discountID)
	if err != nil {
		return fmt.Errorf("failed to load discount: %w", err)
	}
	if discount == nil {
		return fmt.Errorf("discount %s: %w", discountID, domain.ErrNotFound)
	}

	if err := s.discounts.UpdateStatus(ctx, discountID, domain.DiscountFinished); err != nil {
		return fmt.Errorf("failed to cancel discount: %w", err)
	}

	return nil
}

// GetDiscount retrieves a discount with the ids of the skus it applies to.
func (s *DiscountService) GetDiscount(ctx context.Context, discountID uuid.UUID) (*domain.Discount, error) {
	discount, err := s.discounts.FindByID(ctx, discountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load discount: %w", err)
	}
	if discount == nil {
		return nil, fmt.Errorf("discount %s: %w", discountID, domain.ErrNotFound)
	}
	return discount, nil
}

// UpdateSkuActualPrice recomputes a sku's display price from its linked
// discount: the discounted base price while the discount is active, the plain
// base price once it is finished. Skus without a discount are left untouched.
func (s *DiscountService) UpdateSkuActualPrice(ctx context.Context, skuID uuid.UUID) error {
	sku, err := s.skus.FindByID(ctx, skuID)
	if err != nil {
		return fmt.Errorf("failed to load sku: %w", err)
	}
	if sku == nil {
		return fmt.Errorf("sku %s: %w", skuID, domain.ErrNotFound)
	}
	if sku.DiscountID == nil {
		return nil
	}

	discount, err := s.discounts.FindByID(ctx, *sku.DiscountID)
	if err != nil {
		return fmt.Errorf("failed to load sku discount: %w", err)
	}
	if discount == nil {
		return fmt.Errorf("discount %s of sku %s: %w", *sku.DiscountID, skuID, domain.ErrNotFound)
	}

	price := sku.BasePrice
	if discount.Status == domain.DiscountActive {
		price = sku.DiscountedPrice(discount.Percentage)
	}

	if err := s.skus.UpdateActualPrice(ctx, skuID, price); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, skuCacheKey(skuID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate sku cache",
			slog.String("sku_id", skuID.String()),
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "sku repriced",
		slog.String("sku_id", skuID.String()),
		slog.String("actual_price", price.String()))

	return nil
}
