// internal/core/services/sku.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/akozlova/marketplace-be/internal/core/domain"
	"github.com/akozlova/marketplace-be/internal/core/ports"
)

// skuCacheTTL bounds staleness of the cached sku read model.
const skuCacheTTL = 5 * time.Minute

func skuCacheKey(skuID uuid.UUID) string {
	return "sku:info:" + skuID.String()
}

// SkuService covers sku and item level operations: read models, pricing
// mutations and the defect markdown flow.
type SkuService struct {
	skus     ports.SkuRepository
	items    ports.ItemRepository
	tasks    ports.TaskRepository
	postings ports.PostingRepository
	db       ports.Database
	cache    ports.CacheRepository
	logger   *slog.Logger
}

// Statically assert that *SkuService implements the service port.
var _ ports.SkuService = (*SkuService)(nil)

// NewSkuService creates a new sku service
func NewSkuService(
	skus ports.SkuRepository,
	items ports.ItemRepository,
	tasks ports.TaskRepository,
	postings ports.PostingRepository,
	db ports.Database,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *SkuService {
	return &SkuService{
		skus:     skus,
		items:    items,
		tasks:    tasks,
		postings: postings,
		db:       db,
		cache:    cache,
		logger:   logger.With(slog.String("service", "sku")),
	}
}

// GetSkuInfo retrieves a sku, served from cache when fresh.
func (s *SkuService) GetSkuInfo(ctx context.Context, skuID uuid.UUID) (*domain.Sku, error) {
	var sku domain.Sku
	err := s.cache.GetOrSet(ctx, skuCacheKey(skuID), &sku, func() (interface{}, error) {
		found, err := s.skus.FindByID(ctx, skuID)
		if err != nil {
			return nil, fmt.Errorf("failed to load sku: %w", err)
		}
		if found == nil {
			return nil, fmt.Errorf("sku %s: %w", skuID, domain.ErrNotFound)
		}
		return found, nil
	}, skuCacheTTL)
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

// GetItemInfo retrieves one item with its stock state.
func (s *SkuService) GetItemInfo(ctx context.Context, itemID uuid.UUID) (*ports.ItemInfo, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	stock, err := domain.StockStatusToAPI(item.Stock.Status)
	if err != nil {
		return nil, err
	}

	return &ports.ItemInfo{
		ID:       item.ID,
		SkuID:    item.SkuID,
		Stock:    stock,
		Reserved: item.Stock.IsReserved,
	}, nil
}

// GetItemInfoBySkuID lists the items of a sku with their stock states.
func (s *SkuService) GetItemInfoBySkuID(ctx context.Context, skuID uuid.UUID) ([]ports.ItemInfo, error) {
	items, err := s.items.FindBySkuID(ctx, skuID, ports.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load sku items: %w", err)
	}

	infos := make([]ports.ItemInfo, 0, len(items))
	for i := range items {
		stock, err := domain.StockStatusToAPI(items[i].Stock.Status)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ports.ItemInfo{
			ID:       items[i].ID,
			SkuID:    items[i].SkuID,
			Stock:    stock,
			Reserved: items[i].Stock.IsReserved,
		})
	}

	return infos, nil
}

// MarkdownItem records a defect discount against an item. Percentage comes in
// as a fraction in [0, 1]. When the item sits on exactly one active picking
// task of a posting still in picking, that task is re-queued so the pick sees
// the new condition; more than one active picking task means the item is in
// an inconsistent state.
func (s *SkuService) MarkdownItem(ctx context.Context, itemID uuid.UUID, percentage decimal.Decimal) error {
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: markdown percentage must be within [0, 1], got %s",
			domain.ErrValidation, percentage)
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	activePicking, err := s.tasks.FindActivePickingByItemID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to load item tasks: %w", err)
	}
	if len(activePicking) > 1 {
		return domain.NewBusinessError("item %s is in an inconsistent state", itemID)
	}

	pct := int(percentage.Mul(decimal.NewFromInt(100)).IntPart()) % 100

	itemDiscount := &domain.ItemDiscount{
		ID:         uuid.New(),
		ItemID:     itemID,
		Type:       domain.ItemDiscountByDefect,
		Percentage: pct,
	}
	if err := s.items.CreateItemDiscount(ctx, itemDiscount); err != nil {
		return fmt.Errorf("failed to record markdown: %w", err)
	}

	s.logger.InfoContext(ctx, "item marked down",
		slog.String("item_id", itemID.String()),
		slog.Int("percentage", pct))

	if len(activePicking) == 0 {
		return nil
	}

	// Re-queue the pick only while the posting is still being assembled.
	task := activePicking[0]
	if task.PostingID == nil {
		return nil
	}
	posting, err := s.postings.FindByID(ctx, *task.PostingID)
	if err != nil {
		return fmt.Errorf("failed to load task posting: %w", err)
	}
	if posting == nil || posting.Status != domain.PostingInItemPick {
		return nil
	}

	return s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := s.tasks.UpdateStatusTx(ctx, tx, task.ID, domain.TaskCanceled); err != nil {
			return err
		}
		replacement := domain.NewTask(domain.TaskPicking, itemID)
		replacement.PostingID = task.PostingID
		return s.tasks.CreateTx(ctx, tx, replacement)
	})
}

// SetSkuPrice sets the undiscounted price of a sku. The display price is not
// recomputed here; repricing happens when the linked discount changes.
func (s *SkuService) SetSkuPrice(ctx context.Context, skuID uuid.UUID, basePrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return fmt.Errorf("%w: base_price cannot be negative", domain.ErrValidation)
	}

	if err := s.skus.SetBasePrice(ctx, skuID, basePrice); err != nil {
		return err
	}

	s.invalidateSkuCache(ctx, skuID)

	s.logger.InfoContext(ctx, "sku base price set",
		slog.String("sku_id", skuID.String()),
		slog.String("base_price", basePrice.String()))

	return nil
}

// ToggleIsHidden hides or shows a sku for purchase. In-flight picks of a
// hidden sku are abandoned by the fulfillment loop.
func (s *SkuService) ToggleIsHidden(ctx context.Context, skuID uuid.UUID, hidden bool) error {
	if err := s.skus.SetHidden(ctx, skuID, hidden); err != nil {
		return err
	}

	s.invalidateSkuCache(ctx, skuID)

	return nil
}

// MoveItemToNotFound marks an item as lost in the warehouse.
func (s *SkuService) MoveItemToNotFound(ctx context.Context, itemID uuid.UUID) error {
	return s.items.SetStockStatus(ctx, itemID, domain.StockNotFound)
}

func (s *SkuService) invalidateSkuCache(ctx context.Context, skuID uuid.UUID) {
	if err := s.cache.Delete(ctx, skuCacheKey(skuID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate sku cache",
			slog.String("sku_id", skuID.String()),
			slog.String("error", err.Error()))
	}
}
