// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/akozlova/marketplace-be/internal/core/domain"
)

// SkuRepository persists product groups.
type SkuRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, sku *domain.Sku) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Sku, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Sku, error)
	UpdateActualPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error
	SetBasePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error
	SetDiscountTx(ctx context.Context, tx pgx.Tx, skuID, discountID uuid.UUID) error
}

// ItemRepository persists items together with their 1:1 stock records and
// per-item discount reservations.
type ItemRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, item *domain.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Item, error)
	FindBySkuID(ctx context.Context, skuID uuid.UUID, filter ItemFilter) ([]domain.Item, error)
	FindByPostingID(ctx context.Context, postingID uuid.UUID) ([]domain.Item, error)
	SetReservedTx(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, reserved bool) error
	SetStockStatus(ctx context.Context, itemID uuid.UUID, status domain.StockStatus) error
	AttachToPostingTx(ctx context.Context, tx pgx.Tx, itemID, postingID uuid.UUID) error
	// ClaimSubstitute atomically reserves any unreserved item whose stock is
	// not NotFound and returns it, or nil when no substitute exists. Two
	// concurrent fulfillment loops can never claim the same item.
	ClaimSubstitute(ctx context.Context, tx pgx.Tx) (*domain.Item, error)
	CreateItemDiscount(ctx context.Context, d *domain.ItemDiscount) error
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	StockStatus *domain.StockStatus
	Reserved    *bool
	Limit       int
}

// TaskRepository persists warehouse tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	CreateTx(ctx context.Context, tx pgx.Tx, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByPostingID(ctx context.Context, postingID uuid.UUID) ([]domain.Task, error)
	FindByAcceptanceID(ctx context.Context, acceptanceID uuid.UUID) ([]domain.Task, error)
	FindActivePickingByItemID(ctx context.Context, itemID uuid.UUID) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) error
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TaskStatus) error
	CompletePlacingByAcceptanceID(ctx context.Context, acceptanceID uuid.UUID) (int64, error)
}

// PostingRepository persists customer orders.
type PostingRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, posting *domain.Posting) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PostingStatus) error
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.PostingStatus) error
	UpdateCostAndStatus(ctx context.Context, id uuid.UUID, cost decimal.Decimal, status domain.PostingStatus) error
}

// AcceptanceRepository persists intake batches.
type AcceptanceRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, acceptance *domain.Acceptance) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Acceptance, error)
}

// DiscountRepository persists promotional discounts and their sku links.
type DiscountRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, discount *domain.Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Discount, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DiscountStatus) error
}
