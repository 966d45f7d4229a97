// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akozlova/marketplace-be/internal/core/domain"
)

// AcceptanceService drives the intake workflow.
type AcceptanceService interface {
	CreateAcceptance(ctx context.Context, groups []AcceptanceGroup) (uuid.UUID, error)
	ProcessAcceptance(ctx context.Context, acceptanceID uuid.UUID) error
	GetAcceptanceInfo(ctx context.Context, acceptanceID uuid.UUID) (*AcceptanceInfo, error)
}

// AcceptanceGroup is one intake line: count items of a sku placed into a stock.
type AcceptanceGroup struct {
	SkuID uuid.UUID
	Stock domain.StockStatus
	Count int
}

// AcceptedGroup reports how many items of a sku landed in a stock status.
type AcceptedGroup struct {
	SkuID uuid.UUID             `json:"sku_id"`
	Stock domain.APIStockStatus `json:"stock"`
	Count int                   `json:"count"`
}

// TaskSummary is the compact task view embedded in workflow read models.
type TaskSummary struct {
	ID     uuid.UUID         `json:"id"`
	Type   domain.TaskType   `json:"type,omitempty"`
	Status domain.TaskStatus `json:"status"`
}

// AcceptanceInfo is the acceptance read model. Accepted counts cover completed
// placing tasks only, so the caller sees intake progress rather than intent.
type AcceptanceInfo struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Accepted  []AcceptedGroup `json:"accepted"`
	Tasks     []TaskSummary   `json:"task_ids"`
}

// PostingService drives the order fulfillment workflow.
type PostingService interface {
	CreatePosting(ctx context.Context, goods []OrderedGood) (uuid.UUID, error)
	ProcessPickingPosting(ctx context.Context, postingID uuid.UUID) error
	CancelPosting(ctx context.Context, postingID uuid.UUID) error
	GetPosting(ctx context.Context, postingID uuid.UUID) (*PostingInfo, error)
}

// OrderedGood names the concrete item ids a customer ordered within one sku.
type OrderedGood struct {
	SkuID         uuid.UUID   `json:"sku"`
	FromValidIDs  []uuid.UUID `json:"from_valid_ids"`
	FromDefectIDs []uuid.UUID `json:"from_defect_ids"`
}

// PostingInfo is the posting read model.
type PostingInfo struct {
	ID           uuid.UUID            `json:"id"`
	Status       domain.PostingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	Cost         decimal.Decimal      `json:"cost"`
	OrderedGoods []OrderedGood        `json:"ordered_goods"`
	NotFound     []uuid.UUID          `json:"not_found"`
	Tasks        []TaskSummary        `json:"task_ids"`
}

// DiscountService manages promotional discounts and sku repricing.
type DiscountService interface {
	CreateDiscount(ctx context.Context, skuIDs []uuid.UUID, percentage int) (uuid.UUID, error)
	CancelDiscount(ctx context.Context, discountID uuid.UUID) error
	GetDiscount(ctx context.Context, discountID uuid.UUID) (*domain.Discount, error)
	UpdateSkuActualPrice(ctx context.Context, skuID uuid.UUID) error
}

// SkuService covers sku and item level operations.
type SkuService interface {
	GetSkuInfo(ctx context.Context, skuID uuid.UUID) (*domain.Sku, error)
	GetItemInfo(ctx context.Context, itemID uuid.UUID) (*ItemInfo, error)
	GetItemInfoBySkuID(ctx context.Context, skuID uuid.UUID) ([]ItemInfo, error)
	MarkdownItem(ctx context.Context, itemID uuid.UUID, percentage decimal.Decimal) error
	SetSkuPrice(ctx context.Context, skuID uuid.UUID, basePrice decimal.Decimal) error
	ToggleIsHidden(ctx context.Context, skuID uuid.UUID, hidden bool) error
	MoveItemToNotFound(ctx context.Context, itemID uuid.UUID) error
}

// ItemInfo is the item read model.
type ItemInfo struct {
	ID       uuid.UUID             `json:"id"`
	SkuID    uuid.UUID             `json:"sku_id"`
	Stock    domain.APIStockStatus `json:"stock"`
	Reserved bool                  `json:"reserved_state"`
}

// TaskService manages warehouse task transitions.
type TaskService interface {
	FinishTask(ctx context.Context, taskID uuid.UUID, status domain.TaskStatus) error
	GetTaskInfo(ctx context.Context, taskID uuid.UUID) (*TaskInfo, error)
}

// TaskTarget identifies the stock record a task operates on.
type TaskTarget struct {
	ID    uuid.UUID `json:"id"`
	Stock string    `json:"stock"`
}

// TaskInfo is the task read model.
type TaskInfo struct {
	ID        uuid.UUID         `json:"id"`
	Status    domain.TaskStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Type      domain.TaskType   `json:"type"`
	Target    TaskTarget        `json:"task_target"`
	PostingID *uuid.UUID        `json:"posting_id"`
}
