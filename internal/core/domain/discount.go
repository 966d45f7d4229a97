// internal/core/domain/discount.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DiscountStatus is the lifecycle state of a promotional discount.
type DiscountStatus string

const (
	DiscountActive   DiscountStatus = "active"
	DiscountFinished DiscountStatus = "finished"
)

// Discount is a promotional percentage applied to a set of skus. In the
// current model each sku carries at most one discount at a time.
type Discount struct {
	ID         uuid.UUID      `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Status     DiscountStatus `json:"status"`
	Percentage int            `json:"percentage"`
	SkuIDs     []uuid.UUID    `json:"sku_ids,omitempty"`
}

// NewDiscount creates an active discount. Percentage bounds (1..99) are
// validated at the API boundary.
func NewDiscount(percentage int) *Discount {
	return &Discount{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Status:     DiscountActive,
		Percentage: percentage,
	}
}
