// internal/core/domain/posting.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PostingStatus is the lifecycle state of a customer order.
// in_item_pick -> sent (normal path) or in_item_pick -> canceled.
type PostingStatus string

const (
	PostingInItemPick PostingStatus = "in_item_pick"
	PostingSent       PostingStatus = "sent"
	PostingCanceled   PostingStatus = "canceled"
)

// IsTerminal reports whether the posting can no longer change state.
func (s PostingStatus) IsTerminal() bool {
	return s == PostingSent || s == PostingCanceled
}

// Posting is a customer order. Cost is computed once fulfillment completes.
type Posting struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Status    PostingStatus   `json:"status"`
	Cost      decimal.Decimal `json:"cost"`
}

// NewPosting creates a posting in the initial picking state with zero cost.
func NewPosting() *Posting {
	return &Posting{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Status:    PostingInItemPick,
		Cost:      decimal.NewFromInt(0),
	}
}

// PostingCost sums the discounted price of every attached item: each item is
// charged its sku base price reduced by the item's maximum reserved discount.
// Items must be loaded with their Sku and Discounts.
func PostingCost(items []Item) decimal.Decimal {
	total := decimal.NewFromInt(0)
	for i := range items {
		item := &items[i]
		cost := item.Sku.BasePrice
		if pct := item.MaxDiscountPercentage(); pct > 0 {
			cost = item.Sku.DiscountedPrice(pct)
		}
		total = total.Add(cost)
	}
	return total.Round(2)
}
