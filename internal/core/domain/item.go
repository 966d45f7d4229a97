// internal/core/domain/item.go
package domain

import (
	"github.com/google/uuid"
)

// StockStatus describes the physical condition/location state of an item.
type StockStatus string

const (
	// StockValid is a sellable item.
	StockValid StockStatus = "Valid"
	// StockNotFound is an item lost somewhere in the warehouse.
	StockNotFound StockStatus = "NotFound"
	// StockDefect is a marked-down item that carries a defect discount.
	StockDefect StockStatus = "Defect"
)

// Stock is the 1:1 condition record of an Item.
type Stock struct {
	ID         uuid.UUID   `json:"id"`
	ItemID     uuid.UUID   `json:"item_id"`
	Status     StockStatus `json:"status"`
	IsReserved bool        `json:"is_reserved"`
}

// ItemDiscountType tags the origin of a per-item discount reservation.
type ItemDiscountType string

const (
	ItemDiscountByDefect  ItemDiscountType = "BY_DEFECT"
	ItemDiscountPromotion ItemDiscountType = "PROMOTION"
)

// ItemDiscount reserves a discount percentage against one item. Multiple may
// coexist; the maximum percentage wins when pricing.
type ItemDiscount struct {
	ID         uuid.UUID        `json:"id"`
	ItemID     uuid.UUID        `json:"item_id"`
	DiscountID *uuid.UUID       `json:"discount_id,omitempty"`
	Type       ItemDiscountType `json:"type"`
	Percentage int              `json:"percentage"`
}

// Item is one physical unit of a Sku. It is owned by its Sku, referenced by a
// Posting once assigned and by an Acceptance on intake.
type Item struct {
	ID           uuid.UUID  `json:"id"`
	SkuID        uuid.UUID  `json:"sku_id"`
	PostingID    *uuid.UUID `json:"posting_id,omitempty"`
	AcceptanceID *uuid.UUID `json:"acceptance_id,omitempty"`

	// Loaded associations. Stock is always present (1:1); Sku and discounts
	// are filled by repositories that join them.
	Stock     Stock          `json:"stock"`
	Sku       *Sku           `json:"sku,omitempty"`
	Discounts []ItemDiscount `json:"discounts,omitempty"`
}

// MaxDiscountPercentage returns the best (largest) discount percentage
// reserved against the item, or 0 when none exist.
func (i *Item) MaxDiscountPercentage() int {
	max := 0
	for _, d := range i.Discounts {
		if d.Percentage > max {
			max = d.Percentage
		}
	}
	return max
}
